package routes

import (
	"bugtracker-be/controllers"
	"bugtracker-be/middlewares"

	"github.com/gin-gonic/gin"
)

// BugRoutes sets up the bug resource routes. Reads are public; mutating
// routes sit behind the auth gate. Extra guards (e.g. the create rate
// limiter) run after authentication on POST.
func BugRoutes(r *gin.Engine, bc *controllers.BugController, createGuards ...gin.HandlerFunc) {
	bugs := r.Group("/api/bugs")
	{
		bugs.GET("", bc.GetBugs)
		bugs.GET("/:id", bc.GetBug)

		create := append([]gin.HandlerFunc{middlewares.AuthMiddleware()}, createGuards...)
		bugs.POST("", append(create, bc.CreateBug)...)

		bugs.PUT("/:id", middlewares.AuthMiddleware(), bc.UpdateBug)
		bugs.DELETE("/:id", middlewares.AuthMiddleware(), bc.DeleteBug)
	}
}

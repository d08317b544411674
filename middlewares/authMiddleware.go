package middlewares

import (
	"log"
	"net/http"
	"strings"

	authUtils "bugtracker-be/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates mutating routes: it rejects requests without a
// valid bearer token before the controller runs, and stores the
// verified subject id under "user_id" for the handler.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			c.Abort()
			return
		}

		// Extracting token from "Bearer <token>" format
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		subject, err := authUtils.VerifyToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set("user_id", subject)
		c.Next()
	}
}

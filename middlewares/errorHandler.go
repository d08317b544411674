package middlewares

import (
	"log"

	"bugtracker-be/apperrors"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single response-shaping point for failures.
// Handlers attach errors with c.Error and return; this middleware maps
// the last error's kind to an HTTP status and a {"message": ...} body.
// Internal detail is logged server-side and never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := apperrors.From(err)
		if appErr.Kind == apperrors.Internal {
			log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		c.JSON(appErr.Status(), gin.H{"message": appErr.Message})
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mshariqazeem/Project-7/internal/models/api_error"
)

// ErrorHandler turns the first error collected during the request into the
// JSON error response. Handlers report failures with c.Error and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors[0]
			api_error.ToResponse(c, err.Err)
		}
	}
}

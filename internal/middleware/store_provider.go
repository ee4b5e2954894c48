package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mshariqazeem/Project-7/internal/store"
)

// StoreProvider injects the backing stores into every request context.
func StoreProvider(stores *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("stores", stores)
		c.Next()
	}
}

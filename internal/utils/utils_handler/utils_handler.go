package utils_handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mshariqazeem/Project-7/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetReqCx pulls the injected stores and the authenticated user id out of
// the request context. Only valid behind the Auth middleware.
func GetReqCx(c *gin.Context) (*store.Stores, primitive.ObjectID) {
	return c.MustGet("stores").(*store.Stores), c.MustGet("UserID").(primitive.ObjectID)
}

func GetStores(c *gin.Context) *store.Stores {
	return c.MustGet("stores").(*store.Stores)
}

func GetObj[T any](c *gin.Context) (T, error) {
	var obj T
	err := c.ShouldBindJSON(&obj)
	return obj, err
}

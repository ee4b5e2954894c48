package api_dev

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mshariqazeem/Project-7/internal/models/api_error"
	"github.com/mshariqazeem/Project-7/internal/store"
	"github.com/mshariqazeem/Project-7/internal/utils/utils_handler"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API OK",
	})
}

func Root(c *gin.Context) {
	dir, _ := os.Getwd()
	c.String(http.StatusOK, "Simple web server of files from %s", dir)
}

// Test dispatches the /test/:p1 diagnostics: "info" returns the schema
// metadata document, "counts" the per-collection record counts.
func Test(c *gin.Context) {
	stores := utils_handler.GetStores(c)
	ctx := c.Request.Context()

	switch param := c.Param("p1"); param {
	case "info":
		info, err := stores.SchemaInfo.Get(ctx)
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.NewFromStr("missing SchemaInfo", http.StatusInternalServerError))
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, info)

	case "counts":
		userCount, err := stores.Users.Count(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		photoCount, err := stores.Photos.Count(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		schemaCount, err := stores.SchemaInfo.Count(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":       userCount,
			"photo":      photoCount,
			"schemaInfo": schemaCount,
		})

	default:
		c.Error(api_error.NewFromStr("bad param "+param, http.StatusBadRequest))
	}
}

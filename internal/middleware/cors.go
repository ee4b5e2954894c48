package middleware

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the single-page client to talk to the API with its session
// cookie. Origins come from FRONTEND_ORIGINS, defaulting to the local dev
// server.
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AddAllowHeaders("Content-Type")
	config.AllowCredentials = true

	origins := os.Getenv("FRONTEND_ORIGINS")
	if origins == "" {
		config.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		config.AllowOrigins = strings.Split(origins, ",")
	}
	config.AddAllowMethods("DELETE")

	return cors.New(config)
}

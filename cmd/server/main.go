package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mshariqazeem/Project-7/internal/api/api_dev"
	"github.com/mshariqazeem/Project-7/internal/api/api_photo"
	"github.com/mshariqazeem/Project-7/internal/api/api_session"
	"github.com/mshariqazeem/Project-7/internal/api/api_user"
	"github.com/mshariqazeem/Project-7/internal/config"
	"github.com/mshariqazeem/Project-7/internal/database"
	"github.com/mshariqazeem/Project-7/internal/middleware"
	"github.com/mshariqazeem/Project-7/internal/store"
)

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("loaded env file", p)
			return
		}
	}
}

func main() {
	fmt.Println("Starting server...")
	loadDotenv()

	cfg, err := config.ReadProperties()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(&cfg.Mongo)
	if err != nil {
		log.Fatal(err)
	}
	stores := store.NewMongo(db)

	if err := os.MkdirAll(cfg.Content.Dir, 0o755); err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestIDProvider())
	r.Use(middleware.ErrorLogging())
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.StoreProvider(stores))

	auth := middleware.Auth()
	{
		r.GET("/", api_dev.Root)
		r.GET("/healthcheck", api_dev.HealthCheck)
		r.GET("/test/:p1", api_dev.Test)

		r.POST("/admin/login", api_session.Login)
		r.POST("/admin/logout", api_session.Logout)
		r.POST("/user", api_user.Register)

		r.GET("/user/list", auth, api_user.List)
		r.GET("/user/:id", auth, api_user.Detail)
		r.GET("/photosOfUser/:id", auth, api_photo.OfUser)

		r.POST("/photos/new", auth, api_photo.Upload(cfg.Content.Dir))
		r.POST("/commentsOfPhoto/:photoId", auth, api_photo.AddComment)
		r.DELETE("/photo/delete/:photoId", auth, api_photo.Delete(cfg.Content.Dir))
		r.DELETE("/comment/delete/", auth, api_photo.DeleteComment)
		r.POST("/addLike/", auth, api_photo.Like)
		r.POST("/removeLike", auth, api_photo.Unlike)
	}

	r.Static("/images", cfg.Content.Dir)

	r.Run(fmt.Sprintf(":%s", cfg.Server.Port))
}

package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/suPer8Hu/chat-api/internal/config"
	"github.com/suPer8Hu/chat-api/internal/httpapi/handlers"
	"github.com/suPer8Hu/chat-api/internal/httpapi/middleware"
	"gorm.io/gorm"
)

func NewRouter(gdb *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	h := handlers.NewHandler(gdb, cfg)

	r.GET("/", h.Health)

	api := r.Group("/api")
	api.POST("/messages", h.CreateMessage)
	api.GET("/messages/:session_id", h.ListMessages)

	return r
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekoniyah/velvetdream-website-2-0/api/handlers"
	"github.com/nekoniyah/velvetdream-website-2-0/pkg/config"
	"github.com/nekoniyah/velvetdream-website-2-0/pkg/repository"
)

// NewRouter builds the site's HTTP API on an open database handle.
func NewRouter(cfg *config.Config, db *repository.Database) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	h := handlers.New(cfg, db)

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		v1.GET("/projects", h.ListProjects)
		v1.GET("/posts", h.ListPosts)
		v1.GET("/posts/:id/comments", h.ListComments)
		v1.POST("/posts/:id/comments", handlers.UserAuth(cfg.Auth.JWTSecret), h.CreateComment)
		v1.POST("/contact", h.CreateContactMessage)
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)
		v1.POST("/admin/login", h.AdminLogin)

		// Content management, gated on the admin token
		admin := v1.Group("/admin", handlers.AdminAuth(cfg.Auth.AdminToken))
		{
			admin.POST("/projects", h.CreateProject)
			admin.DELETE("/projects/:id", h.DeleteProject)
			admin.POST("/posts", h.CreatePost)
			admin.DELETE("/posts/:id", h.DeletePost)
			admin.GET("/messages", h.ListContactMessages)
			admin.POST("/uploads", h.UploadImage)
		}
	}

	return r
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/todoloop/backend/auth"
	"github.com/todoloop/backend/config"
	"github.com/todoloop/backend/store"
	"gorm.io/gorm"
)

// NewRouter wires all routes and middleware.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL())
	authHandler := NewAuthHandler(store.NewUserStore(db), tokens)
	todoHandler := NewTodoHandler(store.NewTodoStore(db))

	router := gin.Default()

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(TimeoutMiddleware(cfg.RequestTimeout()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Todo API"})
	})

	// Public routes
	router.POST("/users", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Authenticated routes
	authed := router.Group("")
	authed.Use(AuthMiddleware(tokens))
	{
		authed.GET("/me", authHandler.Me)

		authed.GET("/todos", todoHandler.List)
		authed.POST("/todos", todoHandler.Create)
		authed.PUT("/todos/:id", todoHandler.Update)
		authed.DELETE("/todos/:id", todoHandler.Delete)
	}

	return router
}

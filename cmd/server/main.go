package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-dashboard/internal/config"
	"github.com/yukikurage/task-dashboard/internal/constants"
	"github.com/yukikurage/task-dashboard/internal/handlers"
	"github.com/yukikurage/task-dashboard/internal/seed"
	"github.com/yukikurage/task-dashboard/internal/services"
	"github.com/yukikurage/task-dashboard/internal/validation"
	"github.com/yukikurage/task-dashboard/internal/workspace"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	if err := validation.Register(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	// Load the collection every session starts from
	data, err := seed.Default()
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	log.Printf("Loaded %d seed tasks", len(data.Tasks))

	registry := workspace.NewRegistry(data, cfg.WorkspaceIdleTimeout,
		services.WithApproachingBreachDays(cfg.ApproachingBreachDays),
	)

	// Initialize Gin router
	r := gin.Default()

	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task dashboard API is running",
		})
	})

	api := r.Group("/api")
	handlers.RegisterTaskRoutes(api, registry)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s (session store: %s)", addr, cfg.SessionStore)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.SessionStore == constants.SessionStoreRedis {
		return redisStore.NewStore(
			10,    // Redis pool size
			"tcp", // network type
			cfg.RedisHost+":"+cfg.RedisPort,
			"", // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
	}
	return cookie.NewStore([]byte(cfg.SessionSecret)), nil
}

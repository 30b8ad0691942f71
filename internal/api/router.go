package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/nft-game-bot/internal/services"
	"github.com/KirkDiggler/nft-game-bot/internal/uuid"
)

// RouterConfig holds configuration for the HTTP API
type RouterConfig struct {
	ServiceProvider *services.Provider // Required
	UUIDGenerator   uuid.Generator
}

// NewRouter builds the gin engine serving the character API
func NewRouter(cfg *RouterConfig) *gin.Engine {
	if cfg == nil || cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	h := &handler{characters: cfg.ServiceProvider.CharacterService}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(ids), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/contract", h.getContract)
		api.GET("/boss", h.getBoss)
		api.GET("/characters/default", h.listDefaultCharacters)
		api.GET("/characters/:owner", h.getCharacter)
	}

	return r
}

func requestID(ids uuid.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = ids.New()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s [%s]", c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Round(time.Millisecond), c.GetString(requestIDKey))
	}
}

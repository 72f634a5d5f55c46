package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/ordernotify/internal/api/handlers"
	"github.com/jafarshop/ordernotify/internal/api/middleware"
	"github.com/jafarshop/ordernotify/internal/config"
	"github.com/jafarshop/ordernotify/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, sender service.Sender, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	notifier := service.NewNotificationService(cfg.Messaging, sender, logger)
	webhook := handlers.HandleWebhook(notifier, logger)

	// Webhook routes dispatch on method themselves
	hooks := router.Group("")
	hooks.Use(middleware.WebhookKeyMiddleware(cfg.Webhook, logger))
	{
		hooks.Any("/api/webhook", webhook)
		hooks.Any("/webhook", webhook)
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

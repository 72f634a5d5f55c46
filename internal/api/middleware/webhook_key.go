package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jafarshop/ordernotify/internal/config"
	"github.com/jafarshop/ordernotify/pkg/errors"
)

const WebhookKeyHeader = "X-Webhook-Key"

// WebhookKeyMiddleware checks the shared webhook key on POST requests
// against the configured bcrypt hash. It is a no-op when no hash is set.
func WebhookKeyMiddleware(cfg config.WebhookConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.KeyHash == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		if err := verifyWebhookKey(cfg.KeyHash, extractWebhookKey(c)); err != nil {
			logger.Warn("Rejected webhook call",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}

func extractWebhookKey(c *gin.Context) string {
	if key := c.GetHeader(WebhookKeyHeader); key != "" {
		return key
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func verifyWebhookKey(hash, key string) error {
	if key == "" {
		return &errors.ErrUnauthorized{Message: "missing webhook key"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		return &errors.ErrUnauthorized{Message: "invalid webhook key"}
	}
	return nil
}

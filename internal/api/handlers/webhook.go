package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/ordernotify/internal/api/middleware"
	"github.com/jafarshop/ordernotify/internal/service"
	"github.com/jafarshop/ordernotify/pkg/errors"
)

const healthMessage = "Webhook Running ✅"

// Notifier turns a webhook call into a sent order confirmation
type Notifier interface {
	Notify(ctx context.Context, req service.NotificationRequest) (*service.NotificationResult, error)
}

// HandleWebhook handles all methods on the webhook route: GET is a health
// check, POST sends the order confirmation, anything else is rejected.
func HandleWebhook(notifier Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.String(http.StatusOK, healthMessage)
			return
		}
		if c.Request.Method != http.MethodPost {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
			return
		}

		logger := logger.With(zap.String("request_id", middleware.GetRequestID(c)))

		defer func() {
			if r := recover(); r != nil {
				logger.Error("Webhook crashed", zap.Any("panic", r))
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "internal_error",
					"details": fmt.Sprint(r),
				})
			}
		}()

		body, err := decodeBody(c)
		if err != nil {
			logger.Error("Failed to decode webhook body", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"details": err.Error(),
			})
			return
		}

		result, err := notifier.Notify(c.Request.Context(), service.NotificationRequest{
			Body:          body,
			QueryStoreTag: c.Query("storeTag"),
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "sent",
			"storeTag": result.StoreTag,
			"data":     result.Data,
		})
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrInvalidPhone:
		logger.Warn("Invalid customer phone", zap.String("digits", e.Digits))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "invalid_phone",
			"input_phone": e.Input,
			"e164Phone":   e.E164,
			"digitsPhone": e.Digits,
		})
	case *errors.ErrMissingConfig:
		logger.Error("Messaging API is not configured", zap.Strings("missing", e.Keys))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing_env"})
	case *errors.ErrUpstream:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "saas_error",
			"details":  e.Details,
			"storeTag": e.StoreTag,
		})
	default:
		logger.Error("Failed to process webhook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"details": err.Error(),
		})
	}
}

// decodeBody reads the JSON body keeping numbers exact. An empty body or a
// non-object JSON value yields an empty order.
func decodeBody(c *gin.Context) (map[string]interface{}, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	body := map[string]interface{}{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var decoded interface{}
	if err := decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	if m, ok := decoded.(map[string]interface{}); ok {
		return m, nil
	}
	return body, nil
}

package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jafarshop/ordernotify/internal/config"
	"github.com/jafarshop/ordernotify/internal/domain"
)

type Client struct {
	baseURL    string
	vendorUID  string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new template-message API client
func NewClient(cfg config.MessagingConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		vendorUID: cfg.VendorUID,
		token:     cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Endpoint returns the send-template-message URL for the configured vendor
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s/%s/contact/send-template-message", c.baseURL, c.vendorUID)
}

// Send posts a template message. Any HTTP status is returned as a result;
// only transport failures are errors. A body that is not JSON decodes to nil.
func (c *Client) Send(ctx context.Context, payload domain.OutboundPayload) (*domain.SendResult, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Warn("Messaging API returned non-JSON body",
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		data = nil
	}

	return &domain.SendResult{
		StatusCode: resp.StatusCode,
		Data:       data,
	}, nil
}

package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jafarshop/ordernotify/internal/config"
	"github.com/jafarshop/ordernotify/internal/domain"
	"github.com/jafarshop/ordernotify/pkg/errors"
)

// resultFailed is the marker the messaging API returns in "result" for a rejected send
const resultFailed = "failed"

// Sender delivers a template message to the messaging API
type Sender interface {
	Send(ctx context.Context, payload domain.OutboundPayload) (*domain.SendResult, error)
}

// NotificationRequest is one decoded webhook call
type NotificationRequest struct {
	Body          map[string]interface{}
	QueryStoreTag string
}

// PreparedNotification is everything derived from the payload before sending
type PreparedNotification struct {
	StoreTag domain.StoreTag
	Source   domain.OrderSource
	Order    domain.NormalizedOrder
	Pricing  Pricing
	Payload  domain.OutboundPayload
}

// NotificationResult is returned for a delivered message
type NotificationResult struct {
	StoreTag domain.StoreTag
	Source   domain.OrderSource
	Payload  domain.OutboundPayload
	Data     interface{}
}

type notificationService struct {
	cfg    config.MessagingConfig
	sender Sender
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg config.MessagingConfig, sender Sender, logger *zap.Logger) *notificationService {
	return &notificationService{
		cfg:    cfg,
		sender: sender,
		logger: logger,
	}
}

// Prepare runs detection, store routing, extraction, phone normalization and
// payload assembly. It returns *errors.ErrInvalidPhone when the customer
// phone cannot be used.
func Prepare(req NotificationRequest) (*PreparedNotification, error) {
	data := req.Body
	if data == nil {
		data = map[string]interface{}{}
	}

	tag := ResolveStoreTag(req.QueryStoreTag, data)
	storeCfg := StoreConfigFor(tag)
	source := DetectSource(data)
	order := ExtractOrder(data, source, storeCfg)

	e164 := NormalizePhone(toText(order.CustomerPhone), order.Country)
	digits := PhoneDigits(e164)
	if !ValidPhoneDigits(digits) {
		return nil, &errors.ErrInvalidPhone{
			Input:  order.CustomerPhone,
			E164:   e164,
			Digits: digits,
		}
	}

	pricing := CalculatePricing(order.PriceRaw, order.ShippingRaw, storeCfg.CurrencyLabel)

	return &PreparedNotification{
		StoreTag: tag,
		Source:   source,
		Order:    order,
		Pricing:  pricing,
		Payload:  BuildPayload(order, tag, storeCfg, digits, pricing),
	}, nil
}

// Notify prepares the order confirmation and sends it with a single call to
// the messaging API. Nothing is sent when the phone or configuration is invalid.
func (s *notificationService) Notify(ctx context.Context, req NotificationRequest) (*NotificationResult, error) {
	prepared, err := Prepare(req)
	if err != nil {
		return nil, err
	}

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("Sending order confirmation",
		zap.String("store_tag", string(prepared.StoreTag)),
		zap.String("source", string(prepared.Source)),
		zap.String("template", prepared.Payload.TemplateName),
		zap.String("lang", prepared.Payload.TemplateLanguage),
	)
	s.logger.Debug("Outbound payload", zap.Any("payload", prepared.Payload))

	result, err := s.sender.Send(ctx, prepared.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to send template message: %w", err)
	}

	if !delivered(result) {
		s.logger.Error("Messaging API rejected message",
			zap.Int("status", result.StatusCode),
			zap.Any("details", result.Data),
		)
		return nil, &errors.ErrUpstream{
			StatusCode: result.StatusCode,
			Details:    result.Data,
			StoreTag:   string(prepared.StoreTag),
		}
	}

	s.logger.Info("Order confirmation sent",
		zap.String("store_tag", string(prepared.StoreTag)),
		zap.Any("response", result.Data),
	)

	return &NotificationResult{
		StoreTag: prepared.StoreTag,
		Source:   prepared.Source,
		Payload:  prepared.Payload,
		Data:     result.Data,
	}, nil
}

// delivered requires a 2xx status and no "failed" result marker
func delivered(result *domain.SendResult) bool {
	if result.StatusCode < http.StatusOK || result.StatusCode >= http.StatusMultipleChoices {
		return false
	}
	if body, ok := result.Data.(map[string]interface{}); ok {
		if marker, ok := body["result"].(string); ok && marker == resultFailed {
			return false
		}
	}
	return true
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jafarshop/ordernotify/internal/api/middleware"
	"github.com/jafarshop/ordernotify/internal/config"
	"github.com/jafarshop/ordernotify/internal/domain"
)

type recordingSender struct {
	result *domain.SendResult
	sent   []domain.OutboundPayload
}

func (r *recordingSender) Send(_ context.Context, payload domain.OutboundPayload) (*domain.SendResult, error) {
	r.sent = append(r.sent, payload)
	return r.result, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Messaging: config.MessagingConfig{
			BaseURL:   "https://api.example.test",
			VendorUID: "vendor-1",
			Token:     "token-1",
			Timeout:   time.Second,
		},
	}
}

func okResult() *domain.SendResult {
	return &domain.SendResult{StatusCode: http.StatusOK, Data: map[string]interface{}{"result": "success"}}
}

const orderBody = `{
	"full_name": "Ahmed",
	"phone": "0512345678",
	"short_id": "1001",
	"cart_items": [{"product": {"name": "Shirt"}, "quantity": 2, "price": 100}],
	"shipping_cost": 20
}`

func serve(router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWebhook_HealthCheck(t *testing.T) {
	router := NewRouter(testConfig(), &recordingSender{result: okResult()}, zap.NewNop())

	w := serve(router, http.MethodGet, "/api/webhook", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Webhook Running ✅", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestWebhook_MethodNotAllowed(t *testing.T) {
	router := NewRouter(testConfig(), &recordingSender{result: okResult()}, zap.NewNop())

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		w := serve(router, method, "/webhook", orderBody, nil)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "Method not allowed", decodeJSON(t, w)["error"])
	}
}

func TestWebhook_SendsOrderConfirmation(t *testing.T) {
	sender := &recordingSender{result: okResult()}
	router := NewRouter(testConfig(), sender, zap.NewNop())

	w := serve(router, http.MethodPost, "/api/webhook?storeTag=eq", orderBody, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.Equal(t, "sent", body["status"])
	assert.Equal(t, "EQ", body["storeTag"])
	assert.Equal(t, map[string]interface{}{"result": "success"}, body["data"])

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "966512345678", sender.sent[0].PhoneNumber)
	assert.Equal(t, "1001 (EQ)", sender.sent[0].Field2)
	assert.Equal(t, "120 ريال سعودي", sender.sent[0].Field7)
}

func TestWebhook_InvalidPhone(t *testing.T) {
	sender := &recordingSender{result: okResult()}
	router := NewRouter(testConfig(), sender, zap.NewNop())

	w := serve(router, http.MethodPost, "/api/webhook", `{"phone":"05123","cart_items":[{}]}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "invalid_phone", body["error"])
	assert.Equal(t, "05123", body["input_phone"])
	assert.Equal(t, "+05123", body["e164Phone"])
	assert.Equal(t, "05123", body["digitsPhone"])
	assert.Empty(t, sender.sent)
}

func TestWebhook_MissingEnv(t *testing.T) {
	cfg := testConfig()
	cfg.Messaging.BaseURL = ""
	sender := &recordingSender{result: okResult()}
	router := NewRouter(cfg, sender, zap.NewNop())

	w := serve(router, http.MethodPost, "/api/webhook", orderBody, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "missing_env"}, decodeJSON(t, w))
	assert.Empty(t, sender.sent)
}

func TestWebhook_SaasError(t *testing.T) {
	sender := &recordingSender{result: &domain.SendResult{
		StatusCode: http.StatusOK,
		Data:       map[string]interface{}{"result": "failed", "message": "template paused"},
	}}
	router := NewRouter(testConfig(), sender, zap.NewNop())

	w := serve(router, http.MethodPost, "/api/webhook", `{"tag":"gz","phone":"0512345678"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "saas_error", body["error"])
	assert.Equal(t, "GZ", body["storeTag"])
	assert.Equal(t, map[string]interface{}{"result": "failed", "message": "template paused"}, body["details"])
}

func TestWebhook_MalformedBody(t *testing.T) {
	sender := &recordingSender{result: okResult()}
	router := NewRouter(testConfig(), sender, zap.NewNop())

	w := serve(router, http.MethodPost, "/api/webhook", `{"phone":`, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "internal_error", body["error"])
	assert.NotEmpty(t, body["details"])
	assert.Empty(t, sender.sent)
}

func TestWebhook_EmptyBodyIsInvalidPhone(t *testing.T) {
	router := NewRouter(testConfig(), &recordingSender{result: okResult()}, zap.NewNop())

	w := serve(router, http.MethodPost, "/api/webhook", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_phone", decodeJSON(t, w)["error"])
}

func TestWebhook_KeyRequiredWhenConfigured(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("store-key"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Webhook.KeyHash = string(hash)
	sender := &recordingSender{result: okResult()}
	router := NewRouter(cfg, sender, zap.NewNop())

	w := serve(router, http.MethodPost, "/api/webhook", orderBody, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(router, http.MethodPost, "/api/webhook", orderBody, map[string]string{middleware.WebhookKeyHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, sender.sent)

	w = serve(router, http.MethodPost, "/api/webhook", orderBody, map[string]string{middleware.WebhookKeyHeader: "store-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodPost, "/api/webhook", orderBody, map[string]string{"Authorization": "Bearer store-key"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sender.sent, 2)

	w = serve(router, http.MethodGet, "/api/webhook", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "health check stays open")
}

func TestHealthRoute(t *testing.T) {
	router := NewRouter(testConfig(), &recordingSender{result: okResult()}, zap.NewNop())

	w := serve(router, http.MethodGet, "/health", "", map[string]string{middleware.RequestIDHeader: "req-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))
}

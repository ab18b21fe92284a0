package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-remodeling-backend/config"
	v1 "go-remodeling-backend/internal/delivery/http/v1"
	"go-remodeling-backend/internal/usecase"
	"go-remodeling-backend/pkg/analytics"
	"go-remodeling-backend/pkg/logger"
	"go-remodeling-backend/pkg/mailer"
	"go-remodeling-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
}

// countingMailer records sends and optionally fails them.
type countingMailer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *countingMailer) Send(_ context.Context, _ *mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.err
}

func (m *countingMailer) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func testConfig(contactLimit int) *config.Config {
	return &config.Config{
		Port:                      "8080",
		SiteURL:                   "https://imperialremodel.com",
		BrandName:                 "Imperial Home Remodeling",
		SMTPFromEmail:             "noreply@imperialremodel.com",
		LeadEmailTo:               "info@imperialremodel.com",
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: contactLimit,
		RateLimitGlobalThreshold:  1000,
		MailSendTimeoutSeconds:    10,
	}
}

func newTestRouter(m mailer.Mailer, contactLimit int) *gin.Engine {
	cfg := testConfig(contactLimit)
	emitter := analytics.NewLogEmitter(logger.Log)
	contactUC := usecase.NewContactUsecase(m, emitter, cfg)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})
}

func validPayload() map[string]any {
	return map[string]any{
		"fullName": "Jane Doe",
		"email":    "jane@example.com",
		"zip":      "07432",
		"workType": "Kitchen Remodeling",
		"message":  "Need a full kitchen remodel with new cabinets.",
		"consent":  true,
	}
}

func postContact(router *gin.Engine, payload any, contentType string) *httptest.ResponseRecorder {
	var body *strings.Reader
	switch p := payload.(type) {
	case string:
		body = strings.NewReader(p)
	default:
		raw, _ := json.Marshal(p)
		body = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmitContactSuccess(t *testing.T) {
	m := &countingMailer{}
	router := newTestRouter(m, 10)

	w := postContact(router, validPayload(), "application/json")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, 2, m.sendCount(), "exactly two mail sends per successful submission")
}

func TestSubmitContactHoneypotSilentSuccess(t *testing.T) {
	m := &countingMailer{}
	router := newTestRouter(m, 10)

	payload := validPayload()
	payload["company"] = "spamtext"

	w := postContact(router, payload, "application/json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, m.sendCount(), "honeypot traffic must never reach the mailer")
}

func TestSubmitContactRejectsWrongContentType(t *testing.T) {
	m := &countingMailer{}
	router := newTestRouter(m, 10)

	w := postContact(router, validPayload(), "text/plain")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, m.sendCount())
}

func TestSubmitContactRejectsMalformedJSON(t *testing.T) {
	m := &countingMailer{}
	router := newTestRouter(m, 10)

	w := postContact(router, `{"fullName": "Jane`, "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, m.sendCount())
}

func TestSubmitContactValidationFailures(t *testing.T) {
	cases := []struct {
		name       string
		mutate     func(map[string]any)
		wantFields []string
	}{
		{
			name:       "missing required fields",
			mutate:     func(p map[string]any) { delete(p, "fullName"); delete(p, "email") },
			wantFields: []string{"fullName", "email"},
		},
		{
			name:       "work type outside the service enum",
			mutate:     func(p map[string]any) { p["workType"] = "Landscaping" },
			wantFields: []string{"workType"},
		},
		{
			name:       "zip too short",
			mutate:     func(p map[string]any) { p["zip"] = "1234" },
			wantFields: []string{"zip"},
		},
		{
			name:       "zip too long",
			mutate:     func(p map[string]any) { p["zip"] = "123456" },
			wantFields: []string{"zip"},
		},
		{
			name:       "zip not numeric",
			mutate:     func(p map[string]any) { p["zip"] = "abcde" },
			wantFields: []string{"zip"},
		},
		{
			name:       "consent false",
			mutate:     func(p map[string]any) { p["consent"] = false },
			wantFields: []string{"consent"},
		},
		{
			name:       "consent absent",
			mutate:     func(p map[string]any) { delete(p, "consent") },
			wantFields: []string{"consent"},
		},
		{
			name:       "message too short",
			mutate:     func(p map[string]any) { p["message"] = "short" },
			wantFields: []string{"message"},
		},
		{
			name:       "empty string counts as missing",
			mutate:     func(p map[string]any) { p["fullName"] = "" },
			wantFields: []string{"fullName"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &countingMailer{}
			router := newTestRouter(m, 10)

			payload := validPayload()
			tc.mutate(payload)

			w := postContact(router, payload, "application/json")

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, 0, m.sendCount(), "no sends on any rejection path")

			resp := decodeResponse(t, w)
			fields, ok := resp["errors"].(map[string]any)
			require.True(t, ok, "422 body must carry field-keyed errors, got %v", resp)
			for _, f := range tc.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestSubmitContactDispatchFailure(t *testing.T) {
	m := &countingMailer{err: errors.New("smtp: relay refused")}
	router := newTestRouter(m, 10)

	w := postContact(router, validPayload(), "application/json")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	// Transport details must not leak to the caller
	assert.NotContains(t, resp["message"], "smtp")
}

func TestSubmitContactRateLimited(t *testing.T) {
	m := &countingMailer{}
	router := newTestRouter(m, 2)

	for i := 0; i < 2; i++ {
		w := postContact(router, validPayload(), "application/json")
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := postContact(router, validPayload(), "application/json")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, 4, m.sendCount(), "blocked request must not reach the mailer")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&countingMailer{}, 10)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

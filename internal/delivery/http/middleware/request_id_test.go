package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-remodeling-backend/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	router := newRequestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated request ID must be a UUID")
}

func TestRequestIDHonorsWellFormedUUID(t *testing.T) {
	router := newRequestIDRouter()
	inbound := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", inbound)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get("X-Request-ID"))
}

func TestRequestIDReplacesArbitraryClientValue(t *testing.T) {
	router := newRequestIDRouter()

	for _, inbound := range []string{
		"not-a-uuid",
		"<script>alert(1)</script>",
		"abc\ndef",
	} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", inbound)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		id := w.Header().Get("X-Request-ID")
		assert.NotEqual(t, inbound, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "replacement request ID must be a UUID")
	}
}

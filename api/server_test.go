package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabioCubas101/tfm-ai-api/internal/log"
)

const testAPIKey = "test-master-key-0123456789"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer(ServerConfig{
		Responder:      &stubResponder{answer: "respuesta de prueba"},
		Store:          testStore(t),
		Logger:         log.NewNop(),
		APIKey:         testAPIKey,
		CORSOrigins:    []string{"http://localhost:4200"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	})
	require.NoError(t, err)
	return srv
}

func TestNewServerValidation(t *testing.T) {
	t.Parallel()

	t.Run("requires logger", func(t *testing.T) {
		t.Parallel()

		_, err := NewServer(ServerConfig{APIKey: testAPIKey})
		assert.Error(t, err)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := NewServer(ServerConfig{Logger: log.NewNop()})
		assert.Error(t, err)
	})
}

func TestServerRoutes(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	t.Run("root banner", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "tfm-ai-api")
	})

	t.Run("unknown path is 404", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("health endpoints need no key", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/health", "/ready"} {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("metrics endpoint exposed", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("chat without key is 401", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hola tenerife"}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("chat with key succeeds", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hola tenerife"}`))
		req.Header.Set(APIKeyHeader, testAPIKey)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "respuesta de prueba")
	})

	t.Run("chat GET is rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/chat", nil)
		req.Header.Set(APIKeyHeader, testAPIKey)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("every response carries a request ID", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestServerRateLimitsChat(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(ServerConfig{
		Responder:      &stubResponder{answer: "ok"},
		Store:          testStore(t),
		Logger:         log.NewNop(),
		APIKey:         testAPIKey,
		RateLimitRPS:   0.0001,
		RateLimitBurst: 1,
	})
	require.NoError(t, err)
	handler := srv.Handler()

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hola tenerife"}`))
		req.Header.Set(APIKeyHeader, testAPIKey)
		req.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FabioCubas101/tfm-ai-api/internal/log"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Parallel()

	t.Run("burst then denial", func(t *testing.T) {
		t.Parallel()

		rl := newRateLimiter(0.0001, 2)
		assert.True(t, rl.allow("10.0.0.1"))
		assert.True(t, rl.allow("10.0.0.1"))
		assert.False(t, rl.allow("10.0.0.1"))
	})

	t.Run("independent per IP", func(t *testing.T) {
		t.Parallel()

		rl := newRateLimiter(0.0001, 1)
		assert.True(t, rl.allow("10.0.0.1"))
		assert.False(t, rl.allow("10.0.0.1"))
		assert.True(t, rl.allow("10.0.0.2"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	rl := newRateLimiter(0.0001, 1)
	h := rateLimitMiddleware(rl, false, log.NewNop())(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = "10.0.0.1:12345"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		xri        string
		xff        string
		trustProxy bool
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "10.0.0.1:12345",
			want:       "10.0.0.1",
		},
		{
			name:       "X-Real-IP when trusted",
			remoteAddr: "10.0.0.1:12345",
			xri:        "203.0.113.50",
			trustProxy: true,
			want:       "203.0.113.50",
		},
		{
			name:       "X-Real-IP takes precedence over X-Forwarded-For when trusted",
			remoteAddr: "10.0.0.1:12345",
			xri:        "203.0.113.50",
			xff:        "198.51.100.7",
			trustProxy: true,
			want:       "203.0.113.50",
		},
		{
			name:       "untrusted ignores headers",
			remoteAddr: "10.0.0.1:12345",
			xri:        "203.0.113.50",
			xff:        "198.51.100.7",
			want:       "10.0.0.1",
		},
		{
			name:       "invalid X-Real-IP falls through to XFF",
			remoteAddr: "10.0.0.1:12345",
			xri:        "not-an-ip",
			xff:        "198.51.100.7, 10.0.0.9",
			trustProxy: true,
			want:       "198.51.100.7",
		},
		{
			name:       "invalid XFF falls through to RemoteAddr",
			remoteAddr: "10.0.0.1:12345",
			xff:        "garbage",
			trustProxy: true,
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}

			assert.Equal(t, tt.want, clientIP(r, tt.trustProxy))
		})
	}
}

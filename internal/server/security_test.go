package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewFailedAuthDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/leaderboard", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/leaderboard", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/sync", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestFailedAuthDetector_WindowResets(t *testing.T) {
	d := NewFailedAuthDetector()
	now := time.Now()
	d.now = func() time.Time { return now }

	assert.Equal(t, 1, d.Record("10.0.0.1"))
	assert.Equal(t, 2, d.Record("10.0.0.1"))
	assert.Equal(t, 1, d.Record("10.0.0.2"))

	now = now.Add(FailedAuthWindow + time.Second)
	assert.Equal(t, 1, d.Record("10.0.0.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(1, 3)
	handler := RateLimitMiddleware(nil, limiter)(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different client has its own bucket
	other := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter_Prune(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	limiter.Allow("a")

	limiter.Prune(time.Now().Add(time.Minute))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.limiters)
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set(HeaderForwardedFor, "1.1.1.1, 2.2.2.2")

	assert.Equal(t, "10.0.0.1", extractIP(req, nil))
	assert.Equal(t, "2.2.2.2", extractIP(req, []string{"10.0.0.1"}))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

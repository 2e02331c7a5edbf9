package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/fairscan/internal/server/handlers"
)

func newTestLimiter(rate int, window time.Duration) (*RateLimiter, *time.Time) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rl := NewRateLimiter(rate, window, logger)

	now := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, now := newTestLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("user:a"), "request %d", i+1)
	}
	assert.False(t, rl.Allow("user:a"))

	// Другой ключ считается отдельно
	assert.True(t, rl.Allow("user:b"))

	// После окна лимит восстанавливается
	*now = now.Add(time.Minute)
	assert.True(t, rl.Allow("user:a"))
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	rl, now := newTestLimiter(3, time.Minute)
	defer rl.Stop()

	rl.Allow("old")
	*now = now.Add(90 * time.Second)
	rl.Allow("fresh")
	*now = now.Add(60 * time.Second)

	rl.cleanupOldBuckets()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.buckets, "old")
	assert.Contains(t, rl.buckets, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl, _ := newTestLimiter(1, time.Minute)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(2, time.Minute)
	defer rl.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := RateLimitMiddleware(rl, setupTestLogger())(next)

	send := func(userID, remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/scanlog", nil)
		req.RemoteAddr = remote
		if userID != "" {
			req = req.WithContext(handlers.WithUserID(req.Context(), userID))
		}
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
		}
		return w.Code
	}

	// Один пользователь с разных адресов делит лимит
	assert.Equal(t, http.StatusOK, send("user-1", "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("user-1", "10.0.0.2:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("user-1", "10.0.0.3:1000"))

	// Другой пользователь с того же адреса не затронут
	assert.Equal(t, http.StatusOK, send("user-2", "10.0.0.1:1000"))

	// Анонимные запросы считаются по IP
	assert.Equal(t, http.StatusOK, send("", "10.0.0.9:1000"))
	assert.Equal(t, http.StatusOK, send("", "10.0.0.9:2000"))
	assert.Equal(t, http.StatusTooManyRequests, send("", "10.0.0.9:3000"))
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "192.168.1.1:12345", want: "192.168.1.1"},
		{name: "remote addr without port", remoteAddr: "192.168.1.1", want: "192.168.1.1"},
		{
			name:       "x-forwarded-for list",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}

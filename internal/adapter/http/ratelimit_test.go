package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"adreward/internal/auth"
	"adreward/internal/config/configs"
)

func TestAllowEnforcesLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
}

func TestAllowTracksKeysIndependently(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestAllowRecoversAfterWindow(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimitedRouteAnswers429(t *testing.T) {
	tokens := auth.NewTokenManager(configs.Auth{
		AccessSecret:  "test-access",
		RefreshSecret: "test-refresh",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Close()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(&stubRewards{}, nil, nil, tokens, limiter, logger)

	doLogin := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader("{"))
		req.RemoteAddr = "10.0.0.9:54321"
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		return rec.Code
	}

	// The limiter sits in front of the handler, so even a malformed body
	// consumes quota: first request fails on JSON, second on the limit.
	assert.Equal(t, http.StatusBadRequest, doLogin())
	assert.Equal(t, http.StatusTooManyRequests, doLogin())
}

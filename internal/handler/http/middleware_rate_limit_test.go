package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewIPRateLimiter_Disabled(t *testing.T) {
	assert.Nil(t, newIPRateLimiter(config.RateLimit{}))
	assert.Nil(t, newIPRateLimiter(config.RateLimit{Requests: 10}))
}

func TestIPRateLimiter_PerIPBudget(t *testing.T) {
	rl := newIPRateLimiter(config.RateLimit{Requests: 100, Window: time.Hour, Burst: 2})
	require.NotNil(t, rl)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"), "other clients keep their own budget")

	now = now.Add(36 * time.Second)
	assert.True(t, rl.allow("10.0.0.1"), "one token is refilled every window/requests")
}

func TestIPRateLimiter_SweepsIdleVisitors(t *testing.T) {
	rl := newIPRateLimiter(config.RateLimit{Requests: 10, Window: time.Minute, Burst: 1})
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	now = now.Add(2 * time.Minute)
	rl.allow("10.0.0.2")

	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestWithRateLimit_Answers429(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = config.RateLimit{Requests: 1, Window: time.Hour, Burst: 1}
	h, m := newTestHandler(t, cfg)
	m.blogs.EXPECT().Latest(gomock.Any()).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/v1/blogs/latest", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/blogs/latest", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, ErrTooManyRequests.Error(), decodeError(t, rec).Message)

	// version lives outside /api/v1 and is never limited
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec = httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

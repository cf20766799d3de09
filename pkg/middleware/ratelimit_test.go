package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-manager/pkg/utils"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testRateKey = "ratelimit:192.0.2.1:POST /api/tickets"

func rateConfig() utils.RateLimitConfig {
	return utils.RateLimitConfig{
		Enabled:  true,
		Requests: 2,
		Window:   time.Minute,
		Prefix:   "ratelimit",
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveRateLimited(handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitFirstRequestStartsWindow(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectIncr(testRateKey).SetVal(1)
	mock.ExpectExpire(testRateKey, time.Minute).SetVal(true)

	rec := serveRateLimited(RateLimit(db, rateConfig(), zap.NewNop())(okHandler()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectIncr(testRateKey).SetVal(3)
	mock.ExpectTTL(testRateKey).SetVal(42 * time.Second)

	rec := serveRateLimited(RateLimit(db, rateConfig(), zap.NewNop())(okHandler()))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitRetryFallsBackToWindow(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectIncr(testRateKey).SetVal(5)
	mock.ExpectTTL(testRateKey).SetErr(errors.New("ttl failed"))

	rec := serveRateLimited(RateLimit(db, rateConfig(), zap.NewNop())(okHandler()))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimitFailsOpen(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectIncr(testRateKey).SetErr(errors.New("connection refused"))

	rec := serveRateLimited(RateLimit(db, rateConfig(), zap.NewNop())(okHandler()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitDisabled(t *testing.T) {
	config := rateConfig()
	config.Enabled = false

	rec := serveRateLimited(RateLimit(nil, config, zap.NewNop())(okHandler()))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveRateLimited(RateLimit(nil, rateConfig(), zap.NewNop())(okHandler()))
	assert.Equal(t, http.StatusOK, rec.Code)
}

package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"cinema-manager/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit counts requests per client IP and route in fixed windows kept
// in Redis. Without a client, or when disabled, it passes every request.
// Redis failures let the request through.
func RateLimit(rdb redis.Cmdable, config utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	if !config.Enabled || rdb == nil || config.Requests <= 0 || config.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limit := strconv.FormatInt(config.Requests, 10)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := rateKey(config.Prefix, r)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable", zap.Error(err), zap.String("key", key))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := rdb.Expire(ctx, key, config.Window).Err(); err != nil {
					logger.Warn("Failed to set rate limit window", zap.Error(err), zap.String("key", key))
				}
			}

			remaining := config.Requests - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > config.Requests {
				retryAfter := retryAfterSeconds(rdb, r, key, config.Window)
				logger.Warn("Rate limit exceeded",
					zap.String("key", key),
					zap.Int64("count", count),
					zap.Int("retry_after", retryAfter),
				)
				utils.ResponseTooManyRequests(w, retryAfter)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(rdb redis.Cmdable, r *http.Request, key string, window time.Duration) int {
	ttl, err := rdb.TTL(r.Context(), key).Result()
	if err != nil || ttl <= 0 {
		ttl = window
	}
	return int(math.Ceil(ttl.Seconds()))
}

func rateKey(prefix string, r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || ip == "" {
		ip = r.RemoteAddr
	}
	if ip == "" {
		ip = "unknown"
	}
	return fmt.Sprintf("%s:%s:%s %s", prefix, ip, r.Method, r.URL.Path)
}

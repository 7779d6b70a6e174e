package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"

	"github.com/pemdes/webdesa/internal/auth"
	"github.com/pemdes/webdesa/internal/telemetry/metrics"
	"github.com/pemdes/webdesa/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=rate_limiting_mocks_test.go -package=middleware_test

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests per client ip, per router.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, err := pkg.ReadUserIP(r)
			if err != nil {
				log.Warnf("rate limit, read user ip: %s", err)
				ip = "unknown"
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				fmt.Sprintf("%s:%s", routerName, ip),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limit [%s]: %s", routerName, err)
				pkg.WriteJSONError(w, http.StatusInternalServerError, auth.MsgServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			log.Warnf("rate limit [%s]: too many requests from %s", routerName, ip)

			retryAfter := math.Max(1, math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", fmt.Sprintf("%.0f", retryAfter))
			pkg.WriteJSONError(w, http.StatusTooManyRequests, auth.MsgTooManyRequests)
		})
	}
}

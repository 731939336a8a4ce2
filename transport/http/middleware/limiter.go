package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"courtbook/shared"
	"courtbook/shared/cache"
	"courtbook/shared/constant"
	"courtbook/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"
)

// unlimitedPrefixes are hit by load balancers and docs browsers, never by booking clients.
var unlimitedPrefixes = []string{"/health", "/swagger"}

// RateLimit is a fixed window counter per client stored in redis. A redis outage lets traffic
// through rather than rejecting every request.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable || a.unlimited(r) {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			count, ok := a.hit(r.Context(), shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r)), windowSecs)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w, windowSecs)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// hit counts one request against key and reports the new count. ok is false when the counter
// could not be read or written.
func (a *appMiddleware) hit(ctx context.Context, key string, windowSecs int) (count int, ok bool) {
	err := a.cache.Get(ctx, key, &count)

	switch {
	case errors.Is(err, cache.Nil):
		count = 1
	case err != nil:
		return 0, false
	default:
		count++
	}

	// Over the limit the window is left to expire instead of being extended.
	if count > a.config.App.RateLimiter.MaxRequests {
		return count, true
	}

	if err = a.cache.Save(ctx, key, count, windowSecs); err != nil {
		return 0, false
	}

	return count, true
}

func (a *appMiddleware) unlimited(r *http.Request) bool {
	for _, prefix := range unlimitedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}

	return false
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// The first address is the original client.
		if first, _, found := strings.Cut(xff, ","); found {
			return strings.TrimSpace(first)
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}

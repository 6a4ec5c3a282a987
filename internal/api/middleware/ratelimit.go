package middleware

import (
	"net"
	"net/http"
	"sync"

	"github.com/blaisecz/schedule-builder/pkg/problem"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows rps requests per second per client with the given
// burst. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Handler rejects requests over the limit with 429.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if rl.limit <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.getLimiter(ip).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", "1")
			problem.TooManyRequests("Rate limit exceeded. Try again later.").Write(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr; RealIP may already have done so.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/lillieharlow/Bloggy-API/internal/httputil"
)

// RateLimit throttles clients per IP with a token bucket sized to the
// window: limit requests per window, refilled continuously. Buckets for
// idle clients are dropped once they are stale.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	type bucket struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	perSecond := rate.Limit(float64(limit) / window.Seconds())

	// Periodically evict clients that have not been seen for a full window.
	go func() {
		for range time.Tick(window) {
			mu.Lock()
			for ip, b := range buckets {
				if time.Since(b.lastSeen) > window {
					delete(buckets, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			mu.Lock()
			b, ok := buckets[ip]
			if !ok {
				b = &bucket{limiter: rate.NewLimiter(perSecond, limit)}
				buckets[ip] = b
			}
			b.lastSeen = time.Now()
			mu.Unlock()

			if !b.limiter.Allow() {
				httputil.RespondJSON(w, http.StatusTooManyRequests, map[string]string{
					"message": "Too many requests from this IP",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

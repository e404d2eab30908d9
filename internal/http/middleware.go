package http

import (
	"net"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/grocery-pos/internal/http/ratelimit"
)

var limiter *ratelimit.Limiter

// SetRateLimiter enables the rate limiting middleware. A nil limiter (the
// default) disables it.
func SetRateLimiter(l *ratelimit.Limiter) {
	limiter = l
}

// RequestLogger emits one structured log line per request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// RateLimit rejects clients that exceed the per-IP budget and turns away
// banned clients outright.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		if limiter.Banned(ip) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		if !limiter.Allow(ip) {
			limiter.Strike(ip, r.URL.Path)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

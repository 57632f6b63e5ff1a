package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request and counts it by route pattern.
// Server errors log at error level, client errors at warn.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}
			logger.Log(r.Context(), level, "request",
				"method", r.Method,
				"route", route,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chiMiddleware.GetReqID(r.Context()),
			)
		})
	}
}

// clientWindow counts one client's requests in the current minute.
type clientWindow struct {
	start time.Time
	count int
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

// allow records a request for key and reports whether it fits the window.
// When it does not, it also returns how long until the window resets.
func (rl *rateLimiter) allow(key string, now time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cw, ok := rl.clients[key]
	if !ok || now.Sub(cw.start) >= rl.window {
		if len(rl.clients) > 4096 {
			rl.prune(now)
		}
		rl.clients[key] = &clientWindow{start: now, count: 1}
		return true, 0
	}
	if cw.count >= rl.limit {
		return false, cw.start.Add(rl.window).Sub(now)
	}
	cw.count++
	return true, 0
}

func (rl *rateLimiter) prune(now time.Time) {
	for k, cw := range rl.clients {
		if now.Sub(cw.start) >= rl.window {
			delete(rl.clients, k)
		}
	}
}

// RateLimitMiddleware allows requestsPerMinute requests per client per
// minute. Clients are keyed by X-Client-ID, falling back to the remote
// address. A non-positive limit disables it.
func RateLimitMiddleware(requestsPerMinute int) func(http.Handler) http.Handler {
	rl := &rateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   requestsPerMinute,
		window:  time.Minute,
	}
	return func(next http.Handler) http.Handler {
		if rl.limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Client-ID")
			if key == "" {
				key = r.RemoteAddr
			}
			ok, wait := rl.allow(key, time.Now())
			if !ok {
				rateLimited.Inc()
				secs := int(wait.Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

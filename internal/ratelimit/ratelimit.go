// Package ratelimit throttles requests per client key with token buckets.
package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/northwind-studio/website/pkg/apperror"
	"github.com/northwind-studio/website/pkg/logger"
)

const (
	DefaultPerMinute = 30
	DefaultBurst     = 10
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per key. A Limiter with a zero rate allows
// everything.
type Limiter struct {
	limit rate.Limit
	burst int
	log   *slog.Logger
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// New creates a limiter allowing perMinute requests per key with the given
// burst. perMinute == 0 disables limiting.
func New(perMinute, burst int, log *slog.Logger) *Limiter {
	l := &Limiter{
		burst:   burst,
		log:     log.With(logger.Scope("ratelimit")),
		now:     time.Now,
		entries: make(map[string]*entry),
	}
	if perMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(perMinute))
		if l.burst <= 0 {
			l.burst = 1
		}
	}
	return l
}

// Enabled reports whether the limiter ever rejects.
func (l *Limiter) Enabled() bool { return l.limit > 0 }

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	if !l.Enabled() {
		return true
	}

	now := l.now()
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Prune drops buckets not used since before cutoff and returns how many
// were removed.
func (l *Limiter) Prune(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Middleware rejects requests over the limit with 429, keyed by client IP.
func (l *Limiter) Middleware(errs *apperror.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r)
			if !l.Allow(key) {
				l.log.Warn("rate limited",
					slog.String("client", key),
					slog.String("path", r.URL.Path))
				w.Header().Set("Retry-After", "60")
				errs.Render(w, r, apperror.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the host part of r.RemoteAddr. Proxies are expected to
// have rewritten RemoteAddr already.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package transport

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/browbeat/event-marketplace/cmd/config"
	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/utils/errors"
	"github.com/browbeat/event-marketplace/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client address. Buckets idle for
// longer than expiresIn are dropped on the next request.
type RateLimiter struct {
	mu        sync.Mutex
	enabled   bool
	limit     rate.Limit
	burst     int
	expiresIn time.Duration
	visitors  map[string]*visitor
	now       func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		enabled:   cfg.Enabled && cfg.Rate > 0 && cfg.Burst > 0,
		limit:     rate.Limit(cfg.Rate),
		burst:     cfg.Burst,
		expiresIn: cfg.ExpiresIn,
		visitors:  make(map[string]*visitor),
		now:       time.Now,
	}
}

func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	if !l.enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := clientID(r)
		if !l.allow(id) {
			logger.Warn("rate limit exceeded", zap.String("client", id), zap.String("path", r.URL.Path))
			writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.expiresIn > 0 {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.expiresIn {
				delete(l.visitors, k)
			}
		}
	}

	v, ok := l.visitors[id]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[id] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

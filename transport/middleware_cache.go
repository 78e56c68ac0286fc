package transport

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/browbeat/event-marketplace/cmd/config"
	redisrepo "github.com/browbeat/event-marketplace/repository/redis"
	"github.com/browbeat/event-marketplace/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	cachePrefix = "http:cache:"
	// cacheGenKey sits outside cachePrefix so a flush does not remove it.
	cacheGenKey = "http:cachegen"
)

type cacheRoute struct {
	prefix string
	ttl    time.Duration
}

// CacheMiddleware caches public GET responses in the key-value store and
// drops the whole namespace after any successful write under /api. Entries
// are keyed by the generation read when the request started and a flush
// retires that generation.
type CacheMiddleware struct {
	repo    redisrepo.Repository
	enabled bool
	routes  []cacheRoute
}

func NewCacheMiddleware(repo redisrepo.Repository, cfg config.CacheConfig) *CacheMiddleware {
	return &CacheMiddleware{
		repo:    repo,
		enabled: cfg.Enabled && repo != nil,
		routes: []cacheRoute{
			{prefix: "/api/vendors", ttl: cfg.VendorTTL},
			{prefix: "/api/reviews", ttl: cfg.VendorTTL},
			{prefix: "/api/categories", ttl: cfg.ReferenceTTL},
			{prefix: "/api/event-types", ttl: cfg.ReferenceTTL},
		},
	}
}

func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	if !m.enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(&invalidatingWriter{ResponseWriter: w, flush: func() { m.flush(r) }}, r)
			return
		}

		ttl, ok := m.ttlFor(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(r, m.generation(r))
		if cached, err := m.repo.Get(r.Context(), key); err == nil {
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(cached))
			return
		}

		w.Header().Set("X-Cache", "MISS")
		recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK, body: &bytes.Buffer{}}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.repo.SetWithTTL(r.Context(), key, recorder.body.String(), ttl); err != nil {
				logger.Warn("[CacheMiddleware] err repo.SetWithTTL", zap.String("path", r.URL.Path), zap.String("error", err.Error()))
			}
		}
	})
}

func (m *CacheMiddleware) ttlFor(path string) (time.Duration, bool) {
	for _, rt := range m.routes {
		if path == rt.prefix || strings.HasPrefix(path, rt.prefix+"/") {
			return rt.ttl, rt.ttl > 0
		}
	}
	return 0, false
}

func (m *CacheMiddleware) generation(r *http.Request) string {
	gen, err := m.repo.Get(r.Context(), cacheGenKey)
	if err != nil && err != redisrepo.ErrNil {
		logger.Warn("[CacheMiddleware] err repo.Get generation", zap.String("path", r.URL.Path), zap.String("error", err.Error()))
	}
	return gen
}

func (m *CacheMiddleware) flush(r *http.Request) {
	if err := m.repo.Set(r.Context(), cacheGenKey, uuid.NewString()); err != nil {
		logger.Warn("[CacheMiddleware] err repo.Set generation", zap.String("path", r.URL.Path), zap.String("error", err.Error()))
	}
	if err := m.repo.DeleteByPrefix(r.Context(), cachePrefix); err != nil {
		logger.Warn("[CacheMiddleware] err repo.DeleteByPrefix", zap.String("path", r.URL.Path), zap.String("error", err.Error()))
	}
}

func cacheKey(r *http.Request, gen string) string {
	key := r.Method + ":" + r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.Query().Encode()
	}
	hash := sha256.Sum256([]byte(key))
	return cachePrefix + gen + ":" + hex.EncodeToString(hash[:])
}

// responseRecorder tees the response body for caching.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}

// invalidatingWriter flushes the cache before a successful write response
// reaches the client, so a read issued after it cannot see stale data.
type invalidatingWriter struct {
	http.ResponseWriter
	flush   func()
	written bool
}

func (w *invalidatingWriter) WriteHeader(statusCode int) {
	if w.written {
		return
	}
	w.written = true
	if statusCode < http.StatusBadRequest {
		w.flush()
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *invalidatingWriter) Write(data []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

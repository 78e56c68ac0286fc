package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/browbeat/event-marketplace/cmd/config"
	redisrepo "github.com/browbeat/event-marketplace/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheMiddlewareWriteDuringRead(t *testing.T) {
	repo := redisrepo.NewMemoryRepository()
	cache := NewCacheMiddleware(repo, config.CacheConfig{Enabled: true, VendorTTL: time.Minute, ReferenceTTL: time.Minute})

	version := "v1"
	reads := 0
	var handler http.Handler
	handler = cache.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			version = "v2"
			w.WriteHeader(http.StatusCreated)
			return
		}

		reads++
		body := `{"version":"` + version + `"}`
		if reads == 1 {
			// the first read renders its body, then a write completes before it responds
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/vendors", nil))
			require.Equal(t, http.StatusCreated, rec.Code)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendors", nil))
		return rec
	}

	rec := get()
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"version":"v1"}`, rec.Body.String())

	rec = get()
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"version":"v2"}`, rec.Body.String())

	rec = get()
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"version":"v2"}`, rec.Body.String())
	assert.Equal(t, 2, reads)
}

func TestCacheMiddlewareFlush(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantRotate bool
	}{
		{name: "successful write", status: http.StatusOK, wantRotate: true},
		{name: "created", status: http.StatusCreated, wantRotate: true},
		{name: "rejected write", status: http.StatusBadRequest, wantRotate: false},
		{name: "failed write", status: http.StatusInternalServerError, wantRotate: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := redisrepo.NewMemoryRepository()
			require.NoError(t, repo.Set(ctx, cacheGenKey, "g0"))
			require.NoError(t, repo.SetWithTTL(ctx, cachePrefix+"g0:entry", "{}", time.Minute))

			cache := NewCacheMiddleware(repo, config.CacheConfig{Enabled: true, VendorTTL: time.Minute})
			handler := cache.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/vendors/1", nil))

			gen, err := repo.Get(ctx, cacheGenKey)
			require.NoError(t, err)
			_, entryErr := repo.Get(ctx, cachePrefix+"g0:entry")
			if tt.wantRotate {
				assert.NotEqual(t, "g0", gen)
				assert.ErrorIs(t, entryErr, redisrepo.ErrNil)
			} else {
				assert.Equal(t, "g0", gen)
				assert.NoError(t, entryErr)
			}
		})
	}
}

package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// memory is the in-process stand-in used when no Redis host is configured.
// Expired keys are dropped lazily on access.
type memory struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewMemoryRepository() Repository {
	return &memory{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (m *memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[key]
	if !ok {
		return "", ErrNil
	}
	if e.expired(m.now()) {
		delete(m.data, key)
		return "", ErrNil
	}
	return e.value, nil
}

func (m *memory) Set(_ context.Context, key string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entry{value: fmt.Sprint(value)}
	return nil
}

func (m *memory) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = m.entryWithTTL(value, ttl)
	return nil
}

func (m *memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memory) DeleteByPrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memory) SetSession(_ context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sessionPrefix+sessionID] = m.entryWithTTL(strconv.FormatUint(userID, 10), ttl)
	return nil
}

func (m *memory) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	val, err := m.Get(ctx, sessionPrefix+sessionID)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(val, 10, 64)
}

func (m *memory) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Delete(ctx, sessionPrefix+sessionID)
}

func (m *memory) entryWithTTL(value string, ttl time.Duration) entry {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	return e
}

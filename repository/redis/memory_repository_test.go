package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestMemory() (*memory, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)}
	m := NewMemoryRepository().(*memory)
	m.now = clock.now
	return m, clock
}

func TestMemory_GetMissing(t *testing.T) {
	m, _ := newTestMemory()
	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNil)
}

func TestMemory_SetWithTTL_Expires(t *testing.T) {
	m, clock := newTestMemory()
	ctx := context.Background()

	require.NoError(t, m.SetWithTTL(ctx, "k", "v", time.Minute))
	require.NoError(t, m.Set(ctx, "forever", 42))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	clock.t = clock.t.Add(61 * time.Second)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNil)

	got, err = m.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestMemory_DeleteByPrefix(t *testing.T) {
	m, _ := newTestMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "http:cache:a", "1"))
	require.NoError(t, m.Set(ctx, "http:cache:b", "2"))
	require.NoError(t, m.SetSession(ctx, "token", 3, time.Hour))

	require.NoError(t, m.DeleteByPrefix(ctx, "http:cache:"))

	_, err := m.Get(ctx, "http:cache:a")
	assert.ErrorIs(t, err, ErrNil)
	_, err = m.Get(ctx, "http:cache:b")
	assert.ErrorIs(t, err, ErrNil)

	userID, err := m.GetSession(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), userID)
}

func TestMemory_SessionLifecycle(t *testing.T) {
	m, clock := newTestMemory()
	ctx := context.Background()

	require.NoError(t, m.SetSession(ctx, "s1", 7, time.Hour))
	require.NoError(t, m.SetSession(ctx, "s2", 8, time.Hour))

	require.NoError(t, m.DeleteSession(ctx, "s1"))
	_, err := m.GetSession(ctx, "s1")
	assert.ErrorIs(t, err, ErrNil)

	clock.t = clock.t.Add(2 * time.Hour)
	_, err = m.GetSession(ctx, "s2")
	assert.ErrorIs(t, err, ErrNil)
}

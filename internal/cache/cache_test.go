package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when the test tells it to.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time          { return c.current }
func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newFakeClock() *fakeClock { return &fakeClock{current: time.Unix(1700000000, 0)} }

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("PutThenGet", func(t *testing.T) {
		clock := newFakeClock()
		store := NewMemory(DefaultTTL, clock.now)

		store.Set(ctx, "alice|reels:false", []byte(`{"ok":true}`))
		payload, ok := store.Get(ctx, "alice|reels:false")
		require.True(t, ok)
		assert.Equal(t, []byte(`{"ok":true}`), payload)
	})

	t.Run("MissOnUnknownKey", func(t *testing.T) {
		store := NewMemory(DefaultTTL, newFakeClock().now)
		_, ok := store.Get(ctx, "nobody")
		assert.False(t, ok)
	})

	t.Run("ExpiresAfterTTL", func(t *testing.T) {
		clock := newFakeClock()
		store := NewMemory(DefaultTTL, clock.now)

		store.Set(ctx, "alice", []byte("payload"))

		clock.advance(DefaultTTL - time.Second)
		_, ok := store.Get(ctx, "alice")
		assert.True(t, ok, "entry inside the window must be fresh")

		clock.advance(2 * time.Second)
		_, ok = store.Get(ctx, "alice")
		assert.False(t, ok, "entry past the window must be a miss")
	})

	t.Run("SetOverwritesAndRefreshes", func(t *testing.T) {
		clock := newFakeClock()
		store := NewMemory(DefaultTTL, clock.now)

		store.Set(ctx, "alice", []byte("old"))
		clock.advance(DefaultTTL + time.Minute)
		store.Set(ctx, "alice", []byte("new"))

		payload, ok := store.Get(ctx, "alice")
		require.True(t, ok)
		assert.Equal(t, []byte("new"), payload)
	})
}

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time          { return c.current }
func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func TestFixedWindow(t *testing.T) {
	t.Run("AdmitsUpToMaxThenDenies", func(t *testing.T) {
		clock := &fakeClock{current: time.Unix(1700000000, 0)}
		limiter := New(DefaultMax, DefaultWindow, clock.now)

		for i := 0; i < DefaultMax; i++ {
			assert.True(t, limiter.Allow("1.2.3.4"), "call %d should be admitted", i+1)
		}
		assert.False(t, limiter.Allow("1.2.3.4"), "call %d must be denied", DefaultMax+1)
		assert.False(t, limiter.Allow("1.2.3.4"), "denials must not consume budget")
	})

	t.Run("ResetsAfterWindowElapses", func(t *testing.T) {
		clock := &fakeClock{current: time.Unix(1700000000, 0)}
		limiter := New(DefaultMax, DefaultWindow, clock.now)

		for i := 0; i < DefaultMax; i++ {
			limiter.Allow("1.2.3.4")
		}
		assert.False(t, limiter.Allow("1.2.3.4"))

		clock.advance(DefaultWindow + time.Second)
		assert.True(t, limiter.Allow("1.2.3.4"), "fresh window must admit again")

		// The reset counted the admitted request as the first of the new window.
		for i := 1; i < DefaultMax; i++ {
			assert.True(t, limiter.Allow("1.2.3.4"))
		}
		assert.False(t, limiter.Allow("1.2.3.4"))
	})

	t.Run("ClientsAreIndependent", func(t *testing.T) {
		clock := &fakeClock{current: time.Unix(1700000000, 0)}
		limiter := New(1, DefaultWindow, clock.now)

		assert.True(t, limiter.Allow("a"))
		assert.False(t, limiter.Allow("a"))
		assert.True(t, limiter.Allow("b"))
	})
}

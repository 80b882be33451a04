package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the freshness window for cached audit responses.
const DefaultTTL = 10 * time.Minute

// Store caches computed response payloads by normalized lookup key.
// Implementations must treat entries older than their TTL as misses.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

type entry struct {
	createdAt time.Time
	payload   []byte
}

// Memory is an in-process Store. Expired entries are not purged; they are
// reported as misses and overwritten on the next Set for the same key.
// Unbounded by design for the expected key cardinality.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory builds an in-memory store with the given TTL. A nil now func
// defaults to time.Now; tests inject their own clock.
func NewMemory(ttl time.Duration, now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

var _ Store = (*Memory)(nil)

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.createdAt) >= m.ttl {
		return nil, false
	}
	return e.payload, true
}

func (m *Memory) Set(_ context.Context, key string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{createdAt: m.now(), payload: payload}
}

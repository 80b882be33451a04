// Package ratelimit provides a per-client fixed-window request limiter.
package ratelimit

import (
	"sync"
	"time"
)

// Defaults for the /audit endpoint.
const (
	DefaultMax    = 20
	DefaultWindow = time.Minute
)

type window struct {
	count       int
	windowStart time.Time
}

// FixedWindow counts requests per client identifier within successive
// non-overlapping windows. A burst straddling a window boundary can admit up
// to twice the nominal rate; accepted imprecision of the fixed-window model.
// Stale client entries are never cleaned up.
type FixedWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	size    time.Duration
	now     func() time.Time
}

// New builds a limiter admitting max requests per size window. A nil now
// func defaults to time.Now.
func New(max int, size time.Duration, now func() time.Time) *FixedWindow {
	if now == nil {
		now = time.Now
	}
	return &FixedWindow{
		windows: make(map[string]*window),
		max:     max,
		size:    size,
		now:     now,
	}
}

// Allow reports whether the client may proceed, counting the request if so.
// A denied request does not consume budget.
func (l *FixedWindow) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[clientID]
	if !ok || now.Sub(w.windowStart) > l.size {
		l.windows[clientID] = &window{count: 1, windowStart: now}
		return true
	}
	if w.count+1 > l.max {
		return false
	}
	w.count++
	return true
}

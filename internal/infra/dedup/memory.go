package dedup

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is how long an idempotency key suppresses repeat submissions.
const DefaultTTL = 90 * time.Second

// Memory is a process-local idempotency store: a map of key -> first-seen
// time with lazy eviction. Best effort only — instances share nothing, which
// is an accepted limitation of this deployment.
type Memory struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		seen: make(map[string]time.Time),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Seen reports whether key was recorded within the TTL, and records it if it
// was not. Check and write happen under one lock so two near-simultaneous
// retries with the same key cannot both pass.
func (m *Memory) Seen(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.gc(now)

	if ts, ok := m.seen[key]; ok && now.Sub(ts) < m.ttl {
		return true, nil
	}
	m.seen[key] = now
	return false, nil
}

// gc purges expired keys. Full scan on every call; fine at form-submission
// volume, entries expire quickly.
func (m *Memory) gc(now time.Time) {
	for k, ts := range m.seen {
		if now.Sub(ts) >= m.ttl {
			delete(m.seen, k)
		}
	}
}

// Len reports the live entry count. Used by the health endpoint.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gc(m.now())
	return len(m.seen)
}

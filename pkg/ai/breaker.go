package ai

import (
	"sync"
	"time"
)

// breakerKey is the snapshot-store key holding the block deadline, so the
// window survives a restart. Deleting the key clears the block manually.
const breakerKey = "gemini_blocked_until"

// BreakerStore persists the breaker deadline across processes. The local
// snapshot store satisfies it; a nil store keeps the state in memory only.
type BreakerStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Breaker blocks calls to the model for a fixed window after quota
// exhaustion or model-list exhaustion. The clock is injected so tests can
// drive the window; state is owned by the instance, not a global.
type Breaker struct {
	window time.Duration
	now    func() time.Time
	store  BreakerStore

	mu           sync.Mutex
	blockedUntil time.Time
}

// NewBreaker builds a breaker with the given cooldown window. A nil now
// uses the wall clock.
func NewBreaker(window time.Duration, now func() time.Time, store BreakerStore) *Breaker {
	if now == nil {
		now = time.Now
	}
	b := &Breaker{window: window, now: now, store: store}
	if store != nil {
		if raw, ok, err := store.Get(breakerKey); err == nil && ok {
			if t, perr := time.Parse(time.RFC3339, string(raw)); perr == nil {
				b.blockedUntil = t
			}
		}
	}
	return b
}

// Allow reports whether a call may proceed. An elapsed window is cleared as
// a side effect.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.blockedUntil.IsZero() {
		return true
	}
	if b.now().Before(b.blockedUntil) {
		return false
	}
	b.blockedUntil = time.Time{}
	if b.store != nil {
		_ = b.store.Delete(breakerKey)
	}
	return true
}

// Trip opens the breaker for the configured window.
func (b *Breaker) Trip() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blockedUntil = b.now().Add(b.window)
	if b.store != nil {
		_ = b.store.Set(breakerKey, []byte(b.blockedUntil.Format(time.RFC3339)))
	}
}

// BlockedUntil returns the current deadline, zero when closed.
func (b *Breaker) BlockedUntil() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blockedUntil
}

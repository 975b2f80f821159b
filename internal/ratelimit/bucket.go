package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of a single Admit call.
type Decision struct {
	// Allowed reports whether a token was consumed.
	Allowed bool
	// Remaining is the number of tokens left after this call.
	Remaining int64
	// Limit is the bucket capacity.
	Limit int64
	// RetryAfter is the time until the next refill. Set only when denied.
	RetryAfter time.Duration
}

// bucket holds the token count of one client. Tokens are added in whole
// batches of refillTokens once per elapsed refillInterval and never exceed
// capacity.
type bucket struct {
	mu         sync.Mutex
	tokens     int64
	lastRefill time.Time
	// retired is set once the bucket leaves the registry. A retired bucket
	// never hands out tokens.
	retired bool
}

func newBucket(capacity int64, now time.Time) *bucket {
	return &bucket{tokens: capacity, lastRefill: now}
}

// refill must be called with b.mu held.
func (b *bucket) refill(p *policy, now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed < p.refillInterval {
		return
	}

	intervals := int64(elapsed / p.refillInterval)
	b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * p.refillInterval)

	if intervals >= p.intervalsToFill {
		b.tokens = p.capacity
		return
	}
	b.tokens = min(p.capacity, b.tokens+intervals*p.refillTokens)
}

// take refills the bucket and tries to consume one token as one step. It
// reports false when the bucket was retired and the caller must look the
// key up again.
func (b *bucket) take(p *policy, now time.Time) (Decision, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.retired {
		return Decision{}, false
	}

	b.refill(p, now)

	if b.tokens <= 0 {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			Limit:      p.capacity,
			RetryAfter: b.lastRefill.Add(p.refillInterval).Sub(now),
		}, true
	}

	b.tokens--
	return Decision{Allowed: true, Remaining: b.tokens, Limit: p.capacity}, true
}

// retireIfFull retires the bucket when it would be at capacity at now. A
// full bucket can be dropped without changing what its client is allowed
// to do. The check and the retirement happen under one lock so no token
// is spent in between.
func (b *bucket) retireIfFull(p *policy, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(p, now)
	if b.tokens < p.capacity {
		return false
	}
	b.retired = true
	return true
}

func (b *bucket) retire() {
	b.mu.Lock()
	b.retired = true
	b.mu.Unlock()
}

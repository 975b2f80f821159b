package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────────────────────────────────────

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, cfg Config) (*TokenBucketLimiter, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	l, err := New(cfg, WithClock(clock.Now))
	require.NoError(t, err)
	return l, clock
}

var defaultCfg = Config{Capacity: 100, RefillTokens: 100, RefillInterval: time.Minute}

// ─────────────────────────────────────────────────────────────────────────────
// New
// ─────────────────────────────────────────────────────────────────────────────

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "zero capacity", cfg: Config{Capacity: 0, RefillTokens: 1, RefillInterval: time.Second}},
		{name: "zero refill", cfg: Config{Capacity: 1, RefillTokens: 0, RefillInterval: time.Second}},
		{name: "zero interval", cfg: Config{Capacity: 1, RefillTokens: 1}},
		{name: "negative max clients", cfg: Config{Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, MaxClients: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Admit
// ─────────────────────────────────────────────────────────────────────────────

func TestAdmit_EmptyKey(t *testing.T) {
	l, _ := newTestLimiter(t, defaultCfg)

	_, err := l.Admit("")

	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.Equal(t, 0, l.Len())
}

func TestAdmit_CountsDownThenDenies(t *testing.T) {
	l, _ := newTestLimiter(t, defaultCfg)

	for i := range 100 {
		d, err := l.Admit("10.0.0.1")
		require.NoError(t, err)
		require.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, int64(99-i), d.Remaining)
		assert.Equal(t, int64(100), d.Limit)
	}

	d, err := l.Admit("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, int64(0), d.Remaining)
	assert.Equal(t, time.Minute, d.RetryAfter)
}

func TestAdmit_DenialHasNoSideEffects(t *testing.T) {
	l, clock := newTestLimiter(t, Config{Capacity: 1, RefillTokens: 1, RefillInterval: time.Minute})

	d, _ := l.Admit("k")
	require.True(t, d.Allowed)

	for range 5 {
		d, _ = l.Admit("k")
		assert.False(t, d.Allowed)
	}

	clock.Advance(time.Minute)
	d, _ = l.Admit("k")
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(0), d.Remaining)
}

func TestAdmit_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, Config{Capacity: 1, RefillTokens: 1, RefillInterval: time.Minute})

	d, _ := l.Admit("a")
	require.True(t, d.Allowed)
	d, _ = l.Admit("a")
	require.False(t, d.Allowed)

	d, _ = l.Admit("b")
	assert.True(t, d.Allowed)
}

func TestAdmit_IntervalRefill(t *testing.T) {
	l, clock := newTestLimiter(t, Config{Capacity: 10, RefillTokens: 3, RefillInterval: time.Minute})

	for range 10 {
		_, _ = l.Admit("k")
	}

	// nothing is added before a full interval has elapsed
	clock.Advance(59 * time.Second)
	d, _ := l.Admit("k")
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	// one interval adds one batch
	clock.Advance(time.Second)
	d, _ = l.Admit("k")
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(2), d.Remaining)

	// two more intervals add two batches, capped at capacity
	clock.Advance(2 * time.Minute)
	d, _ = l.Admit("k")
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(7), d.Remaining)

	clock.Advance(time.Hour)
	d, _ = l.Admit("k")
	assert.Equal(t, int64(9), d.Remaining)
}

func TestAdmit_RefillKeepsIntervalPhase(t *testing.T) {
	l, clock := newTestLimiter(t, Config{Capacity: 1, RefillTokens: 1, RefillInterval: time.Minute})

	_, _ = l.Admit("k")
	clock.Advance(90 * time.Second)
	d, _ := l.Admit("k")
	require.True(t, d.Allowed)

	// the next refill is due at 2m, not 90s + 1m
	clock.Advance(29 * time.Second)
	d, _ = l.Admit("k")
	require.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)
}

func TestAdmit_ConcurrentNeverOverAdmits(t *testing.T) {
	l, _ := newTestLimiter(t, defaultCfg)

	var admitted atomic.Int64
	var wg sync.WaitGroup
	for range 500 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := l.Admit("shared")
			if err == nil && d.Allowed {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), admitted.Load())
}

// ─────────────────────────────────────────────────────────────────────────────
// eviction
// ─────────────────────────────────────────────────────────────────────────────

func TestEviction_UnboundedByDefault(t *testing.T) {
	l, _ := newTestLimiter(t, defaultCfg)

	for i := range 1000 {
		_, _ = l.Admit(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}

	assert.Equal(t, 1000, l.Len())
}

func TestEviction_DropsLeastRecentlyUsed(t *testing.T) {
	l, _ := newTestLimiter(t, Config{Capacity: 2, RefillTokens: 2, RefillInterval: time.Minute, MaxClients: 2})

	_, _ = l.Admit("a")
	_, _ = l.Admit("b")
	_, _ = l.Admit("a") // a is now most recent, and empty
	_, _ = l.Admit("c") // b is evicted

	assert.Equal(t, 2, l.Len())

	// a kept its state
	d, _ := l.Admit("a")
	assert.False(t, d.Allowed)

	// b starts over with a full bucket
	d, _ = l.Admit("b")
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(1), d.Remaining)
}

func TestEviction_PrefersRefilledBuckets(t *testing.T) {
	l, clock := newTestLimiter(t, Config{Capacity: 2, RefillTokens: 2, RefillInterval: time.Minute, MaxClients: 3})

	_, _ = l.Admit("idle1")
	_, _ = l.Admit("idle2")
	clock.Advance(time.Minute)

	_, _ = l.Admit("busy")
	_, _ = l.Admit("busy")

	// idle1 has refilled and is the least recent; it goes first
	_, _ = l.Admit("new")
	assert.Equal(t, 3, l.Len())

	// busy kept its drained state
	d, _ := l.Admit("busy")
	assert.False(t, d.Allowed)
}

func TestEviction_NeverExceedsMaxClients(t *testing.T) {
	l, _ := newTestLimiter(t, Config{Capacity: 5, RefillTokens: 5, RefillInterval: time.Minute, MaxClients: 10})

	for i := range 100 {
		_, err := l.Admit(fmt.Sprintf("client-%d", i))
		require.NoError(t, err)
		require.LessOrEqual(t, l.Len(), 10)
	}
}

func TestEviction_EvictedBucketHandsOutNoTokens(t *testing.T) {
	tests := []struct {
		name  string
		spend int
	}{
		{name: "refilled bucket", spend: 0},
		{name: "least recently used bucket", spend: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, clock := newTestLimiter(t, Config{Capacity: 2, RefillTokens: 2, RefillInterval: time.Minute, MaxClients: 1})
			now := clock.Now()

			held := l.bucketFor("a", now)
			for range tt.spend {
				_, ok := held.take(&l.policy, now)
				require.True(t, ok)
			}

			// "b" pushes "a" out while a caller still holds a's bucket
			l.bucketFor("b", now)

			_, ok := held.take(&l.policy, now)
			assert.False(t, ok)

			d, err := l.Admit("a")
			require.NoError(t, err)
			assert.True(t, d.Allowed)
			assert.Equal(t, int64(1), d.Remaining)
			assert.Equal(t, 1, l.Len())
		})
	}
}

func TestEviction_SaturatedRegistryResetsEvictedClient(t *testing.T) {
	l, _ := newTestLimiter(t, Config{Capacity: 2, RefillTokens: 2, RefillInterval: time.Minute, MaxClients: 1})

	admitted := 0
	for range 3 {
		d, _ := l.Admit("a")
		if d.Allowed {
			admitted++
		}
		_, _ = l.Admit("b")
	}

	// every switch evicts the other client, so "a" always starts full
	assert.Equal(t, 3, admitted)
}

// ─────────────────────────────────────────────────────────────────────────────
// Prune
// ─────────────────────────────────────────────────────────────────────────────

func TestPrune_DropsOnlyRefilledBuckets(t *testing.T) {
	l, clock := newTestLimiter(t, Config{Capacity: 2, RefillTokens: 2, RefillInterval: time.Minute})

	_, err := l.Admit("idle")
	require.NoError(t, err)
	clock.Advance(time.Minute)

	_, err = l.Admit("busy")
	require.NoError(t, err)

	assert.Equal(t, 1, l.Prune())
	assert.Equal(t, 1, l.Len())

	// the busy client keeps its partially drained bucket
	d, err := l.Admit("busy")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(0), d.Remaining)
}

func TestPrune_PrunedClientStartsFull(t *testing.T) {
	l, clock := newTestLimiter(t, Config{Capacity: 3, RefillTokens: 1, RefillInterval: time.Minute})

	for range 3 {
		_, err := l.Admit("a")
		require.NoError(t, err)
	}
	assert.Equal(t, 0, l.Prune())

	clock.Advance(3 * time.Minute)
	assert.Equal(t, 1, l.Prune())
	assert.Equal(t, 0, l.Len())

	d, err := l.Admit("a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.Remaining)
}

func TestPrune_HeldBucketHandsOutNoTokens(t *testing.T) {
	l, clock := newTestLimiter(t, Config{Capacity: 2, RefillTokens: 2, RefillInterval: time.Minute})

	held := l.bucketFor("a", clock.Now())
	assert.Equal(t, 1, l.Prune())

	_, ok := held.take(&l.policy, clock.Now())
	assert.False(t, ok)

	d, err := l.Admit("a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Remaining)
}

func TestPrune_Empty(t *testing.T) {
	l, _ := newTestLimiter(t, defaultCfg)
	assert.Equal(t, 0, l.Prune())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements per-client token bucket admission control.
//
// Every client key owns one bucket created full on first sight. Buckets are
// refilled in fixed batches once per interval. The registry is bounded: when
// it reaches its client limit, buckets that have refilled to capacity are
// dropped first, then the least recently used one.
package ratelimit

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// Config holds the token bucket parameters shared by every client.
type Config struct {
	Capacity       int64
	RefillTokens   int64
	RefillInterval time.Duration
	// MaxClients bounds the number of tracked buckets. Zero means unbounded.
	MaxClients int
}

// Clock returns the current time. Tests inject a controllable one.
type Clock func() time.Time

type policy struct {
	capacity        int64
	refillTokens    int64
	refillInterval  time.Duration
	intervalsToFill int64
}

type entry struct {
	key    string
	bucket *bucket
}

// TokenBucketLimiter is a [Limiter] keeping one bucket per key.
//
// The registry mutex guards only lookup, insertion and eviction. Token
// accounting happens under the bucket's own mutex, so clients never
// serialize on each other.
type TokenBucketLimiter struct {
	policy     policy
	maxClients int
	now        Clock

	mu      sync.Mutex
	buckets map[string]*list.Element
	recency *list.List
}

// Option customizes a TokenBucketLimiter.
type Option func(*TokenBucketLimiter)

// WithClock replaces time.Now as the limiter's time source.
func WithClock(clock Clock) Option {
	return func(l *TokenBucketLimiter) {
		l.now = clock
	}
}

// New returns a limiter for cfg.
func New(cfg Config, opts ...Option) (*TokenBucketLimiter, error) {
	if cfg.Capacity <= 0 || cfg.RefillTokens <= 0 || cfg.RefillInterval <= 0 || cfg.MaxClients < 0 {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidConfig, cfg)
	}

	l := &TokenBucketLimiter{
		policy: policy{
			capacity:        cfg.Capacity,
			refillTokens:    cfg.RefillTokens,
			refillInterval:  cfg.RefillInterval,
			intervalsToFill: (cfg.Capacity + cfg.RefillTokens - 1) / cfg.RefillTokens,
		},
		maxClients: cfg.MaxClients,
		now:        time.Now,
		buckets:    make(map[string]*list.Element),
		recency:    list.New(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Admit implements [Limiter].
func (l *TokenBucketLimiter) Admit(key string) (Decision, error) {
	if key == "" {
		return Decision{}, ErrEmptyKey
	}

	now := l.now()
	for {
		if decision, ok := l.bucketFor(key, now).take(&l.policy, now); ok {
			return decision, nil
		}
	}
}

// Len returns the number of tracked clients.
func (l *TokenBucketLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

// Prune drops every bucket that has refilled to capacity and reports how
// many were removed.
func (l *TokenBucketLimiter) Prune() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	pruned := 0
	for el := l.recency.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*entry).bucket.retireIfFull(&l.policy, now) {
			l.unlink(el)
			pruned++
		}
		el = prev
	}

	return pruned
}

func (l *TokenBucketLimiter) bucketFor(key string, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if el, ok := l.buckets[key]; ok {
		l.recency.MoveToFront(el)
		return el.Value.(*entry).bucket
	}

	if l.maxClients > 0 {
		l.evict(now)
	}

	b := newBucket(l.policy.capacity, now)
	l.buckets[key] = l.recency.PushFront(&entry{key: key, bucket: b})
	return b
}

// evict makes room for one more bucket. Must be called with l.mu held.
//
// Buckets that refilled to capacity go first since they behave exactly like
// new ones. When none is left the least recently used bucket goes even if
// it still owes tokens: its client starts over with a full bucket, so
// under a registry saturated with distinct keys a client can be admitted
// more than Capacity times in one interval. MaxClients must stay well above
// the number of concurrently active clients for the limit to hold.
func (l *TokenBucketLimiter) evict(now time.Time) {
	for el := l.recency.Back(); el != nil && len(l.buckets) >= l.maxClients; {
		prev := el.Prev()
		if !el.Value.(*entry).bucket.retireIfFull(&l.policy, now) {
			break
		}
		l.unlink(el)
		el = prev
	}

	for len(l.buckets) >= l.maxClients {
		oldest := l.recency.Back()
		if oldest == nil {
			return
		}
		oldest.Value.(*entry).bucket.retire()
		l.unlink(oldest)
	}
}

// unlink drops a retired bucket from the registry. Must be called with l.mu
// held.
func (l *TokenBucketLimiter) unlink(el *list.Element) {
	l.recency.Remove(el)
	delete(l.buckets, el.Value.(*entry).key)
}

// Package ratelimiter implements a per-client token bucket limiter.
// Buckets are created lazily per client key and expire after a period of
// inactivity so the map doesn't grow without bound.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	capacity   float64
	rate       float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	key        string
	parent     *ClientRateLimiter
}

// ClientRateLimiter manages one token bucket per client key (IP, email,
// or a global key).
type ClientRateLimiter struct {
	buckets    map[string]*bucket
	mu         sync.RWMutex
	rate       float64
	capacity   float64
	expiration time.Duration
}

func New(rate float64, capacity float64, expiration time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
	}
}

// Convenience constructors for the rates used by the router.

// OncePerSecond allows one request per second per client.
func OncePerSecond() *ClientRateLimiter {
	return New(1, 1, time.Hour)
}

// PerMinute allows n requests per minute per client.
func PerMinute(n float64) *ClientRateLimiter {
	return New(n/60.0, n, time.Hour)
}

func (c *ClientRateLimiter) cleanup(key string) {
	c.mu.Lock()
	delete(c.buckets, key)
	c.mu.Unlock()
}

func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expiration, func() {
		b.parent.cleanup(b.key)
	})
}

func (c *ClientRateLimiter) getBucket(key string) *bucket {
	c.mu.RLock()
	b, exists := c.buckets[key]
	c.mu.RUnlock()
	if exists {
		b.resetTimer()
		return b
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Double-check after acquiring write lock
	if b, exists = c.buckets[key]; exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     c.capacity,
		capacity:   c.capacity,
		rate:       c.rate,
		lastRefill: time.Now(),
		key:        key,
		parent:     c,
	}
	c.buckets[key] = b
	b.resetTimer()
	return b
}

// Allow reports whether the client identified by key may proceed, and
// consumes one token if so.
func (c *ClientRateLimiter) Allow(key string) bool {
	b := c.getBucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket represents a token bucket for rate limiting
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

// RateLimiter manages rate limiting buckets keyed by caller identity
// (client IP for login attempts, session token for form submissions).
type RateLimiter struct {
	buckets    map[string]*TokenBucket
	maxTokens  int
	refillRate int
	refillTime time.Duration
	mutex      sync.RWMutex
}

func NewRateLimiter(maxTokens, refillRate int, refillTime time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:    make(map[string]*TokenBucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
	}

	go rl.cleanup()

	return rl
}

func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow checks if an action is allowed and consumes a token if so
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()

	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int(elapsed/tb.refillTime) * tb.refillRate

	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens <= 0 {
		return false, tb.refillTime - elapsed%tb.refillTime
	}

	tb.tokens--
	return true, 0
}

// Allow checks the bucket for the given key, creating it on first sight.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mutex.Lock()
	bucket, exists := rl.buckets[key]
	if !exists {
		bucket = NewTokenBucket(rl.maxTokens, rl.refillRate, rl.refillTime)
		rl.buckets[key] = bucket
	}
	rl.mutex.Unlock()

	return bucket.Allow()
}

// cleanup removes stale buckets to prevent unbounded growth.
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Hour)

		rl.mutex.Lock()
		now := time.Now()
		for key, bucket := range rl.buckets {
			bucket.mutex.Lock()
			stale := now.Sub(bucket.lastRefill) > 2*time.Hour
			bucket.mutex.Unlock()
			if stale {
				delete(rl.buckets, key)
			}
		}
		rl.mutex.Unlock()
	}
}

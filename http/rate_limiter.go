package http

import (
	"sync"
	"time"
)

const (
	idleClientTTL = 1 * time.Hour
	sweepInterval = 30 * time.Minute
)

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter hands each client a bucket of burst tokens that refills
// continuously, burst tokens per window.
type RateLimiter struct {
	mu      sync.Mutex
	burst   float64
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(burst int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		burst:   float64(burst),
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// sweep drops buckets of clients that have been idle for idleClientTTL.
func (r *RateLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
		}

		r.mu.Lock()
		cutoff := r.now().Add(-idleClientTTL)
		for client, b := range r.buckets {
			if b.lastSeen.Before(cutoff) {
				delete(r.buckets, client)
			}
		}
		r.mu.Unlock()
	}
}

// Stop ends the sweeper. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

// Allow spends one token of client's bucket. When the bucket is empty it returns
// false and the time until a token is available.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.buckets[client]
	if !ok {
		b = &bucket{tokens: r.burst, lastSeen: now}
		r.buckets[client] = b
	}

	elapsed := now.Sub(b.lastSeen)
	b.tokens = min(r.burst, b.tokens+float64(elapsed)/float64(r.window)*r.burst)
	b.lastSeen = now

	if b.tokens < 1 {
		missing := 1 - b.tokens
		return false, time.Duration(missing / r.burst * float64(r.window))
	}
	b.tokens--
	return true, 0
}

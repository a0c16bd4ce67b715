package spamguard

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// RateLimit is the outcome of one fixed-window check.
type RateLimit struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

type rateEntry struct {
	count int
	first time.Time
}

// RateLimiter counts requests per client IP over a fixed window. Entries
// live in an in-process cache whose janitor purges expired windows, so the
// table cannot grow without bound. State is deliberately ephemeral: a
// process restart resets every client's quota.
type RateLimiter struct {
	mu     sync.Mutex
	store  *cache.Cache
	max    int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing max requests per window,
// sweeping expired entries every sweep interval.
func NewRateLimiter(max int, window, sweep time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  cache.New(window, sweep),
		max:    max,
		window: window,
	}
}

// Check records a request from ip and reports whether it is allowed.
func (l *RateLimiter) Check(ip string) RateLimit {
	now := time.Now()
	key := "rate:" + ip

	l.mu.Lock()
	defer l.mu.Unlock()

	var entry *rateEntry
	if v, found := l.store.Get(key); found {
		entry = v.(*rateEntry)
	}

	if entry == nil || now.Sub(entry.first) > l.window {
		entry = &rateEntry{count: 1, first: now}
		l.store.Set(key, entry, l.window)
		return RateLimit{Allowed: true, Remaining: l.max - 1, ResetIn: l.window}
	}

	entry.count++
	resetIn := l.window - now.Sub(entry.first)
	if entry.count > l.max {
		return RateLimit{Allowed: false, Remaining: 0, ResetIn: resetIn}
	}
	return RateLimit{Allowed: true, Remaining: l.max - entry.count, ResetIn: resetIn}
}

package spamguard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	limiter := NewRateLimiter(3, time.Hour, time.Hour)

	for i := 0; i < 3; i++ {
		rl := limiter.Check("10.0.0.1")
		assert.True(t, rl.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, rl.Remaining)
	}

	rl := limiter.Check("10.0.0.1")
	assert.False(t, rl.Allowed)
	assert.Equal(t, 0, rl.Remaining)
	assert.Greater(t, rl.ResetIn, time.Duration(0))
	assert.LessOrEqual(t, rl.ResetIn, time.Hour)
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour, time.Hour)

	assert.True(t, limiter.Check("10.0.0.1").Allowed)
	assert.False(t, limiter.Check("10.0.0.1").Allowed)
	assert.True(t, limiter.Check("10.0.0.2").Allowed)
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter(1, 30*time.Millisecond, time.Minute)

	assert.True(t, limiter.Check("10.0.0.1").Allowed)
	assert.False(t, limiter.Check("10.0.0.1").Allowed)

	time.Sleep(50 * time.Millisecond)

	rl := limiter.Check("10.0.0.1")
	assert.True(t, rl.Allowed, "first request of a fresh window must pass")
	assert.Equal(t, 0, rl.Remaining)
}

func TestRateLimiterSweepBoundsEntries(t *testing.T) {
	limiter := NewRateLimiter(5, 20*time.Millisecond, 10*time.Millisecond)

	for i := 0; i < 50; i++ {
		limiter.Check(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	assert.Equal(t, 50, limiter.store.ItemCount())

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, limiter.store.ItemCount(), "janitor should purge expired windows")
}

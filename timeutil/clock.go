package timeutil

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts a time source.
type Clock interface {
	// Now returns current time (UTC expected by convention).
	Now() time.Time
	// Since is a convenience wrapper over Now().Sub(t).
	Since(t time.Time) time.Duration
	// Sleep waits for d and supports cancellation via ctx.
	Sleep(ctx context.Context, d time.Duration) error
}

// UTCClock uses system time in UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

func (c UTCClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (UTCClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FrozenClock keeps fixed time with manual advancement.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time // always UTC
}

func NewFrozenClock(t time.Time) *FrozenClock { return &FrozenClock{t: t.UTC()} }

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// Sleep does not block in tests; it just advances frozen time.
func (c *FrozenClock) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if d > 0 {
		c.Advance(d)
	}
	return nil
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

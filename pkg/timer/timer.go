package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a Clock that owns background resources.
type Timer interface {
	Clock
	Stop()
}

// SystemClock reads the wall clock on every call.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Stop() {}

// CachedTimer trades precision for speed: Now returns the time sampled on
// the last refresh, at most step old.
type CachedTimer struct {
	now    atomic.Pointer[time.Time]
	handle Handle
	once   sync.Once
}

// NewCachedTimer starts refreshing every step using s.
// A nil scheduler falls back to a TickerScheduler.
func NewCachedTimer(step time.Duration, s Scheduler) *CachedTimer {
	if s == nil {
		s = TickerScheduler{}
	}

	t := &CachedTimer{}
	t.refresh()
	t.handle = s.Every(step, t.refresh)

	return t
}

func (t *CachedTimer) refresh() {
	now := time.Now()
	t.now.Store(&now)
}

func (t *CachedTimer) Now() time.Time {
	return *t.now.Load()
}

// Stop halts refreshing. Safe to call more than once.
func (t *CachedTimer) Stop() {
	t.once.Do(t.handle.Stop)
}

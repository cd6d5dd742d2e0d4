package timed

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-timedcache/pkg/timer"
)

// ============================================================================
// Mock Timer
// ============================================================================

type mockTimer struct {
	mu      sync.Mutex
	current time.Time
}

func newMockTimer() *mockTimer {
	return &mockTimer{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *mockTimer) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *mockTimer) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// ============================================================================
// Manual Scheduler: ticks only when the test fires them
// ============================================================================

type manualHandle struct {
	interval time.Duration
	fn       func()
	stopped  atomic.Bool
}

func (h *manualHandle) Stop() {
	h.stopped.Store(true)
}

type manualScheduler struct {
	mu      sync.Mutex
	handles []*manualHandle
}

var _ timer.Scheduler = (*manualScheduler)(nil)

func (s *manualScheduler) Every(interval time.Duration, fn func()) timer.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := &manualHandle{interval: interval, fn: fn}
	s.handles = append(s.handles, h)
	return h
}

// active returns the running handle, or nil.
func (s *manualScheduler) active() *manualHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.handles) - 1; i >= 0; i-- {
		if !s.handles[i].stopped.Load() {
			return s.handles[i]
		}
	}
	return nil
}

func (s *manualScheduler) created() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// tick fires the running handle once.
func (s *manualScheduler) tick(t *testing.T) {
	t.Helper()
	h := s.active()
	require.NotNil(t, h, "no sweep task running")
	h.fn()
}

type fixture struct {
	clock *mockTimer
	sched *manualScheduler
	cache *Cache[string, int]
}

func newFixture(opts ...Option) *fixture {
	f := &fixture{clock: newMockTimer(), sched: &manualScheduler{}}
	base := []Option{WithClock(f.clock), WithScheduler(f.sched)}
	f.cache = New[string, int](append(base, opts...)...)
	return f
}

func (f *fixture) setAll(keys ...string) {
	for i, k := range keys {
		f.cache.Set(k, i)
	}
}

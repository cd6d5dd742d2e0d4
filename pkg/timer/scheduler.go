package timer

import (
	"sync"
	"time"
)

// MinInterval is the shortest period a TickerScheduler runs at.
// time.NewTicker panics on non-positive durations.
const MinInterval = time.Millisecond

// Scheduler runs a callback periodically.
type Scheduler interface {
	// Every calls fn every interval until the returned Handle is stopped.
	// Calls from one Handle never overlap.
	Every(interval time.Duration, fn func()) Handle
}

// Handle is a reference to a recurring task.
type Handle interface {
	// Stop cancels future calls. It does not wait for a call in progress,
	// so it is safe to call from inside the callback.
	Stop()
}

// TickerScheduler backs each Handle with a time.Ticker and one goroutine.
type TickerScheduler struct{}

var _ Scheduler = TickerScheduler{}

func (TickerScheduler) Every(interval time.Duration, fn func()) Handle {
	if interval < MinInterval {
		interval = MinInterval
	}

	h := &tickerHandle{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go h.run(fn)

	return h
}

type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) run(fn func()) {
	defer h.ticker.Stop()

	for {
		select {
		case <-h.ticker.C:
			// A stop racing with the tick wins.
			select {
			case <-h.done:
				return
			default:
			}
			fn()
		case <-h.done:
			return
		}
	}
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() {
		close(h.done)
	})
}

package timed

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-timedcache/pkg/common/cache"
	"github.com/huynhanx03/go-timedcache/pkg/settings"
	"github.com/huynhanx03/go-timedcache/pkg/timer"
)

var _ cache.LocalCache[string, any] = (*Cache[string, any])(nil)

// Cache is an in-memory cache with sliding expiration. Entries live for
// Live after their last Set or Get and are removed by background sweep
// ticks that each examine at most ItemsPerCheck entries.
//
// Every method and every sweep tick runs to completion under one mutex.
type Cache[K comparable, V any] struct {
	mu     sync.Mutex
	store  *store[K, V]
	cfg    config
	stats  Snapshot
	closed bool

	// handle is the running sweep task, nil when none is scheduled.
	// epoch identifies it so ticks from a replaced handle are dropped.
	handle timer.Handle
	epoch  uint64
}

// New creates an empty Cache. No sweep task runs until the first Set.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[K, V]{
		store: newStore[K, V](),
		cfg:   cfg,
	}
}

// NewFromSettings creates a Cache from a settings section. Options passed
// here are applied after the settings and take precedence.
func NewFromSettings[K comparable, V any](cfg settings.TimedCache, opts ...Option) *Cache[K, V] {
	return New[K, V](append(FromSettings(cfg), opts...)...)
}

// Set inserts or overwrites the value for key and resets its expiration
// clock. Starts the sweep task if none is running.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.store.put(key, value, c.cfg.clock.Now())

	if c.handle == nil {
		c.startLocked()
	}
}

// Get returns the value for key and renews its life. Entries past their
// deadline stay readable until a sweep tick removes them.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	if c.closed {
		return zero, false
	}

	ent, ok := c.store.get(key)
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	ent.lastAccessedAt = c.cfg.clock.Now()
	c.stats.Hits++
	return ent.data, true
}

// Peek returns the value for key without renewing its life.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store.get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return ent.data, true
}

// Delete removes key if present. It never stops the sweep task; the next
// tick notices an empty cache and stops it.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.remove(key)
}

// Clear removes every entry. Like Delete, it leaves the sweep task to stop
// itself on its next tick.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.clear()
}

// Len returns the number of entries, including ones past their deadline
// that no sweep has reached yet.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.len()
}

// Keys returns the keys in sweep order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.keys()
}

// Close stops the sweep task, drops every entry and makes the cache inert:
// later Sets are ignored and Gets miss. Close is safe to call more than once.
func (c *Cache[K, V]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.handle != nil {
		c.stopLocked()
		c.cfg.log.Debug("sweep task stopped on close")
	}
	c.store.clear()
}

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.SchedulerActive = c.handle != nil
	return s
}

// Live returns how long an entry survives after its last access.
func (c *Cache[K, V]) Live() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg.live
}

// SetLive changes the entry lifetime. It applies to existing entries from
// the next sweep tick on. Clamped like WithLive.
func (c *Cache[K, V]) SetLive(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg.live = clampDuration(d)
}

// ItemsPerCheck returns how many entries one sweep tick may examine.
func (c *Cache[K, V]) ItemsPerCheck() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg.itemsPerCheck
}

// SetItemsPerCheck changes the per-tick budget. Clamped like WithItemsPerCheck.
func (c *Cache[K, V]) SetItemsPerCheck(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg.itemsPerCheck = clampItems(n)
}

// CheckInterval returns the period between sweep ticks.
func (c *Cache[K, V]) CheckInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg.checkInterval
}

// SetCheckInterval changes the period between sweep ticks. If the clamped
// value differs and a sweep task is running, the task is replaced so the
// next tick comes one full new interval from now.
func (c *Cache[K, V]) SetCheckInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d = clampDuration(d)
	if d == c.cfg.checkInterval {
		return
	}
	c.cfg.checkInterval = d

	if c.handle != nil {
		c.stopLocked()
		c.startLocked()
		c.cfg.log.Debug("sweep task restarted", zap.Duration("interval", d))
	}
}

package timed

import (
	"go.uber.org/zap"
)

// startLocked schedules the sweep task. Callers hold c.mu and have checked
// that no task is running.
func (c *Cache[K, V]) startLocked() {
	c.epoch++
	epoch := c.epoch

	c.handle = c.cfg.scheduler.Every(c.cfg.checkInterval, func() {
		c.tick(epoch)
	})
	c.stats.SchedulerStarts++

	c.cfg.log.Debug("sweep task started",
		zap.Duration("interval", c.cfg.checkInterval),
		zap.Int("items_per_check", c.cfg.itemsPerCheck),
	)
}

func (c *Cache[K, V]) stopLocked() {
	c.handle.Stop()
	c.handle = nil
	c.stats.SchedulerStops++
}

// tick is the scheduler callback. Ticks already queued by a handle that
// has since been stopped or replaced are dropped.
func (c *Cache[K, V]) tick(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil || epoch != c.epoch {
		return
	}
	c.sweepLocked()
}

// sweepLocked examines up to itemsPerCheck entries from where the previous
// tick stopped and deletes those not accessed within live. Reaching the end
// of the store rewinds the cursor and ends the tick; if the store is empty
// at that point the sweep task stops itself.
func (c *Cache[K, V]) sweepLocked() {
	cutoff := c.cfg.clock.Now().Add(-c.cfg.live)
	c.stats.Sweeps++

	var expired int
	for i := c.cfg.itemsPerCheck; i > 0; i-- {
		el := c.store.next()
		if el == nil {
			c.store.rewind()
			if c.store.len() == 0 {
				c.stopLocked()
				c.cfg.log.Debug("sweep task stopped, cache empty")
			}
			break
		}

		if el.Value.(*entry[K, V]).lastAccessedAt.Before(cutoff) {
			c.store.removeElement(el)
			expired++
		}
	}

	c.stats.Expirations += int64(expired)
	if expired > 0 {
		c.cfg.log.Debug("expired entries",
			zap.Int("expired", expired),
			zap.Int("remaining", c.store.len()),
		)
	}
}

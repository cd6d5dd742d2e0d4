package timed

import (
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-timedcache/pkg/settings"
	"github.com/huynhanx03/go-timedcache/pkg/timer"
	"github.com/huynhanx03/go-timedcache/pkg/utils"
)

const (
	// DefaultLive is how long an entry survives after its last access.
	DefaultLive = time.Hour

	// DefaultCheckInterval is the period between sweep ticks.
	DefaultCheckInterval = 10 * time.Minute

	// DefaultItemsPerCheck bounds the entries examined per sweep tick.
	DefaultItemsPerCheck = 100
)

type config struct {
	live          time.Duration
	checkInterval time.Duration
	itemsPerCheck int
	clock         timer.Clock
	scheduler     timer.Scheduler
	log           *zap.Logger
}

func defaultConfig() config {
	return config{
		live:          DefaultLive,
		checkInterval: DefaultCheckInterval,
		itemsPerCheck: DefaultItemsPerCheck,
		clock:         timer.SystemClock{},
		scheduler:     timer.TickerScheduler{},
		log:           zap.NewNop(),
	}
}

// Option configures a Cache.
type Option func(*config)

// WithLive sets how long an entry survives after its last access.
// Negative values become zero; sub-millisecond precision is dropped.
func WithLive(d time.Duration) Option {
	return func(c *config) {
		c.live = clampDuration(d)
	}
}

// WithCheckInterval sets the period between sweep ticks.
// Clamped like WithLive.
func WithCheckInterval(d time.Duration) Option {
	return func(c *config) {
		c.checkInterval = clampDuration(d)
	}
}

// WithItemsPerCheck sets how many entries one sweep tick may examine.
// Values below one become one.
func WithItemsPerCheck(n int) Option {
	return func(c *config) {
		c.itemsPerCheck = clampItems(n)
	}
}

// WithClock sets the time source. Useful for testing expiration.
func WithClock(clk timer.Clock) Option {
	return func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithScheduler sets the primitive used to run sweep ticks.
func WithScheduler(s timer.Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithLogger sets the logger for scheduler and sweep events.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// FromSettings translates a millisecond-based settings section into options.
// Zero fields keep the defaults.
func FromSettings(cfg settings.TimedCache) []Option {
	var opts []Option
	if cfg.Live != 0 {
		opts = append(opts, WithLive(utils.ToDurationMs(cfg.Live)))
	}
	if cfg.CheckInterval != 0 {
		opts = append(opts, WithCheckInterval(utils.ToDurationMs(cfg.CheckInterval)))
	}
	if cfg.ItemsPerCheck != 0 {
		opts = append(opts, WithItemsPerCheck(cfg.ItemsPerCheck))
	}
	return opts
}

func clampDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d.Truncate(time.Millisecond)
}

func clampItems(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

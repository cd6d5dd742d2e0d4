package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/huynhanx03/go-timedcache/pkg/common/cache/timed"
)

const namespace = "timedcache"

// StatsSource is the part of a cache the collector reads.
type StatsSource interface {
	Stats() timed.Snapshot
	Len() int
}

// CacheCollector exports cache statistics, labelled with the cache name.
type CacheCollector struct {
	src  StatsSource
	name string

	hits        *prometheus.Desc
	misses      *prometheus.Desc
	expirations *prometheus.Desc
	sweeps      *prometheus.Desc
	entries     *prometheus.Desc
	active      *prometheus.Desc
}

var _ prometheus.Collector = (*CacheCollector)(nil)

// NewCacheCollector creates a collector for src.
func NewCacheCollector(name string, src StatsSource) *CacheCollector {
	labels := []string{"cache"}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", metric), help, labels, nil)
	}

	return &CacheCollector{
		src:         src,
		name:        name,
		hits:        desc("hits_total", "Number of Get calls that found the key."),
		misses:      desc("misses_total", "Number of Get calls that did not find the key."),
		expirations: desc("expirations_total", "Number of entries removed by sweeps."),
		sweeps:      desc("sweeps_total", "Number of sweep ticks run."),
		entries:     desc("entries", "Number of entries currently stored."),
		active:      desc("scheduler_active", "1 while the sweep task is scheduled."),
	}
}

func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.expirations
	ch <- c.sweeps
	ch <- c.entries
	ch <- c.active
}

func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()

	var active float64
	if s.SchedulerActive {
		active = 1
	}

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits), c.name)
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses), c.name)
	ch <- prometheus.MustNewConstMetric(c.expirations, prometheus.CounterValue, float64(s.Expirations), c.name)
	ch <- prometheus.MustNewConstMetric(c.sweeps, prometheus.CounterValue, float64(s.Sweeps), c.name)
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.src.Len()), c.name)
	ch <- prometheus.MustNewConstMetric(c.active, prometheus.GaugeValue, active, c.name)
}

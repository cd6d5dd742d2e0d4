package timed

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits        int64
	Misses      int64
	Expirations int64 // entries removed by sweeps
	Sweeps      int64 // sweep ticks run

	SchedulerStarts int64
	SchedulerStops  int64
	SchedulerActive bool
}

// HitRate returns the cache hit rate as a value between 0 and 1.
// Returns 0 if there have been no accesses.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Package timed provides an in-memory cache with sliding expiration.
//
// Each Set or Get renews an entry's life to Live. Stale entries are not
// removed on read; a background sweep task examines at most ItemsPerCheck
// entries every CheckInterval, resuming where the previous tick stopped, so
// the cost of scanning a large cache is spread over many ticks.
//
// The sweep task starts on the first Set and stops itself on the first tick
// that reaches the end of the store and finds it empty. Delete and Clear do
// not stop it directly.
//
//	c := timed.New[string, []byte](
//		timed.WithLive(5*time.Minute),
//		timed.WithCheckInterval(30*time.Second),
//	)
//	defer c.Close()
//
//	c.Set("user:1", payload)
//	if v, ok := c.Get("user:1"); ok {
//		// v is fresh for another 5 minutes
//	}
package timed

package cache

// LocalCache defines the interface for in-memory local cache operations.
type LocalCache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Delete(key K)
	Clear()
	Len() int
	Close()
}

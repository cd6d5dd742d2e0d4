package cache

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// GetLocal retrieves a value from LocalCache and asserts its type.
func GetLocal[T any](c LocalCache[string, any], key string) (T, bool) {
	var zero T
	val, found := c.Get(key)
	if !found {
		return zero, false
	}
	if typed, ok := val.(T); ok {
		return typed, true
	}
	return zero, false
}

// SetLocal sets a value in LocalCache.
func SetLocal[T any](c LocalCache[string, any], key string, value T) {
	c.Set(key, any(value))
}

// UpdateLocal helper updates an item in the cache only if it already exists
// with the same type.
func UpdateLocal[T any](c LocalCache[string, any], key string, value T) bool {
	if _, found := GetLocal[T](c, key); !found {
		return false
	}
	SetLocal(c, key, value)
	return true
}

// DeleteLocal deletes a value from local cache.
func DeleteLocal(c LocalCache[string, any], key string) {
	c.Delete(key)
}

// Loader memoizes a load function on top of a LocalCache. Concurrent misses
// for the same key share one call to the load function. Failed loads are
// not cached.
type Loader[V any] struct {
	cache LocalCache[string, V]
	group singleflight.Group
}

// NewLoader wraps c.
func NewLoader[V any](c LocalCache[string, V]) *Loader[V] {
	return &Loader[V]{cache: c}
}

// Load returns the cached value for key, calling load on a miss and caching
// its result.
func (l *Loader[V]) Load(key string, load func() (V, error)) (V, error) {
	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	res, err, _ := l.group.Do(key, func() (any, error) {
		// Another caller may have filled the key while we waited.
		if v, ok := l.cache.Get(key); ok {
			return v, nil
		}

		v, err := load()
		if err != nil {
			return nil, errors.Wrapf(err, "load %q", key)
		}
		l.cache.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := res.(V) // nil results of interface-typed V
	return v, nil
}

// Forget drops key from the cache so the next Load calls the load function.
func (l *Loader[V]) Forget(key string) {
	l.group.Forget(key)
	l.cache.Delete(key)
}

package timed

import (
	"container/list"
	"time"
)

type entry[K comparable, V any] struct {
	key            K
	data           V
	addedAt        time.Time
	lastAccessedAt time.Time
}

// store is a map kept in insertion order by a list, plus a resumable
// cursor over that order. Overwriting a key keeps its position.
type store[K comparable, V any] struct {
	items map[K]*list.Element
	order *list.List

	// cursor is the last element handed out by next.
	// nil means the next visit starts at the front.
	cursor *list.Element
}

func newStore[K comparable, V any]() *store[K, V] {
	return &store[K, V]{
		items: make(map[K]*list.Element),
		order: list.New(),
	}
}

func (s *store[K, V]) get(key K) (*entry[K, V], bool) {
	el, ok := s.items[key]
	if !ok {
		return nil, false
	}
	return el.Value.(*entry[K, V]), true
}

// put inserts or fully overwrites the entry for key.
func (s *store[K, V]) put(key K, value V, now time.Time) {
	if el, ok := s.items[key]; ok {
		el.Value = &entry[K, V]{key: key, data: value, addedAt: now, lastAccessedAt: now}
		return
	}

	s.items[key] = s.order.PushBack(&entry[K, V]{
		key:            key,
		data:           value,
		addedAt:        now,
		lastAccessedAt: now,
	})
}

func (s *store[K, V]) remove(key K) bool {
	el, ok := s.items[key]
	if !ok {
		return false
	}
	s.removeElement(el)
	return true
}

func (s *store[K, V]) removeElement(el *list.Element) {
	// Step the cursor back so its successor is still the next visit.
	if s.cursor == el {
		s.cursor = el.Prev()
	}
	delete(s.items, el.Value.(*entry[K, V]).key)
	s.order.Remove(el)
}

func (s *store[K, V]) clear() {
	s.items = make(map[K]*list.Element)
	s.order.Init()
	s.cursor = nil
}

func (s *store[K, V]) len() int {
	return len(s.items)
}

// next advances the cursor and returns the element it lands on, or nil
// when the pass is exhausted. The cursor stays put on exhaustion; call
// rewind to start a new pass.
func (s *store[K, V]) next() *list.Element {
	var el *list.Element
	if s.cursor == nil {
		el = s.order.Front()
	} else {
		el = s.cursor.Next()
	}
	if el == nil {
		return nil
	}

	s.cursor = el
	return el
}

func (s *store[K, V]) rewind() {
	s.cursor = nil
}

func (s *store[K, V]) keys() []K {
	out := make([]K, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[K, V]).key)
	}
	return out
}

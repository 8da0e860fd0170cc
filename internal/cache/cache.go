// Package cache provides string-keyed memoization for derived values that
// are expensive to recompute (loaded records, section pages, rendered page
// images). The working set is one document at a time, so entries live for
// the life of the process unless a TTL is configured.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value   V
	savedAt time.Time
}

// Store is a thread-safe memoization map. A zero TTL means entries never
// expire.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
}

func New[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
	}
}

// Get returns the cached value for key, if present and not expired.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if s.ttl > 0 && time.Since(e.savedAt) > s.ttl {
		delete(s.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores a value under key, replacing any previous entry.
func (s *Store[V]) Put(key string, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: v, savedAt: time.Now()}
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. Failed computations are not cached, so a transient failure does not
// pin a bad value.
func (s *Store[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	s.Put(key, v)
	return v, nil
}

// Cleanup removes expired entries. A no-op when TTL is zero.
func (s *Store[V]) Cleanup() {
	if s.ttl == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for k, e := range s.entries {
		if now.Sub(e.savedAt) > s.ttl {
			delete(s.entries, k)
		}
	}
}

// Len reports the number of stored entries, expired or not.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

package fxmap

// Set is a key-only container over the same table as Map.
//
// Thread-safety: NOT thread-safe.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet creates a set whose keys hash through feed.
func NewSet[K comparable](feed Feed[K], opts ...Option) *Set[K] {
	return &Set[K]{m: New[K, struct{}](feed, opts...)}
}

// Add inserts key and reports whether it was newly added. A single probe
// decides membership and inserts.
func (s *Set[K]) Add(key K) bool {
	return s.m.SetIfAbsent(key, struct{}{})
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	return s.m.Delete(key)
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// Range calls fn for every key until fn returns false. Iteration order is
// unspecified. The set must not be modified during Range.
func (s *Set[K]) Range(fn func(key K) bool) {
	s.m.Range(func(key K, _ struct{}) bool {
		return fn(key)
	})
}

// Clear removes all keys and releases the slot table.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Metrics returns a snapshot of the underlying table counters.
func (s *Set[K]) Metrics() Metrics {
	return s.m.Metrics()
}

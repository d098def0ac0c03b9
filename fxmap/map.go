package fxmap

import (
	"github.com/hupe1980/fxhash"
)

// minTableSize is the smallest slot table a map allocates.
const minTableSize = 8

type slotState uint8

const (
	slotEmpty slotState = iota
	slotFull
	slotDead // tombstone left by Delete
)

type slot[K comparable, V any] struct {
	key   K
	value V
	state slotState
}

// Metrics reports table health counters.
type Metrics struct {
	Len        int // live entries
	Capacity   int // allocated slots
	Tombstones int // slots consumed by deletions since the last rebuild
	Resizes    int // table rebuilds (growth or tombstone purge) since construction
}

// Map is a key-value table hashed by the Fx accumulator: open addressing
// with linear probing over a power-of-two slot array, grown at 75% load.
//
// Thread-safety: NOT thread-safe, like the builtin map. Use Sharded for
// concurrent access.
type Map[K comparable, V any] struct {
	feed      Feed[K]
	newHasher func() *fxhash.Hasher
	slots     []slot[K, V]
	mask      uint64
	live      int
	dead      int
	resizes   int
}

// New creates a map whose keys hash through feed. The slot table is
// allocated lazily unless WithCapacity is given.
func New[K comparable, V any](feed Feed[K], opts ...Option) *Map[K, V] {
	o := applyOptions(opts)

	m := &Map[K, V]{feed: feed}
	if o.hasSeed {
		seed := o.seed
		m.newHasher = func() *fxhash.Hasher { return fxhash.NewSeeded(seed) }
	} else {
		var b fxhash.Builder
		m.newHasher = b.New
	}

	if o.capacity > 0 {
		m.rehash(tableSizeFor(o.capacity))
	}

	return m
}

// tableSizeFor returns the smallest power-of-two table that holds n entries
// without crossing the load limit.
func tableSizeFor(n int) int {
	size := minTableSize
	for n*4 > size*3 {
		size *= 2
	}
	return size
}

func (m *Map[K, V]) hash(key K) uint64 {
	h := m.newHasher()
	m.feed(h, key)
	return h.Sum64()
}

// Set inserts or replaces the value for key.
func (m *Map[K, V]) Set(key K, value V) {
	m.put(key, value, true)
}

// SetIfAbsent inserts value only when key is not already present and
// reports whether it inserted. An existing value is left untouched. This is
// the single-probe path Set.Add rides on.
func (m *Map[K, V]) SetIfAbsent(key K, value V) bool {
	return m.put(key, value, false)
}

// put probes for key and either updates it (when replace is set) or leaves
// it untouched. It reports whether a new entry was inserted. Growth only
// happens on genuine insertion into an empty slot; overwrites and
// tombstone reuse never rebuild the table.
func (m *Map[K, V]) put(key K, value V, replace bool) bool {
	if m.slots == nil {
		m.rehash(minTableSize)
	}

	idx := m.hash(key) & m.mask
	insert := -1
	for {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			// Key is absent; land on the first tombstone seen, if any.
			// Reusing a tombstone does not consume probe headroom.
			if insert >= 0 {
				t := &m.slots[insert]
				t.key, t.value, t.state = key, value, slotFull
				m.dead--
				m.live++
				return true
			}
			// Filling an empty slot does. When the load limit would be
			// crossed, rebuild sized from the live count: real growth
			// still doubles, but pressure from tombstones alone rebuilds
			// at the same or smaller size, so insert/delete churn over a
			// bounded live set cannot grow the table without bound.
			if (m.live+m.dead+1)*4 > len(m.slots)*3 {
				m.rehash(tableSizeFor(m.live + 1))
				m.reinsert(key, value)
				return true
			}
			s.key, s.value, s.state = key, value, slotFull
			m.live++
			return true
		case slotDead:
			if insert < 0 {
				insert = int(idx)
			}
		case slotFull:
			if s.key == key {
				if replace {
					s.value = value
				}
				return false
			}
		}
		idx = (idx + 1) & m.mask
	}
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m.slots == nil {
		return zero, false
	}

	idx := m.hash(key) & m.mask
	for {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			return zero, false
		case slotFull:
			if s.key == key {
				return s.value, true
			}
		}
		idx = (idx + 1) & m.mask
	}
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if m.slots == nil {
		return false
	}

	idx := m.hash(key) & m.mask
	for {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			return false
		case slotFull:
			if s.key == key {
				var zeroK K
				var zeroV V
				s.key, s.value = zeroK, zeroV // release references
				s.state = slotDead
				m.live--
				m.dead++
				return true
			}
		}
		idx = (idx + 1) & m.mask
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.live
}

// Range calls fn for every entry until fn returns false. Iteration order is
// unspecified. The map must not be modified during Range.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for i := range m.slots {
		if m.slots[i].state == slotFull {
			if !fn(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// Clear removes all entries and releases the slot table.
func (m *Map[K, V]) Clear() {
	m.slots = nil
	m.mask = 0
	m.live = 0
	m.dead = 0
}

// Metrics returns a snapshot of the table counters.
func (m *Map[K, V]) Metrics() Metrics {
	return Metrics{
		Len:        m.live,
		Capacity:   len(m.slots),
		Tombstones: m.dead,
		Resizes:    m.resizes,
	}
}

// rehash moves every live entry into a fresh table of the given size,
// shedding tombstones in the process. The new table may be smaller than the
// old one when deletions caused the rebuild.
func (m *Map[K, V]) rehash(size int) {
	old := m.slots
	if old != nil {
		m.resizes++
	}

	m.slots = make([]slot[K, V], size)
	m.mask = uint64(size - 1)
	m.live = 0
	m.dead = 0

	for i := range old {
		if old[i].state == slotFull {
			m.reinsert(old[i].key, old[i].value)
		}
	}
}

// reinsert places a key during rehash; the key is known to be absent and
// the fresh table has no tombstones.
func (m *Map[K, V]) reinsert(key K, value V) {
	idx := m.hash(key) & m.mask
	for m.slots[idx].state == slotFull {
		idx = (idx + 1) & m.mask
	}
	s := &m.slots[idx]
	s.key, s.value, s.state = key, value, slotFull
	m.live++
}

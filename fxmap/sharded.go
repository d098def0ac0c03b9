package fxmap

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/fxhash"
)

const numShards = 64

// Sharded is a concurrent map for high-contention workloads. It distributes
// keys across 64 shards, each an independently locked Map, so parallel
// writers rarely contend on the same lock.
//
// Unless WithSeed is given, every instance picks a random seed, so shard
// and bucket layout differ between instances and runs.
type Sharded[K comparable, V any] struct {
	shards [numShards]lockedMap[K, V]
	feed   Feed[K]
	seed   uint
}

type lockedMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  *Map[K, V]
}

// NewSharded creates a sharded map whose keys hash through feed.
// WithCapacity is divided evenly across the shards.
func NewSharded[K comparable, V any](feed Feed[K], opts ...Option) *Sharded[K, V] {
	o := applyOptions(opts)

	seed := o.seed
	if !o.hasSeed {
		seed = uint(rand.Uint64())
	}

	perShard := 0
	if o.capacity > 0 {
		perShard = o.capacity / numShards
		if perShard < 1 {
			perShard = 1
		}
	}

	s := &Sharded[K, V]{feed: feed, seed: seed}
	for i := range s.shards {
		// Inner tables hash under a shard-specific seed so bucket indexes
		// do not correlate with shard selection.
		inner := make([]Option, 0, 2)
		if perShard > 0 {
			inner = append(inner, WithCapacity(perShard))
		}
		inner = append(inner, WithSeed(seed+uint(i)+1))
		s.shards[i].m = New[K, V](feed, inner...)
	}

	return s
}

// shard returns the shard responsible for key.
func (s *Sharded[K, V]) shard(key K) *lockedMap[K, V] {
	h := fxhash.NewSeeded(s.seed)
	s.feed(h, key)
	return &s.shards[h.Sum64()%numShards]
}

// Set inserts or replaces the value for key.
func (s *Sharded[K, V]) Set(key K, value V) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.m.Set(key, value)
}

// Get returns the value stored for key.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	sh := s.shard(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.m.Get(key)
}

// Delete removes key and reports whether it was present.
func (s *Sharded[K, V]) Delete(key K) bool {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.m.Delete(key)
}

// Len returns the total number of live entries across all shards.
func (s *Sharded[K, V]) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		n += s.shards[i].m.Len()
		s.shards[i].mu.RUnlock()
	}
	return n
}

// Range calls fn for every entry until fn returns false, holding one shard
// lock at a time. fn must not call back into the map. Entries written
// concurrently with Range may or may not be observed.
func (s *Sharded[K, V]) Range(fn func(key K, value V) bool) {
	for i := range s.shards {
		sh := &s.shards[i]
		stopped := false
		sh.mu.RLock()
		sh.m.Range(func(k K, v V) bool {
			if !fn(k, v) {
				stopped = true
				return false
			}
			return true
		})
		sh.mu.RUnlock()
		if stopped {
			return
		}
	}
}

// Clear removes all entries from every shard.
func (s *Sharded[K, V]) Clear() {
	for i := range s.shards {
		s.shards[i].mu.Lock()
		s.shards[i].m.Clear()
		s.shards[i].mu.Unlock()
	}
}

// Package fxmap provides map and set containers keyed by the Fx hash.
//
// Go's builtin map does not let callers swap its hash function, so the
// containers here are generic open-addressing tables that route every key
// through the fxhash accumulator instead. They are the Go counterpart of
// the FxHashMap/FxHashSet type aliases the Fx hash is usually paired with.
//
// # Feeding Keys
//
// A container is parameterized by a Feed: an explicit function describing
// how a key absorbs itself into a hasher. Stock feeds cover the common key
// types, and constructors like NewStringMap bind them for you:
//
//	m := fxmap.NewStringMap[int]()
//	m.Set("answer", 42)
//	v, ok := m.Get("answer")
//
// A custom key type supplies its own Feed; the sequence of absorb calls must
// identify the key uniquely among keys that compare unequal:
//
//	type Sym struct{ Scope uint32; Name string }
//
//	m := fxmap.New[Sym, Node](func(h *fxhash.Hasher, k Sym) {
//		h.WriteUint32(k.Scope)
//		h.WriteString(k.Name)
//	})
//
// # Concurrency
//
// Map and Set are single-writer structures with no internal locking, like
// the builtin map. Sharded is the concurrent variant: it spreads keys over
// 64 independently locked shards and is safe for parallel use.
package fxmap

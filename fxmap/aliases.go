package fxmap

// Constructors binding the stock feeds, standing in for the FxHashMap and
// FxHashSet type aliases of Rust's rustc-hash.

// NewStringMap creates a Map with string keys.
func NewStringMap[V any](opts ...Option) *Map[string, V] {
	return New[string, V](StringKey, opts...)
}

// NewUint64Map creates a Map with uint64 keys.
func NewUint64Map[V any](opts ...Option) *Map[uint64, V] {
	return New[uint64, V](Uint64Key, opts...)
}

// NewIntMap creates a Map with int keys.
func NewIntMap[V any](opts ...Option) *Map[int, V] {
	return New[int, V](IntKey, opts...)
}

// NewStringSet creates a Set of strings.
func NewStringSet(opts ...Option) *Set[string] {
	return NewSet(StringKey, opts...)
}

// NewUint64Set creates a Set of uint64 keys.
func NewUint64Set(opts ...Option) *Set[uint64] {
	return NewSet(Uint64Key, opts...)
}

// NewIntSet creates a Set of int keys.
func NewIntSet(opts ...Option) *Set[int] {
	return NewSet(IntKey, opts...)
}

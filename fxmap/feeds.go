package fxmap

import (
	"github.com/hupe1980/fxhash"
)

// Feed describes how a key of type K absorbs itself into a hasher: an
// injective mapping from the key to a sequence of absorb calls. Keys that
// compare unequal must produce different call sequences.
type Feed[K any] func(h *fxhash.Hasher, key K)

// StringKey feeds a string key, content plus length.
func StringKey(h *fxhash.Hasher, key string) {
	h.WriteString(key)
}

// Uint64Key feeds a 64-bit unsigned key.
func Uint64Key(h *fxhash.Hasher, key uint64) {
	h.WriteUint64(key)
}

// Uint32Key feeds a 32-bit unsigned key.
func Uint32Key(h *fxhash.Hasher, key uint32) {
	h.WriteUint32(key)
}

// IntKey feeds an int key.
func IntKey(h *fxhash.Hasher, key int) {
	h.WriteUint64(uint64(key))
}

// UintptrKey feeds a pointer-width key.
func UintptrKey(h *fxhash.Hasher, key uintptr) {
	h.WriteUintptr(key)
}

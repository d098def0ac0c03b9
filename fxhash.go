package fxhash

import (
	"hash"
	"math/bits"
	"unsafe"
)

// wordBytes is the size of the accumulator word in bytes (4 or 8).
const wordBytes = bits.UintSize / 8

// rotate is the left rotation applied to the state before each mix.
// Five bits gives good diffusion for both word widths and compiles to a
// single instruction on all supported targets.
const rotate = 5

// Hasher is the Fx hash accumulator. The zero value is a valid Hasher with
// seed 0, equivalent to New().
//
// A Hasher is a plain value: copying it forks the hash computation, and
// distinct Hashers may be used concurrently without coordination. A single
// Hasher must not be mutated from multiple goroutines.
//
// Hasher implements hash.Hash and hash.Hash64.
type Hasher struct {
	state uint
	seed  uint
}

var _ hash.Hash64 = (*Hasher)(nil)

// New returns a Hasher seeded to zero.
func New() *Hasher {
	return &Hasher{}
}

// NewSeeded returns a Hasher whose state starts at seed instead of zero.
// Reset restores this seed.
func NewSeeded(seed uint) *Hasher {
	return &Hasher{state: seed, seed: seed}
}

// add is the sole mixing primitive: rotate, XOR, multiply. All arithmetic
// wraps at the word width; overflow is intentional.
func (h *Hasher) add(w uint) {
	h.state = (bits.RotateLeft(h.state, rotate) ^ w) * mulK
}

// WriteUint8 absorbs an 8-bit value, zero-extended to the word width.
func (h *Hasher) WriteUint8(v uint8) {
	h.add(uint(v))
}

// WriteUint16 absorbs a 16-bit value, zero-extended to the word width.
func (h *Hasher) WriteUint16(v uint16) {
	h.add(uint(v))
}

// WriteUint32 absorbs a 32-bit value, zero-extended to the word width.
// Absorbing uint32(v) and uint8(v) for the same small v yields the same
// state; zero-extension makes the sub-word paths equivalent.
func (h *Hasher) WriteUint32(v uint32) {
	h.add(uint(v))
}

// WriteUint64 absorbs a 64-bit value. On 64-bit targets this is a single
// mixing round; on 32-bit targets the low word is absorbed before the high
// word.
func (h *Hasher) WriteUint64(v uint64) {
	h.addUint64(v)
}

// WriteUint absorbs a machine-word value directly.
func (h *Hasher) WriteUint(v uint) {
	h.add(v)
}

// WriteUintptr absorbs a pointer-width value directly.
func (h *Hasher) WriteUintptr(v uintptr) {
	h.add(uint(v))
}

// Write absorbs p into the hash state. The bytes are consumed as
// little-endian machine words; a final partial word is zero-padded in its
// high-order bytes. After the chunks, len(p) is folded in as one extra word
// so that sequences differing only in trailing zero bytes hash differently.
//
// Write never fails; it returns len(p) and a nil error to satisfy hash.Hash.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) >= wordBytes {
		h.add(loadWord(p))
		p = p[wordBytes:]
	}
	if len(p) > 0 {
		var tail [wordBytes]byte
		copy(tail[:], p)
		h.add(loadWord(tail[:]))
	}
	h.add(uint(n))
	return n, nil
}

// WriteString absorbs s exactly like Write would absorb its bytes, without
// copying the string.
func (h *Hasher) WriteString(s string) {
	//nolint:gosec // read-only view of the string's bytes, never mutated
	_, _ = h.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Sum64 returns the current state zero-extended to 64 bits. There is no
// finalization mixing: Sum64 is idempotent and the Hasher remains valid for
// further writes.
func (h *Hasher) Sum64() uint64 {
	return uint64(h.state)
}

// Sum appends the big-endian Sum64 to b and returns the result.
func (h *Hasher) Sum(b []byte) []byte {
	s := h.Sum64()
	return append(b,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Reset restores the state to the seed the Hasher was constructed with.
func (h *Hasher) Reset() {
	h.state = h.seed
}

// Size returns the number of bytes Sum appends.
func (h *Hasher) Size() int {
	return 8
}

// BlockSize returns the hash's native block size, one machine word.
func (h *Hasher) BlockSize() int {
	return wordBytes
}

// Sum64 computes the Fx hash of p with seed zero.
func Sum64(p []byte) uint64 {
	var h Hasher
	_, _ = h.Write(p)
	return h.Sum64()
}

// Sum64String computes the Fx hash of s with seed zero, without copying.
func Sum64String(s string) uint64 {
	var h Hasher
	h.WriteString(s)
	return h.Sum64()
}

// Sum64Uint64 computes the Fx hash of a single 64-bit value with seed zero.
func Sum64Uint64(v uint64) uint64 {
	var h Hasher
	h.WriteUint64(v)
	return h.Sum64()
}

// Package fxhash implements the Fx hash, a fast non-cryptographic hash for
// in-memory data structures.
//
// Fx is the hash used by the Rust compiler and Firefox for their internal
// hash tables. It trades collision resistance against adversarial input for
// raw speed: one rotate, one XOR and one multiply per machine word absorbed.
// Use it where inputs are trusted and hashing sits on a hot path, such as
// interning tables, symbol maps and caches inside compilers and other
// tooling. Do NOT use it for anything security-sensitive, and do not persist
// its output: hash values are not stable across platforms, word widths or
// versions of this package.
//
// # Quick Start
//
// One-shot hashing:
//
//	h := fxhash.Sum64String("some key")
//
// Streaming:
//
//	h := fxhash.New()
//	h.WriteUint32(id)
//	h.WriteString(name)
//	sum := h.Sum64()
//
// # Algorithm
//
// The accumulator is a single machine-word state, seeded to zero. Every
// absorbed word w updates it as
//
//	state = (rotl(state, 5) ^ w) * K
//
// with wrapping arithmetic, where K is a large odd constant chosen per word
// width (0x517cc1b727220a95 on 64-bit targets, 0x9e3779b9 on 32-bit ones).
// Sub-word integers are zero-extended before mixing. Byte sequences are
// consumed as little-endian words, the final partial word zero-padded, and
// the sequence length is folded in as one trailing word so that inputs
// differing only in trailing zero bytes do not collide.
//
// Finalization reads the state out unchanged. There is no avalanche step, so
// a value absorbed with a single Write receives only a few mixing rounds;
// that is the accepted speed/quality tradeoff of this hash family.
//
// # Containers
//
// The fxmap subpackage provides map and set containers driven by this hash.
// This root package has no dependencies outside the standard library, so
// programs that only need the raw hasher do not pull in the container layer.
package fxhash

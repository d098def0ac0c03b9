//go:build !(amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm)

package fxhash

import "encoding/binary"

// mulK is the multiplicative mixing constant for 32-bit words: the golden
// ratio constant of the original 32-bit Fx hash.
const mulK uint = 0x9e3779b9

func loadWord(b []byte) uint {
	return uint(binary.LittleEndian.Uint32(b))
}

// 64-bit values take two mixing rounds on 32-bit targets, low word first to
// match the little-endian order Write uses for byte sequences.
func (h *Hasher) addUint64(v uint64) {
	h.add(uint(uint32(v)))
	h.add(uint(uint32(v >> 32)))
}

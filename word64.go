//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package fxhash

import "encoding/binary"

// mulK is the multiplicative mixing constant for 64-bit words, as used by
// the Fx hash in rustc and Firefox.
const mulK uint = 0x517cc1b727220a95

func loadWord(b []byte) uint {
	return uint(binary.LittleEndian.Uint64(b))
}

func (h *Hasher) addUint64(v uint64) {
	h.add(uint(v))
}

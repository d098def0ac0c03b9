// Package testutil provides testing utilities for fxhash.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and helpers for
// generating the key material the hash and container tests feed through
// the accumulator.
//
// # Random Key Generation
//
//	rng := testutil.NewRNG(seed)
//	b := rng.Bytes(32)         // random byte sequence
//	s := rng.String(16)        // random printable string
//	w := rng.Uint64()          // random word
package testutil

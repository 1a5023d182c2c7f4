// Package testutil provides testing utilities for hashgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating reproducible hash
// inputs: byte slices, ASCII and supplementary-plane strings, and raw
// UTF-16 code units.
//
//	rng := testutil.NewRNG(seed)
//	payload := rng.Bytes(1024)
//	text := rng.UnicodeString(64)
package testutil

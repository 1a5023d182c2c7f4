// Package fnv implements the 32- and 64-bit variants of the FNV-1a
// non-cryptographic hash as hashgo accumulators.
//
// The mix step is xor-then-multiply over a single byte:
//
//	state = (state XOR b) * prime
//
// with wrapping multiplication. Both variants are immutable value types:
// every mix returns a new state, so partially mixed states can be kept
// and reused freely. The wide mixes (Mix16/Mix32) are unrolled byte loops
// and produce exactly the byte-at-a-time result.
package fnv

// Package hashgo provides portable, non-cryptographic structural hashing.
//
// Hashgo separates hashing into two cooperating capabilities: an
// Accumulator that incrementally mixes fixed-width words into a running
// hash state, and a Hashable that decomposes a value into a deterministic
// sequence of mix calls. The byte stream a value produces is fully defined
// by the value's structure, never by the host: identical inputs hash
// identically across word sizes and endianness.
//
// # Quick Start
//
//	// Hash a string with 64-bit FNV-1a.
//	sum := fnv.Hash64(hashgo.String("hello"))
//
//	// Hash a composite value: tag-discriminated optionals inside a list.
//	xs := hashgo.List[hashgo.Option[hashgo.Uint8]]{
//	    hashgo.Some(hashgo.Uint8(1)),
//	    hashgo.None[hashgo.Uint8](),
//	}
//	sum32 := fnv.Hash32(xs)
//
// # Custom Types
//
// A type opts in by implementing Hashable. Fixed-shape structs hash their
// fields in sequence; variable-shape types mix a constructor tag first:
//
//	type Point struct{ X, Y int32 }
//
//	func (p Point) HashInto(h hashgo.Accumulator) hashgo.Accumulator {
//	    h = hashgo.Int32(p.X).HashInto(h)
//	    return hashgo.Int32(p.Y).HashInto(h)
//	}
//
// # Custom Accumulators
//
// A new algorithm only needs Mix8; Mix16/Mix32 fall back to the big-endian
// byte decomposition. An accumulator that additionally implements Mixer16
// or Mixer32 must produce byte-for-byte the same result as the fallback,
// or hash values stop being portable.
//
// # Guarantees
//
//   - Deterministic: same value, same seed, same hash. Always.
//   - Portable: architecture-width integers that fit in 32 bits hash the
//     same on 32- and 64-bit hosts; all multi-byte mixes are big-endian.
//   - Structurally distinct: variable-structure values (sequences, sums)
//     mix constructor tags so differently shaped values cannot be forced
//     to collide by construction.
//
// Hashgo is not a cryptographic hash and offers no resistance to
// adversarial collision searches.
package hashgo

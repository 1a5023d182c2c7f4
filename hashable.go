package hashgo

// Hashable decomposes a value into a deterministic, ordered sequence of
// mix calls against an arbitrary accumulator.
//
// Implementations must be total and architecture-independent: the byte
// stream fed to the accumulator may depend only on the value, never on
// the host. Two rules keep distinguishable values distinguishable:
//
//   - Variable-structure types (multiple constructors, variable-length
//     sequences) mix a constructor tag via MixTag.
//   - Fixed-structure types (fixed-width numbers, fixed tuples) hash
//     their components in sequence with no tag; the component count and
//     order are already encoded in the type.
type Hashable interface {
	// HashInto folds the value into h and returns the resulting state.
	HashInto(h Accumulator) Accumulator
}

// HashWith folds v into the given seed accumulator and returns the final
// state. It is sugar for v.HashInto(seed).
func HashWith(seed Accumulator, v Hashable) Accumulator {
	return v.HashInto(seed)
}

package hashgo

import "github.com/hupe1980/hashgo/internal/word"

// Accumulator is the running state of an incremental hash.
//
// Accumulators are immutable values: every mix returns a new state and
// leaves the receiver untouched. Implementations should be comparable
// value types so that hash states can be checked for equality in tests.
//
// Mix8 is the only required operation. Wider mixes are available through
// the package-level Mix16/Mix32/Mix64 helpers, which use the optional
// Mixer16/Mixer32 fast paths when an implementation provides them.
type Accumulator interface {
	// Mix8 folds a single byte into the state and returns the new state.
	Mix8(b byte) Accumulator
}

// Mixer16 is implemented by accumulators with a native 16-bit mix.
//
// Mix16 must be byte-for-byte equivalent to mixing the word's big-endian
// bytes through Mix8; otherwise hash values become implementation-dependent.
type Mixer16 interface {
	Accumulator
	Mix16(u uint16) Accumulator
}

// Mixer32 is implemented by accumulators with a native 32-bit mix,
// under the same equivalence constraint as Mixer16.
type Mixer32 interface {
	Accumulator
	Mix32(u uint32) Accumulator
}

// Mix16 folds a 16-bit word into h, most-significant byte first.
func Mix16(h Accumulator, u uint16) Accumulator {
	if m, ok := h.(Mixer16); ok {
		return m.Mix16(u)
	}
	b0, b1 := word.Bytes16(u)
	return h.Mix8(b0).Mix8(b1)
}

// Mix32 folds a 32-bit word into h, most-significant byte first.
func Mix32(h Accumulator, u uint32) Accumulator {
	if m, ok := h.(Mixer32); ok {
		return m.Mix32(u)
	}
	b0, b1, b2, b3 := word.Bytes32(u)
	return h.Mix8(b0).Mix8(b1).Mix8(b2).Mix8(b3)
}

// Mix64 folds a 64-bit word into h as two big-endian 32-bit words,
// most-significant word first.
func Mix64(h Accumulator, u uint64) Accumulator {
	hi, lo := word.Halves64(u)
	return Mix32(Mix32(h, hi), lo)
}

// MixTag folds the constructor tag for the n-th shape of a
// variable-structure type: the single byte 0xFF - n.
//
// Variable-structure values (sequences, optionals, unions) must mix a tag
// so that a value cannot split across a structural boundary and collide
// with a differently shaped value of the same type.
func MixTag(h Accumulator, n uint8) Accumulator {
	return h.Mix8(0xFF - n)
}

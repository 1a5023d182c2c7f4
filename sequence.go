package hashgo

import (
	"unicode/utf16"

	"github.com/hupe1980/hashgo/internal/word"
)

// Bytes hashes a binary sequence: constructor tag 0, then the raw bytes.
//
// The bulk path consumes 8 bytes per step as two big-endian 32-bit mixes;
// a remainder of fewer than 8 bytes is mixed one byte at a time. The
// result is byte-for-byte identical to folding every byte through Mix8,
// for every length — the chunking is a throughput optimization only.
type Bytes []byte

func (v Bytes) HashInto(h Accumulator) Accumulator { return HashBytes(h, v) }

// String hashes text as big-endian UTF-16 code units: constructor tag 0,
// then one 16-bit mix per code unit. Runes above the Basic Multilingual
// Plane mix their two raw surrogate units in code-unit order, never the
// decoded scalar value.
type String string

func (v String) HashInto(h Accumulator) Accumulator { return HashString(h, string(v)) }

// UTF16 hashes a pre-encoded UTF-16 code-unit sequence, equivalent to
// String over the decoded text.
type UTF16 []uint16

func (v UTF16) HashInto(h Accumulator) Accumulator { return HashUTF16(h, v) }

// List hashes a homogeneous ordered sequence: constructor tag 0, then
// every element in order, each element's HashInto receiving the previous
// element's output state.
//
// The tag plus length-driven termination keep differently shaped
// sequences apart: a single two-element list cannot collide with two
// concatenated one-element lists.
type List[T Hashable] []T

func (v List[T]) HashInto(h Accumulator) Accumulator {
	h = MixTag(h, 0)
	for _, e := range v {
		h = e.HashInto(h)
	}
	return h
}

// HashBytes folds a binary sequence into h as described on Bytes.
// It only reads p and never copies or retains it; the caller must not
// mutate p during the call.
func HashBytes(h Accumulator, p []byte) Accumulator {
	h = MixTag(h, 0)
	for len(p) >= 8 {
		h = Mix32(h, word.Uint32At(p, 0))
		h = Mix32(h, word.Uint32At(p, 4))
		p = p[8:]
	}
	for _, b := range p {
		h = h.Mix8(b)
	}
	return h
}

// HashString folds text into h as described on String. Code units are
// paired into 32-bit mixes where possible; a trailing unpaired unit is
// mixed on its own. Byte-equivalent to mixing each unit through Mix16.
func HashString(h Accumulator, s string) Accumulator {
	h = MixTag(h, 0)

	var (
		pending uint16
		have    bool
	)
	mix := func(u uint16) {
		if have {
			h = Mix32(h, uint32(pending)<<16|uint32(u))
			have = false
			return
		}
		pending, have = u, true
	}

	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			mix(uint16(hi))
			mix(uint16(lo))
		} else {
			mix(uint16(r))
		}
	}
	if have {
		h = Mix16(h, pending)
	}
	return h
}

// HashUTF16 folds a UTF-16 code-unit sequence into h as described on
// UTF16. It only reads units; the caller must not mutate the slice during
// the call.
func HashUTF16(h Accumulator, units []uint16) Accumulator {
	h = MixTag(h, 0)
	for len(units) >= 2 {
		h = Mix32(h, uint32(units[0])<<16|uint32(units[1]))
		units = units[2:]
	}
	if len(units) == 1 {
		h = Mix16(h, units[0])
	}
	return h
}

package hashgo

import (
	"math"

	"github.com/hupe1980/hashgo/internal/word"
)

// Uint8 hashes as a single byte.
type Uint8 uint8

func (v Uint8) HashInto(h Accumulator) Accumulator { return h.Mix8(byte(v)) }

// Uint16 hashes as one big-endian 16-bit word.
type Uint16 uint16

func (v Uint16) HashInto(h Accumulator) Accumulator { return Mix16(h, uint16(v)) }

// Uint32 hashes as one big-endian 32-bit word.
type Uint32 uint32

func (v Uint32) HashInto(h Accumulator) Accumulator { return Mix32(h, uint32(v)) }

// Uint64 hashes as two big-endian 32-bit words, most-significant first.
type Uint64 uint64

func (v Uint64) HashInto(h Accumulator) Accumulator { return Mix64(h, uint64(v)) }

// Int8 hashes its two's-complement bit pattern as the same-width unsigned
// value. No sign extension across widths: Int8(-1) mixes the single byte
// 0xFF, not eight of them.
type Int8 int8

func (v Int8) HashInto(h Accumulator) Accumulator { return h.Mix8(byte(v)) }

// Int16 hashes its two's-complement bit pattern as Uint16.
type Int16 int16

func (v Int16) HashInto(h Accumulator) Accumulator { return Mix16(h, uint16(v)) }

// Int32 hashes its two's-complement bit pattern as Uint32.
type Int32 int32

func (v Int32) HashInto(h Accumulator) Accumulator { return Mix32(h, uint32(v)) }

// Int64 hashes its two's-complement bit pattern as Uint64.
type Int64 int64

func (v Int64) HashInto(h Accumulator) Accumulator { return Mix64(h, uint64(v)) }

// Int hashes the architecture-width signed integer portably: a value that
// round-trips through int32 hashes exactly like Int32, anything larger
// hashes the full 64-bit pattern. Small values therefore hash identically
// on 32- and 64-bit hosts.
type Int int

func (v Int) HashInto(h Accumulator) Accumulator { return HashInt(h, int(v)) }

// Uint hashes the architecture-width unsigned integer with the same
// normalization rule as Int.
type Uint uint

func (v Uint) HashInto(h Accumulator) Accumulator { return HashUint(h, uint(v)) }

// Float32 hashes the IEEE-754 bit pattern as Uint32. NaNs, infinities and
// signed zeros get no special treatment: distinct bit patterns hash
// differently, including NaNs with distinct payloads.
type Float32 float32

func (v Float32) HashInto(h Accumulator) Accumulator {
	return Mix32(h, math.Float32bits(float32(v)))
}

// Float64 hashes the IEEE-754 bit pattern as Uint64.
type Float64 float64

func (v Float64) HashInto(h Accumulator) Accumulator {
	return Mix64(h, math.Float64bits(float64(v)))
}

// HashInt folds an architecture-width signed integer into h under the
// portability rule described on Int.
func HashInt(h Accumulator, v int) Accumulator {
	if word.FitsInt32(v) {
		return Mix32(h, uint32(int32(v)))
	}
	return Mix64(h, uint64(int64(v)))
}

// HashUint folds an architecture-width unsigned integer into h under the
// portability rule described on Uint.
func HashUint(h Accumulator, v uint) Accumulator {
	if word.FitsUint32(uint64(v)) {
		return Mix32(h, uint32(v))
	}
	return Mix64(h, uint64(v))
}

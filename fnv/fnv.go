package fnv

import "github.com/hupe1980/hashgo"

// FNV-1a parameters. See
// https://en.wikipedia.org/wiki/Fowler-Noll-Vo_hash_function.
const (
	OffsetBasis32 uint32 = 2166136261
	Prime32       uint32 = 16777619

	OffsetBasis64 uint64 = 14695981039346656037
	Prime64       uint64 = 1099511628211
)

// FNV32 is the 32-bit FNV-1a accumulator. The zero value is NOT a valid
// seed; start from New32.
type FNV32 uint32

// New32 returns a 32-bit FNV-1a accumulator seeded to the offset basis.
func New32() FNV32 { return FNV32(OffsetBasis32) }

// Sum32 returns the accumulated hash value.
func (s FNV32) Sum32() uint32 { return uint32(s) }

func (s FNV32) mix(b byte) FNV32 { return (s ^ FNV32(b)) * FNV32(Prime32) }

// Mix8 implements hashgo.Accumulator.
func (s FNV32) Mix8(b byte) hashgo.Accumulator { return s.mix(b) }

// Mix16 implements hashgo.Mixer16. FNV-1a is byte-serial, so the wide
// mixes are unrolled byte loops, identical to the Mix8 decomposition.
func (s FNV32) Mix16(u uint16) hashgo.Accumulator {
	return s.mix(byte(u >> 8)).mix(byte(u))
}

// Mix32 implements hashgo.Mixer32.
func (s FNV32) Mix32(u uint32) hashgo.Accumulator {
	return s.mix(byte(u >> 24)).mix(byte(u >> 16)).mix(byte(u >> 8)).mix(byte(u))
}

// FNV64 is the 64-bit FNV-1a accumulator. The zero value is NOT a valid
// seed; start from New64.
type FNV64 uint64

// New64 returns a 64-bit FNV-1a accumulator seeded to the offset basis.
func New64() FNV64 { return FNV64(OffsetBasis64) }

// Sum64 returns the accumulated hash value.
func (s FNV64) Sum64() uint64 { return uint64(s) }

func (s FNV64) mix(b byte) FNV64 { return (s ^ FNV64(b)) * FNV64(Prime64) }

// Mix8 implements hashgo.Accumulator.
func (s FNV64) Mix8(b byte) hashgo.Accumulator { return s.mix(b) }

// Mix16 implements hashgo.Mixer16.
func (s FNV64) Mix16(u uint16) hashgo.Accumulator {
	return s.mix(byte(u >> 8)).mix(byte(u))
}

// Mix32 implements hashgo.Mixer32.
func (s FNV64) Mix32(u uint32) hashgo.Accumulator {
	return s.mix(byte(u >> 24)).mix(byte(u >> 16)).mix(byte(u >> 8)).mix(byte(u))
}

// Hash32 hashes v with 32-bit FNV-1a from the standard offset basis.
func Hash32(v hashgo.Hashable) uint32 {
	return v.HashInto(New32()).(FNV32).Sum32()
}

// Hash64 hashes v with 64-bit FNV-1a from the standard offset basis.
func Hash64(v hashgo.Hashable) uint64 {
	return v.HashInto(New64()).(FNV64).Sum64()
}

var (
	_ hashgo.Mixer16 = FNV32(0)
	_ hashgo.Mixer32 = FNV32(0)
	_ hashgo.Mixer16 = FNV64(0)
	_ hashgo.Mixer32 = FNV64(0)
)

package fnv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/hashgo"
)

// mix8All folds data byte by byte through the Accumulator interface.
func mix8All(h hashgo.Accumulator, data []byte) hashgo.Accumulator {
	for _, b := range data {
		h = h.Mix8(b)
	}
	return h
}

func TestFNV32_KnownValues(t *testing.T) {
	// Reference values for FNV-1a/32 over raw bytes.
	tests := []struct {
		name     string
		input    string
		expected uint32
	}{
		{"Empty", "", 2166136261},
		{"A", "a", 0xe40c292c},
		{"Foobar", "foobar", 0xbf9cf968},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mix8All(New32(), []byte(tt.input)).(FNV32)
			assert.Equal(t, tt.expected, got.Sum32())
		})
	}
}

func TestFNV64_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint64
	}{
		{"Empty", "", 14695981039346656037},
		{"A", "a", 0xaf63dc4c8601ec8c},
		{"Foobar", "foobar", 0x85944171f73967e8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mix8All(New64(), []byte(tt.input)).(FNV64)
			assert.Equal(t, tt.expected, got.Sum64())
		})
	}
}

func TestFNV32_MixStep(t *testing.T) {
	// One mix is xor-then-multiply, wrapping mod 2^32.
	got := New32().Mix8(0xFF).(FNV32)
	want := OffsetBasis32 ^ 0xFF
	want *= Prime32
	assert.Equal(t, want, got.Sum32())
}

func TestWideMixEquivalence(t *testing.T) {
	// Mix16/Mix32 must be byte-for-byte equal to the big-endian Mix8
	// decomposition, or hash values become implementation-dependent.
	words := []uint32{0, 1, 0xFF, 0xABCD, 0xDEADBEEF, 0xFFFFFFFF}

	t.Run("FNV32", func(t *testing.T) {
		for _, u := range words {
			wide := New32().Mix32(u)
			narrow := mix8All(New32(), []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
			assert.Equal(t, narrow, wide)

			wide16 := New32().Mix16(uint16(u))
			narrow16 := mix8All(New32(), []byte{byte(u >> 8), byte(u)})
			assert.Equal(t, narrow16, wide16)
		}
	})

	t.Run("FNV64", func(t *testing.T) {
		for _, u := range words {
			wide := New64().Mix32(u)
			narrow := mix8All(New64(), []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
			assert.Equal(t, narrow, wide)
		}
	})
}

func TestValueSemantics(t *testing.T) {
	// Mixing returns a new state and leaves the original usable.
	seed := New32()
	a := seed.Mix8(1)
	b := seed.Mix8(1)

	assert.Equal(t, FNV32(OffsetBasis32), seed)
	assert.Equal(t, a, b)
	assert.NotEqual(t, hashgo.Accumulator(seed), a)
}

func TestHash32(t *testing.T) {
	// Hash32 seeds with the offset basis and folds the value.
	v := hashgo.Uint8(42)
	want := New32().Mix8(42).(FNV32).Sum32()
	assert.Equal(t, want, Hash32(v))
}

func TestHash64(t *testing.T) {
	v := hashgo.Uint8(42)
	want := New64().Mix8(42).(FNV64).Sum64()
	assert.Equal(t, want, Hash64(v))
}

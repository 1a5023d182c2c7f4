package hashgo_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hashgo"
	"github.com/hupe1980/hashgo/fnv"
	"github.com/hupe1980/hashgo/testutil"
)

func bigFromHex(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return n
}

func TestHashBigInt_ByteStream(t *testing.T) {
	tests := []struct {
		name     string
		n        *big.Int
		expected []byte
	}{
		// At least one chunk, even for zero; sign tag after magnitude.
		{"Zero", big.NewInt(0), []byte{0x00, 0x00, 0x00, 0x00, 0xFF}},
		{"One", big.NewInt(1), []byte{0x00, 0x00, 0x00, 0x01, 0xFF}},
		{"MinusOne", big.NewInt(-1), []byte{0x00, 0x00, 0x00, 0x01, 0xFE}},
		{"FullChunk", big.NewInt(0xDEADBEEF), []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xFF}},
		{"TwoChunks", new(big.Int).Lsh(big.NewInt(1), 32), []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0xFF}},
		// Six magnitude bytes: the leading chunk is zero-padded within
		// the minimal chunk count.
		{"PaddedLead", big.NewInt(0xDEADBEEF00BA), []byte{0x00, 0x00, 0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0xBA, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, traceOf(hashgo.BigInt{Int: tt.n}))
		})
	}
}

func TestHashBigInt_ChunkRoundTrip(t *testing.T) {
	// Recomposing the mixed chunks most-significant-first as a base-2^32
	// numeral must give back |n| exactly.
	rng := testutil.NewRNG(4711)

	for i := 0; i < 64; i++ {
		n := new(big.Int).SetBytes(rng.Bytes(1 + rng.Intn(40)))
		if rng.Intn(2) == 0 {
			n.Neg(n)
		}

		stream := traceOf(hashgo.BigInt{Int: n})
		require.GreaterOrEqual(t, len(stream), 5)
		require.Equal(t, 1, len(stream)%4, "magnitude must be whole 32-bit chunks plus a sign byte")

		mag := new(big.Int).SetBytes(stream[:len(stream)-1])
		assert.Zero(t, mag.CmpAbs(n), "n=%s", n)
	}
}

func TestHashBigInt_SignDistinctness(t *testing.T) {
	ns := []*big.Int{
		big.NewInt(1),
		big.NewInt(0xDEADBEEF),
		bigFromHex(t, "DEADBEEF00BADEADBEEF00BA"),
	}

	for _, n := range ns {
		neg := new(big.Int).Neg(n)

		pos32 := fnv.Hash32(hashgo.BigInt{Int: n})
		neg32 := fnv.Hash32(hashgo.BigInt{Int: neg})
		assert.NotEqual(t, pos32, neg32, "n=%s", n)

		// The streams differ only in the trailing sign tag.
		posStream := traceOf(hashgo.BigInt{Int: n})
		negStream := traceOf(hashgo.BigInt{Int: neg})
		assert.Equal(t, posStream[:len(posStream)-1], negStream[:len(negStream)-1])
		assert.Equal(t, byte(0xFF), posStream[len(posStream)-1])
		assert.Equal(t, byte(0xFE), negStream[len(negStream)-1])
	}
}

func TestHashBigInt_SplitDistinctness(t *testing.T) {
	// 0xDEAD,0xBEEF as one magnitude vs 0xDE,0xADBEEF-style splits: the
	// chunk-count floor and fixed chunk width keep them apart.
	a := bigFromHex(t, "0000DEAD0000BEEF")
	b := bigFromHex(t, "000000DE00ADBEEF")
	assert.NotEqual(t, traceOf(hashgo.BigInt{Int: a}), traceOf(hashgo.BigInt{Int: b}))
}

func TestBigRat(t *testing.T) {
	// Numerator then denominator, fixed two-element structure, no tag.
	r := big.NewRat(3, 7)

	want := traceOf(hashgo.BigInt{Int: big.NewInt(3)})
	want = append(want, traceOf(hashgo.BigInt{Int: big.NewInt(7)})...)

	assert.Equal(t, want, traceOf(hashgo.BigRat{Rat: r}))

	// Distinct rationals with the same digits in different places.
	assert.NotEqual(t,
		fnv.Hash64(hashgo.BigRat{Rat: big.NewRat(3, 7)}),
		fnv.Hash64(hashgo.BigRat{Rat: big.NewRat(7, 3)}))
}

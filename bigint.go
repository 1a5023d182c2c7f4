package hashgo

import (
	"math/big"

	"github.com/hupe1980/hashgo/internal/word"
)

// BigInt hashes an arbitrary-precision integer.
//
// The magnitude is decomposed into the minimal sequence of big-endian
// 32-bit chunks — at least one chunk, so zero hashes a single zero chunk,
// and any leading zero bytes inside that minimal chunk count are hashed
// too — mixed most-significant chunk first. A sign tag (1 for negative,
// 0 otherwise) is mixed after the magnitude.
//
// The chunk-count floor and the sign tag are both collision guards: without
// them a magnitude could split across a chunk boundary and collide with a
// differently split value, and n could collide with -n.
type BigInt struct {
	Int *big.Int
}

func (v BigInt) HashInto(h Accumulator) Accumulator { return HashBigInt(h, v.Int) }

// BigRat hashes an arbitrary-precision rational as its numerator followed
// by its denominator. The structure is statically two elements, so no
// constructor tag is mixed.
type BigRat struct {
	Rat *big.Rat
}

func (v BigRat) HashInto(h Accumulator) Accumulator {
	h = HashBigInt(h, v.Rat.Num())
	return HashBigInt(h, v.Rat.Denom())
}

// HashBigInt folds an arbitrary-precision integer into h using the chunk
// decomposition described on BigInt.
func HashBigInt(h Accumulator, n *big.Int) Accumulator {
	mag := n.Bytes() // big-endian magnitude, empty for zero

	if len(mag) == 0 {
		h = Mix32(h, 0)
	} else {
		if rem := len(mag) % 4; rem != 0 {
			// Leading chunk, zero-padded to 32 bits.
			var lead uint32
			for _, b := range mag[:rem] {
				lead = lead<<8 | uint32(b)
			}
			h = Mix32(h, lead)
			mag = mag[rem:]
		}
		for i := 0; i < len(mag); i += 4 {
			h = Mix32(h, word.Uint32At(mag, i))
		}
	}

	var sign uint8
	if n.Sign() < 0 {
		sign = 1
	}
	return MixTag(h, sign)
}

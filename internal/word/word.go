package word

import (
	"encoding/binary"
	"math"
)

// Bytes16 decomposes u into its big-endian bytes.
func Bytes16(u uint16) (b0, b1 byte) {
	return byte(u >> 8), byte(u)
}

// Bytes32 decomposes u into its big-endian bytes.
func Bytes32(u uint32) (b0, b1, b2, b3 byte) {
	return byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)
}

// Halves64 splits u into its big-endian 32-bit halves.
func Halves64(u uint64) (hi, lo uint32) {
	return uint32(u >> 32), uint32(u)
}

// FitsInt32 reports whether v round-trips through int32.
// On 32-bit hosts this is always true.
func FitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// FitsUint32 reports whether v round-trips through uint32.
func FitsUint32(v uint64) bool {
	return v <= math.MaxUint32
}

// Uint32At reads the big-endian 32-bit word at byte offset i.
// The caller guarantees i+4 <= len(p). The read is independent of the
// host's byte order and never copies or mutates p.
func Uint32At(p []byte, i int) uint32 {
	return binary.BigEndian.Uint32(p[i:])
}

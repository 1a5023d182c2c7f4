// Package word provides big-endian word decomposition and bounds-checked
// word reads over byte buffers.
//
// Everything here is pure shift/mask arithmetic. The big-endian convention
// is load-bearing: hash byte streams must not depend on the host's byte
// order, so every multi-byte value is taken apart most-significant byte
// first, and every bulk read goes through encoding/binary.BigEndian.
package word

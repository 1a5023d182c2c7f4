package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63 returns a non-negative pseudo-random int64.
func (r *RNG) Int63() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63()
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Bytes returns a slice of n pseudo-random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := make([]byte, n)
	for i := range p {
		p[i] = byte(r.rand.Intn(256))
	}
	return p
}

// ByteSlices returns num pseudo-random byte slices of the given length.
func (r *RNG) ByteSlices(num, length int) [][]byte {
	out := make([][]byte, num)
	for i := range out {
		out[i] = r.Bytes(length)
	}
	return out
}

// ASCIIString returns a pseudo-random string of n printable ASCII bytes.
func (r *RNG) ASCIIString(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := make([]byte, n)
	for i := range p {
		p[i] = byte(0x20 + r.rand.Intn(0x5F)) // ' '..'~'
	}
	return string(p)
}

// UnicodeString returns a pseudo-random string of n runes spanning the
// BMP and supplementary planes, so UTF-16 surrogate handling gets
// exercised. Surrogate code points are skipped (not valid scalars).
func (r *RNG) UnicodeString(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	runes := make([]rune, 0, n)
	for len(runes) < n {
		var c rune
		if r.rand.Intn(4) == 0 {
			c = rune(0x10000 + r.rand.Intn(0x10000)) // supplementary plane
		} else {
			c = rune(1 + r.rand.Intn(0xFFFF))
			if c >= 0xD800 && c <= 0xDFFF {
				continue
			}
		}
		runes = append(runes, c)
	}
	return string(runes)
}

// Uint16s returns a slice of n pseudo-random UTF-16 code units.
func (r *RNG) Uint16s(n int) []uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	units := make([]uint16, n)
	for i := range units {
		units[i] = uint16(r.rand.Intn(0x10000))
	}
	return units
}

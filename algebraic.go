package hashgo

import "fmt"

// Bool hashes as the raw byte 0 or 1, with no constructor tag: both
// values are statically known single bytes, so there is no variable
// structure to discriminate. Compare Ordering, which mixes tags.
type Bool bool

func (v Bool) HashInto(h Accumulator) Accumulator {
	if v {
		return h.Mix8(1)
	}
	return h.Mix8(0)
}

// Ordering is a three-way comparison result.
type Ordering int8

const (
	Less Ordering = iota
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int8(o))
	}
}

// HashInto mixes the variant's ordinal as a constructor tag.
func (o Ordering) HashInto(h Accumulator) Accumulator { return MixTag(h, uint8(o)) }

// Unit is the empty product. It hashes as constructor tag 0 alone — the
// tag is required so a sequence of one unit value cannot collide with an
// empty sequence.
type Unit struct{}

func (Unit) HashInto(h Accumulator) Accumulator { return MixTag(h, 0) }

// Option is an optional value: constructor tag 0 when absent, tag 1
// followed by the payload when present.
type Option[T Hashable] struct {
	Value T
	Valid bool
}

// Some returns a present Option.
func Some[T Hashable](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None returns an absent Option.
func None[T Hashable]() Option[T] { return Option[T]{} }

func (o Option[T]) HashInto(h Accumulator) Accumulator {
	if !o.Valid {
		return MixTag(h, 0)
	}
	return o.Value.HashInto(MixTag(h, 1))
}

// Either is a two-variant union: constructor tag 0 followed by the left
// payload, or tag 1 followed by the right payload. The zero value is a
// left holding L's zero value.
type Either[L, R Hashable] struct {
	IsRight bool
	Left    L // payload when !IsRight
	Right   R // payload when IsRight
}

func (e Either[L, R]) HashInto(h Accumulator) Accumulator {
	if e.IsRight {
		return e.Right.HashInto(MixTag(h, 1))
	}
	return e.Left.HashInto(MixTag(h, 0))
}

// Pair hashes two components in sequence with no tag: the arity and order
// are fixed by the type. The same pattern extends to any static arity —
// a struct's HashInto simply hashes its fields in order.
type Pair[A, B Hashable] struct {
	First  A
	Second B
}

func (p Pair[A, B]) HashInto(h Accumulator) Accumulator {
	return p.Second.HashInto(p.First.HashInto(h))
}

// Triple hashes three components in sequence with no tag.
type Triple[A, B, C Hashable] struct {
	First  A
	Second B
	Third  C
}

func (p Triple[A, B, C]) HashInto(h Accumulator) Accumulator {
	return p.Third.HashInto(p.Second.HashInto(p.First.HashInto(h)))
}

// Tuple4 hashes four components in sequence with no tag.
type Tuple4[A, B, C, D Hashable] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func (p Tuple4[A, B, C, D]) HashInto(h Accumulator) Accumulator {
	h = p.First.HashInto(h)
	h = p.Second.HashInto(h)
	h = p.Third.HashInto(h)
	return p.Fourth.HashInto(h)
}

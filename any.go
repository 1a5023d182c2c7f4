package hashgo

import "math/big"

// HashAny folds a dynamically typed value into h by dispatching over the
// supported categories. Values implementing Hashable are folded directly;
// Go's built-in scalar, string, byte-slice and big-number types map onto
// their wrapper instances. Anything else returns *ErrUnsupportedType.
//
// This is the closed-dispatch counterpart to implementing Hashable, and
// the only fallible operation in the package.
func HashAny(h Accumulator, v any) (Accumulator, error) {
	switch x := v.(type) {
	case Hashable:
		return x.HashInto(h), nil
	case bool:
		return Bool(x).HashInto(h), nil
	case uint8:
		return Uint8(x).HashInto(h), nil
	case uint16:
		return Uint16(x).HashInto(h), nil
	case uint32:
		return Uint32(x).HashInto(h), nil
	case uint64:
		return Uint64(x).HashInto(h), nil
	case int8:
		return Int8(x).HashInto(h), nil
	case int16:
		return Int16(x).HashInto(h), nil
	case int32:
		return Int32(x).HashInto(h), nil
	case int64:
		return Int64(x).HashInto(h), nil
	case int:
		return HashInt(h, x), nil
	case uint:
		return HashUint(h, x), nil
	case float32:
		return Float32(x).HashInto(h), nil
	case float64:
		return Float64(x).HashInto(h), nil
	case string:
		return HashString(h, x), nil
	case []byte:
		return HashBytes(h, x), nil
	case []uint16:
		return HashUTF16(h, x), nil
	case *big.Int:
		return HashBigInt(h, x), nil
	case *big.Rat:
		return BigRat{Rat: x}.HashInto(h), nil
	default:
		return nil, &ErrUnsupportedType{Value: v}
	}
}

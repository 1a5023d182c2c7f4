package hashgo

import "fmt"

// ErrUnsupportedType indicates a value whose dynamic type HashAny cannot
// map onto a hashable category.
type ErrUnsupportedType struct {
	Value any
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type: %T", e.Value)
}

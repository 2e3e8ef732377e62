package value

import (
	"errors"
	"fmt"
)

// ErrType is the sentinel wrapped by every type error: an operation
// attempted against a Value of an incompatible kind.
var ErrType = errors.New("type error")

// ErrRange is the sentinel wrapped by every range error: a numeric
// coercion whose source value does not fit the requested target type.
var ErrRange = errors.New("range error")

func typeErrorf(op string, k Kind) error {
	return fmt.Errorf("%w: %s not valid on %s", ErrType, op, k)
}

func rangeErrorf(op string, k Kind) error {
	return fmt.Errorf("%w: %s out of range for %s", ErrRange, op, k)
}

package num

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow indicates that the result of a checked operation
	// cannot be represented by the operand type.
	ErrOverflow = errors.New("overflow")

	// ErrDivideByZero is returned by checked division when the
	// divisor is zero.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrNotRepresentable indicates that a value cannot be converted
	// to another scalar type without changing it.
	ErrNotRepresentable = errors.New("not representable")
)

// ConversionError is returned by [TryConvert] when the value cannot be
// represented exactly by the target type.
type ConversionError struct {
	Value any
	To    string
}

func (err *ConversionError) Error() string {
	return fmt.Sprintf("convert %v to %v: %v", err.Value, err.To, ErrNotRepresentable)
}

func (err *ConversionError) Unwrap() error {
	return ErrNotRepresentable
}

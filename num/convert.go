package num

import (
	"math"
	"reflect"
)

// Convert converts v to the scalar type To using Go's conversion rules.
// It is intended for conversions where To can represent every value of
// From, such as int16 to int32, but it never fails: out of range values
// are truncated the same way a plain conversion would truncate them.
func Convert[To, From Scalar](v From) To {
	return To(v)
}

// TryConvert converts v to the scalar type To, returning a
// [*ConversionError] if the result does not represent exactly the same
// value. Conversions that lose precision, truncate a fraction, overflow,
// or change sign all fail. NaN never converts successfully.
func TryConvert[To, From Scalar](v From) (To, error) {
	if !inRange[To](v) {
		return 0, conversionError[To](v)
	}

	t := To(v)
	if !inRange[From](t) || From(t) != v || (t < 0) != (v < 0) {
		return 0, conversionError[To](v)
	}
	return t, nil
}

// inRange reports whether the float v lies inside the range of the
// integer type T. Go leaves the result of converting an out of range
// float to an integer up to the platform, so such conversions must be
// rejected before they happen. It is always true when v is not a float
// or T is not an integer.
func inRange[T, F Scalar](v F) bool {
	if !IsFloat[F]() || IsFloat[T]() {
		return true
	}

	f := float64(v)
	if math.IsNaN(f) {
		return false
	}

	k := kindOf[T]()
	if k.signed {
		bound := math.Ldexp(1, k.bits-1)
		return f >= -bound && f < bound
	}
	return f >= 0 && f < math.Ldexp(1, k.bits)
}

func conversionError[To, From Scalar](v From) error {
	return &ConversionError{
		Value: v,
		To:    reflect.TypeFor[To]().String(),
	}
}

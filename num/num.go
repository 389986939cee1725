// Package num provides the scalar operations that the vector and
// rectangle types of xvec lift onto their components.
//
// Go's arithmetic operators already cover the unchecked case. This
// package adds checked, saturating, and wrapping variants, partial and
// total ordering helpers, and scalar conversion, all generic over
// [Scalar].
package num

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that xvec types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

type kind struct {
	float  bool
	signed bool
	bits   int
}

func kindOf[T Scalar]() kind {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return kind{float: true, signed: true, bits: t.Bits()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kind{signed: true, bits: t.Bits()}
	default:
		return kind{bits: t.Bits()}
	}
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Scalar]() bool {
	return kindOf[T]().float
}

// IsSigned reports whether T can represent negative values. This is
// true for floating-point types.
func IsSigned[T Scalar]() bool {
	return kindOf[T]().signed
}

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Scalar]() T {
	k := kindOf[T]()
	switch {
	case k.float:
		m := math.MaxFloat64
		if k.bits == 32 {
			m = math.MaxFloat32
		}
		return T(m)
	case k.signed:
		return T(uint64(1)<<(k.bits-1) - 1)
	default:
		return T(^uint64(0) >> (64 - k.bits))
	}
}

// MinValue returns the smallest finite value representable by T. For
// unsigned types this is zero.
func MinValue[T Scalar]() T {
	if !IsSigned[T]() {
		return 0
	}

	m := MaxValue[T]()
	if IsFloat[T]() {
		return -m
	}
	return -m - 1
}

// finite reports whether v is neither infinite nor NaN. It is always
// true for integers.
func finite[T Scalar](v T) bool {
	return v-v == 0
}

package xvec_test

import (
	"math"
	"testing"

	"deedles.dev/xvec"
	"deedles.dev/xvec/num"
	"github.com/stretchr/testify/require"
)

func TestConvertVec(t *testing.T) {
	require.Equal(t, xvec.V2[int64](1, -2), xvec.Convert2[int64](xvec.V2[int8](1, -2)))
	require.Equal(t, xvec.V3[int](1, 2, -3), xvec.Convert3[int](xvec.V3(1.9, 2.1, -3.7)))
	require.Equal(t, xvec.V4[float32](1, 2, 3, 4), xvec.Convert4[float32](xvec.V4(1, 2, 3, 4)))
}

func TestTryConvertVec(t *testing.T) {
	v, err := xvec.TryConvert2[uint8](xvec.V2(1, 255))
	require.NoError(t, err)
	require.Equal(t, xvec.V2[uint8](1, 255), v)

	_, err = xvec.TryConvert2[uint8](xvec.V2(1, 256))
	require.ErrorIs(t, err, num.ErrNotRepresentable)
	require.EqualError(t, err, "y: convert 256 to uint8: not representable")

	var ferr *xvec.FieldError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, "y", ferr.Field)

	_, err = xvec.TryConvert3[uint](xvec.V3(-1, 2, 3))
	require.EqualError(t, err, "x: convert -1 to uint: not representable")

	_, err = xvec.TryConvert3[int](xvec.V3(1, 2, 3.5))
	require.EqualError(t, err, "z: convert 3.5 to int: not representable")

	_, err = xvec.TryConvert4[float32](xvec.V4(1, 2, 3, math.NaN()))
	require.EqualError(t, err, "w: convert NaN to float32: not representable")

	w, err := xvec.TryConvert4[float32](xvec.V4(1, 2, 0.5, -0.25))
	require.NoError(t, err)
	require.Equal(t, xvec.V4[float32](1, 2, 0.5, -0.25), w)
}

func TestConvertRect(t *testing.T) {
	r := xvec.R2(0.5, 1.5, 10.5, 20.5)
	require.Equal(t, xvec.R2(0, 1, 10, 20), xvec.ConvertRect2[int](r))
	require.Equal(t, xvec.R3[float64](0, 0, 0, 1, 2, 3), xvec.ConvertRect3[float64](xvec.R3(0, 0, 0, 1, 2, 3)))

	_, err := xvec.TryConvertRect2[int](r)
	require.EqualError(t, err, "point0: x: convert 0.5 to int: not representable")

	_, err = xvec.TryConvertRect2[int8](xvec.R2(0, 0, 10, 200))
	require.EqualError(t, err, "point1: y: convert 200 to int8: not representable")

	p, err := xvec.TryConvertRect3[uint16](xvec.R3(0, 0, 0, 1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, xvec.R3[uint16](0, 0, 0, 1, 2, 3), p)
}

func TestComplex(t *testing.T) {
	require.Equal(t, xvec.V2(1.5, -2.0), xvec.FromComplex128(complex(1.5, -2)))
	require.Equal(t, xvec.V2[float32](3, 4), xvec.FromComplex64(complex64(complex(3, 4))))
	require.Equal(t, complex(1.5, -2), xvec.V2(1.5, -2).Complex128())
	require.Equal(t, complex64(complex(3, 4)), xvec.V2(3, 4).Complex64())

	c := complex(0.1, 0.2)
	require.Equal(t, c, xvec.FromComplex128(c).Complex128())
}

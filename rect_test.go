package xvec_test

import (
	"math"
	"testing"

	"deedles.dev/xvec"
	"deedles.dev/xvec/num"
	"github.com/stretchr/testify/require"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b xvec.Rect2[int]
		r    xvec.Rect2[int]
		ok   bool
	}{
		{name: "Overlap", a: xvec.R2(0, 1, 80, 81), b: xvec.R2(20, 21, 100, 101), r: xvec.R2(20, 21, 80, 81), ok: true},
		{name: "Contained", a: xvec.R2(1, 0, 101, 100), b: xvec.R2(21, 20, 81, 80), r: xvec.R2(21, 20, 81, 80), ok: true},
		{name: "Touching", a: xvec.R2(0, 0, 100, 100), b: xvec.R2(100, 0, 200, 100)},
		{name: "TouchingSmall", a: xvec.R2(0, 0, 10, 10), b: xvec.R2(10, 0, 20, 10)},
		{name: "Empty", a: xvec.R2(0, 0, 100, 100), b: xvec.R2(50, 50, 50, 50)},
		{name: "Unordered", a: xvec.R2(0, 0, 100, 100), b: xvec.R2(80, 80, 20, 20)},
		{name: "Disjoint", a: xvec.R2(0, 0, 10, 10), b: xvec.R2(20, 0, 30, 10)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, ok := test.a.Intersect(test.b)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.r, r)
		})
	}
}

func TestRect3Intersect(t *testing.T) {
	r, ok := xvec.R3(0, 0, 0, 10, 10, 10).Intersect(xvec.R3(5, 5, 5, 15, 15, 15))
	require.True(t, ok)
	require.Equal(t, xvec.R3(5, 5, 5, 10, 10, 10), r)

	_, ok = xvec.R3(0, 0, 0, 10, 10, 10).Intersect(xvec.R3(5, 5, 10, 15, 15, 15))
	require.False(t, ok)
}

func TestRectOrdering(t *testing.T) {
	require.True(t, xvec.R2(0, 1, 2, 3).IsOrdered())
	require.True(t, xvec.R2(0, 1, 0, 3).IsOrdered())
	require.False(t, xvec.R2(2, 1, 0, 3).IsOrdered())
	require.True(t, xvec.R2(0, 1, 2, 3).IsPositive())
	require.False(t, xvec.R2(0, 1, 0, 3).IsPositive())
	require.False(t, xvec.R2(2, 1, 0, 3).IsPositive())
	require.Equal(t, xvec.R2(0, 1, 2, 3), xvec.R2(0, 1, 2, 3).Ordered())
	require.Equal(t, xvec.R2(0, 1, 2, 3), xvec.R2(2, 1, 0, 3).Ordered())

	// Each axis is sorted on its own.
	require.Equal(t, xvec.R3(0, 1, 2, 5, 4, 3), xvec.R3(5, 1, 3, 0, 4, 2).Ordered())
	require.Equal(t, xvec.R3(0, 1, 2, 5, 4, 3), xvec.R3(5, 1, 3, 0, 4, 2).PartiallyOrdered())
	require.True(t, xvec.R3(0, 1, 2, 5, 4, 3).IsPartiallyOrdered())
	require.True(t, xvec.R3(0, 1, 2, 5, 4, 3).IsPartiallyPositive())
}

func TestRectOrderingNaN(t *testing.T) {
	nan := math.NaN()
	r := xvec.R2(0, nan, 1, 1)

	require.False(t, r.IsPartiallyOrdered())
	require.False(t, r.IsPartiallyPositive())
	require.True(t, r.IsOrdered())
	require.True(t, r.IsPositive())

	p := xvec.R2(1, 1, 0, nan).PartiallyOrdered()
	require.Equal(t, xvec.V2(0.0, 1.0), xvec.V2(p.P0.X, p.P0.Y))
	require.Equal(t, 1.0, p.P1.X)
	require.True(t, math.IsNaN(p.P1.Y))

	o := xvec.R2(1, 1, 0, nan).Ordered()
	require.True(t, math.IsNaN(o.P0.Y))
	require.Equal(t, 1.0, o.P1.Y)
	require.True(t, o.IsOrdered())
}

func TestRectExpand(t *testing.T) {
	a, b := xvec.R2(0, 0, 10, 10), xvec.R2(5, -5, 20, 5)
	require.Equal(t, xvec.R2(0, -5, 20, 10), a.Expand(b))
	require.Equal(t, a.Expand(b), b.Expand(a))

	for _, r := range []xvec.Rect2[int]{a, b, xvec.R2(-3, -3, -1, 7)} {
		require.Equal(t, r, r.Expand(r))
	}

	// Non-positive rectangles leave the receiver unchanged.
	empty := xvec.R2(3, 3, 3, 8)
	require.Equal(t, a, a.Expand(empty))
	require.Equal(t, empty, empty.Expand(a))
	require.Equal(t, xvec.R2(10, 10, 0, 0), xvec.R2(10, 10, 0, 0).Expand(a))

	p := xvec.R3(0, 0, 0, 1, 1, 1).Expand(xvec.R3(-1, 0, 0, 1, 1, 4))
	require.Equal(t, xvec.R3(-1, 0, 0, 1, 1, 4), p)
}

func TestRectSize(t *testing.T) {
	r := xvec.R2(2, 3, 10, 7)
	require.Equal(t, 8, r.Width())
	require.Equal(t, 4, r.Height())
	require.Equal(t, xvec.V2(8, 4), r.Size())

	p := xvec.R3(1.0, 2, 3, 2, 4, 9)
	require.Equal(t, 1.0, p.Width())
	require.Equal(t, 2.0, p.Height())
	require.Equal(t, 6.0, p.Depth())
	require.Equal(t, xvec.V3(1.0, 2, 6), p.Size())

	// Unordered rectangles have negative sizes.
	require.Equal(t, xvec.V2(-8, -4), xvec.R2(10, 7, 2, 3).Size())
}

func TestRectConstructors(t *testing.T) {
	require.Equal(t, xvec.R2(0, 0, 4, 5), xvec.R2FromSize(4, 5))
	require.Equal(t, xvec.R2(0, 0, 4, 5), xvec.Rect2FromSize(xvec.V2(4, 5)))
	require.Equal(t, xvec.R3(0, 0, 0, 4, 5, 6), xvec.R3FromSize(4, 5, 6))
	require.Equal(t, xvec.R3(0, 0, 0, 4, 5, 6), xvec.Rect3FromSize(xvec.V3(4, 5, 6)))
	require.Equal(t, xvec.Rect2[int]{P0: xvec.V2(1, 2), P1: xvec.V2(3, 4)}, xvec.R2(1, 2, 3, 4))
}

func TestRectArithmetic(t *testing.T) {
	r := xvec.R2(1, 2, 3, 4)

	require.Equal(t, xvec.R2(-1, -2, -3, -4), r.Neg())
	require.Equal(t, xvec.R2(11, 22, 13, 24), r.Add(xvec.V2(10, 20)))
	require.Equal(t, xvec.R2(0, 0, 2, 2), r.Sub(xvec.V2(1, 2)))
	require.Equal(t, xvec.R2(2, 6, 6, 12), r.Mul(xvec.V2(2, 3)))
	require.Equal(t, xvec.R2(1, 1, 3, 2), r.Div(xvec.V2(1, 2)))
	require.Equal(t, xvec.R2(2, 3, 4, 5), r.AddScalar(1))
	require.Equal(t, xvec.R2(0, 1, 2, 3), r.SubScalar(1))
	require.Equal(t, xvec.R2(3, 6, 9, 12), r.MulScalar(3))
	require.Equal(t, xvec.R2(0, 1, 1, 2), r.DivScalar(2))

	r.AddAssign(xvec.V2(1, 1))
	require.Equal(t, xvec.R2(2, 3, 4, 5), r)
	r.MulScalarAssign(2)
	require.Equal(t, xvec.R2(4, 6, 8, 10), r)
	r.DivAssign(xvec.V2(2, 2))
	require.Equal(t, xvec.R2(2, 3, 4, 5), r)
	r.SubScalarAssign(2)
	require.Equal(t, xvec.R2(0, 1, 2, 3), r)

	p := xvec.R3(0, 0, 0, 1, 1, 1)
	p.AddScalarAssign(1)
	p.MulAssign(xvec.V3(1, 2, 3))
	p.SubAssign(xvec.V3(1, 1, 1))
	p.DivScalarAssign(1)
	require.Equal(t, xvec.R3(0, 1, 2, 1, 3, 5), p)
}

func TestRectChecked(t *testing.T) {
	r := xvec.R2[int8](0, 0, 100, 100)

	s, err := r.CheckedAddScalar(27)
	require.NoError(t, err)
	require.Equal(t, xvec.R2[int8](27, 27, 127, 127), s)

	_, err = r.CheckedAdd(xvec.V2[int8](0, 28))
	require.ErrorIs(t, err, num.ErrOverflow)
	require.EqualError(t, err, "point1: y: overflow")

	_, err = xvec.R2[int8](-128, 0, 0, 0).CheckedNeg()
	require.EqualError(t, err, "point0: x: overflow")

	_, err = r.CheckedDiv(xvec.V2[int8](1, 0))
	require.EqualError(t, err, "point0: y: divide by zero")

	_, err = r.CheckedMulScalar(2)
	require.EqualError(t, err, "point1: x: overflow")

	_, err = r.CheckedSubScalar(-28)
	require.EqualError(t, err, "point1: x: overflow")

	_, err = xvec.R3[uint8](1, 1, 1, 2, 2, 2).CheckedSub(xvec.V3[uint8](0, 0, 2))
	require.EqualError(t, err, "point0: z: overflow")

	_, err = xvec.R3[uint8](1, 1, 1, 2, 2, 2).CheckedDivScalar(0)
	require.ErrorIs(t, err, num.ErrDivideByZero)
}

func TestRectSaturatingWrapping(t *testing.T) {
	r := xvec.R2[int8](0, -100, 100, 100)

	require.Equal(t, xvec.R2[int8](100, -128, 127, 50), r.SaturatingAdd(xvec.V2[int8](100, -50)))
	require.Equal(t, xvec.R2[int8](10, -90, 110, 110), r.SaturatingAddScalar(10))
	require.Equal(t, xvec.R2[int8](-28, -128, 72, 0), r.SaturatingSub(xvec.V2[int8](28, 100)))
	require.Equal(t, xvec.R2[int8](0, -128, 127, 127), r.SaturatingMul(xvec.V2[int8](3, 2)))
	require.Equal(t, xvec.R2[int8](0, -128, 127, 127), r.SaturatingMulScalar(2))
	require.Equal(t, xvec.R2[int8](-100, -128, 0, 0), r.SaturatingSubScalar(100))
	require.Equal(t, xvec.R2[int8](0, 100, -100, -100), r.SaturatingNeg())
	require.Equal(t, xvec.R2[int8](0, 56, -56, -56), r.WrappingMulScalar(2))
	require.Equal(t, xvec.R2[int8](0, 56, -56, -56), r.WrappingMul(xvec.V2[int8](2, 2)))
	require.Equal(t, xvec.R2[int8](100, -128, -56, 72), r.WrappingAdd(xvec.V2[int8](100, -28)))
	require.Equal(t, xvec.R2[int8](-100, 56, 0, 0), r.WrappingSubScalar(100))
	require.Equal(t, xvec.R2[int8](-100, 56, 0, 0), r.WrappingSub(xvec.V2[int8](100, 100)))
	require.Equal(t, xvec.R2[int8](100, 0, -56, -56), r.WrappingAddScalar(100))
	require.Equal(t, xvec.R2[int8](0, 100, -100, -100), r.WrappingNeg())
}

func TestRect3Ops(t *testing.T) {
	r := xvec.R3[int8](0, -100, 50, 100, 100, -50)
	v := xvec.V3[int8]

	tests := []struct {
		name string
		op   func() (xvec.Rect3[int8], error)
		r    xvec.Rect3[int8]
		err  string
	}{
		{name: "CheckedNeg", op: r.CheckedNeg, r: xvec.R3[int8](0, 100, -50, -100, -100, 50)},
		{name: "CheckedAdd", op: func() (xvec.Rect3[int8], error) { return r.CheckedAdd(v(0, 0, 78)) }, err: "point0: z: overflow"},
		{name: "CheckedAddScalar", op: func() (xvec.Rect3[int8], error) { return r.CheckedAddScalar(27) }, r: xvec.R3[int8](27, -73, 77, 127, 127, -23)},
		{name: "CheckedSub", op: func() (xvec.Rect3[int8], error) { return r.CheckedSub(v(0, 29, 0)) }, err: "point0: y: overflow"},
		{name: "CheckedSubScalar", op: func() (xvec.Rect3[int8], error) { return r.CheckedSubScalar(-28) }, err: "point1: x: overflow"},
		{name: "CheckedMul", op: func() (xvec.Rect3[int8], error) { return r.CheckedMul(v(1, 1, 3)) }, err: "point0: z: overflow"},
		{name: "CheckedMulScalar", op: func() (xvec.Rect3[int8], error) { return r.CheckedMulScalar(-1) }, r: xvec.R3[int8](0, 100, -50, -100, -100, 50)},
		{name: "CheckedDiv", op: func() (xvec.Rect3[int8], error) { return r.CheckedDiv(v(1, 1, 0)) }, err: "point0: z: divide by zero"},
		{name: "CheckedDivScalar", op: func() (xvec.Rect3[int8], error) { return r.CheckedDivScalar(2) }, r: xvec.R3[int8](0, -50, 25, 50, 50, -25)},

		{name: "SaturatingNeg", op: wrapOK(r.SaturatingNeg), r: xvec.R3[int8](0, 100, -50, -100, -100, 50)},
		{name: "SaturatingAdd", op: wrapOK(func() xvec.Rect3[int8] { return r.SaturatingAdd(v(100, -50, 100)) }), r: xvec.R3[int8](100, -128, 127, 127, 50, 50)},
		{name: "SaturatingAddScalar", op: wrapOK(func() xvec.Rect3[int8] { return r.SaturatingAddScalar(100) }), r: xvec.R3[int8](100, 0, 127, 127, 127, 50)},
		{name: "SaturatingSub", op: wrapOK(func() xvec.Rect3[int8] { return r.SaturatingSub(v(0, 100, -100)) }), r: xvec.R3[int8](0, -128, 127, 100, 0, 50)},
		{name: "SaturatingSubScalar", op: wrapOK(func() xvec.Rect3[int8] { return r.SaturatingSubScalar(100) }), r: xvec.R3[int8](-100, -128, -50, 0, 0, -128)},
		{name: "SaturatingMul", op: wrapOK(func() xvec.Rect3[int8] { return r.SaturatingMul(v(2, 2, 2)) }), r: xvec.R3[int8](0, -128, 100, 127, 127, -100)},
		{name: "SaturatingMulScalar", op: wrapOK(func() xvec.Rect3[int8] { return r.SaturatingMulScalar(3) }), r: xvec.R3[int8](0, -128, 127, 127, 127, -128)},

		{name: "WrappingNeg", op: wrapOK(r.WrappingNeg), r: xvec.R3[int8](0, 100, -50, -100, -100, 50)},
		{name: "WrappingAdd", op: wrapOK(func() xvec.Rect3[int8] { return r.WrappingAdd(v(100, -50, 100)) }), r: xvec.R3[int8](100, 106, -106, -56, 50, 50)},
		{name: "WrappingAddScalar", op: wrapOK(func() xvec.Rect3[int8] { return r.WrappingAddScalar(100) }), r: xvec.R3[int8](100, 0, -106, -56, -56, 50)},
		{name: "WrappingSub", op: wrapOK(func() xvec.Rect3[int8] { return r.WrappingSub(v(0, 100, -100)) }), r: xvec.R3[int8](0, 56, -106, 100, 0, 50)},
		{name: "WrappingSubScalar", op: wrapOK(func() xvec.Rect3[int8] { return r.WrappingSubScalar(100) }), r: xvec.R3[int8](-100, 56, -50, 0, 0, 106)},
		{name: "WrappingMul", op: wrapOK(func() xvec.Rect3[int8] { return r.WrappingMul(v(2, 2, 2)) }), r: xvec.R3[int8](0, 56, 100, -56, -56, -100)},
		{name: "WrappingMulScalar", op: wrapOK(func() xvec.Rect3[int8] { return r.WrappingMulScalar(3) }), r: xvec.R3[int8](0, -44, -106, 44, 44, 106)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.op()
			if test.err != "" {
				require.EqualError(t, err, test.err)
				require.Equal(t, xvec.Rect3[int8]{}, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.r, got)
		})
	}
}

func wrapOK[T any](f func() T) func() (T, error) {
	return func() (T, error) { return f(), nil }
}

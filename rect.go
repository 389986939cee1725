package xvec

import (
	"cmp"
	"fmt"

	"deedles.dev/xvec/num"
)

// Rect2 is an axis-aligned rectangle defined by two opposite corners.
//
// Nothing requires P1 to be greater than P0. A rectangle may
// temporarily hold unordered corners, for example while it is grown by
// a negative amount, so methods that need a canonical form say so. Use
// [Rect2.Ordered] to obtain one.
type Rect2[T num.Scalar] struct {
	P0 Vec2[T] `json:"point0" yaml:"point0"`
	P1 Vec2[T] `json:"point1" yaml:"point1"`
}

// R2 is shorthand for Rect2[T]{P0: V2(x0, y0), P1: V2(x1, y1)}.
func R2[T num.Scalar](x0, y0, x1, y1 T) Rect2[T] {
	return Rect2[T]{P0: V2(x0, y0), P1: V2(x1, y1)}
}

// R2FromSize returns the rectangle with P0 at the origin and P1 at
// (w, h).
func R2FromSize[T num.Scalar](w, h T) Rect2[T] {
	return Rect2FromSize(V2(w, h))
}

// Rect2FromSize returns the rectangle with P0 at the origin and P1 at
// size.
func Rect2FromSize[T num.Scalar](size Vec2[T]) Rect2[T] {
	return Rect2[T]{P1: size}
}

// Width returns r.P1.X - r.P0.X.
func (r Rect2[T]) Width() T {
	return r.P1.X - r.P0.X
}

// Height returns r.P1.Y - r.P0.Y.
func (r Rect2[T]) Height() T {
	return r.P1.Y - r.P0.Y
}

// Size returns r.P1 - r.P0.
func (r Rect2[T]) Size() Vec2[T] {
	return r.P1.Sub(r.P0)
}

// IsPartiallyOrdered reports whether each component of r.P1 is greater
// than or equal to the corresponding component of r.P0. Incomparable
// components, such as NaN, are not ordered.
func (r Rect2[T]) IsPartiallyOrdered() bool {
	return r.P1.X >= r.P0.X && r.P1.Y >= r.P0.Y
}

// IsOrdered is like IsPartiallyOrdered but compares components with
// [cmp.Compare], which totally orders NaN before every other value.
// For integer scalars the two are identical.
func (r Rect2[T]) IsOrdered() bool {
	return cmp.Compare(r.P1.X, r.P0.X) >= 0 && cmp.Compare(r.P1.Y, r.P0.Y) >= 0
}

// IsPartiallyPositive reports whether each component of r.P1 is
// strictly greater than the corresponding component of r.P0, meaning
// that r encloses a non-empty area.
func (r Rect2[T]) IsPartiallyPositive() bool {
	return r.P1.X > r.P0.X && r.P1.Y > r.P0.Y
}

// IsPositive is like IsPartiallyPositive but compares components with
// [cmp.Compare].
func (r Rect2[T]) IsPositive() bool {
	return cmp.Compare(r.P1.X, r.P0.X) > 0 && cmp.Compare(r.P1.Y, r.P0.Y) > 0
}

// PartiallyOrdered returns a copy of r with each pair of corresponding
// components of r.P0 and r.P1 sorted into ascending order. Each axis is
// sorted independently, so this is not the same as swapping the
// corners. Incomparable components are left as they are.
func (r Rect2[T]) PartiallyOrdered() Rect2[T] {
	x0, x1 := num.PartialSort(r.P0.X, r.P1.X)
	y0, y1 := num.PartialSort(r.P0.Y, r.P1.Y)
	return R2(x0, y0, x1, y1)
}

// Ordered is like PartiallyOrdered but sorts with [num.Sort].
func (r Rect2[T]) Ordered() Rect2[T] {
	x0, x1 := num.Sort(r.P0.X, r.P1.X)
	y0, y1 := num.Sort(r.P0.Y, r.P1.Y)
	return R2(x0, y0, x1, y1)
}

// Expand returns the smallest rectangle that contains both r and o. It
// assumes that both are positive and simply returns r if either of
// them is not.
//
// Incomparable components resolve to r's value for P0 and o's value
// for P1, following [num.PartialMin] and [num.PartialMax].
func (r Rect2[T]) Expand(o Rect2[T]) Rect2[T] {
	if !r.IsPartiallyPositive() || !o.IsPartiallyPositive() {
		return r
	}

	return Rect2[T]{
		P0: r.P0.PartialMin(o.P0),
		P1: r.P1.PartialMax(o.P1),
	}
}

// Intersect returns the intersection of r and o. It returns false if
// either rectangle is not positive or if they do not overlap. Touching
// edges are not an overlap.
func (r Rect2[T]) Intersect(o Rect2[T]) (Rect2[T], bool) {
	if !r.IsPartiallyPositive() || !o.IsPartiallyPositive() {
		return Rect2[T]{}, false
	}

	i := Rect2[T]{
		P0: r.P0.PartialMax(o.P0),
		P1: r.P1.PartialMin(o.P1),
	}
	if !i.IsPartiallyPositive() {
		return Rect2[T]{}, false
	}
	return i, true
}

func (r Rect2[T]) String() string {
	return fmt.Sprintf("%v-%v", r.P0, r.P1)
}

// Rect3 is an axis-aligned rectangular prism defined by two opposite
// corners. Like [Rect2], its corners are not required to be ordered.
type Rect3[T num.Scalar] struct {
	P0 Vec3[T] `json:"point0" yaml:"point0"`
	P1 Vec3[T] `json:"point1" yaml:"point1"`
}

// R3 is shorthand for Rect3[T]{P0: V3(x0, y0, z0), P1: V3(x1, y1, z1)}.
func R3[T num.Scalar](x0, y0, z0, x1, y1, z1 T) Rect3[T] {
	return Rect3[T]{P0: V3(x0, y0, z0), P1: V3(x1, y1, z1)}
}

// R3FromSize returns the prism with P0 at the origin and P1 at
// (w, h, d).
func R3FromSize[T num.Scalar](w, h, d T) Rect3[T] {
	return Rect3FromSize(V3(w, h, d))
}

// Rect3FromSize returns the prism with P0 at the origin and P1 at size.
func Rect3FromSize[T num.Scalar](size Vec3[T]) Rect3[T] {
	return Rect3[T]{P1: size}
}

// Width returns r.P1.X - r.P0.X.
func (r Rect3[T]) Width() T {
	return r.P1.X - r.P0.X
}

// Height returns r.P1.Y - r.P0.Y.
func (r Rect3[T]) Height() T {
	return r.P1.Y - r.P0.Y
}

// Depth returns r.P1.Z - r.P0.Z.
func (r Rect3[T]) Depth() T {
	return r.P1.Z - r.P0.Z
}

// Size returns r.P1 - r.P0.
func (r Rect3[T]) Size() Vec3[T] {
	return r.P1.Sub(r.P0)
}

// IsPartiallyOrdered is the three-dimensional equivalent of
// [Rect2.IsPartiallyOrdered].
func (r Rect3[T]) IsPartiallyOrdered() bool {
	return r.P1.X >= r.P0.X && r.P1.Y >= r.P0.Y && r.P1.Z >= r.P0.Z
}

// IsOrdered is the three-dimensional equivalent of [Rect2.IsOrdered].
func (r Rect3[T]) IsOrdered() bool {
	return cmp.Compare(r.P1.X, r.P0.X) >= 0 &&
		cmp.Compare(r.P1.Y, r.P0.Y) >= 0 &&
		cmp.Compare(r.P1.Z, r.P0.Z) >= 0
}

// IsPartiallyPositive is the three-dimensional equivalent of
// [Rect2.IsPartiallyPositive].
func (r Rect3[T]) IsPartiallyPositive() bool {
	return r.P1.X > r.P0.X && r.P1.Y > r.P0.Y && r.P1.Z > r.P0.Z
}

// IsPositive is the three-dimensional equivalent of [Rect2.IsPositive].
func (r Rect3[T]) IsPositive() bool {
	return cmp.Compare(r.P1.X, r.P0.X) > 0 &&
		cmp.Compare(r.P1.Y, r.P0.Y) > 0 &&
		cmp.Compare(r.P1.Z, r.P0.Z) > 0
}

// PartiallyOrdered sorts each axis of r independently. See
// [Rect2.PartiallyOrdered].
func (r Rect3[T]) PartiallyOrdered() Rect3[T] {
	x0, x1 := num.PartialSort(r.P0.X, r.P1.X)
	y0, y1 := num.PartialSort(r.P0.Y, r.P1.Y)
	z0, z1 := num.PartialSort(r.P0.Z, r.P1.Z)
	return R3(x0, y0, z0, x1, y1, z1)
}

// Ordered sorts each axis of r independently with [num.Sort].
func (r Rect3[T]) Ordered() Rect3[T] {
	x0, x1 := num.Sort(r.P0.X, r.P1.X)
	y0, y1 := num.Sort(r.P0.Y, r.P1.Y)
	z0, z1 := num.Sort(r.P0.Z, r.P1.Z)
	return R3(x0, y0, z0, x1, y1, z1)
}

// Expand returns the smallest prism containing both r and o, or r if
// either is not positive. See [Rect2.Expand].
func (r Rect3[T]) Expand(o Rect3[T]) Rect3[T] {
	if !r.IsPartiallyPositive() || !o.IsPartiallyPositive() {
		return r
	}

	return Rect3[T]{
		P0: r.P0.PartialMin(o.P0),
		P1: r.P1.PartialMax(o.P1),
	}
}

// Intersect returns the intersection of r and o. See
// [Rect2.Intersect].
func (r Rect3[T]) Intersect(o Rect3[T]) (Rect3[T], bool) {
	if !r.IsPartiallyPositive() || !o.IsPartiallyPositive() {
		return Rect3[T]{}, false
	}

	i := Rect3[T]{
		P0: r.P0.PartialMax(o.P0),
		P1: r.P1.PartialMin(o.P1),
	}
	if !i.IsPartiallyPositive() {
		return Rect3[T]{}, false
	}
	return i, true
}

func (r Rect3[T]) String() string {
	return fmt.Sprintf("%v-%v", r.P0, r.P1)
}

package xvec

import "deedles.dev/xvec/num"

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Add returns the component-wise sum of v and o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the component-wise product of v and o.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the component-wise quotient of v and o.
//
// Like Go's / operator, it panics if an integer component of o is
// zero. See [Vec2.CheckedDiv] for a non-panicking alternative.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X / o.X, Y: v.Y / o.Y}
}

// AddScalar returns the vector whose components are each component of
// v + s.
func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X + s, Y: v.Y + s}
}

// SubScalar returns the vector whose components are each component of
// v - s.
func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X - s, Y: v.Y - s}
}

// MulScalar returns the vector whose components are each component of
// v * s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// DivScalar returns the vector whose components are each component of
// v / s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// AddAssign sets v to v.Add(o).
func (v *Vec2[T]) AddAssign(o Vec2[T]) {
	*v = v.Add(o)
}

// SubAssign sets v to v.Sub(o).
func (v *Vec2[T]) SubAssign(o Vec2[T]) {
	*v = v.Sub(o)
}

// MulAssign sets v to v.Mul(o).
func (v *Vec2[T]) MulAssign(o Vec2[T]) {
	*v = v.Mul(o)
}

// DivAssign sets v to v.Div(o).
func (v *Vec2[T]) DivAssign(o Vec2[T]) {
	*v = v.Div(o)
}

// AddScalarAssign sets v to v.AddScalar(s).
func (v *Vec2[T]) AddScalarAssign(s T) {
	*v = v.AddScalar(s)
}

// SubScalarAssign sets v to v.SubScalar(s).
func (v *Vec2[T]) SubScalarAssign(s T) {
	*v = v.SubScalar(s)
}

// MulScalarAssign sets v to v.MulScalar(s).
func (v *Vec2[T]) MulScalarAssign(s T) {
	*v = v.MulScalar(s)
}

// DivScalarAssign sets v to v.DivScalar(s).
func (v *Vec2[T]) DivScalarAssign(s T) {
	*v = v.DivScalar(s)
}

// PartialMin returns the component-wise minimum of v and o, as
// determined by [num.PartialMin].
func (v Vec2[T]) PartialMin(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.PartialMin[T])
}

// PartialMax returns the component-wise maximum of v and o, as
// determined by [num.PartialMax].
func (v Vec2[T]) PartialMax(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.PartialMax[T])
}

// Sum returns the sum of the components of v. The components are
// added strictly from left to right, so the result is (v.X + v.Y) for
// Vec2, ((v.X + v.Y) + v.Z) for Vec3, and so on. This matters for
// floating-point types, where addition is not associative.
func (v Vec2[T]) Sum() T {
	return v.X + v.Y
}

// Product returns the product of the components of v, multiplied
// left to right like [Vec2.Sum].
func (v Vec2[T]) Product() T {
	return v.X * v.Y
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns v + o, component-wise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o, component-wise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns v * o, component-wise.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Div returns v / o, component-wise.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// AddScalar returns v + s, broadcasting s to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubScalar returns v - s, broadcasting s to every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// MulScalar returns v * s, broadcasting s to every component.
func (v Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar returns v / s, broadcasting s to every component.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// AddAssign sets v to v.Add(o).
func (v *Vec3[T]) AddAssign(o Vec3[T]) {
	*v = v.Add(o)
}

// SubAssign sets v to v.Sub(o).
func (v *Vec3[T]) SubAssign(o Vec3[T]) {
	*v = v.Sub(o)
}

// MulAssign sets v to v.Mul(o).
func (v *Vec3[T]) MulAssign(o Vec3[T]) {
	*v = v.Mul(o)
}

// DivAssign sets v to v.Div(o).
func (v *Vec3[T]) DivAssign(o Vec3[T]) {
	*v = v.Div(o)
}

// AddScalarAssign sets v to v.AddScalar(s).
func (v *Vec3[T]) AddScalarAssign(s T) {
	*v = v.AddScalar(s)
}

// SubScalarAssign sets v to v.SubScalar(s).
func (v *Vec3[T]) SubScalarAssign(s T) {
	*v = v.SubScalar(s)
}

// MulScalarAssign sets v to v.MulScalar(s).
func (v *Vec3[T]) MulScalarAssign(s T) {
	*v = v.MulScalar(s)
}

// DivScalarAssign sets v to v.DivScalar(s).
func (v *Vec3[T]) DivScalarAssign(s T) {
	*v = v.DivScalar(s)
}

// PartialMin returns the component-wise [num.PartialMin] of v and o.
func (v Vec3[T]) PartialMin(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.PartialMin[T])
}

// PartialMax returns the component-wise [num.PartialMax] of v and o.
func (v Vec3[T]) PartialMax(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.PartialMax[T])
}

// Sum returns the sum of the components of v, added left to right.
func (v Vec3[T]) Sum() T {
	return v.X + v.Y + v.Z
}

// Product returns the product of the components of v, multiplied left
// to right.
func (v Vec3[T]) Product() T {
	return v.X * v.Y * v.Z
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Add returns v + o, component-wise.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Sub returns v - o, component-wise.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Mul returns v * o, component-wise.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W * o.W}
}

// Div returns v / o, component-wise.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z, W: v.W / o.W}
}

// AddScalar returns v + s, broadcasting s to every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

// SubScalar returns v - s, broadcasting s to every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// MulScalar returns v * s, broadcasting s to every component.
func (v Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivScalar returns v / s, broadcasting s to every component.
func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// AddAssign sets v to v.Add(o).
func (v *Vec4[T]) AddAssign(o Vec4[T]) {
	*v = v.Add(o)
}

// SubAssign sets v to v.Sub(o).
func (v *Vec4[T]) SubAssign(o Vec4[T]) {
	*v = v.Sub(o)
}

// MulAssign sets v to v.Mul(o).
func (v *Vec4[T]) MulAssign(o Vec4[T]) {
	*v = v.Mul(o)
}

// DivAssign sets v to v.Div(o).
func (v *Vec4[T]) DivAssign(o Vec4[T]) {
	*v = v.Div(o)
}

// AddScalarAssign sets v to v.AddScalar(s).
func (v *Vec4[T]) AddScalarAssign(s T) {
	*v = v.AddScalar(s)
}

// SubScalarAssign sets v to v.SubScalar(s).
func (v *Vec4[T]) SubScalarAssign(s T) {
	*v = v.SubScalar(s)
}

// MulScalarAssign sets v to v.MulScalar(s).
func (v *Vec4[T]) MulScalarAssign(s T) {
	*v = v.MulScalar(s)
}

// DivScalarAssign sets v to v.DivScalar(s).
func (v *Vec4[T]) DivScalarAssign(s T) {
	*v = v.DivScalar(s)
}

// PartialMin returns the component-wise [num.PartialMin] of v and o.
func (v Vec4[T]) PartialMin(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.PartialMin[T])
}

// PartialMax returns the component-wise [num.PartialMax] of v and o.
func (v Vec4[T]) PartialMax(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.PartialMax[T])
}

// Sum returns the sum of the components of v, added left to right.
func (v Vec4[T]) Sum() T {
	return v.X + v.Y + v.Z + v.W
}

// Product returns the product of the components of v, multiplied left
// to right.
func (v Vec4[T]) Product() T {
	return v.X * v.Y * v.Z * v.W
}

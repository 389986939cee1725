package xvec

import "deedles.dev/xvec/num"

// WrappingNeg returns the negation of v using [num.WrappingNeg].
func (v Vec2[T]) WrappingNeg() Vec2[T] {
	return v.Map(num.WrappingNeg[T])
}

// WrappingAdd applies [num.WrappingAdd] to the corresponding components
// of v and o.
func (v Vec2[T]) WrappingAdd(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.WrappingAdd[T])
}

// WrappingAddScalar applies [num.WrappingAdd] to each component of v and s.
func (v Vec2[T]) WrappingAddScalar(s T) Vec2[T] {
	return v.Zip(Splat2(s), num.WrappingAdd[T])
}

// WrappingSub applies [num.WrappingSub] to the corresponding components
// of v and o.
func (v Vec2[T]) WrappingSub(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.WrappingSub[T])
}

// WrappingSubScalar applies [num.WrappingSub] to each component of v and s.
func (v Vec2[T]) WrappingSubScalar(s T) Vec2[T] {
	return v.Zip(Splat2(s), num.WrappingSub[T])
}

// WrappingMul applies [num.WrappingMul] to the corresponding components
// of v and o.
func (v Vec2[T]) WrappingMul(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.WrappingMul[T])
}

// WrappingMulScalar applies [num.WrappingMul] to each component of v and s.
func (v Vec2[T]) WrappingMulScalar(s T) Vec2[T] {
	return v.Zip(Splat2(s), num.WrappingMul[T])
}

// WrappingNeg returns the negation of v using [num.WrappingNeg].
func (v Vec3[T]) WrappingNeg() Vec3[T] {
	return v.Map(num.WrappingNeg[T])
}

// WrappingAdd is the component-wise [num.WrappingAdd] of v and o.
func (v Vec3[T]) WrappingAdd(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.WrappingAdd[T])
}

// WrappingAddScalar is like WrappingAdd with s broadcast to every component.
func (v Vec3[T]) WrappingAddScalar(s T) Vec3[T] {
	return v.Zip(Splat3(s), num.WrappingAdd[T])
}

// WrappingSub is the component-wise [num.WrappingSub] of v and o.
func (v Vec3[T]) WrappingSub(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.WrappingSub[T])
}

// WrappingSubScalar is like WrappingSub with s broadcast to every component.
func (v Vec3[T]) WrappingSubScalar(s T) Vec3[T] {
	return v.Zip(Splat3(s), num.WrappingSub[T])
}

// WrappingMul is the component-wise [num.WrappingMul] of v and o.
func (v Vec3[T]) WrappingMul(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.WrappingMul[T])
}

// WrappingMulScalar is like WrappingMul with s broadcast to every component.
func (v Vec3[T]) WrappingMulScalar(s T) Vec3[T] {
	return v.Zip(Splat3(s), num.WrappingMul[T])
}

// WrappingNeg returns the negation of v using [num.WrappingNeg].
func (v Vec4[T]) WrappingNeg() Vec4[T] {
	return v.Map(num.WrappingNeg[T])
}

// WrappingAdd is the component-wise [num.WrappingAdd] of v and o.
func (v Vec4[T]) WrappingAdd(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.WrappingAdd[T])
}

// WrappingAddScalar is like WrappingAdd with s broadcast to every component.
func (v Vec4[T]) WrappingAddScalar(s T) Vec4[T] {
	return v.Zip(Splat4(s), num.WrappingAdd[T])
}

// WrappingSub is the component-wise [num.WrappingSub] of v and o.
func (v Vec4[T]) WrappingSub(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.WrappingSub[T])
}

// WrappingSubScalar is like WrappingSub with s broadcast to every component.
func (v Vec4[T]) WrappingSubScalar(s T) Vec4[T] {
	return v.Zip(Splat4(s), num.WrappingSub[T])
}

// WrappingMul is the component-wise [num.WrappingMul] of v and o.
func (v Vec4[T]) WrappingMul(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.WrappingMul[T])
}

// WrappingMulScalar is like WrappingMul with s broadcast to every component.
func (v Vec4[T]) WrappingMulScalar(s T) Vec4[T] {
	return v.Zip(Splat4(s), num.WrappingMul[T])
}

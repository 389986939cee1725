package xvec

import "deedles.dev/xvec/num"

// SaturatingNeg returns the negation of v using [num.SaturatingNeg].
func (v Vec2[T]) SaturatingNeg() Vec2[T] {
	return v.Map(num.SaturatingNeg[T])
}

// SaturatingAdd applies [num.SaturatingAdd] to the corresponding components
// of v and o.
func (v Vec2[T]) SaturatingAdd(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.SaturatingAdd[T])
}

// SaturatingAddScalar applies [num.SaturatingAdd] to each component of v and s.
func (v Vec2[T]) SaturatingAddScalar(s T) Vec2[T] {
	return v.Zip(Splat2(s), num.SaturatingAdd[T])
}

// SaturatingSub applies [num.SaturatingSub] to the corresponding components
// of v and o.
func (v Vec2[T]) SaturatingSub(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.SaturatingSub[T])
}

// SaturatingSubScalar applies [num.SaturatingSub] to each component of v and s.
func (v Vec2[T]) SaturatingSubScalar(s T) Vec2[T] {
	return v.Zip(Splat2(s), num.SaturatingSub[T])
}

// SaturatingMul applies [num.SaturatingMul] to the corresponding components
// of v and o.
func (v Vec2[T]) SaturatingMul(o Vec2[T]) Vec2[T] {
	return v.Zip(o, num.SaturatingMul[T])
}

// SaturatingMulScalar applies [num.SaturatingMul] to each component of v and s.
func (v Vec2[T]) SaturatingMulScalar(s T) Vec2[T] {
	return v.Zip(Splat2(s), num.SaturatingMul[T])
}

// SaturatingNeg returns the negation of v using [num.SaturatingNeg].
func (v Vec3[T]) SaturatingNeg() Vec3[T] {
	return v.Map(num.SaturatingNeg[T])
}

// SaturatingAdd is the component-wise [num.SaturatingAdd] of v and o.
func (v Vec3[T]) SaturatingAdd(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.SaturatingAdd[T])
}

// SaturatingAddScalar is like SaturatingAdd with s broadcast to every component.
func (v Vec3[T]) SaturatingAddScalar(s T) Vec3[T] {
	return v.Zip(Splat3(s), num.SaturatingAdd[T])
}

// SaturatingSub is the component-wise [num.SaturatingSub] of v and o.
func (v Vec3[T]) SaturatingSub(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.SaturatingSub[T])
}

// SaturatingSubScalar is like SaturatingSub with s broadcast to every component.
func (v Vec3[T]) SaturatingSubScalar(s T) Vec3[T] {
	return v.Zip(Splat3(s), num.SaturatingSub[T])
}

// SaturatingMul is the component-wise [num.SaturatingMul] of v and o.
func (v Vec3[T]) SaturatingMul(o Vec3[T]) Vec3[T] {
	return v.Zip(o, num.SaturatingMul[T])
}

// SaturatingMulScalar is like SaturatingMul with s broadcast to every component.
func (v Vec3[T]) SaturatingMulScalar(s T) Vec3[T] {
	return v.Zip(Splat3(s), num.SaturatingMul[T])
}

// SaturatingNeg returns the negation of v using [num.SaturatingNeg].
func (v Vec4[T]) SaturatingNeg() Vec4[T] {
	return v.Map(num.SaturatingNeg[T])
}

// SaturatingAdd is the component-wise [num.SaturatingAdd] of v and o.
func (v Vec4[T]) SaturatingAdd(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.SaturatingAdd[T])
}

// SaturatingAddScalar is like SaturatingAdd with s broadcast to every component.
func (v Vec4[T]) SaturatingAddScalar(s T) Vec4[T] {
	return v.Zip(Splat4(s), num.SaturatingAdd[T])
}

// SaturatingSub is the component-wise [num.SaturatingSub] of v and o.
func (v Vec4[T]) SaturatingSub(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.SaturatingSub[T])
}

// SaturatingSubScalar is like SaturatingSub with s broadcast to every component.
func (v Vec4[T]) SaturatingSubScalar(s T) Vec4[T] {
	return v.Zip(Splat4(s), num.SaturatingSub[T])
}

// SaturatingMul is the component-wise [num.SaturatingMul] of v and o.
func (v Vec4[T]) SaturatingMul(o Vec4[T]) Vec4[T] {
	return v.Zip(o, num.SaturatingMul[T])
}

// SaturatingMulScalar is like SaturatingMul with s broadcast to every component.
func (v Vec4[T]) SaturatingMulScalar(s T) Vec4[T] {
	return v.Zip(Splat4(s), num.SaturatingMul[T])
}

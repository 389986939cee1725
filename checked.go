package xvec

import "deedles.dev/xvec/num"

// The checked operations return the first error reported by the
// corresponding num function, in X, Y, Z, W order, wrapped in a
// [*FieldError]. On error the returned vector is always the zero vector.

// CheckedNeg returns the negation of v using [num.CheckedNeg].
func (v Vec2[T]) CheckedNeg() (Vec2[T], error) {
	return v.TryMap(num.CheckedNeg[T])
}

// CheckedAdd applies [num.CheckedAdd] to the corresponding components
// of v and o.
func (v Vec2[T]) CheckedAdd(o Vec2[T]) (Vec2[T], error) {
	return v.TryZip(o, num.CheckedAdd[T])
}

// CheckedAddScalar applies [num.CheckedAdd] to each component of v and s.
func (v Vec2[T]) CheckedAddScalar(s T) (Vec2[T], error) {
	return v.TryZip(Splat2(s), num.CheckedAdd[T])
}

// CheckedSub applies [num.CheckedSub] to the corresponding components
// of v and o.
func (v Vec2[T]) CheckedSub(o Vec2[T]) (Vec2[T], error) {
	return v.TryZip(o, num.CheckedSub[T])
}

// CheckedSubScalar applies [num.CheckedSub] to each component of v and s.
func (v Vec2[T]) CheckedSubScalar(s T) (Vec2[T], error) {
	return v.TryZip(Splat2(s), num.CheckedSub[T])
}

// CheckedMul applies [num.CheckedMul] to the corresponding components
// of v and o.
func (v Vec2[T]) CheckedMul(o Vec2[T]) (Vec2[T], error) {
	return v.TryZip(o, num.CheckedMul[T])
}

// CheckedMulScalar applies [num.CheckedMul] to each component of v and s.
func (v Vec2[T]) CheckedMulScalar(s T) (Vec2[T], error) {
	return v.TryZip(Splat2(s), num.CheckedMul[T])
}

// CheckedDiv applies [num.CheckedDiv] to the corresponding components
// of v and o.
func (v Vec2[T]) CheckedDiv(o Vec2[T]) (Vec2[T], error) {
	return v.TryZip(o, num.CheckedDiv[T])
}

// CheckedDivScalar applies [num.CheckedDiv] to each component of v and s.
func (v Vec2[T]) CheckedDivScalar(s T) (Vec2[T], error) {
	return v.TryZip(Splat2(s), num.CheckedDiv[T])
}

// CheckedNeg returns the negation of v using [num.CheckedNeg].
func (v Vec3[T]) CheckedNeg() (Vec3[T], error) {
	return v.TryMap(num.CheckedNeg[T])
}

// CheckedAdd is the component-wise [num.CheckedAdd] of v and o.
func (v Vec3[T]) CheckedAdd(o Vec3[T]) (Vec3[T], error) {
	return v.TryZip(o, num.CheckedAdd[T])
}

// CheckedAddScalar is like CheckedAdd with s broadcast to every component.
func (v Vec3[T]) CheckedAddScalar(s T) (Vec3[T], error) {
	return v.TryZip(Splat3(s), num.CheckedAdd[T])
}

// CheckedSub is the component-wise [num.CheckedSub] of v and o.
func (v Vec3[T]) CheckedSub(o Vec3[T]) (Vec3[T], error) {
	return v.TryZip(o, num.CheckedSub[T])
}

// CheckedSubScalar is like CheckedSub with s broadcast to every component.
func (v Vec3[T]) CheckedSubScalar(s T) (Vec3[T], error) {
	return v.TryZip(Splat3(s), num.CheckedSub[T])
}

// CheckedMul is the component-wise [num.CheckedMul] of v and o.
func (v Vec3[T]) CheckedMul(o Vec3[T]) (Vec3[T], error) {
	return v.TryZip(o, num.CheckedMul[T])
}

// CheckedMulScalar is like CheckedMul with s broadcast to every component.
func (v Vec3[T]) CheckedMulScalar(s T) (Vec3[T], error) {
	return v.TryZip(Splat3(s), num.CheckedMul[T])
}

// CheckedDiv is the component-wise [num.CheckedDiv] of v and o.
func (v Vec3[T]) CheckedDiv(o Vec3[T]) (Vec3[T], error) {
	return v.TryZip(o, num.CheckedDiv[T])
}

// CheckedDivScalar is like CheckedDiv with s broadcast to every component.
func (v Vec3[T]) CheckedDivScalar(s T) (Vec3[T], error) {
	return v.TryZip(Splat3(s), num.CheckedDiv[T])
}

// CheckedNeg returns the negation of v using [num.CheckedNeg].
func (v Vec4[T]) CheckedNeg() (Vec4[T], error) {
	return v.TryMap(num.CheckedNeg[T])
}

// CheckedAdd is the component-wise [num.CheckedAdd] of v and o.
func (v Vec4[T]) CheckedAdd(o Vec4[T]) (Vec4[T], error) {
	return v.TryZip(o, num.CheckedAdd[T])
}

// CheckedAddScalar is like CheckedAdd with s broadcast to every component.
func (v Vec4[T]) CheckedAddScalar(s T) (Vec4[T], error) {
	return v.TryZip(Splat4(s), num.CheckedAdd[T])
}

// CheckedSub is the component-wise [num.CheckedSub] of v and o.
func (v Vec4[T]) CheckedSub(o Vec4[T]) (Vec4[T], error) {
	return v.TryZip(o, num.CheckedSub[T])
}

// CheckedSubScalar is like CheckedSub with s broadcast to every component.
func (v Vec4[T]) CheckedSubScalar(s T) (Vec4[T], error) {
	return v.TryZip(Splat4(s), num.CheckedSub[T])
}

// CheckedMul is the component-wise [num.CheckedMul] of v and o.
func (v Vec4[T]) CheckedMul(o Vec4[T]) (Vec4[T], error) {
	return v.TryZip(o, num.CheckedMul[T])
}

// CheckedMulScalar is like CheckedMul with s broadcast to every component.
func (v Vec4[T]) CheckedMulScalar(s T) (Vec4[T], error) {
	return v.TryZip(Splat4(s), num.CheckedMul[T])
}

// CheckedDiv is the component-wise [num.CheckedDiv] of v and o.
func (v Vec4[T]) CheckedDiv(o Vec4[T]) (Vec4[T], error) {
	return v.TryZip(o, num.CheckedDiv[T])
}

// CheckedDivScalar is like CheckedDiv with s broadcast to every component.
func (v Vec4[T]) CheckedDivScalar(s T) (Vec4[T], error) {
	return v.TryZip(Splat4(s), num.CheckedDiv[T])
}

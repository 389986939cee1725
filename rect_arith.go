package xvec

func (r Rect2[T]) tryLift(f func(Vec2[T]) (Vec2[T], error)) (Rect2[T], error) {
	p0, p1, err := tryPair(r.P0, r.P1, f)
	return Rect2[T]{P0: p0, P1: p1}, err
}

// Neg negates both corners of r.
func (r Rect2[T]) Neg() Rect2[T] {
	return Rect2[T]{P0: r.P0.Neg(), P1: r.P1.Neg()}
}

// Add returns r translated by v.
func (r Rect2[T]) Add(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.Add(v), P1: r.P1.Add(v)}
}

// AddScalar applies [Vec2.AddScalar] to both corners of r.
func (r Rect2[T]) AddScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.AddScalar(s), P1: r.P1.AddScalar(s)}
}

// Sub returns r translated by -v.
func (r Rect2[T]) Sub(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.Sub(v), P1: r.P1.Sub(v)}
}

// SubScalar applies [Vec2.SubScalar] to both corners of r.
func (r Rect2[T]) SubScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.SubScalar(s), P1: r.P1.SubScalar(s)}
}

// Mul returns r with both corners multiplied component-wise by v.
func (r Rect2[T]) Mul(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.Mul(v), P1: r.P1.Mul(v)}
}

// MulScalar applies [Vec2.MulScalar] to both corners of r.
func (r Rect2[T]) MulScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.MulScalar(s), P1: r.P1.MulScalar(s)}
}

// Div returns r with both corners divided component-wise by v.
func (r Rect2[T]) Div(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.Div(v), P1: r.P1.Div(v)}
}

// DivScalar applies [Vec2.DivScalar] to both corners of r.
func (r Rect2[T]) DivScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.DivScalar(s), P1: r.P1.DivScalar(s)}
}

// AddAssign sets r to r.Add(v).
func (r *Rect2[T]) AddAssign(v Vec2[T]) {
	*r = r.Add(v)
}

// AddScalarAssign sets r to r.AddScalar(s).
func (r *Rect2[T]) AddScalarAssign(s T) {
	*r = r.AddScalar(s)
}

// SubAssign sets r to r.Sub(v).
func (r *Rect2[T]) SubAssign(v Vec2[T]) {
	*r = r.Sub(v)
}

// SubScalarAssign sets r to r.SubScalar(s).
func (r *Rect2[T]) SubScalarAssign(s T) {
	*r = r.SubScalar(s)
}

// MulAssign sets r to r.Mul(v).
func (r *Rect2[T]) MulAssign(v Vec2[T]) {
	*r = r.Mul(v)
}

// MulScalarAssign sets r to r.MulScalar(s).
func (r *Rect2[T]) MulScalarAssign(s T) {
	*r = r.MulScalar(s)
}

// DivAssign sets r to r.Div(v).
func (r *Rect2[T]) DivAssign(v Vec2[T]) {
	*r = r.Div(v)
}

// DivScalarAssign sets r to r.DivScalar(s).
func (r *Rect2[T]) DivScalarAssign(s T) {
	*r = r.DivScalar(s)
}

// CheckedNeg negates both corners of r with [Vec2.CheckedNeg]. Errors
// name the failing corner, point0 before point1, and wrap the
// corner's own [*FieldError].
func (r Rect2[T]) CheckedNeg() (Rect2[T], error) {
	return r.tryLift(Vec2[T].CheckedNeg)
}

// CheckedAdd applies [Vec2.CheckedAdd] with v to both corners of r.
func (r Rect2[T]) CheckedAdd(v Vec2[T]) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedAdd(v) })
}

// CheckedAddScalar applies [Vec2.CheckedAddScalar] to both corners of r.
func (r Rect2[T]) CheckedAddScalar(s T) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedAddScalar(s) })
}

// CheckedSub applies [Vec2.CheckedSub] with v to both corners of r.
func (r Rect2[T]) CheckedSub(v Vec2[T]) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedSub(v) })
}

// CheckedSubScalar applies [Vec2.CheckedSubScalar] to both corners of r.
func (r Rect2[T]) CheckedSubScalar(s T) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedSubScalar(s) })
}

// CheckedMul applies [Vec2.CheckedMul] with v to both corners of r.
func (r Rect2[T]) CheckedMul(v Vec2[T]) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedMul(v) })
}

// CheckedMulScalar applies [Vec2.CheckedMulScalar] to both corners of r.
func (r Rect2[T]) CheckedMulScalar(s T) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedMulScalar(s) })
}

// CheckedDiv applies [Vec2.CheckedDiv] with v to both corners of r.
func (r Rect2[T]) CheckedDiv(v Vec2[T]) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedDiv(v) })
}

// CheckedDivScalar applies [Vec2.CheckedDivScalar] to both corners of r.
func (r Rect2[T]) CheckedDivScalar(s T) (Rect2[T], error) {
	return r.tryLift(func(p Vec2[T]) (Vec2[T], error) { return p.CheckedDivScalar(s) })
}

// SaturatingNeg applies [Vec2.SaturatingNeg] to both corners of r.
func (r Rect2[T]) SaturatingNeg() Rect2[T] {
	return Rect2[T]{P0: r.P0.SaturatingNeg(), P1: r.P1.SaturatingNeg()}
}

// SaturatingAdd applies [Vec2.SaturatingAdd] with v to both corners of r.
func (r Rect2[T]) SaturatingAdd(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.SaturatingAdd(v), P1: r.P1.SaturatingAdd(v)}
}

// SaturatingAddScalar applies [Vec2.SaturatingAddScalar] to both corners of r.
func (r Rect2[T]) SaturatingAddScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.SaturatingAddScalar(s), P1: r.P1.SaturatingAddScalar(s)}
}

// SaturatingSub applies [Vec2.SaturatingSub] with v to both corners of r.
func (r Rect2[T]) SaturatingSub(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.SaturatingSub(v), P1: r.P1.SaturatingSub(v)}
}

// SaturatingSubScalar applies [Vec2.SaturatingSubScalar] to both corners of r.
func (r Rect2[T]) SaturatingSubScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.SaturatingSubScalar(s), P1: r.P1.SaturatingSubScalar(s)}
}

// SaturatingMul applies [Vec2.SaturatingMul] with v to both corners of r.
func (r Rect2[T]) SaturatingMul(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.SaturatingMul(v), P1: r.P1.SaturatingMul(v)}
}

// SaturatingMulScalar applies [Vec2.SaturatingMulScalar] to both corners of r.
func (r Rect2[T]) SaturatingMulScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.SaturatingMulScalar(s), P1: r.P1.SaturatingMulScalar(s)}
}

// WrappingNeg applies [Vec2.WrappingNeg] to both corners of r.
func (r Rect2[T]) WrappingNeg() Rect2[T] {
	return Rect2[T]{P0: r.P0.WrappingNeg(), P1: r.P1.WrappingNeg()}
}

// WrappingAdd applies [Vec2.WrappingAdd] with v to both corners of r.
func (r Rect2[T]) WrappingAdd(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.WrappingAdd(v), P1: r.P1.WrappingAdd(v)}
}

// WrappingAddScalar applies [Vec2.WrappingAddScalar] to both corners of r.
func (r Rect2[T]) WrappingAddScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.WrappingAddScalar(s), P1: r.P1.WrappingAddScalar(s)}
}

// WrappingSub applies [Vec2.WrappingSub] with v to both corners of r.
func (r Rect2[T]) WrappingSub(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.WrappingSub(v), P1: r.P1.WrappingSub(v)}
}

// WrappingSubScalar applies [Vec2.WrappingSubScalar] to both corners of r.
func (r Rect2[T]) WrappingSubScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.WrappingSubScalar(s), P1: r.P1.WrappingSubScalar(s)}
}

// WrappingMul applies [Vec2.WrappingMul] with v to both corners of r.
func (r Rect2[T]) WrappingMul(v Vec2[T]) Rect2[T] {
	return Rect2[T]{P0: r.P0.WrappingMul(v), P1: r.P1.WrappingMul(v)}
}

// WrappingMulScalar applies [Vec2.WrappingMulScalar] to both corners of r.
func (r Rect2[T]) WrappingMulScalar(s T) Rect2[T] {
	return Rect2[T]{P0: r.P0.WrappingMulScalar(s), P1: r.P1.WrappingMulScalar(s)}
}

func (r Rect3[T]) tryLift(f func(Vec3[T]) (Vec3[T], error)) (Rect3[T], error) {
	p0, p1, err := tryPair(r.P0, r.P1, f)
	return Rect3[T]{P0: p0, P1: p1}, err
}

// Neg negates both corners of r.
func (r Rect3[T]) Neg() Rect3[T] {
	return Rect3[T]{P0: r.P0.Neg(), P1: r.P1.Neg()}
}

// Add applies [Vec3.Add] with v to both corners of r.
func (r Rect3[T]) Add(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.Add(v), P1: r.P1.Add(v)}
}

// AddScalar applies [Vec3.AddScalar] to both corners of r.
func (r Rect3[T]) AddScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.AddScalar(s), P1: r.P1.AddScalar(s)}
}

// Sub applies [Vec3.Sub] with v to both corners of r.
func (r Rect3[T]) Sub(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.Sub(v), P1: r.P1.Sub(v)}
}

// SubScalar applies [Vec3.SubScalar] to both corners of r.
func (r Rect3[T]) SubScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.SubScalar(s), P1: r.P1.SubScalar(s)}
}

// Mul applies [Vec3.Mul] with v to both corners of r.
func (r Rect3[T]) Mul(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.Mul(v), P1: r.P1.Mul(v)}
}

// MulScalar applies [Vec3.MulScalar] to both corners of r.
func (r Rect3[T]) MulScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.MulScalar(s), P1: r.P1.MulScalar(s)}
}

// Div applies [Vec3.Div] with v to both corners of r.
func (r Rect3[T]) Div(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.Div(v), P1: r.P1.Div(v)}
}

// DivScalar applies [Vec3.DivScalar] to both corners of r.
func (r Rect3[T]) DivScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.DivScalar(s), P1: r.P1.DivScalar(s)}
}

// AddAssign sets r to r.Add(v).
func (r *Rect3[T]) AddAssign(v Vec3[T]) {
	*r = r.Add(v)
}

// AddScalarAssign sets r to r.AddScalar(s).
func (r *Rect3[T]) AddScalarAssign(s T) {
	*r = r.AddScalar(s)
}

// SubAssign sets r to r.Sub(v).
func (r *Rect3[T]) SubAssign(v Vec3[T]) {
	*r = r.Sub(v)
}

// SubScalarAssign sets r to r.SubScalar(s).
func (r *Rect3[T]) SubScalarAssign(s T) {
	*r = r.SubScalar(s)
}

// MulAssign sets r to r.Mul(v).
func (r *Rect3[T]) MulAssign(v Vec3[T]) {
	*r = r.Mul(v)
}

// MulScalarAssign sets r to r.MulScalar(s).
func (r *Rect3[T]) MulScalarAssign(s T) {
	*r = r.MulScalar(s)
}

// DivAssign sets r to r.Div(v).
func (r *Rect3[T]) DivAssign(v Vec3[T]) {
	*r = r.Div(v)
}

// DivScalarAssign sets r to r.DivScalar(s).
func (r *Rect3[T]) DivScalarAssign(s T) {
	*r = r.DivScalar(s)
}

// CheckedNeg negates both corners of r with [Vec3.CheckedNeg].
func (r Rect3[T]) CheckedNeg() (Rect3[T], error) {
	return r.tryLift(Vec3[T].CheckedNeg)
}

// CheckedAdd applies [Vec3.CheckedAdd] with v to both corners of r.
func (r Rect3[T]) CheckedAdd(v Vec3[T]) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedAdd(v) })
}

// CheckedAddScalar applies [Vec3.CheckedAddScalar] to both corners of r.
func (r Rect3[T]) CheckedAddScalar(s T) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedAddScalar(s) })
}

// CheckedSub applies [Vec3.CheckedSub] with v to both corners of r.
func (r Rect3[T]) CheckedSub(v Vec3[T]) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedSub(v) })
}

// CheckedSubScalar applies [Vec3.CheckedSubScalar] to both corners of r.
func (r Rect3[T]) CheckedSubScalar(s T) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedSubScalar(s) })
}

// CheckedMul applies [Vec3.CheckedMul] with v to both corners of r.
func (r Rect3[T]) CheckedMul(v Vec3[T]) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedMul(v) })
}

// CheckedMulScalar applies [Vec3.CheckedMulScalar] to both corners of r.
func (r Rect3[T]) CheckedMulScalar(s T) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedMulScalar(s) })
}

// CheckedDiv applies [Vec3.CheckedDiv] with v to both corners of r.
func (r Rect3[T]) CheckedDiv(v Vec3[T]) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedDiv(v) })
}

// CheckedDivScalar applies [Vec3.CheckedDivScalar] to both corners of r.
func (r Rect3[T]) CheckedDivScalar(s T) (Rect3[T], error) {
	return r.tryLift(func(p Vec3[T]) (Vec3[T], error) { return p.CheckedDivScalar(s) })
}

// SaturatingNeg applies [Vec3.SaturatingNeg] to both corners of r.
func (r Rect3[T]) SaturatingNeg() Rect3[T] {
	return Rect3[T]{P0: r.P0.SaturatingNeg(), P1: r.P1.SaturatingNeg()}
}

// SaturatingAdd applies [Vec3.SaturatingAdd] with v to both corners of r.
func (r Rect3[T]) SaturatingAdd(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.SaturatingAdd(v), P1: r.P1.SaturatingAdd(v)}
}

// SaturatingAddScalar applies [Vec3.SaturatingAddScalar] to both corners of r.
func (r Rect3[T]) SaturatingAddScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.SaturatingAddScalar(s), P1: r.P1.SaturatingAddScalar(s)}
}

// SaturatingSub applies [Vec3.SaturatingSub] with v to both corners of r.
func (r Rect3[T]) SaturatingSub(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.SaturatingSub(v), P1: r.P1.SaturatingSub(v)}
}

// SaturatingSubScalar applies [Vec3.SaturatingSubScalar] to both corners of r.
func (r Rect3[T]) SaturatingSubScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.SaturatingSubScalar(s), P1: r.P1.SaturatingSubScalar(s)}
}

// SaturatingMul applies [Vec3.SaturatingMul] with v to both corners of r.
func (r Rect3[T]) SaturatingMul(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.SaturatingMul(v), P1: r.P1.SaturatingMul(v)}
}

// SaturatingMulScalar applies [Vec3.SaturatingMulScalar] to both corners of r.
func (r Rect3[T]) SaturatingMulScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.SaturatingMulScalar(s), P1: r.P1.SaturatingMulScalar(s)}
}

// WrappingNeg applies [Vec3.WrappingNeg] to both corners of r.
func (r Rect3[T]) WrappingNeg() Rect3[T] {
	return Rect3[T]{P0: r.P0.WrappingNeg(), P1: r.P1.WrappingNeg()}
}

// WrappingAdd applies [Vec3.WrappingAdd] with v to both corners of r.
func (r Rect3[T]) WrappingAdd(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.WrappingAdd(v), P1: r.P1.WrappingAdd(v)}
}

// WrappingAddScalar applies [Vec3.WrappingAddScalar] to both corners of r.
func (r Rect3[T]) WrappingAddScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.WrappingAddScalar(s), P1: r.P1.WrappingAddScalar(s)}
}

// WrappingSub applies [Vec3.WrappingSub] with v to both corners of r.
func (r Rect3[T]) WrappingSub(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.WrappingSub(v), P1: r.P1.WrappingSub(v)}
}

// WrappingSubScalar applies [Vec3.WrappingSubScalar] to both corners of r.
func (r Rect3[T]) WrappingSubScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.WrappingSubScalar(s), P1: r.P1.WrappingSubScalar(s)}
}

// WrappingMul applies [Vec3.WrappingMul] with v to both corners of r.
func (r Rect3[T]) WrappingMul(v Vec3[T]) Rect3[T] {
	return Rect3[T]{P0: r.P0.WrappingMul(v), P1: r.P1.WrappingMul(v)}
}

// WrappingMulScalar applies [Vec3.WrappingMulScalar] to both corners of r.
func (r Rect3[T]) WrappingMulScalar(s T) Rect3[T] {
	return Rect3[T]{P0: r.P0.WrappingMulScalar(s), P1: r.P1.WrappingMulScalar(s)}
}

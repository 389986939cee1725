package xvec

// Dot returns the dot product of v and o. It is equivalent to
// v.Mul(o).Sum(), so the products are summed from left to right.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.Mul(o).Sum()
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.Mul(o).Sum()
}

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.Mul(o).Sum()
}

// Cross returns the cross product v × o. Cross products are only
// defined for three dimensions.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

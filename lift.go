package xvec

// FieldError is returned by the fallible operations of vectors and
// rectangles. It identifies the first component, in X, Y, Z, W order,
// for which the operation failed. For rectangles, Field names the corner
// and Err is the FieldError of the corner's vector.
type FieldError struct {
	Field string
	Err   error
}

func (err *FieldError) Error() string {
	return err.Field + ": " + err.Err.Error()
}

func (err *FieldError) Unwrap() error {
	return err.Err
}

// Map returns the vector whose components are f applied to each
// component of v.
func (v Vec2[T]) Map(f func(T) T) Vec2[T] {
	return Vec2[T]{X: f(v.X), Y: f(v.Y)}
}

// Zip returns the vector whose components are f applied to the
// corresponding components of v and o.
func (v Vec2[T]) Zip(o Vec2[T], f func(T, T) T) Vec2[T] {
	return Vec2[T]{X: f(v.X, o.X), Y: f(v.Y, o.Y)}
}

// TryMap is like Map, but f may fail. Components are evaluated in
// X, Y order and evaluation stops at the first error, which is returned
// as a [*FieldError] alongside the zero vector.
func (v Vec2[T]) TryMap(f func(T) (T, error)) (Vec2[T], error) {
	x, err := f(v.X)
	if err != nil {
		return Vec2[T]{}, &FieldError{Field: "x", Err: err}
	}
	y, err := f(v.Y)
	if err != nil {
		return Vec2[T]{}, &FieldError{Field: "y", Err: err}
	}
	return Vec2[T]{X: x, Y: y}, nil
}

// TryZip is like Zip, but f may fail. Failure is reported the same way
// as by [Vec2.TryMap].
func (v Vec2[T]) TryZip(o Vec2[T], f func(T, T) (T, error)) (Vec2[T], error) {
	x, err := f(v.X, o.X)
	if err != nil {
		return Vec2[T]{}, &FieldError{Field: "x", Err: err}
	}
	y, err := f(v.Y, o.Y)
	if err != nil {
		return Vec2[T]{}, &FieldError{Field: "y", Err: err}
	}
	return Vec2[T]{X: x, Y: y}, nil
}

// Map applies f to each component of v.
func (v Vec3[T]) Map(f func(T) T) Vec3[T] {
	return Vec3[T]{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}

// Zip applies f to the corresponding components of v and o.
func (v Vec3[T]) Zip(o Vec3[T], f func(T, T) T) Vec3[T] {
	return Vec3[T]{X: f(v.X, o.X), Y: f(v.Y, o.Y), Z: f(v.Z, o.Z)}
}

// TryMap is like Map, but stops at the first component for which f
// fails. See [Vec2.TryMap].
func (v Vec3[T]) TryMap(f func(T) (T, error)) (Vec3[T], error) {
	x, err := f(v.X)
	if err != nil {
		return Vec3[T]{}, &FieldError{Field: "x", Err: err}
	}
	y, err := f(v.Y)
	if err != nil {
		return Vec3[T]{}, &FieldError{Field: "y", Err: err}
	}
	z, err := f(v.Z)
	if err != nil {
		return Vec3[T]{}, &FieldError{Field: "z", Err: err}
	}
	return Vec3[T]{X: x, Y: y, Z: z}, nil
}

// TryZip is like Zip, but stops at the first component for which f
// fails. See [Vec2.TryMap].
func (v Vec3[T]) TryZip(o Vec3[T], f func(T, T) (T, error)) (Vec3[T], error) {
	x, err := f(v.X, o.X)
	if err != nil {
		return Vec3[T]{}, &FieldError{Field: "x", Err: err}
	}
	y, err := f(v.Y, o.Y)
	if err != nil {
		return Vec3[T]{}, &FieldError{Field: "y", Err: err}
	}
	z, err := f(v.Z, o.Z)
	if err != nil {
		return Vec3[T]{}, &FieldError{Field: "z", Err: err}
	}
	return Vec3[T]{X: x, Y: y, Z: z}, nil
}

// Map applies f to each component of v.
func (v Vec4[T]) Map(f func(T) T) Vec4[T] {
	return Vec4[T]{X: f(v.X), Y: f(v.Y), Z: f(v.Z), W: f(v.W)}
}

// Zip applies f to the corresponding components of v and o.
func (v Vec4[T]) Zip(o Vec4[T], f func(T, T) T) Vec4[T] {
	return Vec4[T]{X: f(v.X, o.X), Y: f(v.Y, o.Y), Z: f(v.Z, o.Z), W: f(v.W, o.W)}
}

// TryMap is like Map, but stops at the first component for which f
// fails. See [Vec2.TryMap].
func (v Vec4[T]) TryMap(f func(T) (T, error)) (Vec4[T], error) {
	x, err := f(v.X)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "x", Err: err}
	}
	y, err := f(v.Y)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "y", Err: err}
	}
	z, err := f(v.Z)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "z", Err: err}
	}
	w, err := f(v.W)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "w", Err: err}
	}
	return Vec4[T]{X: x, Y: y, Z: z, W: w}, nil
}

// TryZip is like Zip, but stops at the first component for which f
// fails. See [Vec2.TryMap].
func (v Vec4[T]) TryZip(o Vec4[T], f func(T, T) (T, error)) (Vec4[T], error) {
	x, err := f(v.X, o.X)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "x", Err: err}
	}
	y, err := f(v.Y, o.Y)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "y", Err: err}
	}
	z, err := f(v.Z, o.Z)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "z", Err: err}
	}
	w, err := f(v.W, o.W)
	if err != nil {
		return Vec4[T]{}, &FieldError{Field: "w", Err: err}
	}
	return Vec4[T]{X: x, Y: y, Z: z, W: w}, nil
}

// tryPair applies f to the corners of a rectangle, p0 first. Errors are
// wrapped in a [*FieldError] naming the corner.
func tryPair[V, U any](p0, p1 V, f func(V) (U, error)) (U, U, error) {
	var zero U
	r0, err := f(p0)
	if err != nil {
		return zero, zero, &FieldError{Field: "point0", Err: err}
	}
	r1, err := f(p1)
	if err != nil {
		return zero, zero, &FieldError{Field: "point1", Err: err}
	}
	return r0, r1, nil
}

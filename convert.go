package xvec

import "deedles.dev/xvec/num"

// Convert2 converts the components of v to another scalar type with
// [num.Convert].
func Convert2[To, From num.Scalar](v Vec2[From]) Vec2[To] {
	return Vec2[To]{X: num.Convert[To](v.X), Y: num.Convert[To](v.Y)}
}

// Convert3 converts the components of v to another scalar type with
// [num.Convert].
func Convert3[To, From num.Scalar](v Vec3[From]) Vec3[To] {
	return Vec3[To]{X: num.Convert[To](v.X), Y: num.Convert[To](v.Y), Z: num.Convert[To](v.Z)}
}

// Convert4 converts the components of v to another scalar type with
// [num.Convert].
func Convert4[To, From num.Scalar](v Vec4[From]) Vec4[To] {
	return Vec4[To]{
		X: num.Convert[To](v.X),
		Y: num.Convert[To](v.Y),
		Z: num.Convert[To](v.Z),
		W: num.Convert[To](v.W),
	}
}

// TryConvert2 converts the components of v to another scalar type with
// [num.TryConvert]. If any component cannot be represented, the error
// for the first such component, in X, Y order, is returned as a
// [*FieldError].
func TryConvert2[To, From num.Scalar](v Vec2[From]) (Vec2[To], error) {
	x, err := tryConvertField[To]("x", v.X)
	if err != nil {
		return Vec2[To]{}, err
	}
	y, err := tryConvertField[To]("y", v.Y)
	if err != nil {
		return Vec2[To]{}, err
	}
	return Vec2[To]{X: x, Y: y}, nil
}

// TryConvert3 is like [TryConvert2] for three-dimensional vectors.
func TryConvert3[To, From num.Scalar](v Vec3[From]) (Vec3[To], error) {
	x, err := tryConvertField[To]("x", v.X)
	if err != nil {
		return Vec3[To]{}, err
	}
	y, err := tryConvertField[To]("y", v.Y)
	if err != nil {
		return Vec3[To]{}, err
	}
	z, err := tryConvertField[To]("z", v.Z)
	if err != nil {
		return Vec3[To]{}, err
	}
	return Vec3[To]{X: x, Y: y, Z: z}, nil
}

// TryConvert4 is like [TryConvert2] for four-dimensional vectors.
func TryConvert4[To, From num.Scalar](v Vec4[From]) (Vec4[To], error) {
	x, err := tryConvertField[To]("x", v.X)
	if err != nil {
		return Vec4[To]{}, err
	}
	y, err := tryConvertField[To]("y", v.Y)
	if err != nil {
		return Vec4[To]{}, err
	}
	z, err := tryConvertField[To]("z", v.Z)
	if err != nil {
		return Vec4[To]{}, err
	}
	w, err := tryConvertField[To]("w", v.W)
	if err != nil {
		return Vec4[To]{}, err
	}
	return Vec4[To]{X: x, Y: y, Z: z, W: w}, nil
}

func tryConvertField[To, From num.Scalar](field string, v From) (To, error) {
	t, err := num.TryConvert[To](v)
	if err != nil {
		return 0, &FieldError{Field: field, Err: err}
	}
	return t, nil
}

// ConvertRect2 converts both corners of r with [Convert2].
func ConvertRect2[To, From num.Scalar](r Rect2[From]) Rect2[To] {
	return Rect2[To]{P0: Convert2[To](r.P0), P1: Convert2[To](r.P1)}
}

// ConvertRect3 converts both corners of r with [Convert3].
func ConvertRect3[To, From num.Scalar](r Rect3[From]) Rect3[To] {
	return Rect3[To]{P0: Convert3[To](r.P0), P1: Convert3[To](r.P1)}
}

// TryConvertRect2 converts both corners of r with [TryConvert2], P0
// first.
func TryConvertRect2[To, From num.Scalar](r Rect2[From]) (Rect2[To], error) {
	p0, p1, err := tryPair(r.P0, r.P1, TryConvert2[To, From])
	return Rect2[To]{P0: p0, P1: p1}, err
}

// TryConvertRect3 converts both corners of r with [TryConvert3], P0
// first.
func TryConvertRect3[To, From num.Scalar](r Rect3[From]) (Rect3[To], error) {
	p0, p1, err := tryPair(r.P0, r.P1, TryConvert3[To, From])
	return Rect3[To]{P0: p0, P1: p1}, err
}

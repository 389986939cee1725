package xvec

import (
	"fmt"
	"iter"

	"deedles.dev/xvec/num"
)

// Vec2 is a two-dimensional vector.
type Vec2[T num.Scalar] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// V2 is shorthand for Vec2[T]{X: x, Y: y}.
func V2[T num.Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 returns a vector with every component set to s.
func Splat2[T num.Scalar](s T) Vec2[T] {
	return Vec2[T]{X: s, Y: s}
}

// FromArray2 returns a vector whose components are the elements of a
// in X, Y order.
func FromArray2[T num.Scalar](a [2]T) Vec2[T] {
	return Vec2[T]{X: a[0], Y: a[1]}
}

// Array returns the components of v as an array in X, Y order.
func (v Vec2[T]) Array() [2]T {
	return [...]T{v.X, v.Y}
}

// XY returns the components of v. It is the inverse of [V2].
func (v Vec2[T]) XY() (x, y T) {
	return v.X, v.Y
}

// All returns an iterator over the components of v in X, Y order.
func (v Vec2[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

// IsZero reports whether every component of v is zero.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Vec3 is a three-dimensional vector.
type Vec3[T num.Scalar] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

// V3 is shorthand for Vec3[T]{X: x, Y: y, Z: z}.
func V3[T num.Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns a vector with every component set to s.
func Splat3[T num.Scalar](s T) Vec3[T] {
	return Vec3[T]{X: s, Y: s, Z: s}
}

// FromArray3 returns a vector whose components are the elements of a
// in X, Y, Z order.
func FromArray3[T num.Scalar](a [3]T) Vec3[T] {
	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components of v as an array in X, Y, Z order.
func (v Vec3[T]) Array() [3]T {
	return [...]T{v.X, v.Y, v.Z}
}

// XYZ returns the components of v.
func (v Vec3[T]) XYZ() (x, y, z T) {
	return v.X, v.Y, v.Z
}

// All returns an iterator over the components of v in X, Y, Z order.
func (v Vec3[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z)
	}
}

// IsZero reports whether every component of v is zero.
func (v Vec3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Vec4 is a four-dimensional vector.
//
// It is sometimes used for homogeneous coordinates, but nothing in this
// package treats W differently from the other components.
type Vec4[T num.Scalar] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
	W T `json:"w" yaml:"w"`
}

// V4 is shorthand for Vec4[T]{X: x, Y: y, Z: z, W: w}.
func V4[T num.Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns a vector with every component set to s.
func Splat4[T num.Scalar](s T) Vec4[T] {
	return Vec4[T]{X: s, Y: s, Z: s, W: s}
}

// FromArray4 returns a vector whose components are the elements of a
// in X, Y, Z, W order.
func FromArray4[T num.Scalar](a [4]T) Vec4[T] {
	return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Array returns the components of v as an array in X, Y, Z, W order.
func (v Vec4[T]) Array() [4]T {
	return [...]T{v.X, v.Y, v.Z, v.W}
}

// XYZW returns the components of v.
func (v Vec4[T]) XYZW() (x, y, z, w T) {
	return v.X, v.Y, v.Z, v.W
}

// All returns an iterator over the components of v in X, Y, Z, W order.
func (v Vec4[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z) && yield(v.W)
	}
}

// IsZero reports whether every component of v is zero.
func (v Vec4[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Package gonumvec converts between xvec types and the vector and box
// types of gonum's spatial/r2 and spatial/r3 packages.
//
// Gonum uses float64 exclusively, so conversions to it may lose
// precision for large 64-bit integers and conversions from it follow
// Go's float conversion rules. Use [xvec.TryConvert2] and friends on
// the result first if that matters.
package gonumvec

import (
	"deedles.dev/xvec"
	"deedles.dev/xvec/num"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromR2Vec converts v to a vector of T.
func FromR2Vec[T num.Scalar](v r2.Vec) xvec.Vec2[T] {
	return xvec.Vec2[T]{X: T(v.X), Y: T(v.Y)}
}

// ToR2Vec converts v to an r2.Vec.
func ToR2Vec[T num.Scalar](v xvec.Vec2[T]) r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

// FromR3Vec converts v to a vector of T.
func FromR3Vec[T num.Scalar](v r3.Vec) xvec.Vec3[T] {
	return xvec.Vec3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// ToR3Vec converts v to an r3.Vec.
func ToR3Vec[T num.Scalar](v xvec.Vec3[T]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR2Box converts b to a rectangle with P0 at b.Min and P1 at
// b.Max. The box is not canonicalized.
func FromR2Box[T num.Scalar](b r2.Box) xvec.Rect2[T] {
	return xvec.Rect2[T]{P0: FromR2Vec[T](b.Min), P1: FromR2Vec[T](b.Max)}
}

// ToR2Box is the inverse of [FromR2Box].
func ToR2Box[T num.Scalar](r xvec.Rect2[T]) r2.Box {
	return r2.Box{Min: ToR2Vec(r.P0), Max: ToR2Vec(r.P1)}
}

// FromR3Box converts b to a prism with P0 at b.Min and P1 at b.Max.
func FromR3Box[T num.Scalar](b r3.Box) xvec.Rect3[T] {
	return xvec.Rect3[T]{P0: FromR3Vec[T](b.Min), P1: FromR3Vec[T](b.Max)}
}

// ToR3Box is the inverse of [FromR3Box].
func ToR3Box[T num.Scalar](r xvec.Rect3[T]) r3.Box {
	return r3.Box{Min: ToR3Vec(r.P0), Max: ToR3Vec(r.P1)}
}

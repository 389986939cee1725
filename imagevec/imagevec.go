// Package imagevec converts between xvec types and the point,
// rectangle, and vector types of the standard image package and of
// golang.org/x/image/math.
package imagevec

import (
	"image"

	"deedles.dev/xvec"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// FromPoint returns p as a vector.
func FromPoint(p image.Point) xvec.Vec2[int] {
	return xvec.V2(p.X, p.Y)
}

// ToPoint returns v as an image.Point.
func ToPoint(v xvec.Vec2[int]) image.Point {
	return image.Pt(v.X, v.Y)
}

// FromRectangle returns a rectangle with P0 at r.Min and P1 at r.Max.
func FromRectangle(r image.Rectangle) xvec.Rect2[int] {
	return xvec.Rect2[int]{P0: FromPoint(r.Min), P1: FromPoint(r.Max)}
}

// ToRectangle returns r as an image.Rectangle. Unlike [image.Rect], it
// does not reorder the corners, so the result is only well-formed if r
// is ordered.
func ToRectangle(r xvec.Rect2[int]) image.Rectangle {
	return image.Rectangle{Min: ToPoint(r.P0), Max: ToPoint(r.P1)}
}

// FromF32Vec2 returns v as a vector in X, Y order.
func FromF32Vec2(v f32.Vec2) xvec.Vec2[float32] { return xvec.FromArray2(v) }

// FromF32Vec3 returns v as a vector in X, Y, Z order.
func FromF32Vec3(v f32.Vec3) xvec.Vec3[float32] { return xvec.FromArray3(v) }

// FromF32Vec4 returns v as a vector in X, Y, Z, W order.
func FromF32Vec4(v f32.Vec4) xvec.Vec4[float32] { return xvec.FromArray4(v) }

// ToF32Vec2 is the inverse of [FromF32Vec2].
func ToF32Vec2(v xvec.Vec2[float32]) f32.Vec2 { return v.Array() }

// ToF32Vec3 is the inverse of [FromF32Vec3].
func ToF32Vec3(v xvec.Vec3[float32]) f32.Vec3 { return v.Array() }

// ToF32Vec4 is the inverse of [FromF32Vec4].
func ToF32Vec4(v xvec.Vec4[float32]) f32.Vec4 { return v.Array() }

// FromF64Vec2 returns v as a vector in X, Y order.
func FromF64Vec2(v f64.Vec2) xvec.Vec2[float64] { return xvec.FromArray2(v) }

// FromF64Vec3 returns v as a vector in X, Y, Z order.
func FromF64Vec3(v f64.Vec3) xvec.Vec3[float64] { return xvec.FromArray3(v) }

// FromF64Vec4 returns v as a vector in X, Y, Z, W order.
func FromF64Vec4(v f64.Vec4) xvec.Vec4[float64] { return xvec.FromArray4(v) }

// ToF64Vec2 is the inverse of [FromF64Vec2].
func ToF64Vec2(v xvec.Vec2[float64]) f64.Vec2 { return v.Array() }

// ToF64Vec3 is the inverse of [FromF64Vec3].
func ToF64Vec3(v xvec.Vec3[float64]) f64.Vec3 { return v.Array() }

// ToF64Vec4 is the inverse of [FromF64Vec4].
func ToF64Vec4(v xvec.Vec4[float64]) f64.Vec4 { return v.Array() }

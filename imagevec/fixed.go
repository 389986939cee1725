package imagevec

import (
	"deedles.dev/xvec"
	"golang.org/x/image/math/fixed"
)

// Vectors over fixed-point scalars use the plain integer operators, so
// Add and Sub behave as expected but Mul and Div multiply and divide
// the raw representations. Use fixed.Int26_6.Mul and friends through
// [xvec.Vec2.Zip] for fixed-point products.

// FromPoint26_6 returns p as a vector of fixed.Int26_6.
func FromPoint26_6(p fixed.Point26_6) xvec.Vec2[fixed.Int26_6] {
	return xvec.V2(p.X, p.Y)
}

// ToPoint26_6 is the inverse of [FromPoint26_6].
func ToPoint26_6(v xvec.Vec2[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: v.X, Y: v.Y}
}

// FromRectangle26_6 returns a rectangle with P0 at r.Min and P1 at
// r.Max.
func FromRectangle26_6(r fixed.Rectangle26_6) xvec.Rect2[fixed.Int26_6] {
	return xvec.Rect2[fixed.Int26_6]{P0: FromPoint26_6(r.Min), P1: FromPoint26_6(r.Max)}
}

// ToRectangle26_6 is the inverse of [FromRectangle26_6]. The corners
// are not reordered.
func ToRectangle26_6(r xvec.Rect2[fixed.Int26_6]) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: ToPoint26_6(r.P0), Max: ToPoint26_6(r.P1)}
}

// FromPoint52_12 returns p as a vector of fixed.Int52_12.
func FromPoint52_12(p fixed.Point52_12) xvec.Vec2[fixed.Int52_12] {
	return xvec.V2(p.X, p.Y)
}

// ToPoint52_12 is the inverse of [FromPoint52_12].
func ToPoint52_12(v xvec.Vec2[fixed.Int52_12]) fixed.Point52_12 {
	return fixed.Point52_12{X: v.X, Y: v.Y}
}

// FromRectangle52_12 returns a rectangle with P0 at r.Min and P1 at
// r.Max.
func FromRectangle52_12(r fixed.Rectangle52_12) xvec.Rect2[fixed.Int52_12] {
	return xvec.Rect2[fixed.Int52_12]{P0: FromPoint52_12(r.Min), P1: FromPoint52_12(r.Max)}
}

// ToRectangle52_12 is the inverse of [FromRectangle52_12].
func ToRectangle52_12(r xvec.Rect2[fixed.Int52_12]) fixed.Rectangle52_12 {
	return fixed.Rectangle52_12{Min: ToPoint52_12(r.P0), Max: ToPoint52_12(r.P1)}
}

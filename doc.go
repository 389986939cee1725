// Package xvec provides generic 2, 3, and 4-dimensional vectors and
// axis-aligned rectangles and prisms built on top of them.
//
// Every arithmetic operation is available component-wise against
// another vector and broadcast against a single scalar, and each has
// checked, saturating, and wrapping variants backed by package num.
// Rectangles support the same operations by applying them to both of
// their corners independently.
//
// All types are plain values. Methods never modify their receiver
// except for the Assign family, which take a pointer receiver.
package xvec

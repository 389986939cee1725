package xvec

// FromComplex64 returns the vector with X set to the real part of c and
// Y set to its imaginary part.
func FromComplex64(c complex64) Vec2[float32] {
	return Vec2[float32]{X: real(c), Y: imag(c)}
}

// FromComplex128 is like [FromComplex64] for complex128.
func FromComplex128(c complex128) Vec2[float64] {
	return Vec2[float64]{X: real(c), Y: imag(c)}
}

// Complex64 returns the complex number with real part X and imaginary
// part Y.
func (v Vec2[T]) Complex64() complex64 {
	return complex(float32(v.X), float32(v.Y))
}

// Complex128 returns the complex number with real part X and imaginary
// part Y.
func (v Vec2[T]) Complex128() complex128 {
	return complex(float64(v.X), float64(v.Y))
}

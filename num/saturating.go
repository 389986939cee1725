package num

// SaturatingAdd returns a + b, clamped to the range of T for integers.
// Floating-point types follow IEEE 754, which already saturates to
// infinity.
func SaturatingAdd[T Scalar](a, b T) T {
	c := a + b
	if IsFloat[T]() {
		return c
	}

	switch {
	case b > 0 && c < a:
		return MaxValue[T]()
	case b < 0 && c > a:
		return MinValue[T]()
	}
	return c
}

// SaturatingSub returns a - b, clamped like [SaturatingAdd].
func SaturatingSub[T Scalar](a, b T) T {
	c := a - b
	if IsFloat[T]() {
		return c
	}

	switch {
	case b > 0 && c > a:
		return MinValue[T]()
	case b < 0 && c < a:
		return MaxValue[T]()
	}
	return c
}

// SaturatingMul returns a * b, clamped like [SaturatingAdd].
func SaturatingMul[T Scalar](a, b T) T {
	if IsFloat[T]() {
		return a * b
	}

	c, err := CheckedMul(a, b)
	if err == nil {
		return c
	}
	if (a < 0) != (b < 0) {
		return MinValue[T]()
	}
	return MaxValue[T]()
}

// SaturatingNeg returns -a, clamped like [SaturatingAdd]. Negating any
// unsigned value yields zero.
func SaturatingNeg[T Scalar](a T) T {
	c := -a
	if IsFloat[T]() {
		return c
	}

	switch {
	case a < 0 && c < 0:
		return MaxValue[T]()
	case a > 0 && c > 0:
		return 0
	}
	return c
}

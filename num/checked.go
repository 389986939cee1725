package num

// CheckedAdd returns a + b. For integers it returns [ErrOverflow] if the
// sum wraps. For floating-point types it returns [ErrOverflow] if
// finite operands produce an infinite result.
func CheckedAdd[T Scalar](a, b T) (T, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) || overflowed(a, b, c) {
		return 0, ErrOverflow
	}
	return c, nil
}

// CheckedSub returns a - b, failing under the same conditions as
// [CheckedAdd].
func CheckedSub[T Scalar](a, b T) (T, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) || overflowed(a, b, c) {
		return 0, ErrOverflow
	}
	return c, nil
}

// CheckedMul returns a * b, failing under the same conditions as
// [CheckedAdd].
func CheckedMul[T Scalar](a, b T) (T, error) {
	c := a * b
	if IsFloat[T]() {
		if overflowed(a, b, c) {
			return 0, ErrOverflow
		}
		return c, nil
	}

	// The quotient check misses -1 * min, which is caught by the sign
	// of the product instead.
	if (a != 0 && c/a != b) || (a < 0 && b < 0 && c < 0) {
		return 0, ErrOverflow
	}
	return c, nil
}

// CheckedDiv returns a / b. It returns [ErrDivideByZero] if b is zero,
// for every scalar type, and [ErrOverflow] for min / -1 with signed
// integers or for an infinite quotient of finite floats.
func CheckedDiv[T Scalar](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}

	c := a / b
	if (a < 0 && b < 0 && c < 0) || overflowed(a, b, c) {
		return 0, ErrOverflow
	}
	return c, nil
}

// CheckedNeg returns -a. It returns [ErrOverflow] for the minimum value
// of a signed integer type and for any non-zero unsigned value.
func CheckedNeg[T Scalar](a T) (T, error) {
	c := -a
	if (a < 0 && c < 0) || (a > 0 && c > 0) {
		return 0, ErrOverflow
	}
	return c, nil
}

func overflowed[T Scalar](a, b, c T) bool {
	return !finite(c) && finite(a) && finite(b)
}

package num

import "cmp"

// PartialMin returns the lesser of a and b. If they are incomparable,
// such as when either is NaN, it returns a.
func PartialMin[T Scalar](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// PartialMax returns the greater of a and b. If they are incomparable,
// it returns b.
func PartialMax[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// PartialSort returns a and b in ascending order. Incomparable values
// are returned as given.
func PartialSort[T Scalar](a, b T) (T, T) {
	if a > b {
		return b, a
	}
	return a, b
}

// Sort returns a and b in ascending order according to [cmp.Compare],
// which is a total order that places NaN before every other value.
func Sort[T Scalar](a, b T) (T, T) {
	if cmp.Compare(a, b) > 0 {
		return b, a
	}
	return a, b
}

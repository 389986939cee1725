package num

// WrappingAdd returns a + b, wrapping around at the bounds of integer
// types. This is the behavior of Go's + operator.
func WrappingAdd[T Scalar](a, b T) T { return a + b }

// WrappingSub returns a - b, wrapping like [WrappingAdd].
func WrappingSub[T Scalar](a, b T) T { return a - b }

// WrappingMul returns a * b, wrapping like [WrappingAdd].
func WrappingMul[T Scalar](a, b T) T { return a * b }

// WrappingNeg returns -a, wrapping like [WrappingAdd]. The minimum value
// of a signed type negates to itself.
func WrappingNeg[T Scalar](a T) T { return -a }

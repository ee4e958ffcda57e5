// Package num provides the scalar constraint and conversion helpers shared
// by the generic filter packages. Filters are generic over the four sample
// types below; the helpers here centralize conversions between the float64
// values produced by filter design and the instantiated coefficient type.
package num

import "math/cmplx"

// Scalar enumerates the sample types the filter packages operate on.
// Real instantiations use float32 or float64; complex instantiations carry
// complex coefficients and state through the same code paths.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// FromFloat converts a float64 value to T. For complex instantiations the
// imaginary part is zero.
func FromFloat[T Scalar](v float64) T {
	var out T

	switch p := any(&out).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(v, 0)
	}

	return out
}

// ToComplex widens v to complex128 for frequency-domain arithmetic.
func ToComplex[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}

	return 0
}

// Real returns the real part of v as a float64.
func Real[T Scalar](v T) float64 {
	return real(ToComplex(v))
}

// Abs returns the magnitude of v as a float64.
func Abs[T Scalar](v T) float64 {
	return cmplx.Abs(ToComplex(v))
}

// IsZero reports whether v is exactly zero.
func IsZero[T Scalar](v T) bool {
	var zero T
	return v == zero
}

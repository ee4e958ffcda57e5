package biquad

import (
	"math/cmplx"

	"github.com/cwbudde/algo-filter/internal/num"
)

// Zeros returns the roots in z of the numerator polynomial
// B0*z^2 + B1*z + B2. A zero B0 reduces the degree.
func (c *Coefficients[T]) Zeros() []complex128 {
	return quadraticRoots(num.ToComplex(c.B0), num.ToComplex(c.B1), num.ToComplex(c.B2))
}

// Poles returns the roots in z of the denominator polynomial
// z^2 + A1*z + A2.
func (c *Coefficients[T]) Poles() []complex128 {
	return quadraticRoots(1, num.ToComplex(c.A1), num.ToComplex(c.A2))
}

func quadraticRoots(q0, q1, q2 complex128) []complex128 {
	if q0 == 0 {
		if q1 == 0 {
			return nil
		}

		return []complex128{-q2 / q1}
	}

	d := cmplx.Sqrt(q1*q1 - 4*q0*q2)

	return []complex128{(-q1 + d) / (2 * q0), (-q1 - d) / (2 * q0)}
}

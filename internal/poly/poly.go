// Package poly provides small polynomial helpers shared by the filter and
// design packages: linear convolution of coefficient arrays, evaluation on
// the unit circle, monic root expansion, and the transfer-function
// group-delay primitive.
//
// Coefficient slices are ordered by ascending powers of z^-1, matching the
// layout used by the filter packages.
package poly

import (
	"math"
	"math/cmplx"
)

// Convolve returns the linear convolution of a and b, a slice of length
// len(a)+len(b)-1. Filter orders are small, so the direct O(n*m) form is
// used throughout.
func Convolve(a, b []float64) []float64 {
	dst := make([]float64, len(a)+len(b)-1)

	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}

	return dst
}

// Reverse returns a copy of c with the coefficient order flipped.
func Reverse(c []float64) []float64 {
	out := make([]float64, len(c))

	for i, v := range c {
		out[len(c)-1-i] = v
	}

	return out
}

// ExpandRoots expands the monic polynomial with the given roots into
// ascending coefficients, so that the result p satisfies
//
//	p[0] + p[1]*x + ... + p[n]*x^n = (x - roots[0]) * ... * (x - roots[n-1])
//
// An empty root set yields {1}.
func ExpandRoots(roots []complex128) []complex128 {
	p := make([]complex128, len(roots)+1)
	p[0] = 1

	for n, r := range roots {
		// Multiply the expanded degree-n prefix by (x - r) in place,
		// highest coefficient first so nothing is overwritten early.
		for k := n + 1; k > 0; k-- {
			p[k] = p[k-1] - r*p[k]
		}

		p[0] *= -r
	}

	return p
}

// EvalFreq evaluates sum_i c[i]*exp(j*2*pi*fc*i) at the normalized
// frequency fc in cycles per sample.
func EvalFreq(c []complex128, fc float64) complex128 {
	var sum complex128

	for i, ci := range c {
		sum += ci * cmplx.Exp(complex(0, 2*math.Pi*fc*float64(i)))
	}

	return sum
}

// GroupDelay computes the group delay in samples of the transfer function
// b(z)/a(z) at the normalized frequency fc. FIR responses pass a = {1}.
//
// The computation folds numerator and denominator into a single array
// c = conv(b, reverse(a)), evaluates the phase-derivative identity
//
//	tau = Re{ sum_k k*c[k]*e^(jwk) / sum_k c[k]*e^(jwk) } - (len(a) - 1)
//
// with w = 2*pi*fc, and is total: degenerate coefficient sets propagate
// NaN rather than failing.
func GroupDelay(b, a []float64, fc float64) float64 {
	c := Convolve(b, Reverse(a))

	var t0, t1 complex128

	for k, ck := range c {
		e := cmplx.Exp(complex(0, 2*math.Pi*fc*float64(k)))
		t0 += complex(ck*float64(k), 0) * e
		t1 += complex(ck, 0) * e
	}

	return real(t0/t1) - float64(len(a)-1)
}

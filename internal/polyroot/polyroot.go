// Package polyroot provides polynomial root finding for the filter design
// package. Roots are located with the Durand-Kerner simultaneous iteration,
// which handles the modest degrees of analog prototype polynomials without
// derivative bookkeeping.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

const (
	maxIterations = 500
	deltaTol      = 1e-12
	residualTol   = 1e-6
)

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration. Coefficients are in ascending power
// order, c[0] + c[1]*x + ... + c[n]*x^n, with non-zero leading c[n].
//
//nolint:cyclop
func DurandKerner(c []complex128) ([]complex128, error) {
	if len(c) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(c) - 1

	lead := c[n]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	norm := make([]complex128, len(c))
	for i := range c {
		norm[i] = c[i] / lead
	}

	radius := 1.0
	for i := range n {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	roots := make([]complex128, n)
	for i := range n {
		// Detuned start angles and radii keep the iteration from
		// stalling on symmetric polynomials.
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	for range maxIterations {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den
			roots[i] -= delta

			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < deltaTol {
			return roots, nil
		}
	}

	// The iteration can cycle near machine precision on clustered roots;
	// accept the result if the residuals are still small.
	maxResidual := 0.0

	for _, r := range roots {
		if res := cmplx.Abs(PolyEval(norm, r)); res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < residualTol {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in ascending power order: c[0] + c[1]*x + ... + c[n]*x^n.
func PolyEval(c []complex128, x complex128) complex128 {
	v := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		v = v*x + c[i]
	}

	return v
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}

package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/internal/ellipticmath"
	"github.com/cwbudde/algo-filter/internal/polyroot"
)

const ellipticTol = 2.2e-16

// analogPrototype places the s-plane zeros, poles and gain for the given
// filter family. The pole count always equals the order; families without
// finite zeros return an empty zero slice, and the bilinear transform
// pads the difference with z = -1.
func analogPrototype(ftype Type, order int, ap, as float64) (zeros, poles []complex128, gain complex128, err error) {
	switch ftype {
	case Butterworth:
		zeros, poles, gain = butterworthPrototype(order)
		return zeros, poles, gain, nil
	case Chebyshev1:
		zeros, poles, gain = chebyshev1Prototype(order, ap)
		return zeros, poles, gain, nil
	case Chebyshev2:
		zeros, poles, gain = chebyshev2Prototype(order, as)
		return zeros, poles, gain, nil
	case Elliptic:
		return ellipticPrototype(order, ap, as)
	case Bessel:
		return besselPrototype(order)
	default:
		return nil, nil, 0, fmt.Errorf("%w: %v", ErrUnknownType, ftype)
	}
}

// butterworthPrototype places order poles evenly on the left half of the
// unit circle. No finite zeros; unity gain.
func butterworthPrototype(order int) ([]complex128, []complex128, complex128) {
	poles := make([]complex128, order)
	for k := range order {
		theta := float64(2*k+order+1) * math.Pi / float64(2*order)
		poles[k] = complex(math.Cos(theta), math.Sin(theta))
	}

	return nil, poles, 1
}

// chebyshev1Prototype places poles on an ellipse whose axes follow from
// the pass-band ripple. DC gain is 1 for odd orders and 1/sqrt(1+eps^2)
// for even orders (the response starts at a ripple trough).
func chebyshev1Prototype(order int, ap float64) ([]complex128, []complex128, complex128) {
	eps := math.Sqrt(math.Pow(10, ap/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, order)
	for k := range order {
		theta := float64(2*k+1) * math.Pi / float64(2*order)
		poles[k] = complex(-math.Sinh(mu)*math.Sin(theta), math.Cosh(mu)*math.Cos(theta))
	}

	gain := productNegated(poles)
	if order%2 == 0 {
		gain /= complex(math.Sqrt(1+eps*eps), 0)
	}

	return nil, poles, gain
}

// chebyshev2Prototype is the inverse Chebyshev design: equiripple in the
// stop band, monotone in the pass band. Poles are the reciprocals of a
// type-I pole set; zeros sit on the imaginary axis at j/cos(theta).
// Gain is chosen so H(0) = 1.
func chebyshev2Prototype(order int, as float64) ([]complex128, []complex128, complex128) {
	eps := 1 / math.Sqrt(math.Pow(10, as/10)-1)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, order)
	zeros := make([]complex128, 0, order)

	for k := range order {
		theta := float64(2*k+1) * math.Pi / float64(2*order)
		p := complex(-math.Sinh(mu)*math.Sin(theta), math.Cosh(mu)*math.Cos(theta))
		poles[k] = 1 / p

		// cos(theta) vanishes at the middle pole of odd orders; that
		// zero moves to infinity and is dropped.
		if c := math.Cos(theta); math.Abs(c) > 1e-12 {
			zeros = append(zeros, complex(0, 1/c))
		}
	}

	gain := productNegated(poles) / productNegated(zeros)

	return zeros, poles, gain
}

// ellipticPrototype computes the equiripple (Cauer) pole/zero placement
// via Jacobi elliptic functions. The selectivity parameter follows from
// the ripple specifications through the elliptic degree equation.
func ellipticPrototype(order int, ap, as float64) ([]complex128, []complex128, complex128, error) {
	epsp := math.Sqrt(math.Pow(10, ap/10) - 1)
	epss := math.Sqrt(math.Pow(10, as/10) - 1)

	k1sq := (epsp * epsp) / (epss * epss)
	if !(k1sq > 0 && k1sq < 1) {
		return nil, nil, 0, fmt.Errorf("%w: got ap=%g dB, as=%g dB", ErrRippleOrder, ap, as)
	}

	if order == 1 {
		p := complex(-1/epsp, 0)
		return nil, []complex128{p}, -p, nil
	}

	m := ellipticmath.DegreeParam(order, k1sq, ellipticTol)
	if !(m > 0 && m < 1) {
		return nil, nil, 0, fmt.Errorf("%w: elliptic degree equation degenerated (order %d)", ErrPrototypeFailure, order)
	}

	kmod := math.Sqrt(m)
	capK, _ := ellipticmath.EllipK(kmod, ellipticTol)
	capK1, _ := ellipticmath.EllipK(math.Sqrt(k1sq), ellipticTol)

	if capK == 0 || capK1 == 0 || math.IsNaN(capK) || math.IsNaN(capK1) {
		return nil, nil, 0, fmt.Errorf("%w: elliptic integral degenerated", ErrPrototypeFailure)
	}

	// Pass-band branch points on the real axis of the u-plane.
	start := 1 - order%2
	var sv, cv, dv []float64
	var zerosHalf []complex128

	for j := start; j < order; j += 2 {
		u := float64(j) * capK / float64(order)

		sn, cn, dn, ok := ellipticmath.JacobiSCD(u, kmod, ellipticTol)
		if !ok {
			return nil, nil, 0, fmt.Errorf("%w: jacobi elliptic evaluation failed", ErrPrototypeFailure)
		}

		sv = append(sv, sn)
		cv = append(cv, cn)
		dv = append(dv, dn)

		if math.Abs(sn) > 1e-15 {
			zerosHalf = append(zerosHalf, complex(0, 1/(kmod*sn)))
		}
	}

	// v0 locates the pole band through the inverse sc function.
	r := ellipticmath.ArcJacobiSC1(1/epsp, k1sq)
	if !(r > 0) || math.IsNaN(r) {
		return nil, nil, 0, fmt.Errorf("%w: inverse sc evaluation failed", ErrPrototypeFailure)
	}

	v0 := capK * r / (float64(order) * capK1)

	s0, c0, d0, ok := ellipticmath.JacobiSCD(v0, math.Sqrt(1-m), ellipticTol)
	if !ok {
		return nil, nil, 0, fmt.Errorf("%w: jacobi elliptic evaluation failed", ErrPrototypeFailure)
	}

	polesHalf := make([]complex128, len(sv))
	for i := range sv {
		den := 1 - (dv[i]*s0)*(dv[i]*s0)
		if math.Abs(den) < 1e-15 {
			return nil, nil, 0, fmt.Errorf("%w: pole placement degenerated", ErrPrototypeFailure)
		}

		polesHalf[i] = -complex(cv[i]*dv[i]*s0*c0, sv[i]*d0) / complex(den, 0)
	}

	poles := make([]complex128, 0, order)
	poles = append(poles, polesHalf...)

	for _, p := range polesHalf {
		if math.Abs(imag(p)) > 1e-12*math.Abs(real(p)) {
			poles = append(poles, complex(real(p), -imag(p)))
		}
	}

	zeros := make([]complex128, 0, 2*len(zerosHalf))
	for _, z := range zerosHalf {
		zeros = append(zeros, z, complex(real(z), -imag(z)))
	}

	gain := productNegated(poles) / productNegated(zeros)
	if order%2 == 0 {
		gain /= complex(math.Sqrt(1+epsp*epsp), 0)
	}

	return zeros, poles, gain, nil
}

// besselPrototype takes the poles as the roots of the degree-n reverse
// Bessel polynomial, found numerically. No finite zeros; the gain equals
// the polynomial's constant term so that H(0) = 1.
func besselPrototype(order int) ([]complex128, []complex128, complex128, error) {
	// Reverse Bessel polynomial, ascending coefficients:
	// c[k] = (2n-k)! / (2^(n-k) * k! * (n-k)!)
	c := make([]complex128, order+1)
	for k := 0; k <= order; k++ {
		v := factorial(2*order-k) / (math.Pow(2, float64(order-k)) * factorial(k) * factorial(order-k))
		c[k] = complex(v, 0)
	}

	poles, err := polyroot.DurandKerner(c)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%w: bessel roots: %w", ErrPrototypeFailure, err)
	}

	return nil, poles, c[0], nil
}

func factorial(n int) float64 {
	v := 1.0
	for i := 2; i <= n; i++ {
		v *= float64(i)
	}

	return v
}

// productNegated returns the product of the negated roots. For a monic
// polynomial this equals its value at zero, which sets DC gains. An
// empty root set yields 1.
func productNegated(roots []complex128) complex128 {
	out := complex128(1)
	for _, r := range roots {
		out *= -r
	}

	return out
}

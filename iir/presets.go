package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/design"
	"github.com/cwbudde/algo-filter/internal/num"
)

// NewDCBlocker creates a first-order filter that removes the DC
// component of a signal:
//
//	H(z) = (1 - z^-1) / (1 - (1-alpha)*z^-1)
//
// Smaller alpha places the pole closer to the unit circle: a narrower
// notch at DC but a longer settling time. alpha must be positive and
// finite.
func NewDCBlocker[T Sample](alpha float64) (*Filter[T], error) {
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidBlockingFraction, alpha)
	}

	one := num.FromFloat[T](1)

	b := []T{one, -one}
	a := []T{one, num.FromFloat[T](-1 + alpha)}

	return New(b, a)
}

// NewPLL creates a phase-locked-loop active-lag loop filter as a single
// second-order section.
//
//	bandwidth  loop filter bandwidth, in (0, 1)
//	damping    damping factor, in (0, 1); 1/sqrt(2) suggested
//	gain       loop gain, > 0; 1000 suggested
func NewPLL[T Sample](bandwidth, damping, gain float64) (*Filter[T], error) {
	b, a, err := design.PLLActiveLag(bandwidth, damping, gain)
	if err != nil {
		return nil, err
	}

	return NewSOS(
		[]T{num.FromFloat[T](b[0]), num.FromFloat[T](b[1]), num.FromFloat[T](b[2])},
		[]T{num.FromFloat[T](a[0]), num.FromFloat[T](a[1]), num.FromFloat[T](a[2])},
	)
}

// NewIntegrator creates an 8th-order integrating filter from the
// tabulated digital pole/zero placements of [Pintelon:1990], realized as
// four cascaded second-order sections.
//
// [Pintelon:1990]: R. Pintelon and J. Schoukens, "Real-Time Integration
// and Differentiation of Analog Signals by Means of Digital Filtering,"
// IEEE Transactions on Instrumentation and Measurement, vol. 39 no. 6,
// December 1990.
func NewIntegrator[T Sample]() *Filter[T] {
	return fromFixedTable[T](integratorZPK())
}

// integratorZPK returns the tabulated digital zeros, poles and gain of
// the Pintelon integrator.
func integratorZPK() (zeros, poles []complex128, gain float64) {
	zeros = []complex128{
		-1.175839,
		polarDeg(3.371020, -125.1125),
		polarDeg(3.371020, 125.1125),
		polarDeg(4.549710, -80.96404),
		polarDeg(4.549710, 80.96404),
		polarDeg(5.223966, -40.09347),
		polarDeg(5.223966, 40.09347),
		5.443743,
	}
	poles = []complex128{
		-0.5805235,
		polarDeg(0.2332021, -114.0968),
		polarDeg(0.2332021, 114.0968),
		polarDeg(0.1814755, -66.33969),
		polarDeg(0.1814755, 66.33969),
		polarDeg(0.1641457, -21.89539),
		polarDeg(0.1641457, 21.89539),
		1.0,
	}

	return zeros, poles, -1.89213380759321e-05
}

// NewDifferentiator creates an 8th-order differentiating filter from the
// tabulated digital pole/zero placements of [Pintelon:1990], realized as
// four cascaded second-order sections. See [NewIntegrator] for the
// reference.
func NewDifferentiator[T Sample]() *Filter[T] {
	return fromFixedTable[T](differentiatorZPK())
}

// differentiatorZPK returns the tabulated digital zeros, poles and gain
// of the Pintelon differentiator.
func differentiatorZPK() (zeros, poles []complex128, gain float64) {
	zeros = []complex128{
		-1.702575,
		polarDeg(5.877385, -221.4063),
		polarDeg(5.877385, 221.4063),
		polarDeg(4.197421, -144.5972),
		polarDeg(4.197421, 144.5972),
		polarDeg(5.350284, -66.88802),
		polarDeg(5.350284, 66.88802),
		1.0,
	}
	poles = []complex128{
		-0.8476936,
		polarDeg(0.2990781, -125.5188),
		polarDeg(0.2990781, 125.5188),
		polarDeg(0.2232427, -81.52326),
		polarDeg(0.2232427, 81.52326),
		polarDeg(0.1958670, -40.51510),
		polarDeg(0.1958670, 40.51510),
		0.1886088,
	}

	return zeros, poles, 2.09049284907492e-05
}

// fromFixedTable converts tabulated zero/pole/gain constants into an SOS
// filter. The tables are compile-time constants, so a conversion failure
// is a programming error.
func fromFixedTable[T Sample](zeros, poles []complex128, gain float64) *Filter[T] {
	b, a, err := design.ZPK2SOS(zeros, poles, complex(gain, 0))
	if err != nil {
		panic(fmt.Sprintf("iir: preset table conversion failed: %v", err))
	}

	bt := make([]T, len(b))
	at := make([]T, len(a))

	for i := range b {
		bt[i] = num.FromFloat[T](b[i])
		at[i] = num.FromFloat[T](a[i])
	}

	f, err := NewSOS(bt, at)
	if err != nil {
		panic(fmt.Sprintf("iir: preset construction failed: %v", err))
	}

	return f
}

// polarDeg returns the complex number with the given magnitude and phase
// in degrees.
func polarDeg(mag, deg float64) complex128 {
	return complex(mag, 0) * cmplx.Exp(complex(0, deg*math.Pi/180))
}

package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/internal/num"
	"github.com/cwbudde/algo-filter/internal/poly"
)

// Response computes the complex frequency response of the section at the
// normalized frequency fc in cycles per sample (0.5 is Nyquist):
//
//	H(fc) = (B0 + B1*e^jw + B2*e^j2w) / (1 + A1*e^jw + A2*e^j2w), w = 2*pi*fc
func (c *Coefficients[T]) Response(fc float64) complex128 {
	e1 := cmplx.Exp(complex(0, 2*math.Pi*fc))
	e2 := e1 * e1

	hb := num.ToComplex(c.B0) + num.ToComplex(c.B1)*e1 + num.ToComplex(c.B2)*e2
	ha := 1 + num.ToComplex(c.A1)*e1 + num.ToComplex(c.A2)*e2

	return hb / ha
}

// MagnitudeDB returns 20*log10(|H(fc)|).
func (c *Coefficients[T]) MagnitudeDB(fc float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(fc)))
}

// Phase returns the phase response in radians at fc, in [-pi, pi].
func (c *Coefficients[T]) Phase(fc float64) float64 {
	return cmplx.Phase(c.Response(fc))
}

// GroupDelay returns the group delay of the section in samples at fc,
// including the two-sample allowance that cascade composition subtracts
// again per section. Complex coefficients contribute their real parts.
func (c *Coefficients[T]) GroupDelay(fc float64) float64 {
	b := []float64{num.Real(c.B0), num.Real(c.B1), num.Real(c.B2)}
	a := []float64{1, num.Real(c.A1), num.Real(c.A2)}

	return poly.GroupDelay(b, a, fc) + 2
}

// ImpulseResponse computes n samples of the impulse response by feeding an
// impulse through the section. The filter state is saved and restored so
// this method does not disturb ongoing processing.
func (s *Section[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	s.Reset()

	ir := make([]T, n)
	ir[0] = s.ProcessSample(num.FromFloat[T](1))

	var zero T
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(zero)
	}

	s.SetState(saved)

	return ir
}

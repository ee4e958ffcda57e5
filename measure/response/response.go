package response

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Responder is any filter that can evaluate its complex frequency
// response at a normalized frequency (0.5 is Nyquist).
type Responder interface {
	Response(fc float64) complex128
}

// GroupDelayer is any filter that can evaluate its group delay in
// samples at a normalized frequency.
type GroupDelayer interface {
	GroupDelay(fc float64) float64
}

// Grid returns n evenly spaced normalized frequencies from lo to hi
// inclusive. A single-point grid holds lo; a non-positive n yields nil.
func Grid(n int, lo, hi float64) []float64 {
	if n <= 0 {
		return nil
	}

	fcs := make([]float64, n)
	if n == 1 {
		fcs[0] = lo
		return fcs
	}

	step := (hi - lo) / float64(n-1)
	for i := range fcs {
		fcs[i] = lo + float64(i)*step
	}

	return fcs
}

// Magnitude evaluates |H(fc)| for each frequency in fcs.
//
// The responses are split into real and imaginary arrays so the
// magnitude computation can use the vectorized kernel.
func Magnitude(f Responder, fcs []float64) []float64 {
	if len(fcs) == 0 {
		return nil
	}

	re := make([]float64, len(fcs))
	im := make([]float64, len(fcs))

	for i, fc := range fcs {
		h := f.Response(fc)
		re[i] = real(h)
		im[i] = imag(h)
	}

	out := make([]float64, len(fcs))
	vecmath.Magnitude(out, re, im)

	return out
}

// MagnitudeDB evaluates 20*log10 |H(fc)| for each frequency in fcs.
// Exact response nulls map to -Inf.
func MagnitudeDB(f Responder, fcs []float64) []float64 {
	out := Magnitude(f, fcs)
	for i, v := range out {
		out[i] = ratioToDB(v)
	}

	return out
}

// Phase evaluates arg H(fc) in radians for each frequency in fcs.
// The values are wrapped to (-pi, pi]; see [Unwrap].
func Phase(f Responder, fcs []float64) []float64 {
	if len(fcs) == 0 {
		return nil
	}

	out := make([]float64, len(fcs))
	for i, fc := range fcs {
		out[i] = cmplx.Phase(f.Response(fc))
	}

	return out
}

// Unwrap returns a copy of phase with 2*pi jumps removed, so the curve
// is continuous across the branch cut.
func Unwrap(phase []float64) []float64 {
	out := make([]float64, len(phase))
	copy(out, phase)

	var offset float64

	for i := 1; i < len(out); i++ {
		d := phase[i] - phase[i-1]
		if d > math.Pi {
			offset -= 2 * math.Pi
		} else if d < -math.Pi {
			offset += 2 * math.Pi
		}

		out[i] = phase[i] + offset
	}

	return out
}

// GroupDelayCurve evaluates the group delay in samples for each
// frequency in fcs.
func GroupDelayCurve(f GroupDelayer, fcs []float64) []float64 {
	if len(fcs) == 0 {
		return nil
	}

	out := make([]float64, len(fcs))
	for i, fc := range fcs {
		out[i] = f.GroupDelay(fc)
	}

	return out
}

// GroupDelayFromPhase estimates group delay in samples from an
// unwrapped phase curve sampled on an fftSize-point DFT grid:
//
//	gd[k] = -dphi/domega,  domega = 2*pi/fftSize per bin
//
// The estimate is a forward difference; the last point repeats its
// neighbor. It is a cross-check for the analytic path, not a
// replacement. Fewer than two phase points yield nil.
func GroupDelayFromPhase(unwrapped []float64, fftSize int) []float64 {
	if len(unwrapped) < 2 || fftSize <= 0 {
		return nil
	}

	domega := 2 * math.Pi / float64(fftSize)

	out := make([]float64, len(unwrapped))
	for i := 0; i < len(unwrapped)-1; i++ {
		out[i] = -(unwrapped[i+1] - unwrapped[i]) / domega
	}

	out[len(out)-1] = out[len(out)-2]

	return out
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

package iir

import (
	"github.com/cwbudde/algo-filter/internal/num"
	"github.com/cwbudde/algo-filter/internal/poly"
)

// Response computes the complex frequency response at the normalized
// frequency fc in cycles per sample (0.5 is Nyquist). The normal form
// evaluates the coefficient arrays directly; the SOS form multiplies the
// per-section responses. Any real fc is accepted; the result may be
// non-finite at a true pole.
func (f *Filter[T]) Response(fc float64) complex128 {
	if f.form == FormSOS {
		h := complex128(1)
		for i := range f.sections {
			h *= f.sections[i].Response(fc)
		}

		return h
	}

	hb := poly.EvalFreq(toComplexSlice(f.b), fc)
	ha := poly.EvalFreq(toComplexSlice(f.a), fc)

	return hb / ha
}

// GroupDelay returns the filter's group delay in samples at the
// normalized frequency fc. The normal form uses the transfer-function
// formula on the coefficients' real parts; the SOS form accumulates the
// section delays, subtracting each section's two-sample allowance.
func (f *Filter[T]) GroupDelay(fc float64) float64 {
	if f.form == FormSOS {
		var delay float64
		for i := range f.sections {
			delay += f.sections[i].GroupDelay(fc) - 2
		}

		return delay
	}

	b := make([]float64, len(f.b))
	for i, c := range f.b {
		b[i] = num.Real(c)
	}

	a := make([]float64, len(f.a))
	for i, c := range f.a {
		a[i] = num.Real(c)
	}

	return poly.GroupDelay(b, a, fc)
}

// ImpulseResponse computes n samples of the impulse response from a
// clean state. Existing run state is discarded.
func (f *Filter[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	f.Reset()

	ir := make([]T, n)
	ir[0] = f.ProcessSample(num.FromFloat[T](1))

	var zero T
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(zero)
	}

	f.Reset()

	return ir
}

func toComplexSlice[T Sample](c []T) []complex128 {
	out := make([]complex128, len(c))
	for i, v := range c {
		out[i] = num.ToComplex(v)
	}

	return out
}

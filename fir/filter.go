package fir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-filter/internal/num"
	"github.com/cwbudde/algo-filter/internal/poly"
)

// ErrEmptyCoefficients is returned when a filter is constructed without
// any coefficients.
var ErrEmptyCoefficients = errors.New("fir: coefficient length cannot be zero")

// Sample enumerates the sample types a Filter can process. Real filters
// instantiate with float32 or float64; complex filters carry complex
// coefficients and state through the same code paths.
type Sample interface {
	float32 | float64 | complex64 | complex128
}

// Filter is a stateless finite impulse response filter: the caller owns
// the input window and supplies it to every [Filter.Execute] call.
type Filter[T Sample] struct {
	h []T
}

// New creates a filter from the given coefficient slice. The
// coefficients are copied; construction fails if the slice is empty.
func New[T Sample](h []T) (*Filter[T], error) {
	if len(h) == 0 {
		return nil, ErrEmptyCoefficients
	}

	c := make([]T, len(h))
	copy(c, h)

	return &Filter[T]{h: c}, nil
}

// Execute computes the dot product of the coefficients with the
// caller-supplied window of the most recent input samples, newest first:
//
//	y = sum_i h[i] * window[i]
//
// The window must hold at least Len() samples; a shorter window is a
// programming error and panics with the usual bounds-check semantics.
func (f *Filter[T]) Execute(window []T) T {
	var y T
	for i, c := range f.h {
		y += c * window[i]
	}

	return y
}

// Len returns the number of coefficients (filter order + 1).
func (f *Filter[T]) Len() int {
	return len(f.h)
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter[T]) Coefficients() []T {
	c := make([]T, len(f.h))
	copy(c, f.h)

	return c
}

// Response computes the complex frequency response at the normalized
// frequency fc in cycles per sample (0.5 is Nyquist).
func (f *Filter[T]) Response(fc float64) complex128 {
	c := make([]complex128, len(f.h))
	for i, v := range f.h {
		c[i] = num.ToComplex(v)
	}

	return poly.EvalFreq(c, fc)
}

// GroupDelay returns the group delay in samples at the normalized
// frequency fc. Complex coefficients contribute their real parts.
func (f *Filter[T]) GroupDelay(fc float64) float64 {
	b := make([]float64, len(f.h))
	for i, v := range f.h {
		b[i] = num.Real(v)
	}

	return poly.GroupDelay(b, []float64{1}, fc)
}

// String returns a human-readable dump of the filter coefficients.
func (f *Filter[T]) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "fir filter [%d taps]:\n", len(f.h))
	fmt.Fprintf(&sb, "  h :")

	for _, v := range f.h {
		fmt.Fprintf(&sb, " %12.8f", num.Real(v))
	}

	sb.WriteByte('\n')

	return sb.String()
}

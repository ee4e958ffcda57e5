package biquad

import (
	"errors"

	"github.com/cwbudde/algo-filter/internal/num"
)

// ErrZeroLeadingCoefficient is returned when a section's leading denominator
// coefficient a0 is zero and the transfer function cannot be normalized.
var ErrZeroLeadingCoefficient = errors.New("biquad: leading denominator coefficient is zero")

// Sample enumerates the sample types a Section can process. Real filters
// instantiate with float32 or float64; complex filters carry complex
// coefficients and state through the same code paths.
type Sample interface {
	float32 | float64 | complex64 | complex128
}

// Coefficients holds the transfer function coefficients of a single
// second-order section (biquad). a0 is normalized to 1 and not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients[T Sample] struct {
	B0, B1, B2 T // feedforward (numerator)
	A1, A2     T // feedback (denominator)
}

// Normalize scales a full six-coefficient transfer function by its leading
// denominator coefficient a0 and returns the stored five-coefficient form.
func Normalize[T Sample](b0, b1, b2, a0, a1, a2 T) (Coefficients[T], error) {
	if num.IsZero(a0) {
		return Coefficients[T]{}, ErrZeroLeadingCoefficient
	}

	return Coefficients[T]{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}, nil
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II processing:
//
//	w  = x - A1*v1 - A2*v2
//	y  = B0*w + B1*v1 + B2*v2
type Section[T Sample] struct {
	Coefficients[T]

	v1, v2 T
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection[T Sample](c Coefficients[T]) *Section[T] {
	return &Section[T]{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section[T]) ProcessSample(x T) T {
	w := x - s.A1*s.v1 - s.A2*s.v2
	y := s.B0*w + s.B1*s.v1 + s.B2*s.v2
	s.v2 = s.v1
	s.v1 = w

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section[T]) ProcessBlock(buf []T) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	v1, v2 := s.v1, s.v2

	for i, x := range buf {
		w := x - a1*v1 - a2*v2
		buf[i] = b0*w + b1*v1 + b2*v2
		v2 = v1
		v1 = w
	}

	s.v1, s.v2 = v1, v2
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		w := x - s.A1*s.v1 - s.A2*s.v2
		dst[i] = s.B0*w + s.B1*s.v1 + s.B2*s.v2
		s.v2 = s.v1
		s.v1 = w
	}
}

// Reset clears the delay line to zero.
func (s *Section[T]) Reset() {
	var zero T
	s.v1 = zero
	s.v2 = zero
}

// State returns the current delay-line state [v1, v2].
func (s *Section[T]) State() [2]T {
	return [2]T{s.v1, s.v2}
}

// SetState restores a previously saved delay-line state.
func (s *Section[T]) SetState(state [2]T) {
	s.v1 = state[0]
	s.v2 = state[1]
}

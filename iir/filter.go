package iir

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/biquad"
	"github.com/cwbudde/algo-filter/internal/num"
)

// Errors returned by the filter constructors.
var (
	ErrEmptyNumerator          = errors.New("iir: numerator length cannot be zero")
	ErrEmptyDenominator        = errors.New("iir: denominator length cannot be zero")
	ErrZeroLeadingCoefficient  = errors.New("iir: leading denominator coefficient is zero")
	ErrSectionLayout           = errors.New("iir: sos coefficients must come in equal-length triplets")
	ErrNoSections              = errors.New("iir: filter must have at least one second-order section")
	ErrInvalidBlockingFraction = errors.New("iir: dc blocker alpha must be positive and finite")
)

// Sample enumerates the sample types a Filter can process. Real filters
// instantiate with float32 or float64; complex filters carry complex
// coefficients and state through the same code paths.
type Sample interface {
	float32 | float64 | complex64 | complex128
}

// Form identifies the internal filter structure.
type Form int

const (
	// FormNormal runs the direct transfer-function recursion on flat
	// coefficient arrays.
	FormNormal Form = iota

	// FormSOS chains cascaded second-order sections.
	FormSOS
)

// String returns the form name.
func (f Form) String() string {
	switch f {
	case FormNormal:
		return "normal"
	case FormSOS:
		return "sos"
	}

	return fmt.Sprintf("form(%d)", int(f))
}

// Filter is an infinite impulse response filter. The execution form is
// fixed at construction; all operations dispatch on it internally.
type Filter[T Sample] struct {
	form Form

	// Normal form: coefficients normalized by a[0] and a shared delay
	// window of length max(len(b), len(a)), newest value first.
	b []T
	a []T
	v []T

	// SOS form: value slice of sections, each owning its own state.
	// Normal-form filters never allocate the window for sections and
	// vice versa.
	sections []biquad.Section[T]
}

// New creates a normal-form filter from numerator b and denominator a,
// ordered by ascending powers of z^-1. Both slices are copied and
// normalized by a[0]; construction fails if either is empty or if
// a[0] == 0.
func New[T Sample](b, a []T) (*Filter[T], error) {
	if len(b) == 0 {
		return nil, ErrEmptyNumerator
	}

	if len(a) == 0 {
		return nil, ErrEmptyDenominator
	}

	a0 := a[0]
	if num.IsZero(a0) {
		return nil, ErrZeroLeadingCoefficient
	}

	f := &Filter[T]{
		form: FormNormal,
		b:    make([]T, len(b)),
		a:    make([]T, len(a)),
		v:    make([]T, max(len(b), len(a))),
	}

	for i, c := range b {
		f.b[i] = c / a0
	}

	for i, c := range a {
		f.a[i] = c / a0
	}

	return f, nil
}

// NewSOS creates a second-order-sections filter from flat coefficient
// arrays holding three values per section:
//
//	b = [b0 b1 b2 | b0 b1 b2 | ...]
//	a = [a0 a1 a2 | a0 a1 a2 | ...]
//
// Each section is normalized independently by its own a0. Construction
// fails if the slices are empty, differ in length, are not a multiple of
// three, or if any section's a0 is zero.
func NewSOS[T Sample](b, a []T) (*Filter[T], error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, ErrNoSections
	}

	if len(b) != len(a) || len(b)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d numerator and %d denominator values", ErrSectionLayout, len(b), len(a))
	}

	nsos := len(b) / 3
	sections := make([]biquad.Section[T], nsos)

	for i := range nsos {
		c, err := biquad.Normalize(
			b[3*i], b[3*i+1], b[3*i+2],
			a[3*i], a[3*i+1], a[3*i+2],
		)
		if err != nil {
			return nil, fmt.Errorf("iir: section %d: %w", i, err)
		}

		sections[i].Coefficients = c
	}

	return &Filter[T]{form: FormSOS, sections: sections}, nil
}

// ProcessSample filters one input sample and returns the output.
func (f *Filter[T]) ProcessSample(x T) T {
	switch f.form {
	case FormNormal:
		return f.processNormal(x)
	case FormSOS:
		for i := range f.sections {
			x = f.sections[i].ProcessSample(x)
		}

		return x
	}

	panic("iir: invalid filter form")
}

// processNormal runs the direct transfer-function recursion: the window
// shifts, the new intermediate value accumulates the feedback taps, and
// the output accumulates the feed-forward taps.
func (f *Filter[T]) processNormal(x T) T {
	v := f.v
	for i := len(v) - 1; i > 0; i-- {
		v[i] = v[i-1]
	}

	v0 := x
	for i := 1; i < len(f.a); i++ {
		v0 -= f.a[i] * v[i]
	}

	v[0] = v0

	var y T
	for i := range f.b {
		y += f.b[i] * v[i]
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter[T]) ProcessBlock(buf []T) {
	if f.form == FormSOS {
		for i := range f.sections {
			f.sections[i].ProcessBlock(buf)
		}

		return
	}

	for i, x := range buf {
		buf[i] = f.processNormal(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears all internal state to zero, leaving coefficients
// untouched. The filter behaves as freshly constructed.
func (f *Filter[T]) Reset() {
	if f.form == FormSOS {
		for i := range f.sections {
			f.sections[i].Reset()
		}

		return
	}

	var zero T
	for i := range f.v {
		f.v[i] = zero
	}
}

// Len returns the filter length: order+1 for the normal form, twice the
// section count for the SOS form.
func (f *Filter[T]) Len() int {
	if f.form == FormSOS {
		return 2 * len(f.sections)
	}

	return len(f.v)
}

// NumSections returns the number of second-order sections, or 0 for a
// normal-form filter.
func (f *Filter[T]) NumSections() int {
	return len(f.sections)
}

// Form returns the execution form fixed at construction.
func (f *Filter[T]) Form() Form {
	return f.form
}

// Coefficients returns copies of the normal-form numerator and
// denominator. For an SOS filter both results are nil; use [Filter.Sections].
func (f *Filter[T]) Coefficients() (b, a []T) {
	if f.form != FormNormal {
		return nil, nil
	}

	b = make([]T, len(f.b))
	a = make([]T, len(f.a))
	copy(b, f.b)
	copy(a, f.a)

	return b, a
}

// Sections returns copies of the per-section coefficients of an SOS
// filter, in cascade order. Nil for a normal-form filter.
func (f *Filter[T]) Sections() []biquad.Coefficients[T] {
	if f.form != FormSOS {
		return nil
	}

	out := make([]biquad.Coefficients[T], len(f.sections))
	for i := range f.sections {
		out[i] = f.sections[i].Coefficients
	}

	return out
}

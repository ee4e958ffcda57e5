package fir

// Stream is a streaming FIR filter: the same dot product as [Filter],
// with an internal circular delay line so callers can feed one sample at
// a time.
type Stream[T Sample] struct {
	h     []T
	delay []T
	pos   int
}

// NewStream creates a streaming filter from the given coefficient
// slice. The coefficients are copied; construction fails if the slice
// is empty.
func NewStream[T Sample](h []T) (*Stream[T], error) {
	if len(h) == 0 {
		return nil, ErrEmptyCoefficients
	}

	c := make([]T, len(h))
	copy(c, h)

	return &Stream[T]{
		h:     c,
		delay: make([]T, len(c)),
	}, nil
}

// ProcessSample filters one input sample:
//
//	y[n] = sum_k h[k] * x[n-k]
func (s *Stream[T]) ProcessSample(x T) T {
	s.delay[s.pos] = x

	var y T

	n := len(s.h)
	p := s.pos

	for k := range n {
		y += s.h[k] * s.delay[p]

		p--
		if p < 0 {
			p = n - 1
		}
	}

	s.pos++
	if s.pos >= n {
		s.pos = 0
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *Stream[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (s *Stream[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (s *Stream[T]) Reset() {
	var zero T
	for i := range s.delay {
		s.delay[i] = zero
	}

	s.pos = 0
}

// Len returns the number of coefficients (filter order + 1).
func (s *Stream[T]) Len() int {
	return len(s.h)
}

// Coefficients returns a copy of the filter coefficients.
func (s *Stream[T]) Coefficients() []T {
	c := make([]T, len(s.h))
	copy(c, s.h)

	return c
}

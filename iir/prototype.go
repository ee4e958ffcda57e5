package iir

import (
	"github.com/cwbudde/algo-filter/design"
	"github.com/cwbudde/algo-filter/internal/num"
)

// NewPrototype designs a filter from an analog prototype specification
// and constructs it in the requested coefficient format.
//
//	ftype   analog prototype family (e.g. design.Butterworth)
//	band    band configuration; band-pass and band-stop double the
//	        effective filter order
//	format  design.SOS for cascaded sections, design.TransferFunction
//	        for the flat normal form
//	order   prototype filter order, >= 1
//	fc      cutoff frequency, 0 < fc < 0.5
//	f0      center frequency (band-pass/band-stop), 0 <= f0 <= 0.5
//	ap      pass-band ripple in dB, > 0
//	as      stop-band attenuation in dB, > 0
//
// Design parameter validation errors surface from the design package
// unchanged.
func NewPrototype[T Sample](ftype design.Type, band design.Band, format design.Format,
	order int, fc, f0, ap, as float64,
) (*Filter[T], error) {
	b, a, err := design.Prototype(ftype, band, format, order, fc, f0, ap, as)
	if err != nil {
		return nil, err
	}

	bt := make([]T, len(b))
	at := make([]T, len(a))

	for i := range b {
		bt[i] = num.FromFloat[T](b[i])
		at[i] = num.FromFloat[T](a[i])
	}

	if format == design.SOS {
		return NewSOS(bt, at)
	}

	return New(bt, at)
}

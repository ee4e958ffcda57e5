package design

import (
	"errors"
	"fmt"
)

// Errors returned by the design functions.
var (
	ErrInvalidOrder     = errors.New("design: filter order must be at least 1")
	ErrInvalidCutoff    = errors.New("design: cutoff frequency must be in (0, 0.5)")
	ErrInvalidCenter    = errors.New("design: center frequency must be in [0, 0.5]")
	ErrInvalidRipple    = errors.New("design: pass-band ripple must be positive")
	ErrInvalidStopband  = errors.New("design: stop-band attenuation must be positive")
	ErrRippleOrder      = errors.New("design: stop-band attenuation must exceed pass-band ripple")
	ErrUnknownType      = errors.New("design: unknown filter type")
	ErrUnknownBand      = errors.New("design: unknown band type")
	ErrUnknownFormat    = errors.New("design: unknown coefficient format")
	ErrPrototypeFailure = errors.New("design: analog prototype computation failed")
)

// Type selects the analog prototype family.
type Type int

// Supported filter types.
const (
	Butterworth Type = iota
	Chebyshev1
	Chebyshev2
	Elliptic
	Bessel
)

// String returns the filter type name.
func (t Type) String() string {
	switch t {
	case Butterworth:
		return "butterworth"
	case Chebyshev1:
		return "chebyshev-1"
	case Chebyshev2:
		return "chebyshev-2"
	case Elliptic:
		return "elliptic"
	case Bessel:
		return "bessel"
	}

	return fmt.Sprintf("type(%d)", int(t))
}

// Band selects the frequency transformation applied to the low-pass
// prototype.
type Band int

// Supported band types.
const (
	Lowpass Band = iota
	Highpass
	Bandpass
	Bandstop
)

// String returns the band type name.
func (b Band) String() string {
	switch b {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	}

	return fmt.Sprintf("band(%d)", int(b))
}

// Format selects the layout of the emitted coefficients.
type Format int

// Supported coefficient formats.
const (
	// SOS emits cascaded second-order sections: three numerator and
	// three denominator values per section, ceil(order/2) sections.
	SOS Format = iota

	// TransferFunction emits flat numerator/denominator arrays of
	// length order+1 each.
	TransferFunction
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case SOS:
		return "sos"
	case TransferFunction:
		return "tf"
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// Prototype designs a digital IIR filter from an analog prototype
// specification and returns its coefficients in the requested format.
//
//	ftype  analog prototype family
//	band   band configuration; band-pass and band-stop double the
//	       effective order (the transform doubles every pole and zero)
//	format coefficient layout of the returned slices
//	order  prototype filter order, >= 1
//	fc     cutoff (transition) frequency, 0 < fc < 0.5
//	f0     center frequency for band-pass/band-stop, 0 <= f0 <= 0.5
//	ap     pass-band ripple in dB, > 0
//	as     stop-band attenuation in dB, > 0
//
// For the SOS format the returned slices hold 3*(L+r) values each, where
// r = N%2, L = (N-r)/2 and N is the effective order. For the transfer
// function format they hold N+1 values each.
func Prototype(ftype Type, band Band, format Format, order int, fc, f0, ap, as float64) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}

	if fc <= 0 || fc >= 0.5 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrInvalidCutoff, fc)
	}

	if f0 < 0 || f0 > 0.5 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrInvalidCenter, f0)
	}

	if ap <= 0 {
		return nil, nil, fmt.Errorf("%w: got %g dB", ErrInvalidRipple, ap)
	}

	if as <= 0 {
		return nil, nil, fmt.Errorf("%w: got %g dB", ErrInvalidStopband, as)
	}

	// Analog prototype: zeros, poles, gain in the s-plane.
	za, pa, ka, err := analogPrototype(ftype, order, ap, as)
	if err != nil {
		return nil, nil, err
	}

	// Bilinear transform with frequency pre-warping maps the analog
	// roots onto the unit circle.
	m, err := prewarp(band, fc)
	if err != nil {
		return nil, nil, err
	}

	zd, pd, kd := bilinear(za, pa, ka, order, m)

	// Band transforms operate on the digital roots directly.
	switch band {
	case Lowpass:
	case Highpass:
		negateRoots(zd)
		negateRoots(pd)
	case Bandpass:
		zd, pd = lowpassToBandpass(zd, pd, f0)
	case Bandstop:
		negateRoots(zd)
		negateRoots(pd)
		zd, pd = lowpassToBandpass(zd, pd, f0)
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownBand, band)
	}

	switch format {
	case SOS:
		return ZPK2SOS(zd, pd, kd)
	case TransferFunction:
		return ZPK2TF(zd, pd, kd)
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

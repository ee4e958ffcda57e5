package response

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the FFT-based spectrum functions.
var (
	ErrEmptyImpulse = errors.New("response: impulse response is empty")
	ErrFFTSize      = errors.New("response: FFT size must cover the impulse response")
)

// ImpulseSpectrum zero-pads an impulse response to fftSize samples and
// returns its forward FFT. Bin k corresponds to the normalized
// frequency k/fftSize.
func ImpulseSpectrum(ir []float64, fftSize int) ([]complex128, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyImpulse
	}

	if fftSize < len(ir) {
		return nil, fmt.Errorf("%w: got %d for %d samples", ErrFFTSize, fftSize, len(ir))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range ir {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	return spectrum, nil
}

// ImpulseMagnitudeDB returns the magnitude spectrum of an impulse
// response in dB, computed over an fftSize-point FFT.
func ImpulseMagnitudeDB(ir []float64, fftSize int) ([]float64, error) {
	spectrum, err := ImpulseSpectrum(ir, fftSize)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(spectrum))
	im := make([]float64, len(spectrum))

	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(spectrum))
	vecmath.Magnitude(out, re, im)

	for i, v := range out {
		out[i] = ratioToDB(v)
	}

	return out, nil
}

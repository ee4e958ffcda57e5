package design

import (
	"errors"
	"fmt"
)

// Errors returned by the phase-locked-loop filter designs.
var (
	ErrPLLBandwidth = errors.New("design: pll bandwidth must be in (0, 1)")
	ErrPLLDamping   = errors.New("design: pll damping factor must be in (0, 1)")
	ErrPLLGain      = errors.New("design: pll loop gain must be positive")
)

// PLLActiveLag derives the coefficients of a second-order active-lag
// phase-locked-loop filter:
//
//	bandwidth  loop filter bandwidth, in (0, 1)
//	damping    damping factor, in (0, 1); 1/sqrt(2) suggested
//	gain       loop gain, > 0; 1000 suggested
//
// The digital filter follows from the active-lag analog loop filter with
// time constants t1 = gain/bandwidth^2 and t2 = 2*damping/bandwidth.
func PLLActiveLag(bandwidth, damping, gain float64) (b, a [3]float64, err error) {
	if err := validatePLL(bandwidth, damping, gain); err != nil {
		return b, a, err
	}

	t1 := gain / (bandwidth * bandwidth)
	t2 := 2 * damping / bandwidth

	b[0] = 2 * gain * (1 + t2/2)
	b[1] = 4 * gain
	b[2] = 2 * gain * (1 - t2/2)

	a[0] = 1 + t1/2
	a[1] = -t1
	a[2] = -1 + t1/2

	return b, a, nil
}

// PLLActivePI derives the coefficients of a second-order active
// proportional-plus-integration phase-locked-loop filter. Parameters and
// numerator match [PLLActiveLag]; the perfect integrator changes the
// denominator.
func PLLActivePI(bandwidth, damping, gain float64) (b, a [3]float64, err error) {
	if err := validatePLL(bandwidth, damping, gain); err != nil {
		return b, a, err
	}

	t1 := gain / (bandwidth * bandwidth)
	t2 := 2 * damping / bandwidth

	b[0] = 2 * gain * (1 + t2/2)
	b[1] = 4 * gain
	b[2] = 2 * gain * (1 - t2/2)

	a[0] = t1 / 2
	a[1] = -t1
	a[2] = t1 / 2

	return b, a, nil
}

func validatePLL(bandwidth, damping, gain float64) error {
	if bandwidth <= 0 || bandwidth >= 1 {
		return fmt.Errorf("%w: got %g", ErrPLLBandwidth, bandwidth)
	}

	if damping <= 0 || damping >= 1 {
		return fmt.Errorf("%w: got %g", ErrPLLDamping, damping)
	}

	if gain <= 0 {
		return fmt.Errorf("%w: got %g", ErrPLLGain, gain)
	}

	return nil
}

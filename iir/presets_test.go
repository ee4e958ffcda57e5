package iir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-filter/design"
)

func TestDCBlocker(t *testing.T) {
	f, err := NewDCBlocker[float64](0.05)
	if err != nil {
		t.Fatal(err)
	}

	// Exact null at DC.
	if g := cmplx.Abs(f.Response(0)); g > 1e-12 {
		t.Fatalf("|H(0)| = %v, want 0", g)
	}

	// A constant input decays toward zero.
	var y float64
	for range 2000 {
		y = f.ProcessSample(1)
	}

	if math.Abs(y) > 1e-8 {
		t.Fatalf("steady-state output %v, want ~0", y)
	}
}

func TestDCBlockerValidation(t *testing.T) {
	for _, alpha := range []float64{0, -0.1, math.Inf(1), math.NaN()} {
		if _, err := NewDCBlocker[float64](alpha); !errors.Is(err, ErrInvalidBlockingFraction) {
			t.Errorf("alpha=%v: got %v, want ErrInvalidBlockingFraction", alpha, err)
		}
	}
}

func TestPLL(t *testing.T) {
	f, err := NewPLL[float64](0.5, 0.707, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if f.Form() != FormSOS || f.NumSections() != 1 {
		t.Fatalf("form=%v sections=%d, want sos with one section", f.Form(), f.NumSections())
	}
}

func TestPLLValidation(t *testing.T) {
	tests := []struct {
		name      string
		bandwidth float64
		damping   float64
		gain      float64
		want      error
	}{
		{"bandwidth zero", 0, 0.707, 1000, design.ErrPLLBandwidth},
		{"bandwidth one", 1, 0.707, 1000, design.ErrPLLBandwidth},
		{"damping out of range", 0.5, 1.5, 1000, design.ErrPLLDamping},
		{"gain zero", 0.5, 0.707, 0, design.ErrPLLGain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPLL[float64](tt.bandwidth, tt.damping, tt.gain); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

// zpkResponse evaluates tabulated zero/pole/gain data directly:
//
//	H = k * prod(1 - z_i*q) / prod(1 - p_i*q), q = e^(+j*2*pi*fc)
func zpkResponse(zeros, poles []complex128, gain float64, fc float64) complex128 {
	q := cmplx.Exp(complex(0, 2*math.Pi*fc))

	h := complex(gain, 0)
	for _, z := range zeros {
		h *= 1 - z*q
	}

	for _, p := range poles {
		h /= 1 - p*q
	}

	return h
}

func TestIntegrator(t *testing.T) {
	f := NewIntegrator[float64]()

	if f.Form() != FormSOS || f.NumSections() != 4 {
		t.Fatalf("form=%v sections=%d, want sos with four sections", f.Form(), f.NumSections())
	}

	// The SOS realization must reproduce the tabulated design exactly.
	zeros, poles, gain := integratorZPK()
	for _, fc := range []float64{0.01, 0.05, 0.1, 0.2, 0.4} {
		got := f.Response(fc)
		want := zpkResponse(zeros, poles, gain, fc)

		if cmplx.Abs(got-want) > 1e-9*cmplx.Abs(want) {
			t.Errorf("H(%v) = %v, want %v", fc, got, want)
		}
	}

	// The tabulated design tracks 1/(j*2*pi*f) in the working band, with
	// a few percent of deviation by construction.
	for _, fc := range []float64{0.05, 0.1, 0.2} {
		got := cmplx.Abs(f.Response(fc))
		ideal := 1 / (2 * math.Pi * fc)

		if math.Abs(got-ideal) > 0.1*ideal {
			t.Errorf("|H(%v)| = %v, want within 10%% of %v", fc, got, ideal)
		}
	}

	// The pole at z = 1 makes the response grow without bound toward DC.
	prev := cmplx.Abs(f.Response(0.1))
	for _, fc := range []float64{0.01, 0.001, 0.0001} {
		g := cmplx.Abs(f.Response(fc))
		if g <= prev {
			t.Fatalf("|H(%v)| = %v, expected growth beyond %v", fc, g, prev)
		}

		prev = g
	}
}

func TestDifferentiator(t *testing.T) {
	f := NewDifferentiator[float64]()

	if f.Form() != FormSOS || f.NumSections() != 4 {
		t.Fatalf("form=%v sections=%d, want sos with four sections", f.Form(), f.NumSections())
	}

	// The SOS realization must reproduce the tabulated design exactly.
	// The tabulated curve itself sits well below j*2*pi*f above fc = 0.1,
	// so the design values are the reference here, not the ideal ramp.
	zeros, poles, gain := differentiatorZPK()
	for _, fc := range []float64{0.01, 0.05, 0.1, 0.2, 0.4} {
		got := f.Response(fc)
		want := zpkResponse(zeros, poles, gain, fc)

		if cmplx.Abs(got-want) > 1e-9*cmplx.Abs(want) {
			t.Errorf("H(%v) = %v, want %v", fc, got, want)
		}
	}

	// Zero at z = 1: DC is removed.
	if g := cmplx.Abs(f.Response(0)); g > 1e-9 {
		t.Fatalf("|H(0)| = %v, want ~0", g)
	}
}

func TestIntegratorDifferentiatorCascade(t *testing.T) {
	// Back to back, the cascade must match the product of the two
	// tabulated designs; it approaches unity gain only toward the low end
	// of the working band.
	integ := NewIntegrator[float64]()
	diff := NewDifferentiator[float64]()

	zi, pi, ki := integratorZPK()
	zd, pd, kd := differentiatorZPK()

	for _, fc := range []float64{0.01, 0.05, 0.1, 0.2} {
		got := integ.Response(fc) * diff.Response(fc)
		want := zpkResponse(zi, pi, ki, fc) * zpkResponse(zd, pd, kd, fc)

		if cmplx.Abs(got-want) > 1e-9*cmplx.Abs(want) {
			t.Errorf("cascade H(%v) = %v, want %v", fc, got, want)
		}
	}
}

func TestGroupDelayAdditivity(t *testing.T) {
	f, err := NewPrototype[float64](design.Butterworth, design.Lowpass, design.SOS, 6, 0.2, 0, 1, 60)
	if err != nil {
		t.Fatal(err)
	}

	sections := f.Sections()

	for _, fc := range []float64{0.05, 0.1, 0.3} {
		var sum float64
		for i := range sections {
			sum += sections[i].GroupDelay(fc)
		}

		want := sum - 2*float64(len(sections))

		if got := f.GroupDelay(fc); !almostEqual(got, want, 1e-9) {
			t.Errorf("at fc=%v: got %v, want %v", fc, got, want)
		}
	}
}

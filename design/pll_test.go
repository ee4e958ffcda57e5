package design

import (
	"errors"
	"testing"
)

func TestPLLActiveLag(t *testing.T) {
	const (
		bandwidth = 0.1
		damping   = 0.707
		gain      = 1000.0
	)

	b, a, err := PLLActiveLag(bandwidth, damping, gain)
	if err != nil {
		t.Fatal(err)
	}

	t1 := gain / (bandwidth * bandwidth)
	t2 := 2 * damping / bandwidth

	wantB := [3]float64{2 * gain * (1 + t2/2), 4 * gain, 2 * gain * (1 - t2/2)}
	wantA := [3]float64{1 + t1/2, -t1, -1 + t1/2}

	for i := range 3 {
		if !almostEqual(b[i], wantB[i], eps) {
			t.Errorf("b[%d]: got %v, want %v", i, b[i], wantB[i])
		}

		if !almostEqual(a[i], wantA[i], eps) {
			t.Errorf("a[%d]: got %v, want %v", i, a[i], wantA[i])
		}
	}
}

func TestPLLActivePI(t *testing.T) {
	const (
		bandwidth = 0.1
		damping   = 0.707
		gain      = 1000.0
	)

	b, a, err := PLLActivePI(bandwidth, damping, gain)
	if err != nil {
		t.Fatal(err)
	}

	t1 := gain / (bandwidth * bandwidth)

	// Same numerator as the active lag form.
	lagB, _, err := PLLActiveLag(bandwidth, damping, gain)
	if err != nil {
		t.Fatal(err)
	}

	if b != lagB {
		t.Errorf("numerator: got %v, want %v", b, lagB)
	}

	wantA := [3]float64{t1 / 2, -t1, t1 / 2}
	for i := range 3 {
		if !almostEqual(a[i], wantA[i], eps) {
			t.Errorf("a[%d]: got %v, want %v", i, a[i], wantA[i])
		}
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
		{"bandwidth zero", 0, 0.707, 1000, ErrPLLBandwidth},
		{"bandwidth one", 1, 0.707, 1000, ErrPLLBandwidth},
		{"damping zero", 0.5, 0, 1000, ErrPLLDamping},
		{"damping one", 0.5, 1, 1000, ErrPLLDamping},
		{"gain zero", 0.5, 0.707, 0, ErrPLLGain},
		{"gain negative", 0.5, 0.707, -5, ErrPLLGain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := PLLActiveLag(tt.bandwidth, tt.damping, tt.gain); !errors.Is(err, tt.want) {
				t.Errorf("active lag: got %v, want %v", err, tt.want)
			}

			if _, _, err := PLLActivePI(tt.bandwidth, tt.damping, tt.gain); !errors.Is(err, tt.want) {
				t.Errorf("active pi: got %v, want %v", err, tt.want)
			}
		})
	}
}

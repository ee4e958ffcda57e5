package ellipticmath

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(a), math.Abs(b))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

func TestLanden_Convergence(t *testing.T) {
	v := Landen(0.5, 1e-15)
	if len(v) == 0 {
		t.Fatal("Landen returned empty sequence")
	}

	last := v[len(v)-1]
	if last > 1e-15 {
		t.Fatalf("Landen did not converge: last value = %e", last)
	}

	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			t.Fatalf("Landen not monotonically decreasing at index %d: %e >= %e", i, v[i], v[i-1])
		}
	}
}

func TestLanden_Limits(t *testing.T) {
	v0 := Landen(0, 1e-15)
	if len(v0) != 1 || v0[0] != 0 {
		t.Fatalf("Landen(0) = %v, expected [0]", v0)
	}

	v1 := Landen(1, 1e-15)
	if len(v1) != 1 || v1[0] != 1 {
		t.Fatalf("Landen(1) = %v, expected [1]", v1)
	}
}

func TestLanden_FixedIterations(t *testing.T) {
	const iter = 6

	v := Landen(0.5, iter)
	if len(v) != iter {
		t.Fatalf("Landen fixed-iteration length = %d, want %d", len(v), iter)
	}

	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			t.Fatalf("fixed-iteration Landen not monotonically decreasing at index %d", i)
		}
	}
}

func TestLandenK_MatchesEllipK(t *testing.T) {
	k := 0.6
	v := Landen(k, 1e-15)
	got := LandenK(v)

	want, _ := EllipK(k, 1e-15)
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("LandenK mismatch: got=%g want=%g", got, want)
	}
}

func TestEllipK_KnownValues(t *testing.T) {
	K, Kp := EllipK(0, 1e-15)
	if !almostEqual(K, math.Pi/2, 1e-10) {
		t.Fatalf("K(0) = %v, expected pi/2 = %v", K, math.Pi/2)
	}

	if !math.IsInf(Kp, 1) {
		t.Fatalf("K'(0) = %v, expected +Inf", Kp)
	}

	K1, _ := EllipK(1, 1e-15)
	if !math.IsInf(K1, 1) {
		t.Fatalf("K(1) = %v, expected +Inf", K1)
	}
}

func TestEllipK_SymmetryRelation(t *testing.T) {
	k := 0.6
	kp := math.Sqrt(1 - k*k)
	K, Kprime := EllipK(k, 1e-15)
	Kkp, Kpkp := EllipK(kp, 1e-15)
	ratio1 := K / Kprime

	ratio2 := Kpkp / Kkp
	if !almostEqual(ratio1, ratio2, 1e-8) {
		t.Fatalf("symmetry: K/K' = %v, K'(k')/K(k') = %v", ratio1, ratio2)
	}
}

func TestCDE_RealInputRange(t *testing.T) {
	k := 0.5

	for _, uVal := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		u := complex(uVal, 0)

		cd := CDE(u, k, 1e-15)
		if math.Abs(imag(cd)) > 1e-10 {
			t.Fatalf("CDE(%v, %v): imaginary part = %v, expected ~0", uVal, k, imag(cd))
		}

		cdReal := real(cd)
		if cdReal < -0.01 || cdReal > 1.01 {
			t.Fatalf("CDE(%v, %v) = %v, outside expected range [0,1]", uVal, k, cdReal)
		}
	}
}

func TestCDE_Endpoints(t *testing.T) {
	k := 0.7

	cd0 := CDE(0, k, 1e-15)
	if !almostEqual(real(cd0), 1.0, 1e-10) {
		t.Fatalf("CDE(0, %v) = %v, expected 1", k, cd0)
	}

	cd1 := CDE(1, k, 1e-15)
	if !almostEqual(real(cd1), 0.0, 1e-10) {
		t.Fatalf("CDE(1, %v) = %v, expected 0", k, cd1)
	}
}

func TestSNE_Endpoints(t *testing.T) {
	k := 0.5

	s0 := SNE([]float64{0}, k, 1e-15)
	if !almostEqual(s0[0], 0.0, 1e-10) {
		t.Fatalf("SNE(0) = %v, expected 0", s0[0])
	}

	s1 := SNE([]float64{1}, k, 1e-15)
	if !almostEqual(s1[0], 1.0, 1e-10) {
		t.Fatalf("SNE(1) = %v, expected 1", s1[0])
	}
}

func TestJacobiSCD_Identities(t *testing.T) {
	k := 0.8
	K, _ := EllipK(k, 1e-15)

	for _, frac := range []float64{0.2, 0.4, 0.6, 0.8} {
		sn, cn, dn, ok := JacobiSCD(frac*K, k, 1e-15)
		if !ok {
			t.Fatalf("JacobiSCD failed at u=%v*K", frac)
		}

		if !almostEqual(sn*sn+cn*cn, 1.0, 1e-9) {
			t.Fatalf("sn^2+cn^2 = %v at u=%v*K, expected 1", sn*sn+cn*cn, frac)
		}

		if !almostEqual(dn*dn+k*k*sn*sn, 1.0, 1e-9) {
			t.Fatalf("dn^2+k^2*sn^2 = %v at u=%v*K, expected 1", dn*dn+k*k*sn*sn, frac)
		}
	}
}

func TestJacobiSCD_RejectsBadModulus(t *testing.T) {
	if _, _, _, ok := JacobiSCD(0.5, 1.0, 1e-15); ok {
		t.Fatal("expected failure for k = 1")
	}

	if _, _, _, ok := JacobiSCD(0.5, -0.1, 1e-15); ok {
		t.Fatal("expected failure for negative modulus")
	}
}

func TestArcJacobiSN_InvertsSNE(t *testing.T) {
	k := 0.6
	m := k * k
	K, _ := EllipK(k, 1e-15)

	for _, un := range []float64{0.2, 0.5, 0.8} {
		w := SNE([]float64{un}, k, 1e-15)[0]

		u := ArcJacobiSN(complex(w, 0), m)
		if math.Abs(imag(u)) > 1e-8 {
			t.Fatalf("ArcJacobiSN(%v): imag = %v, expected ~0", w, imag(u))
		}

		if !almostEqual(real(u), un*K, 1e-8) {
			t.Fatalf("ArcJacobiSN(%v) = %v, expected %v", w, real(u), un*K)
		}
	}
}

func TestArcJacobiSC1_PositiveOnAxis(t *testing.T) {
	// Arguments of the form j*w must map onto the imaginary axis.
	for _, w := range []float64{0.5, 2.0, 10.0} {
		got := ArcJacobiSC1(w, 0.04)
		if math.IsNaN(got) || got <= 0 {
			t.Fatalf("ArcJacobiSC1(%v, 0.04) = %v, expected positive", w, got)
		}
	}
}

func TestDegreeParam_DegreeEquation(t *testing.T) {
	for _, tc := range []struct {
		n  int
		m1 float64
	}{
		{2, 0.01},
		{4, 0.01},
		{5, 0.001},
	} {
		m := DegreeParam(tc.n, tc.m1, 1e-15)
		if !(m > 0 && m < 1) {
			t.Fatalf("DegreeParam(%d, %v) = %v, expected in (0,1)", tc.n, tc.m1, m)
		}

		K, Kp := EllipK(math.Sqrt(m), 1e-15)
		K1, K1p := EllipK(math.Sqrt(tc.m1), 1e-15)

		lhs := float64(tc.n) * Kp / K
		rhs := K1p / K1
		if !almostEqual(lhs, rhs, 1e-6) {
			t.Fatalf("degree equation n=%d: N*K'/K=%v, K1'/K1=%v", tc.n, lhs, rhs)
		}
	}
}

func TestDegreeParam_RejectsBadInputs(t *testing.T) {
	if !math.IsNaN(DegreeParam(0, 0.5, 1e-15)) {
		t.Fatal("expected NaN for order 0")
	}

	if !math.IsNaN(DegreeParam(4, 1.5, 1e-15)) {
		t.Fatal("expected NaN for out-of-range selectivity")
	}
}

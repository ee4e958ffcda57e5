package ellipticmath

import (
	"math"
	"math/cmplx"
)

const (
	arcJacMaxIter = 10
	imagCheckTol  = 1e-7
	seriesLen     = 7
)

// Landen computes the Landen sequence of descending moduli for k.
// If tol < 1 it is interpreted as a convergence threshold; otherwise
// it is interpreted as a fixed iteration count.
func Landen(k, tol float64) []float64 {
	var v []float64
	if k == 0 || k == 1.0 {
		return []float64{k}
	}
	if tol < 1 {
		for k > tol {
			t := k / (1.0 + math.Sqrt((1-k)*(1+k)))
			k = t * t
			v = append(v, k)
		}
	} else {
		M := int(tol)
		for i := 1; i <= M; i++ {
			t := k / (1.0 + math.Sqrt((1-k)*(1+k)))
			k = t * t
			v = append(v, k)
		}
	}

	return v
}

// LandenK computes K(k) from a precomputed Landen sequence using
// K(k) = (pi/2) * product(1 + v[i]).
func LandenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1.0 + x
	}
	return prod * math.Pi * 0.5
}

// EllipK computes the complete elliptic integral K(k) and its
// complement K'(k), switching to logarithmic expansions near the
// endpoints of the modulus range.
func EllipK(k, tol float64) (float64, float64) {
	kmin := 1e-6
	kmax := math.Sqrt(1 - kmin*kmin)

	var K, Kp float64
	if k == 1.0 {
		K = math.Inf(1)
	} else if k > kmax {
		kp := math.Sqrt((1 - k) * (1 + k))
		L := -math.Log(kp / 4.0)
		K = L + (L-1)*kp*kp/4.0
	} else {
		K = LandenK(Landen(k, tol))
	}

	if k == 0.0 {
		Kp = math.Inf(1)
	} else if k < kmin {
		L := -math.Log(k / 4.0)
		Kp = L + (L-1.0)*k*k/4.0
	} else {
		kp := math.Sqrt((1 - k) * (1 + k))
		Kp = LandenK(Landen(kp, tol))
	}

	return K, Kp
}

// CDE computes the cd Jacobi elliptic function. The argument is in
// quarter-period units, so CDE(0) = 1 and CDE(1) = 0.
func CDE(u complex128, k, tol float64) complex128 {
	v := Landen(k, tol)
	w := cmplx.Cos(u * math.Pi * 0.5)
	for i := len(v) - 1; i >= 0; i-- {
		w = (1 + complex(v[i], 0)) * w / (1.0 + complex(v[i], 0)*w*w)
	}

	return w
}

// SNE computes the sn Jacobi elliptic function for a vector of real
// arguments in quarter-period units.
func SNE(u []float64, k, tol float64) []float64 {
	v := Landen(k, tol)
	w := make([]float64, len(u))
	for i := range u {
		w[i] = math.Sin(u[i] * math.Pi * 0.5)
	}
	for i := len(v) - 1; i >= 0; i-- {
		for j := range w {
			w[j] = ((1 + v[i]) * w[j]) / (1 + v[i]*w[j]*w[j])
		}
	}

	return w
}

// JacobiSCD evaluates the Jacobi elliptic functions sn, cn and dn for a
// real argument u on the K(k) scale, dividing by the quarter period
// before the Landen descent. ok is false when the modulus is out of
// range or an intermediate value degenerates.
func JacobiSCD(u, k, tol float64) (sn, cn, dn float64, ok bool) {
	if !(k >= 0 && k < 1) {
		return 0, 0, 0, false
	}

	K, _ := EllipK(k, tol)
	if K == 0 || math.IsNaN(K) || math.IsInf(K, 0) {
		return 0, 0, 0, false
	}

	un := u / K

	sn = SNE([]float64{un}, k, tol)[0]
	if math.IsNaN(sn) || math.IsInf(sn, 0) {
		return 0, 0, 0, false
	}

	dn2 := 1.0 - k*k*sn*sn
	if dn2 < -1e-12 {
		return 0, 0, 0, false
	}

	if dn2 < 0 {
		dn2 = 0
	}

	dn = math.Sqrt(dn2)
	cd := real(CDE(complex(un, 0), k, tol))
	cn = cd * dn

	return sn, cn, dn, true
}

// ArcJacobiSN computes the inverse sn Jacobi elliptic function of w for
// parameter m using a descending Landen recurrence. The result is on
// the K scale, so ArcJacobiSN(sn(u*K), m) recovers u*K.
func ArcJacobiSN(w complex128, m float64) complex128 {
	if m < 0 || m > 1 {
		return complex(math.NaN(), math.NaN())
	}

	k := complex(math.Sqrt(m), 0)
	if real(k) == 1 {
		return cmplx.Atanh(w)
	}

	ks := []complex128{k}
	for range arcJacMaxIter - 1 {
		kn := ks[len(ks)-1]
		if cmplx.Abs(kn) == 0 {
			break
		}

		kp := jacobiComplement(kn)
		ks = append(ks, (1.0-kp)/(1.0+kp))
	}

	K := 1.0
	for i := 1; i < len(ks); i++ {
		K *= real(1.0 + ks[i])
	}

	K *= math.Pi * 0.5

	wn := w

	for i := range len(ks) - 1 {
		kn := ks[i]
		knext := ks[i+1]

		den := (1.0 + knext) * (1.0 + jacobiComplement(kn*wn))
		if den == 0 {
			return complex(math.NaN(), math.NaN())
		}

		wn = 2.0 * wn / den
	}

	u := (2.0 / math.Pi) * cmplx.Asin(wn)

	return complex(K, 0) * u
}

// ArcJacobiSC1 computes the real inverse sc value used to place the
// pole band of an elliptic prototype. The result must lie on the
// imaginary axis; NaN is returned when it drifts off.
func ArcJacobiSC1(w, m float64) float64 {
	z := ArcJacobiSN(complex(0, w), m)
	if math.Abs(real(z)) > imagCheckTol*math.Max(1.0, math.Abs(imag(z))) {
		return math.NaN()
	}

	return imag(z)
}

func jacobiComplement(k complex128) complex128 {
	return cmplx.Sqrt((1.0 - k) * (1.0 + k))
}

// DegreeParam solves the elliptic degree equation for order n and
// selectivity parameter m1, returning the parameter m = k^2 via the
// nome series. NaN signals out-of-range inputs or a degenerate
// intermediate integral.
func DegreeParam(n int, m1, tol float64) float64 {
	if n <= 0 || !(m1 > 0 && m1 < 1) {
		return math.NaN()
	}

	k1 := math.Sqrt(m1)
	K1, _ := EllipK(k1, tol)

	K1p, _ := EllipK(math.Sqrt(1.0-m1), tol)
	if K1 <= 0 || K1p <= 0 || math.IsNaN(K1) || math.IsNaN(K1p) || math.IsInf(K1, 0) || math.IsInf(K1p, 0) {
		return math.NaN()
	}

	q1 := math.Exp(-math.Pi * K1p / K1)
	q := math.Pow(q1, 1.0/float64(n))

	num := 0.0
	for m := range seriesLen {
		num += math.Pow(q, float64(m*(m+1)))
	}

	den := 1.0
	for m := 1; m < seriesLen; m++ {
		den += 2.0 * math.Pow(q, float64(m*m))
	}

	return 16.0 * q * math.Pow(num/den, 4.0)
}

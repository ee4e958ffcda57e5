package design

import (
	"fmt"
	"math"
	"math/cmplx"
)

// prewarp computes the bilinear-transform frequency scaling factor. The
// low-pass and band-pass designs warp the cutoff directly; high-pass and
// band-stop designs are realized by negating the digital roots, which
// mirrors the frequency axis, so their prototype cutoff is the mirrored
// one and the factor becomes the cotangent.
func prewarp(band Band, fc float64) (float64, error) {
	switch band {
	case Lowpass, Bandpass:
		return math.Tan(math.Pi * fc), nil
	case Highpass, Bandstop:
		return 1 / math.Tan(math.Pi*fc), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownBand, band)
	}
}

// bilinear maps analog roots into the z-plane with scaling factor m:
//
//	z = (1 + m*s) / (1 - m*s)
//
// The zero list is padded to the pole count with z = -1 (zeros at
// infinity land at the Nyquist frequency). The digital gain accumulates
// the (1 - m*s) factors of every finite root and one factor m per
// padded zero, left over from the unmatched 1/(m*(z+1)) denominators of
// the substitution.
func bilinear(za, pa []complex128, ka complex128, order int, m float64) (zd, pd []complex128, kd complex128) {
	mc := complex(m, 0)

	zd = make([]complex128, order)
	pd = make([]complex128, order)
	kd = ka

	for i := range order {
		pd[i] = (1 + mc*pa[i]) / (1 - mc*pa[i])
		kd /= 1 - mc*pa[i]

		if i < len(za) {
			zd[i] = (1 + mc*za[i]) / (1 - mc*za[i])
			kd *= 1 - mc*za[i]
		} else {
			zd[i] = -1
			kd *= mc
		}
	}

	return zd, pd, kd
}

// negateRoots reflects digital roots through the origin, mapping the
// response at frequency f to 0.5-f (low-pass to high-pass).
func negateRoots(roots []complex128) {
	for i := range roots {
		roots[i] = -roots[i]
	}
}

// lowpassToBandpass applies the digital band transform centered on f0 to
// every root, doubling the root count. Each root z maps to the quadratic
// pair
//
//	z' = (c0*(1+z) +/- sqrt(c0^2*(1+z)^2 - 4z)) / 2, c0 = cos(2*pi*f0)
func lowpassToBandpass(zd, pd []complex128, f0 float64) (zd2, pd2 []complex128) {
	c0 := complex(math.Cos(2*math.Pi*f0), 0)

	transform := func(roots []complex128) []complex128 {
		out := make([]complex128, 2*len(roots))
		for i, z := range roots {
			t := c0 * (1 + z)
			d := cmplx.Sqrt(t*t - 4*z)
			out[2*i] = (t + d) / 2
			out[2*i+1] = (t - d) / 2
		}

		return out
	}

	return transform(zd), transform(pd)
}

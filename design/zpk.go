package design

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-filter/internal/poly"
	"github.com/cwbudde/algo-filter/internal/polyroot"
)

// Errors returned by the zero/pole/gain conversions.
var (
	ErrEmptyRoots        = errors.New("design: root set is empty")
	ErrRootCountMismatch = errors.New("design: zero and pole counts differ")
)

const rootGroupTol = 1e-6

// ZPK2TF expands digital zero/pole/gain data into flat transfer-function
// coefficients, ascending in powers of z^-1. Both returned slices have
// len(poles)+1 values; the numerator is scaled by the gain. Zeros must be
// padded to the pole count beforehand (the bilinear transform does this).
func ZPK2TF(zeros, poles []complex128, gain complex128) (b, a []float64, err error) {
	if len(poles) == 0 {
		return nil, nil, fmt.Errorf("%w: no poles", ErrEmptyRoots)
	}

	if len(zeros) != len(poles) {
		return nil, nil, fmt.Errorf("%w: %d zeros, %d poles", ErrRootCountMismatch, len(zeros), len(poles))
	}

	n := len(poles)
	qb := poly.ExpandRoots(zeros)
	qa := poly.ExpandRoots(poles)

	// prod(z - r_i) / z^n = prod(1 - r_i*z^-1): the coefficient of z^-i
	// is the expanded coefficient of z^(n-i).
	b = make([]float64, n+1)
	a = make([]float64, n+1)

	for i := 0; i <= n; i++ {
		b[i] = real(gain * qb[n-i])
		a[i] = real(qa[n-i])
	}

	return b, a, nil
}

// ZPK2SOS converts digital zero/pole/gain data into cascaded second-order
// sections. Conjugate root pairs share a section, real roots are paired
// with each other, and an odd leftover real root forms a trailing
// first-order section (B2 = A2 = 0). The returned slices hold three
// values per section, 3*ceil(n/2) in total.
//
// The gain magnitude is distributed evenly across the section numerators
// as |k|^(1/L); its sign is applied to the first section only, keeping
// negative gains exact.
func ZPK2SOS(zeros, poles []complex128, gain complex128) (b, a []float64, err error) {
	if len(poles) == 0 {
		return nil, nil, fmt.Errorf("%w: no poles", ErrEmptyRoots)
	}

	if len(zeros) != len(poles) {
		return nil, nil, fmt.Errorf("%w: %d zeros, %d poles", ErrRootCountMismatch, len(zeros), len(poles))
	}

	zg := groupConjugateRoots(zeros)
	pg := groupConjugateRoots(poles)

	if len(zg) != len(pg) {
		return nil, nil, fmt.Errorf("%w: grouped into %d zero and %d pole sections", ErrRootCountMismatch, len(zg), len(pg))
	}

	nsos := len(pg)
	k := real(gain)
	mag := math.Pow(math.Abs(k), 1/float64(nsos))
	sign := 1.0

	if k < 0 {
		sign = -1
	}

	b = make([]float64, 3*nsos)
	a = make([]float64, 3*nsos)

	for i := range nsos {
		b0, b1, b2 := quadCoefficients(zg[i])
		a0, a1, a2 := quadCoefficients(pg[i])

		scale := mag
		if i == 0 {
			scale *= sign
		}

		b[3*i+0] = scale * b0
		b[3*i+1] = scale * b1
		b[3*i+2] = scale * b2

		a[3*i+0] = a0
		a[3*i+1] = a1
		a[3*i+2] = a2
	}

	return b, a, nil
}

// quadCoefficients expands a one- or two-root group into the monic
// quadratic (1 - r0*z^-1)(1 - r1*z^-1).
func quadCoefficients(group []complex128) (c0, c1, c2 float64) {
	if len(group) == 1 {
		return 1, -real(group[0]), 0
	}

	return 1, -real(group[0] + group[1]), real(group[0] * group[1])
}

// groupConjugateRoots partitions roots into sections: conjugate pairs
// first (descending imaginary magnitude), then real roots paired in
// ascending order, with an odd leftover real root last. Real filters
// always produce matching group layouts for their zeros and poles.
func groupConjugateRoots(roots []complex128) [][]complex128 {
	var reals []complex128
	var complexes []complex128

	for _, r := range roots {
		if math.Abs(imag(r)) <= rootGroupTol*math.Max(1, math.Abs(real(r))) {
			reals = append(reals, complex(real(r), 0))
		} else {
			complexes = append(complexes, r)
		}
	}

	sort.Slice(complexes, func(i, j int) bool {
		ii, jj := imag(complexes[i]), imag(complexes[j])
		if ii != jj {
			return ii > jj
		}

		return real(complexes[i]) < real(complexes[j])
	})

	groups := make([][]complex128, 0, (len(roots)+1)/2)
	used := make([]bool, len(complexes))

	for i, r := range complexes {
		if used[i] {
			continue
		}

		used[i] = true

		best := -1
		bestDist := math.MaxFloat64

		for j := i + 1; j < len(complexes); j++ {
			if used[j] {
				continue
			}

			if !polyroot.IsConjugate(r, complexes[j], rootGroupTol) {
				continue
			}

			d := math.Abs(imag(r)+imag(complexes[j])) + math.Abs(real(r)-real(complexes[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best != -1 {
			used[best] = true
			groups = append(groups, []complex128{r, complexes[best]})
		} else {
			// Unpaired complex root: keep it in its own section so the
			// caller still sees every root. Real designs never hit this.
			groups = append(groups, []complex128{r})
		}
	}

	sort.Slice(reals, func(i, j int) bool { return real(reals[i]) < real(reals[j]) })

	for i := 0; i+1 < len(reals); i += 2 {
		groups = append(groups, []complex128{reals[i], reals[i+1]})
	}

	if len(reals)%2 == 1 {
		groups = append(groups, []complex128{reals[len(reals)-1]})
	}

	return groups
}

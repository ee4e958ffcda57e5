// Package design computes digital IIR filter coefficients from analog
// prototype specifications.
//
// The main entry point is [Prototype], which designs Butterworth,
// Chebyshev (type I and II), elliptic, and Bessel filters in low-pass,
// high-pass, band-pass, and band-stop configurations, emitting either
// flat transfer-function coefficients or cascaded second-order sections.
// The pipeline is the classical one: place analog poles and zeros, apply
// the bilinear transform with frequency pre-warping, then transform the
// digital roots for the requested band.
//
// [ZPK2SOS] and [ZPK2TF] convert digital zero/pole/gain data into
// coefficient arrays directly, and [PLLActiveLag] / [PLLActivePI] derive
// second-order phase-locked-loop filters from bandwidth, damping, and
// loop gain.
//
// All computation is float64; the filter packages convert the results to
// their instantiated sample type.
package design

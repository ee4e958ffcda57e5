// Package fir provides finite impulse response filtering generic over
// real and complex sample types.
//
// A [Filter] is the stateless variant: the caller maintains the input
// window and [Filter.Execute] computes one dot product per output
// sample. A [Stream] wraps the same coefficients with an internal
// circular delay line for sample-by-sample processing.
//
// Frequency response and group delay are computed analytically from the
// coefficients.
package fir

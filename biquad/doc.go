// Package biquad provides the second-order IIR section primitive used by
// the filter packages.
//
// A [Section] implements Direct Form II processing for a single section
// defined by [Coefficients], generic over real and complex sample types.
// Frequency response, group delay, and pole/zero locations are computed
// from the coefficients alone and never touch run state.
//
// This package provides the section runtime only. Coefficient design lives
// in the design package, and cascades of sections are assembled by the iir
// package.
package biquad

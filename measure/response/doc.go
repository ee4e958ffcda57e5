// Package response provides batch frequency-response analysis for any
// filter exposing analytic Response / GroupDelay evaluation, plus
// FFT-based spectra of measured or computed impulse responses.
//
// Analytic curves ([Magnitude], [Phase], [GroupDelayCurve]) sample the
// filter's own evaluators over a frequency grid. [ImpulseSpectrum]
// takes the FFT route instead: zero-pad an impulse response and
// transform it, which is useful as an independent cross-check or when
// only a measured response is available.
package response

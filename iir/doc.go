// Package iir provides infinite impulse response filtering generic over
// real and complex sample types.
//
// A [Filter] executes in one of two forms, fixed at construction: the
// normal form runs the full-order transfer-function recursion on flat
// numerator/denominator arrays with a single shared delay window, while
// the second-order-sections form chains biquad sections, each with its
// own state, for better numerical conditioning at high orders.
//
// Filters are built directly from coefficients ([New], [NewSOS]), from a
// designed analog prototype ([NewPrototype]), or from one of the presets
// ([NewDCBlocker], [NewIntegrator], [NewDifferentiator], [NewPLL]).
// Frequency response and group delay are computed analytically from the
// coefficients and never touch run state.
//
// A Filter owns its state exclusively and is not safe for concurrent
// use; give each goroutine its own instance.
package iir

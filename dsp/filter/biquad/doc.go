// Package biquad provides second-order IIR sections and the RBJ cookbook
// designs used by the filter effect.
//
// [Lowpass], [Highpass] and [Bandpass] return normalized [Coefficients];
// designs that would be unstable or that get an out-of-range frequency
// fall back to a passthrough section. [Coefficients.Filter] runs a buffer
// through the section in place.
package biquad

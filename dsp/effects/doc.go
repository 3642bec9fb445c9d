// Package effects provides the offline effect kernels used by the remix
// chain: Reverb, Delay, Filter, Distortion and Compressor.
//
// Every factory takes normalized 0..100 slider values plus the sample rate
// and returns a [Processor]. The slider-to-physical mappings live in
// params.go as pure functions. Out-of-range slider values are clamped, never
// rejected.
//
// A Processor owns per-render state and transforms a float64 working copy
// of the audio in place. Processors are built fresh for every render and
// must not be shared between goroutines.
package effects

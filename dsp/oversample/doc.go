// Package oversample runs sample-wise nonlinearities at an integer multiple
// of the input rate.
//
// Upsampling zero-stuffs the signal and applies a Kaiser-windowed sinc
// lowpass; downsampling filters with the same kernel and decimates. The
// kernel is symmetric with an odd length and is applied centred, so both
// directions are zero-phase and a round trip adds no latency.
//
// Quality modes, selected with [WithQuality]:
//
//	mode            taps/phase   Kaiser beta
//	QualityFast     8            5.0
//	QualityBalanced 16           7.5
//	QualityBest     32           9.0
package oversample

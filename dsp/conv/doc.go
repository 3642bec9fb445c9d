// Package conv computes linear convolution for the effect processors.
//
// [ConvolveMode] returns one slice of the full convolution, picked by a
// [Mode], and computes only that slice. Kernels of up to 64 taps run in
// the time domain; longer kernels use FFT overlap-add.
//
// [OverlapAdd] holds the spectrum of one long kernel, such as a reverb
// impulse response, and applies it to many signals:
//
//	oa, err := conv.NewOverlapAdd(ir, 0)
//	err = oa.ApplyTo(wet, dry, conv.ModeCausal)
//
// [ModeCausal] keeps the first len(dry) samples and never computes the
// tail. [ModeSame] keeps a centred window, so symmetric FIR filters add
// no delay.
package conv

package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/remixstudio/algo-fx/dsp/core"
)

const minBlockSize = 512

// OverlapAdd convolves signals with a fixed kernel by FFT block
// convolution. The kernel is real, so two input blocks share one complex
// transform: the first rides in the real part and the second in the
// imaginary part, and their results come back the same way.
//
// The kernel spectrum is computed once. Each call allocates its own
// scratch, so an OverlapAdd may be reused for any number of signals.
type OverlapAdd struct {
	spectrum  []complex128
	kernelLen int
	blockSize int
	plan      *algofft.Plan[complex128]
}

// NewOverlapAdd prepares a convolver for kernel. blockSize <= 0 picks the
// next power of two at or above the kernel length, with a floor of 512.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minBlockSize)
	}

	size := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan of size %d: %w", size, err)
	}

	spectrum := make([]complex128, size)
	for i, v := range kernel {
		spectrum[i] = complex(v, 0)
	}

	if err := plan.Forward(spectrum, spectrum); err != nil {
		return nil, fmt.Errorf("conv: kernel spectrum: %w", err)
	}

	return &OverlapAdd{
		spectrum:  spectrum,
		kernelLen: len(kernel),
		blockSize: blockSize,
		plan:      plan,
	}, nil
}

// KernelLen returns the number of kernel taps.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// BlockSize returns the number of input samples per transform half.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// Apply convolves src with the kernel and returns the part kept by mode.
func (oa *OverlapAdd) Apply(src []float64, mode Mode) ([]float64, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	_, n := Span(len(src), oa.kernelLen, mode)
	out := make([]float64, n)

	if err := oa.ApplyTo(out, src, mode); err != nil {
		return nil, err
	}

	return out, nil
}

// ApplyTo is like Apply but writes into dst, which must have exactly the
// length mode keeps. dst must not alias src.
func (oa *OverlapAdd) ApplyTo(dst, src []float64, mode Mode) error {
	if len(src) == 0 {
		return ErrEmptyInput
	}

	offset, n := Span(len(src), oa.kernelLen, mode)
	if len(dst) != n {
		return fmt.Errorf("%w: dst has %d samples, mode keeps %d", ErrLengthMismatch, len(dst), n)
	}

	return oa.window(dst, src, offset)
}

// window writes samples offset..offset+len(dst) of the full convolution
// of src with the kernel into dst. Block pairs whose output lies entirely
// outside the window are skipped.
func (oa *OverlapAdd) window(dst, src []float64, offset int) error {
	core.Zero(dst)

	scratch := make([]complex128, len(oa.spectrum))
	end := offset + len(dst)
	tail := oa.kernelLen - 1

	for first := 0; first < len(src) && first < end; first += 2 * oa.blockSize {
		second := min(first+oa.blockSize, len(src))
		stop := min(second+oa.blockSize, len(src))

		if stop+tail <= offset {
			continue
		}

		clear(scratch)

		for i, v := range src[first:second] {
			scratch[i] = complex(v, 0)
		}

		for i, v := range src[second:stop] {
			scratch[i] += complex(0, v)
		}

		if err := oa.plan.Forward(scratch, scratch); err != nil {
			return fmt.Errorf("forward fft: %w", err)
		}

		for i, h := range oa.spectrum {
			scratch[i] *= h
		}

		if err := oa.plan.Inverse(scratch, scratch); err != nil {
			return fmt.Errorf("inverse fft: %w", err)
		}

		addBlock(dst, scratch, first-offset, second-first+tail, false)

		if stop > second {
			addBlock(dst, scratch, second-offset, stop-second+tail, true)
		}
	}

	return nil
}

// addBlock adds the real (or imaginary) part of block[i] to dst[at+i] for
// the n block samples that land inside dst.
func addBlock(dst []float64, block []complex128, at, n int, imaginary bool) {
	lo := max(0, -at)
	hi := min(n, len(dst)-at)

	for i := lo; i < hi; i++ {
		if imaginary {
			dst[at+i] += imag(block[i])
		} else {
			dst[at+i] += real(block[i])
		}
	}
}

package conv

import (
	"errors"
	"fmt"
)

// Errors returned by the convolution routines.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// directTaps is the longest kernel convolved in the time domain.
const directTaps = 64

// Mode selects which part of the full linear convolution is returned.
type Mode int

const (
	// ModeFull keeps all len(a)+len(b)-1 samples.
	ModeFull Mode = iota

	// ModeSame keeps len(a) samples centred on the kernel, so a symmetric
	// kernel adds no delay.
	ModeSame

	// ModeValid keeps the samples where the shorter input fully overlaps
	// the longer one.
	ModeValid

	// ModeCausal keeps the first len(a) samples. The kernel tail that would
	// ring past the end of a is never computed.
	ModeCausal
)

// Span returns the offset into the full convolution and the number of
// samples that mode keeps for an lenA-sample signal and an lenB-tap kernel.
func Span(lenA, lenB int, mode Mode) (offset, n int) {
	switch mode {
	case ModeSame:
		return (lenB - 1) / 2, lenA
	case ModeValid:
		lo, hi := min(lenA, lenB), max(lenA, lenB)
		return lo - 1, hi - lo + 1
	case ModeCausal:
		return 0, lenA
	default:
		return 0, lenA + lenB - 1
	}
}

// Direct returns the full convolution of a and b computed in the time
// domain. Cost grows with len(a)*len(b).
func Direct(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}

	out := make([]float64, len(a)+len(b)-1)
	directWindow(out, a, b, 0)

	return out, nil
}

// Convolve returns the full convolution of a and b.
func Convolve(a, b []float64) ([]float64, error) {
	return ConvolveMode(a, b, ModeFull)
}

// ConvolveMode convolves a with b and returns the part selected by mode.
// Kernels up to 64 taps run in the time domain; longer ones use
// overlap-add. Only the kept samples are computed.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}

	offset, n := Span(len(a), len(b), mode)
	out := make([]float64, n)

	signal, kernel := a, b
	if len(kernel) > len(signal) {
		signal, kernel = kernel, signal
	}

	if len(kernel) <= directTaps {
		directWindow(out, signal, kernel, offset)
		return out, nil
	}

	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}

	if err := oa.window(out, signal, offset); err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}

	return out, nil
}

func checkInputs(a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}

	if len(b) == 0 {
		return ErrEmptyKernel
	}

	return nil
}

// directWindow writes samples offset..offset+len(dst) of a*b into dst.
func directWindow(dst, a, b []float64, offset int) {
	for k := range dst {
		n := offset + k
		lo := max(0, n-len(a)+1)
		hi := min(len(b)-1, n)

		var acc float64
		for j := lo; j <= hi; j++ {
			acc += b[j] * a[n-j]
		}

		dst[k] = acc
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

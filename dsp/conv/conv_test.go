package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/remixstudio/algo-fx/internal/testutil"
)

// reference is the textbook full convolution.
func reference(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, h := range b {
			out[i+j] += x * h
		}
	}

	return out
}

func decayingNoise(seed int64, n int) []float64 {
	h := testutil.DeterministicNoise(seed, 1, n)
	for i := range h {
		h[i] *= math.Exp(-5 * float64(i) / float64(n))
	}

	return h
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name       string
		lenA, lenB int
		mode       Mode
		offset, n  int
	}{
		{"full", 10, 4, ModeFull, 0, 13},
		{"same odd kernel", 10, 5, ModeSame, 2, 10},
		{"same even kernel", 10, 4, ModeSame, 1, 10},
		{"valid", 10, 4, ModeValid, 3, 7},
		{"valid long kernel", 4, 10, ModeValid, 3, 7},
		{"causal", 10, 400, ModeCausal, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, n := Span(tt.lenA, tt.lenB, tt.mode)
			if offset != tt.offset || n != tt.n {
				t.Fatalf("Span = (%d, %d), want (%d, %d)", offset, n, tt.offset, tt.n)
			}
		})
	}
}

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"echo", []float64{1, 0, 0, 0}, []float64{1, 0, 0.5}, []float64{1, 0, 0.5, 0, 0, 0}},
		{"gain", []float64{0.5, -0.25}, []float64{2}, []float64{1, -0.5}},
		{"box", []float64{1, 2, 3}, []float64{1, 1}, []float64{1, 3, 5, 3}},
		{"kernel longer", []float64{2}, []float64{1, 2, 3}, []float64{2, 4, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestEmptyInputs(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Direct empty input: %v", err)
	}

	if _, err := ConvolveMode([]float64{1}, nil, ModeSame); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("ConvolveMode empty kernel: %v", err)
	}

	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("NewOverlapAdd empty kernel: %v", err)
	}

	oa, err := NewOverlapAdd([]float64{1, 0.5}, 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := oa.Apply(nil, ModeCausal); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Apply empty input: %v", err)
	}
}

func TestConvolveModeMatchesReference(t *testing.T) {
	sizes := []struct {
		name       string
		lenA, lenB int
	}{
		{"short kernel", 300, 17},
		{"fft kernel", 2000, 129},
		{"kernel longer than signal", 90, 700},
		{"single sample", 1, 200},
	}
	modes := []Mode{ModeFull, ModeSame, ModeValid, ModeCausal}

	for _, sz := range sizes {
		a := testutil.DeterministicNoise(1, 1, sz.lenA)
		b := decayingNoise(2, sz.lenB)
		full := reference(a, b)

		for _, mode := range modes {
			got, err := ConvolveMode(a, b, mode)
			if err != nil {
				t.Fatalf("%s mode %d: %v", sz.name, mode, err)
			}

			offset, n := Span(sz.lenA, sz.lenB, mode)
			testutil.RequireSliceNearlyEqual(t, got, full[offset:offset+n], 1e-9)
		}
	}
}

func TestConvolveModeSameKeepsSymmetricKernelAligned(t *testing.T) {
	// 65-tap symmetric lowpass, the shape used for 4x oversampling.
	kernel := make([]float64, 65)
	for i := range kernel {
		x := float64(i-32) / 4
		kernel[i] = 0.25
		if x != 0 {
			kernel[i] = math.Sin(math.Pi*x) / (math.Pi * x) / 4
		}
	}

	signal := testutil.Impulse(400, 150)

	got, err := ConvolveMode(signal, kernel, ModeSame)
	if err != nil {
		t.Fatal(err)
	}

	peak := 0
	for i, v := range got {
		if math.Abs(v) > math.Abs(got[peak]) {
			peak = i
		}
	}

	if peak != 150 {
		t.Fatalf("peak at %d, want 150", peak)
	}
}

func TestOverlapAddCausalMatchesReference(t *testing.T) {
	ir := decayingNoise(7, 3000)

	// Block counts of one, an odd number and an even number.
	for _, n := range []int{200, 256*5 + 3, 256 * 8} {
		dry := testutil.DeterministicNoise(int64(n), 0.5, n)
		want := reference(dry, ir)[:n]

		oa, err := NewOverlapAdd(ir, 256)
		if err != nil {
			t.Fatal(err)
		}

		wet := make([]float64, n)
		if err := oa.ApplyTo(wet, dry, ModeCausal); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		testutil.RequireSliceNearlyEqual(t, wet, want, 1e-9)
	}
}

func TestOverlapAddSkipsBlocksOutsideWindow(t *testing.T) {
	kernel := decayingNoise(4, 100)
	src := testutil.DeterministicNoise(5, 1, 5000)
	full := reference(src, kernel)

	oa, err := NewOverlapAdd(kernel, 128)
	if err != nil {
		t.Fatal(err)
	}

	// A window late in the signal only needs the last few block pairs.
	dst := make([]float64, 300)
	if err := oa.window(dst, src, 4700); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, dst, full[4700:5000], 1e-9)
}

func TestOverlapAddReuse(t *testing.T) {
	oa, err := NewOverlapAdd(decayingNoise(9, 500), 0)
	if err != nil {
		t.Fatal(err)
	}

	if oa.KernelLen() != 500 || oa.BlockSize() != 512 {
		t.Fatalf("KernelLen=%d BlockSize=%d", oa.KernelLen(), oa.BlockSize())
	}

	src := testutil.DeterministicNoise(10, 1, 3000)

	first, err := oa.Apply(src, ModeCausal)
	if err != nil {
		t.Fatal(err)
	}

	second, err := oa.Apply(src, ModeCausal)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}

func TestOverlapAddApplyToLength(t *testing.T) {
	oa, err := NewOverlapAdd([]float64{1, 0.5, 0.25}, 0)
	if err != nil {
		t.Fatal(err)
	}

	err = oa.ApplyTo(make([]float64, 9), make([]float64, 10), ModeCausal)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

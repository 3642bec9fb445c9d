package oversample

import (
	"errors"
	"math"
	"testing"

	"github.com/remixstudio/algo-fx/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	for _, f := range []int{0, -2} {
		if _, err := New(f); !errors.Is(err, ErrInvalidFactor) {
			t.Fatalf("New(%d): got %v, want ErrInvalidFactor", f, err)
		}
	}
}

func TestTapsSymmetricUnityGain(t *testing.T) {
	for _, q := range []Quality{QualityFast, QualityBalanced, QualityBest} {
		o, err := New(4, WithQuality(q))
		if err != nil {
			t.Fatal(err)
		}

		taps := o.Taps()
		if len(taps)%2 != 1 {
			t.Fatalf("quality %d: %d taps, want odd length", q, len(taps))
		}

		var sum float64
		for i, v := range taps {
			sum += v

			if math.Abs(v-taps[len(taps)-1-i]) > 1e-15 {
				t.Fatalf("quality %d: taps not symmetric at %d", q, i)
			}
		}

		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("quality %d: tap sum %v, want 1", q, sum)
		}
	}
}

func TestLengths(t *testing.T) {
	o, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicSine(440, 44100, 1, 101)

	up, err := o.Upsample(in)
	if err != nil {
		t.Fatal(err)
	}

	if len(up) != 404 {
		t.Fatalf("len(up) = %d, want 404", len(up))
	}

	down, err := o.Downsample(up)
	if err != nil {
		t.Fatal(err)
	}

	if len(down) != 101 {
		t.Fatalf("len(down) = %d, want 101", len(down))
	}
}

func TestRoundTripIsZeroPhase(t *testing.T) {
	const (
		sr = 44100.0
		n  = 4096
	)

	o, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicSine(1000, sr, 0.5, n)

	out, err := o.Apply(in, func(x float64) float64 { return x })
	if err != nil {
		t.Fatal(err)
	}

	edge := len(o.Taps()) / o.Factor()
	testutil.RequireSliceNearlyEqual(t, out[edge:n-edge], in[edge:n-edge], 1e-3)
}

func TestFactorOneIsIdentity(t *testing.T) {
	o, err := New(1)
	if err != nil {
		t.Fatal(err)
	}

	in := []float64{0.1, -0.2, 0.3}

	out, err := o.Apply(in, func(x float64) float64 { return 2 * x })
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{0.2, -0.4, 0.6}, 1e-15)
}

func TestEmptyInput(t *testing.T) {
	o, err := New(2)
	if err != nil {
		t.Fatal(err)
	}

	out, err := o.Apply(nil, math.Tanh)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0", len(out))
	}
}

func TestApplyNonlinearBounded(t *testing.T) {
	const (
		sr = 44100.0
		n  = 8192
	)

	in := testutil.DeterministicSine(5000, sr, 1, n)
	shape := func(x float64) float64 { return math.Tanh(8 * x) }

	o, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	over, err := o.Apply(in, shape)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range over {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1.5 {
			t.Fatalf("sample %d = %v, want bounded finite output", i, v)
		}
	}
}

func TestQualityTapCount(t *testing.T) {
	tests := []struct {
		opts []Option
		want Quality
		taps int
	}{
		{nil, QualityBalanced, 65},
		{[]Option{WithQuality(QualityFast)}, QualityFast, 33},
		{[]Option{WithQuality(QualityBest)}, QualityBest, 129},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			o, err := New(4, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}

			if o.Quality() != tt.want || len(o.Taps()) != tt.taps {
				t.Fatalf("quality %v with %d taps, want %v with %d", o.Quality(), len(o.Taps()), tt.want, tt.taps)
			}
		})
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in   string
		want Quality
		ok   bool
	}{
		{"fast", QualityFast, true},
		{" Best ", QualityBest, true},
		{"BALANCED", QualityBalanced, true},
		{"ultra", QualityBalanced, false},
	}
	for _, tt := range tests {
		got, err := ParseQuality(tt.in)
		if tt.ok != (err == nil) || got != tt.want {
			t.Errorf("ParseQuality(%q) = %v, %v", tt.in, got, err)
		}

		if !tt.ok && !errors.Is(err, ErrUnknownQuality) {
			t.Errorf("ParseQuality(%q) err = %v, want ErrUnknownQuality", tt.in, err)
		}
	}

	if s := Quality(9).String(); s != "Quality(9)" {
		t.Errorf("String() = %q", s)
	}
}

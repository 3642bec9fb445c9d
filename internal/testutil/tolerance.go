package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/remixstudio/algo-fx/dsp/buffer"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

// RequireSameShape fails t unless got has the channel count, length and
// sample rate of want.
func RequireSameShape(t *testing.T, got, want *buffer.AudioBuffer) {
	t.Helper()

	if got == nil {
		t.Fatal("got nil buffer")
	}

	if got.NumberOfChannels() != want.NumberOfChannels() ||
		got.Length() != want.Length() ||
		got.SampleRate != want.SampleRate {
		t.Fatalf("shape = %d ch / %d frames / %d Hz, want %d / %d / %d",
			got.NumberOfChannels(), got.Length(), got.SampleRate,
			want.NumberOfChannels(), want.Length(), want.SampleRate)
	}
}

// BufferRMSDiff returns the RMS of the per-sample difference between two
// equally shaped buffers.
func BufferRMSDiff(a, b *buffer.AudioBuffer) (float64, error) {
	if a.NumberOfChannels() != b.NumberOfChannels() || a.Length() != b.Length() {
		return 0, fmt.Errorf("shape mismatch: %dx%d vs %dx%d",
			a.NumberOfChannels(), a.Length(), b.NumberOfChannels(), b.Length())
	}

	var (
		sum float64
		n   int
	)

	for c := range a.Channels {
		for i := range a.Channels[c] {
			d := float64(a.Channels[c][i]) - float64(b.Channels[c][i])
			sum += d * d
		}

		n += len(a.Channels[c])
	}

	if n == 0 {
		return 0, nil
	}

	return math.Sqrt(sum / float64(n)), nil
}

// BufferMaxAbsDiff returns the largest per-sample difference between two
// equally shaped buffers.
func BufferMaxAbsDiff(a, b *buffer.AudioBuffer) (float64, error) {
	if a.NumberOfChannels() != b.NumberOfChannels() || a.Length() != b.Length() {
		return 0, fmt.Errorf("shape mismatch: %dx%d vs %dx%d",
			a.NumberOfChannels(), a.Length(), b.NumberOfChannels(), b.Length())
	}

	maxDiff := 0.0

	for c := range a.Channels {
		for i := range a.Channels[c] {
			d := math.Abs(float64(a.Channels[c][i]) - float64(b.Channels[c][i]))
			if d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff, nil
}

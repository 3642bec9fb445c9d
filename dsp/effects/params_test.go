package effects

import (
	"math"
	"testing"
)

func TestParamMappings(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"reverb mix 0", ReverbMix(0), 0},
		{"reverb mix 100", ReverbMix(100), 1},
		{"reverb seconds 50", ReverbSeconds(50), 1.5},
		{"delay seconds 100", DelaySeconds(100), 1},
		{"delay seconds clamped", DelaySeconds(250), 1},
		{"delay feedback 100", DelayFeedback(100), 0.95},
		{"delay feedback negative", DelayFeedback(-10), 0},
		{"delay mix 30", DelayMix(30), 0.3},
		{"filter freq 0", FilterFrequency(48000, 0), 20},
		{"filter freq 100", FilterFrequency(48000, 100), 20000},
		{"filter freq nyquist clamp", FilterFrequency(8000, 100), 3920},
		{"filter q 100", FilterQ(100), 20},
		{"filter q floor", FilterQ(0), 1e-4},
		{"distortion k 20", DistortionK(20), 10},
		{"threshold 0", CompressorThresholdDB(0), -60},
		{"threshold 100", CompressorThresholdDB(100), 0},
		{"ratio 0", CompressorRatio(0), 1},
		{"ratio 100", CompressorRatio(100), 20},
		{"attack 0", CompressorAttackMs(0), 1},
		{"attack 100", CompressorAttackMs(100), 500},
		{"release 0", CompressorReleaseMs(0), 10},
		{"release 100", CompressorReleaseMs(100), 1000},
		{"NaN maps to range floor", DelayMix(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFilterFrequencyIsExponential(t *testing.T) {
	mid := FilterFrequency(192000, 50)
	if want := 20 * math.Sqrt(1000); math.Abs(mid-want) > 1e-9 {
		t.Fatalf("FilterFrequency(50) = %v, want %v", mid, want)
	}
}

func TestLengthsHaveFloors(t *testing.T) {
	if got := ReverbLength(44100, 0); got != 441 {
		t.Fatalf("ReverbLength(decay 0) = %d, want 441", got)
	}

	if got := ReverbLength(44100, 100); got != 132300 {
		t.Fatalf("ReverbLength(decay 100) = %d, want 132300", got)
	}

	if got := DelaySamples(44100, 0); got != 1 {
		t.Fatalf("DelaySamples(time 0) = %d, want 1", got)
	}

	if got := DelaySamples(44100, 100); got != 44100 {
		t.Fatalf("DelaySamples(time 100) = %d, want 44100", got)
	}
}

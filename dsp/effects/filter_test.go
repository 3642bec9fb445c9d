package effects

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/remixstudio/algo-fx/dsp/core"
	"github.com/remixstudio/algo-fx/internal/testutil"
)

func TestParseFilterType(t *testing.T) {
	tests := []struct {
		in      string
		want    FilterType
		wantErr bool
	}{
		{"lowpass", FilterLowpass, false},
		{"HighPass", FilterHighpass, false},
		{" bandpass ", FilterBandpass, false},
		{"notch", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilterType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFilterType) {
					t.Fatalf("got %v, want ErrUnknownFilterType", err)
				}

				return
			}

			if err != nil || got != tt.want {
				t.Fatalf("got (%v, %v), want %v", got, err, tt.want)
			}
		})
	}
}

func TestFilterTypeJSON(t *testing.T) {
	var v struct {
		Type FilterType `json:"type"`
	}

	if err := json.Unmarshal([]byte(`{"type":"highpass"}`), &v); err != nil {
		t.Fatal(err)
	}

	if v.Type != FilterHighpass {
		t.Fatalf("decoded %v, want highpass", v.Type)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}

	if string(out) != `{"type":"highpass"}` {
		t.Fatalf("encoded %s", out)
	}

	if err := json.Unmarshal([]byte(`{"type":"comb"}`), &v); !errors.Is(err, ErrUnknownFilterType) {
		t.Fatalf("got %v, want ErrUnknownFilterType", err)
	}

	if _, err := FilterType(7).MarshalText(); !errors.Is(err, ErrUnknownFilterType) {
		t.Fatalf("got %v, want ErrUnknownFilterType", err)
	}

	if FilterType(7).String() != "FilterType(7)" {
		t.Fatalf("String() = %q", FilterType(7).String())
	}
}

func TestFilterLowpassAttenuatesHighs(t *testing.T) {
	const sr = 44100

	f, err := NewFilter(sr, FilterLowpass, 30, 3.5355)
	if err != nil {
		t.Fatal(err)
	}

	ch := testutil.DeterministicSine(5000, sr, 1, 8192)
	if err := f.Process([][]float64{ch}); err != nil {
		t.Fatal(err)
	}

	if peak := core.PeakAbs(ch[4096:]); peak > 0.01 {
		t.Fatalf("5 kHz peak after lowpass = %v, want < 0.01", peak)
	}
}

func TestFilterHighpassAttenuatesLows(t *testing.T) {
	const sr = 44100

	f, err := NewFilter(sr, FilterHighpass, 80, 3.5355)
	if err != nil {
		t.Fatal(err)
	}

	ch := testutil.DeterministicSine(50, sr, 1, 44100)
	if err := f.Process([][]float64{ch}); err != nil {
		t.Fatal(err)
	}

	if peak := core.PeakAbs(ch[22050:]); peak > 0.01 {
		t.Fatalf("50 Hz peak after highpass = %v, want < 0.01", peak)
	}
}

func TestFilterZeroResonanceStaysFinite(t *testing.T) {
	for _, kind := range []FilterType{FilterLowpass, FilterHighpass, FilterBandpass} {
		f, err := NewFilter(44100, kind, 50, 0)
		if err != nil {
			t.Fatal(err)
		}

		if f.Q() != 1e-4 {
			t.Fatalf("%v: Q() = %v, want floor", kind, f.Q())
		}

		ch := testutil.DeterministicNoise(5, 1, 4096)
		if err := f.Process([][]float64{ch}); err != nil {
			t.Fatal(err)
		}

		testutil.RequireFinite(t, ch)
	}
}

func TestFilterInvalidTypeFallsBack(t *testing.T) {
	f, err := NewFilter(44100, FilterType(-3), 50, 20)
	if err != nil {
		t.Fatal(err)
	}

	if f.Type() != FilterLowpass {
		t.Fatalf("Type() = %v, want lowpass", f.Type())
	}
}

func TestFilterBandpassPeakNearUnity(t *testing.T) {
	const sr = 44100

	f, err := NewFilter(sr, FilterBandpass, 50, 10)
	if err != nil {
		t.Fatal(err)
	}

	c := f.Coefficients()
	if db := c.MagnitudeDB(f.Frequency(), sr); math.Abs(db) > 1e-6 {
		t.Fatalf("gain at centre = %v dB, want 0", db)
	}
}

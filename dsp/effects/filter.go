package effects

import (
	"errors"
	"fmt"
	"strings"

	"github.com/remixstudio/algo-fx/dsp/filter/biquad"
)

// ErrUnknownFilterType is returned when a filter type name or value is not
// one of lowpass, highpass or bandpass.
var ErrUnknownFilterType = errors.New("effects: unknown filter type")

// FilterType selects the filter response.
type FilterType int

const (
	FilterLowpass FilterType = iota
	FilterHighpass
	FilterBandpass
)

var filterTypeNames = [...]string{
	FilterLowpass:  "lowpass",
	FilterHighpass: "highpass",
	FilterBandpass: "bandpass",
}

// Valid reports whether t is one of the defined filter types.
func (t FilterType) Valid() bool {
	return t >= FilterLowpass && t <= FilterBandpass
}

func (t FilterType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FilterType(%d)", int(t))
	}

	return filterTypeNames[t]
}

// ParseFilterType parses a filter type name. Matching ignores case and
// surrounding space.
func ParseFilterType(s string) (FilterType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range filterTypeNames {
		if n == name {
			return FilterType(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFilterType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t FilterType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilterType, int(t))
	}

	return []byte(filterTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FilterType) UnmarshalText(text []byte) error {
	v, err := ParseFilterType(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// Filter is a single RBJ biquad applied independently to every channel.
type Filter struct {
	kind   FilterType
	freq   float64
	q      float64
	coeffs biquad.Coefficients
}

// NewFilter builds a filter from a type plus frequency and resonance slider
// values. An invalid type falls back to lowpass.
func NewFilter(sampleRate float64, kind FilterType, frequency, resonance float64) (*Filter, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if !kind.Valid() {
		kind = FilterLowpass
	}

	f := &Filter{
		kind: kind,
		freq: FilterFrequency(sampleRate, frequency),
		q:    FilterQ(resonance),
	}

	switch kind {
	case FilterHighpass:
		f.coeffs = biquad.Highpass(f.freq, f.q, sampleRate)
	case FilterBandpass:
		f.coeffs = biquad.Bandpass(f.freq, f.q, sampleRate)
	default:
		f.coeffs = biquad.Lowpass(f.freq, f.q, sampleRate)
	}

	return f, nil
}

// Name implements Processor.
func (*Filter) Name() string { return "filter" }

// Type returns the filter response type.
func (f *Filter) Type() FilterType { return f.kind }

// Frequency returns the cutoff or centre frequency in Hz.
func (f *Filter) Frequency() float64 { return f.freq }

// Q returns the quality factor.
func (f *Filter) Q() float64 { return f.q }

// Coefficients returns the normalized biquad coefficients.
func (f *Filter) Coefficients() biquad.Coefficients { return f.coeffs }

// Process filters every channel independently, each from rest.
func (f *Filter) Process(channels [][]float64) error {
	for _, ch := range channels {
		f.coeffs.Filter(ch)
	}

	return nil
}

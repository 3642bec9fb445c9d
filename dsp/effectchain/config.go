package effectchain

import (
	"math"

	"github.com/remixstudio/algo-fx/dsp/core"
	"github.com/remixstudio/algo-fx/dsp/effects"
)

// FilterType selects the filter slot response.
type FilterType = effects.FilterType

// Filter responses.
const (
	FilterLowpass  = effects.FilterLowpass
	FilterHighpass = effects.FilterHighpass
	FilterBandpass = effects.FilterBandpass
)

// ParseFilterType parses "lowpass", "highpass" or "bandpass".
func ParseFilterType(s string) (FilterType, error) {
	return effects.ParseFilterType(s)
}

// ReverbConfig configures the reverb slot.
type ReverbConfig struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount"`
	Decay   float64 `json:"decay"`
}

// DelayConfig configures the delay slot.
type DelayConfig struct {
	Enabled  bool    `json:"enabled"`
	Time     float64 `json:"time"`
	Feedback float64 `json:"feedback"`
	Mix      float64 `json:"mix"`
}

// FilterConfig configures the filter slot.
type FilterConfig struct {
	Enabled   bool       `json:"enabled"`
	Type      FilterType `json:"type"`
	Frequency float64    `json:"frequency"`
	Resonance float64    `json:"resonance"`
}

// DistortionConfig configures the distortion slot.
type DistortionConfig struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount"`
}

// CompressorConfig configures the compressor slot.
type CompressorConfig struct {
	Enabled   bool    `json:"enabled"`
	Threshold float64 `json:"threshold"`
	Ratio     float64 `json:"ratio"`
	Attack    float64 `json:"attack"`
	Release   float64 `json:"release"`
}

// Config is the full effects configuration. Every numeric field is a slider
// value in [0, 100].
type Config struct {
	Reverb     ReverbConfig     `json:"reverb"`
	Delay      DelayConfig      `json:"delay"`
	Filter     FilterConfig     `json:"filter"`
	Distortion DistortionConfig `json:"distortion"`
	Compressor CompressorConfig `json:"compressor"`
}

// DefaultConfig returns the default slider positions with every slot
// disabled.
func DefaultConfig() Config {
	return Config{
		Reverb:     ReverbConfig{Amount: 30, Decay: 50},
		Delay:      DelayConfig{Time: 40, Feedback: 30, Mix: 50},
		Filter:     FilterConfig{Type: FilterLowpass, Frequency: 50, Resonance: 20},
		Distortion: DistortionConfig{Amount: 20},
		Compressor: CompressorConfig{Threshold: 30, Ratio: 40, Attack: 20, Release: 50},
	}
}

// Sanitize returns a copy of c with every slider clamped into [0, 100].
// NaN values take the slot default and an unknown filter type becomes
// lowpass.
func (c Config) Sanitize() Config {
	d := DefaultConfig()

	c.Reverb.Amount = sanitizeSlider(c.Reverb.Amount, d.Reverb.Amount)
	c.Reverb.Decay = sanitizeSlider(c.Reverb.Decay, d.Reverb.Decay)

	c.Delay.Time = sanitizeSlider(c.Delay.Time, d.Delay.Time)
	c.Delay.Feedback = sanitizeSlider(c.Delay.Feedback, d.Delay.Feedback)
	c.Delay.Mix = sanitizeSlider(c.Delay.Mix, d.Delay.Mix)

	if !c.Filter.Type.Valid() {
		c.Filter.Type = FilterLowpass
	}

	c.Filter.Frequency = sanitizeSlider(c.Filter.Frequency, d.Filter.Frequency)
	c.Filter.Resonance = sanitizeSlider(c.Filter.Resonance, d.Filter.Resonance)

	c.Distortion.Amount = sanitizeSlider(c.Distortion.Amount, d.Distortion.Amount)

	c.Compressor.Threshold = sanitizeSlider(c.Compressor.Threshold, d.Compressor.Threshold)
	c.Compressor.Ratio = sanitizeSlider(c.Compressor.Ratio, d.Compressor.Ratio)
	c.Compressor.Attack = sanitizeSlider(c.Compressor.Attack, d.Compressor.Attack)
	c.Compressor.Release = sanitizeSlider(c.Compressor.Release, d.Compressor.Release)

	return c
}

// EnabledSlots lists the enabled slots in canonical order.
func (c Config) EnabledSlots() []Slot {
	var slots []Slot

	for _, s := range CanonicalOrder() {
		if c.Enabled(s) {
			slots = append(slots, s)
		}
	}

	return slots
}

// Enabled reports whether slot s is switched on.
func (c Config) Enabled(s Slot) bool {
	switch s {
	case SlotCompressor:
		return c.Compressor.Enabled
	case SlotFilter:
		return c.Filter.Enabled
	case SlotDistortion:
		return c.Distortion.Enabled
	case SlotDelay:
		return c.Delay.Enabled
	case SlotReverb:
		return c.Reverb.Enabled
	default:
		return false
	}
}

func sanitizeSlider(v, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}

	return core.Clamp(v, 0, 100)
}

package effectchain

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/remixstudio/algo-fx/dsp/effects"
)

// ErrUnknownPreset is returned by Preset for an unregistered name.
var ErrUnknownPreset = errors.New("effectchain: unknown preset")

// genre holds the 0..1 intensity knobs of a genre preset.
type genre struct {
	name        string
	description string
	bass        float64
	treble      float64
	reverb      float64
	delay       float64
	distortion  float64
	compression float64
}

var genres = []genre{
	{"afrojack-edm", "Heavy bass, energetic drops and electro house vibes", 0.8, 0.7, 0.6, 0.4, 0.3, 0.8},
	{"hip-hop", "Deep bass, punchy drums and urban atmosphere", 0.7, 0.5, 0.4, 0.3, 0.2, 0.6},
	{"rnb-smooth", "Warm bass, smooth highs and soulful ambiance", 0.5, 0.6, 0.5, 0.4, 0.1, 0.5},
	{"future-bass", "Massive bass, bright synths and modern sound design", 0.9, 0.8, 0.7, 0.5, 0.4, 0.7},
}

// PresetInfo describes a named preset.
type PresetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Config      Config `json:"config"`
}

// Presets returns every built-in preset in a stable order.
func Presets() []PresetInfo {
	out := make([]PresetInfo, 0, len(genres))
	for _, g := range genres {
		out = append(out, PresetInfo{Name: g.name, Description: g.description, Config: g.config()})
	}

	return out
}

// PresetNames returns the names of the built-in presets.
func PresetNames() []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.name)
	}

	return names
}

// Preset returns the config of the named preset. Matching ignores case.
func Preset(name string) (Config, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	i := slices.IndexFunc(genres, func(g genre) bool { return g.name == key })
	if i < 0 {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return genres[i].config(), nil
}

// config places the genre knobs on the five slots. Compression uses a
// 12:1 ratio, the fastest attack and a 250 ms release with the threshold
// at -50+50*compression dB. Delay time is 0.5*delay s with a loop gain of
// 0.4*delay.
func (g genre) config() Config {
	return Config{
		Compressor: CompressorConfig{
			Enabled:   true,
			Threshold: inverseLinear(-50+50*g.compression, effects.MinThresholdDB, effects.MaxThresholdDB),
			Ratio:     inverseLinear(12, effects.MinRatio, effects.MaxRatio),
			Attack:    0,
			Release:   inverseLinear(250, effects.MinReleaseMs, effects.MaxReleaseMs),
		},
		Filter: FilterConfig{
			Enabled:   true,
			Type:      FilterLowpass,
			Frequency: round2(100 * g.treble),
			Resonance: round2(20 * g.bass),
		},
		Distortion: DistortionConfig{
			Enabled: true,
			Amount:  round2(100 * g.distortion),
		},
		Delay: DelayConfig{
			Enabled:  true,
			Time:     inverseLinear(0.5*g.delay, 0, effects.MaxDelaySeconds),
			Feedback: inverseLinear(0.4*g.delay, 0, effects.MaxDelayFeedback),
			Mix:      round2(100 * g.delay),
		},
		Reverb: ReverbConfig{
			Enabled: true,
			Amount:  round2(100 * g.reverb),
			Decay:   round2(100 * g.reverb),
		},
	}
}

// inverseLinear returns the slider value that maps onto v in [lo, hi].
func inverseLinear(v, lo, hi float64) float64 {
	return round2(math.Max(0, math.Min(100, 100*(v-lo)/(hi-lo))))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

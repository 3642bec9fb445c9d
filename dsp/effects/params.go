package effects

import (
	"math"

	"github.com/remixstudio/algo-fx/dsp/core"
	"github.com/remixstudio/algo-fx/dsp/filter/biquad"
)

// Slider ranges and physical limits.
const (
	MaxReverbSeconds = 3.0
	MinReverbSeconds = 0.01
	MaxDelaySeconds  = 1.0
	MaxDelayFeedback = 0.95

	MinFilterHz       = 20.0
	MaxFilterHz       = 20000.0
	MaxFilterQ        = 20.0
	filterNyquistRoom = 0.49

	MaxDistortionK = 50.0

	MinThresholdDB = -60.0
	MaxThresholdDB = 0.0
	MinRatio       = 1.0
	MaxRatio       = 20.0
	MinAttackMs    = 1.0
	MaxAttackMs    = 500.0
	MinReleaseMs   = 10.0
	MaxReleaseMs   = 1000.0
	KneeDB         = 10.0
)

// ReverbMix maps amount onto the wet gain a in (1-a)*dry + a*wet.
func ReverbMix(amount float64) float64 {
	return core.MapLinear(amount, 0, 1)
}

// ReverbSeconds maps decay onto the impulse response duration.
func ReverbSeconds(decay float64) float64 {
	return core.MapLinear(decay, 0, MaxReverbSeconds)
}

// ReverbLength returns the impulse response length in frames. It is never
// shorter than MinReverbSeconds.
func ReverbLength(sampleRate, decay float64) int {
	n := int(math.Round(sampleRate * ReverbSeconds(decay)))
	floor := int(math.Ceil(sampleRate * MinReverbSeconds))

	return max(n, floor, 1)
}

// DelaySeconds maps time onto [0, MaxDelaySeconds].
func DelaySeconds(time float64) float64 {
	return core.MapLinear(time, 0, MaxDelaySeconds)
}

// DelaySamples returns the delay in whole samples, at least one.
func DelaySamples(sampleRate, time float64) int {
	return max(int(math.Round(sampleRate*DelaySeconds(time))), 1)
}

// DelayFeedback maps feedback onto a loop gain in [0, MaxDelayFeedback].
func DelayFeedback(feedback float64) float64 {
	return core.MapLinear(feedback, 0, MaxDelayFeedback)
}

// DelayMix maps mix onto the wet gain; the dry gain is 1 minus it.
func DelayMix(mix float64) float64 {
	return core.MapLinear(mix, 0, 1)
}

// FilterFrequency maps frequency onto 20 Hz..20 kHz along a logarithmic
// curve and keeps the result below 0.49*sampleRate.
func FilterFrequency(sampleRate, frequency float64) float64 {
	f := core.MapExponential(frequency, MinFilterHz, MaxFilterHz)
	if limit := sampleRate * filterNyquistRoom; f > limit {
		f = limit
	}

	return f
}

// FilterQ maps resonance onto Q in [biquad.MinQ, MaxFilterQ].
func FilterQ(resonance float64) float64 {
	return math.Max(core.MapLinear(resonance, 0, MaxFilterQ), biquad.MinQ)
}

// DistortionK maps amount onto the waveshaper's k parameter.
func DistortionK(amount float64) float64 {
	return core.MapLinear(amount, 0, MaxDistortionK)
}

// CompressorThresholdDB maps threshold onto [-60, 0] dB.
func CompressorThresholdDB(threshold float64) float64 {
	return core.MapLinear(threshold, MinThresholdDB, MaxThresholdDB)
}

// CompressorRatio maps ratio onto [1, 20].
func CompressorRatio(ratio float64) float64 {
	return core.MapLinear(ratio, MinRatio, MaxRatio)
}

// CompressorAttackMs maps attack onto [1, 500] ms.
func CompressorAttackMs(attack float64) float64 {
	return core.MapLinear(attack, MinAttackMs, MaxAttackMs)
}

// CompressorReleaseMs maps release onto [10, 1000] ms.
func CompressorReleaseMs(release float64) float64 {
	return core.MapLinear(release, MinReleaseMs, MaxReleaseMs)
}

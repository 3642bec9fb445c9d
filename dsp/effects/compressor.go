package effects

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/remixstudio/algo-fx/dsp/core"
)

// log2Of10Div20 converts decibels to the log2 domain: log2(10) / 20.
const log2Of10Div20 = 0.166096404744

// Compressor is a soft-knee downward compressor with a stereo-linked peak
// detector. Every channel receives the same gain, computed from the
// loudest channel at each frame. There is no makeup gain.
type Compressor struct {
	thresholdDB float64
	ratio       float64
	attackMs    float64
	releaseMs   float64

	attackCoeff      float64
	releaseCoeff     float64
	kneeStart        float64 // linear level where the knee opens
	thresholdLog2    float64
	kneeWidthLog2    float64
	invKneeWidthLog2 float64
}

// NewCompressor builds a compressor from threshold, ratio, attack and
// release slider values. The knee is fixed at KneeDB.
func NewCompressor(sampleRate, threshold, ratio, attack, release float64) (*Compressor, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	c := &Compressor{
		thresholdDB: CompressorThresholdDB(threshold),
		ratio:       CompressorRatio(ratio),
		attackMs:    CompressorAttackMs(attack),
		releaseMs:   CompressorReleaseMs(release),
	}

	c.thresholdLog2 = c.thresholdDB * log2Of10Div20
	c.kneeWidthLog2 = KneeDB * log2Of10Div20
	c.invKneeWidthLog2 = 1 / c.kneeWidthLog2
	c.kneeStart = core.DBToLinear(c.thresholdDB - KneeDB/2)

	// attack: 1 - exp(-ln2 / (t * fs)), release: exp(-ln2 / (t * fs))
	c.attackCoeff = 1 - math.Exp(-math.Ln2/(c.attackMs*0.001*sampleRate))
	c.releaseCoeff = math.Exp(-math.Ln2 / (c.releaseMs * 0.001 * sampleRate))

	return c, nil
}

// Name implements Processor.
func (*Compressor) Name() string { return "compressor" }

// Threshold returns the threshold in dB.
func (c *Compressor) Threshold() float64 { return c.thresholdDB }

// Ratio returns the compression ratio.
func (c *Compressor) Ratio() float64 { return c.ratio }

// Attack returns the attack time in milliseconds.
func (c *Compressor) Attack() float64 { return c.attackMs }

// Release returns the release time in milliseconds.
func (c *Compressor) Release() float64 { return c.releaseMs }

// Process computes one gain curve from the linked envelope and multiplies
// every channel by it.
func (c *Compressor) Process(channels [][]float64) error {
	if len(channels) == 0 || c.ratio == 1 {
		return nil
	}

	n := len(channels[0])
	gains := make([]float64, n)

	var peak float64

	for i := range gains {
		var level float64
		for _, ch := range channels {
			level = math.Max(level, math.Abs(ch[i]))
		}

		if level > peak {
			peak += (level - peak) * c.attackCoeff
		} else {
			peak = level + (peak-level)*c.releaseCoeff
		}

		gains[i] = c.Gain(peak)
	}

	for _, ch := range channels {
		vecmath.MulBlockInPlace(ch, gains)
	}

	return nil
}

// Gain returns the static gain for a detector level using a quadratic soft
// knee in the log2 domain.
func (c *Compressor) Gain(level float64) float64 {
	if level <= c.kneeStart {
		return 1
	}

	overshoot := mathLog2(level) - c.thresholdLog2
	halfWidth := c.kneeWidthLog2 * 0.5

	var effective float64

	switch {
	case overshoot < -halfWidth:
		return 1
	case overshoot > halfWidth:
		effective = overshoot
	default:
		// (overshoot + w/2)^2 / (2w)
		scratch := overshoot + halfWidth
		effective = scratch * scratch * 0.5 * c.invKneeWidthLog2
	}

	return mathPower2(-effective * (1 - 1/c.ratio))
}

// OutputLevel returns the steady-state output magnitude for a constant
// input magnitude.
func (c *Compressor) OutputLevel(input float64) float64 {
	input = math.Abs(input)
	return input * c.Gain(input)
}

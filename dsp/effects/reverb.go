package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/remixstudio/algo-fx/dsp/conv"
	"github.com/remixstudio/algo-fx/dsp/core"
)

// reverbDecayRate sets how far the exponential envelope falls over the
// impulse response: exp(-5) at the last frame, about -43 dB.
const reverbDecayRate = 5.0

// Reverb is a convolution reverb driven by a synthetic stereo impulse
// response of exponentially decaying noise.
type Reverb struct {
	mix        float64
	ir         [2][]float64
	convolvers [2]*conv.OverlapAdd
}

// NewReverb builds a reverb. amount sets the wet gain and decay the impulse
// response length, both as 0..100 slider values. rng supplies the noise.
func NewReverb(sampleRate, amount, decay float64, rng RandomSource) (*Reverb, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	if rng == nil {
		return nil, ErrNilRandomSource
	}

	r := &Reverb{mix: ReverbMix(amount)}

	n := ReverbLength(sampleRate, decay)
	envelope := reverbEnvelope(n)

	for c := range r.ir {
		ir := make([]float64, n)
		for i := range ir {
			ir[i] = 2*rng.Float64() - 1
		}

		vecmath.MulBlockInPlace(ir, envelope)
		normalizeEnergy(ir)

		oa, err := conv.NewOverlapAdd(ir, 0)
		if err != nil {
			return nil, fmt.Errorf("effects: reverb channel %d: %w", c, err)
		}

		r.ir[c] = ir
		r.convolvers[c] = oa
	}

	return r, nil
}

// Name implements Processor.
func (*Reverb) Name() string { return "reverb" }

// Mix returns the wet gain.
func (r *Reverb) Mix() float64 { return r.mix }

// ImpulseResponse returns the impulse response used for channel c.
func (r *Reverb) ImpulseResponse(c int) []float64 {
	return r.ir[c%2]
}

// Process convolves every channel with its impulse response and blends the
// result with the dry signal. Only the first len(ch) wet samples are
// computed; the tail past the buffer end is never produced.
func (r *Reverb) Process(channels [][]float64) error {
	if r.mix == 0 {
		return nil
	}

	var wet []float64

	for c, ch := range channels {
		if len(ch) == 0 {
			continue
		}

		wet = core.EnsureLen(wet, len(ch))
		if err := r.convolvers[c%2].ApplyTo(wet, ch, conv.ModeCausal); err != nil {
			return fmt.Errorf("effects: reverb channel %d: %w", c, err)
		}

		core.Blend(ch, ch, wet, 1-r.mix, r.mix)
	}

	return nil
}

func reverbEnvelope(n int) []float64 {
	env := make([]float64, n)
	for i := range env {
		env[i] = math.Exp(-float64(i) / float64(n) * reverbDecayRate)
	}

	return env
}

// normalizeEnergy scales h to unit energy so that white noise keeps its
// power through the convolution.
func normalizeEnergy(h []float64) {
	var energy float64
	for _, v := range h {
		energy += v * v
	}

	if energy == 0 {
		return
	}

	scale := 1 / math.Sqrt(energy)
	for i := range h {
		h[i] *= scale
	}
}

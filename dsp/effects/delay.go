package effects

import (
	"fmt"

	"github.com/remixstudio/algo-fx/dsp/core"
	"github.com/remixstudio/algo-fx/dsp/delay"
)

// Delay is a feedback echo with a dry/wet blend.
type Delay struct {
	delaySamples int
	feedback     float64
	mix          float64
}

// NewDelay builds a delay from time, feedback and mix slider values.
func NewDelay(sampleRate, time, feedback, mix float64) (*Delay, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	return &Delay{
		delaySamples: DelaySamples(sampleRate, time),
		feedback:     DelayFeedback(feedback),
		mix:          DelayMix(mix),
	}, nil
}

// Name implements Processor.
func (*Delay) Name() string { return "delay" }

// DelaySamples returns the echo spacing in samples.
func (d *Delay) DelaySamples() int { return d.delaySamples }

// Feedback returns the loop gain.
func (d *Delay) Feedback() float64 { return d.feedback }

// Mix returns the wet gain.
func (d *Delay) Mix() float64 { return d.mix }

// Process runs every channel through its own feedback loop.
func (d *Delay) Process(channels [][]float64) error {
	if d.mix == 0 {
		return nil
	}

	var wet []float64

	for c, ch := range channels {
		fb, err := delay.NewFeedback(d.delaySamples, d.feedback)
		if err != nil {
			return fmt.Errorf("effects: delay channel %d: %w", c, err)
		}

		wet = core.EnsureLen(wet, len(ch))
		copy(wet, ch)
		fb.ProcessBlock(wet)

		core.Blend(ch, ch, wet, 1-d.mix, d.mix)
	}

	return nil
}

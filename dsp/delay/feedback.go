package delay

import (
	"fmt"
	"math"
)

// MaxFeedback is the largest loop gain a Feedback echo accepts.
const MaxFeedback = 0.95

// Feedback is a single-tap echo with a feedback loop around the delay.
//
// The delayed signal follows w[n] = x[n-D] + g*w[n-D], so the k-th echo of an
// impulse has amplitude g^(k-1) before the wet gain is applied.
type Feedback struct {
	line     *Line
	delay    int
	feedback float64
}

// NewFeedback returns an echo with the given delay in samples and loop gain.
// The gain is clamped to [0, MaxFeedback].
func NewFeedback(delaySamples int, feedback float64) (*Feedback, error) {
	if delaySamples < 1 {
		return nil, fmt.Errorf("%w: delay %d samples", ErrInvalidSize, delaySamples)
	}

	line, err := New(delaySamples)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(feedback) || feedback < 0 {
		feedback = 0
	}

	if feedback > MaxFeedback {
		feedback = MaxFeedback
	}

	return &Feedback{line: line, delay: delaySamples, feedback: feedback}, nil
}

// Delay returns the delay in samples.
func (f *Feedback) Delay() int { return f.delay }

// Gain returns the loop gain.
func (f *Feedback) Gain() float64 { return f.feedback }

// ProcessSample pushes x into the loop and returns the delayed (wet) signal.
func (f *Feedback) ProcessSample(x float64) float64 {
	w := f.line.Read(f.delay)
	f.line.Write(x + f.feedback*w)

	return w
}

// ProcessBlock replaces buf with the wet signal.
func (f *Feedback) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the loop.
func (f *Feedback) Reset() {
	f.line.Reset()
}

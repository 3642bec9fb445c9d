package effects

import (
	"fmt"
	"math"

	"github.com/remixstudio/algo-fx/dsp/oversample"
)

const (
	// DistortionCurveLength is the number of points in the shaping table.
	DistortionCurveLength = 44100
	// DistortionOversampling is the factor the shaper runs at.
	DistortionOversampling = 4

	degToRad = math.Pi / 180
)

// Distortion is a table-driven waveshaper run at 4x the input rate.
type Distortion struct {
	k     float64
	curve []float64
	os    *oversample.Oversampler
}

// NewDistortion builds a distortion from an amount slider value. opts
// configure the oversampler; the default quality is balanced.
func NewDistortion(sampleRate, amount float64, opts ...oversample.Option) (*Distortion, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	os, err := oversample.New(DistortionOversampling, opts...)
	if err != nil {
		return nil, fmt.Errorf("effects: distortion: %w", err)
	}

	k := DistortionK(amount)

	return &Distortion{k: k, curve: DistortionCurve(k, DistortionCurveLength), os: os}, nil
}

// DistortionCurve tabulates (3+k)*x*20*deg/(pi + k*|x|) at n points with
// x = 2i/n - 1.
func DistortionCurve(k float64, n int) []float64 {
	curve := make([]float64, n)
	for i := range curve {
		x := float64(i)*2/float64(n) - 1
		curve[i] = (3 + k) * x * 20 * degToRad / (math.Pi + k*math.Abs(x))
	}

	return curve
}

// Name implements Processor.
func (*Distortion) Name() string { return "distortion" }

// K returns the curve steepness.
func (d *Distortion) K() float64 { return d.k }

// Quality returns the oversampling quality.
func (d *Distortion) Quality() oversample.Quality { return d.os.Quality() }

// Shape evaluates the curve at x. The table spans [-1, 1]; inputs outside
// that range take the end values, inputs in between are interpolated
// linearly.
func (d *Distortion) Shape(x float64) float64 {
	n := len(d.curve)

	v := float64(n-1) * (x + 1) / 2
	switch {
	case math.IsNaN(v):
		return 0
	case v <= 0:
		return d.curve[0]
	case v >= float64(n-1):
		return d.curve[n-1]
	}

	i := int(v)
	frac := v - float64(i)

	return d.curve[i] + frac*(d.curve[i+1]-d.curve[i])
}

// Process shapes every channel at the oversampled rate.
func (d *Distortion) Process(channels [][]float64) error {
	for c, ch := range channels {
		out, err := d.os.Apply(ch, d.Shape)
		if err != nil {
			return fmt.Errorf("effects: distortion channel %d: %w", c, err)
		}

		copy(ch, out)
	}

	return nil
}

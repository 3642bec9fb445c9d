package oversample

import (
	"errors"
	"fmt"
	"strings"

	"github.com/remixstudio/algo-fx/dsp/conv"
)

var (
	// ErrInvalidFactor indicates an oversampling factor below 1.
	ErrInvalidFactor = errors.New("oversample: factor must be >= 1")
	// ErrUnknownQuality is returned by ParseQuality for unknown names.
	ErrUnknownQuality = errors.New("oversample: unknown quality")
)

// Quality selects the anti-imaging filter. The zero value is
// QualityBalanced.
type Quality int

const (
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced Quality = iota
	// QualityFast prioritizes lower CPU usage.
	QualityFast
	// QualityBest prioritizes stopband attenuation and passband flatness.
	QualityBest
)

var qualityNames = [...]string{"balanced", "fast", "best"}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return fmt.Sprintf("Quality(%d)", int(q))
	}

	return qualityNames[q]
}

// ParseQuality parses "fast", "balanced" or "best", ignoring case.
func ParseQuality(s string) (Quality, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range qualityNames {
		if name == key {
			return Quality(i), nil
		}
	}

	return QualityBalanced, fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}

// profile holds the filter design parameters of a quality mode.
type profile struct {
	TapsPerPhase int
	CutoffScale  float64
	KaiserBeta   float64
}

// profileFor returns the design parameters used by quality mode q.
// Unknown modes get the balanced profile.
func profileFor(q Quality) profile {
	switch q {
	case QualityFast:
		return profile{TapsPerPhase: 8, CutoffScale: 0.85, KaiserBeta: 5.0}
	case QualityBest:
		return profile{TapsPerPhase: 32, CutoffScale: 0.95, KaiserBeta: 9.0}
	default:
		return profile{TapsPerPhase: 16, CutoffScale: 0.9, KaiserBeta: 7.5}
	}
}

// Option configures an Oversampler.
type Option func(*Quality)

// WithQuality selects a quality mode.
func WithQuality(q Quality) Option {
	return func(dst *Quality) {
		*dst = q
	}
}

// Oversampler converts between a base rate and factor times that rate.
// It holds only immutable filter taps and is safe for concurrent use.
type Oversampler struct {
	factor  int
	quality Quality
	taps    []float64 // unity DC gain
	upTaps  []float64 // taps scaled by factor
}

// New returns an Oversampler for the given integer factor.
func New(factor int, opts ...Option) (*Oversampler, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	quality := QualityBalanced
	for _, opt := range opts {
		opt(&quality)
	}

	o := &Oversampler{factor: factor, quality: quality}
	if factor == 1 {
		return o, nil
	}

	taps, err := designLowpass(factor, profileFor(quality))
	if err != nil {
		return nil, err
	}

	o.taps = taps
	o.upTaps = make([]float64, len(taps))

	for i, v := range taps {
		o.upTaps[i] = v * float64(factor)
	}

	return o, nil
}

// Factor returns the oversampling factor.
func (o *Oversampler) Factor() int { return o.factor }

// Quality returns the quality mode the kernel was designed for.
func (o *Oversampler) Quality() Quality { return o.quality }

// Taps returns a copy of the anti-imaging kernel.
func (o *Oversampler) Taps() []float64 {
	return append([]float64(nil), o.taps...)
}

// Upsample returns in at factor times the rate. The result has
// len(in)*factor samples.
func (o *Oversampler) Upsample(in []float64) ([]float64, error) {
	if len(in) == 0 {
		return []float64{}, nil
	}

	if o.factor == 1 {
		return append([]float64(nil), in...), nil
	}

	stuffed := make([]float64, len(in)*o.factor)
	for i, v := range in {
		stuffed[i*o.factor] = v
	}

	return conv.ConvolveMode(stuffed, o.upTaps, conv.ModeSame)
}

// Downsample band-limits in and keeps every factor-th sample. The result has
// ceil(len(in)/factor) samples.
func (o *Oversampler) Downsample(in []float64) ([]float64, error) {
	if len(in) == 0 {
		return []float64{}, nil
	}

	if o.factor == 1 {
		return append([]float64(nil), in...), nil
	}

	filtered, err := conv.ConvolveMode(in, o.taps, conv.ModeSame)
	if err != nil {
		return nil, err
	}

	out := make([]float64, (len(in)+o.factor-1)/o.factor)
	for i := range out {
		out[i] = filtered[i*o.factor]
	}

	return out, nil
}

// Apply upsamples in, runs shape on every oversampled sample and
// downsamples the result back into a slice of len(in) samples.
func (o *Oversampler) Apply(in []float64, shape func(float64) float64) ([]float64, error) {
	up, err := o.Upsample(in)
	if err != nil {
		return nil, fmt.Errorf("oversample: upsample: %w", err)
	}

	for i, v := range up {
		up[i] = shape(v)
	}

	out, err := o.Downsample(up)
	if err != nil {
		return nil, fmt.Errorf("oversample: downsample: %w", err)
	}

	return out, nil
}

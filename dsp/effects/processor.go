package effects

import (
	"errors"
	"fmt"

	"github.com/remixstudio/algo-fx/dsp/core"
)

var (
	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("effects: sample rate must be positive and finite")
	// ErrNilRandomSource is returned by factories that need noise but got none.
	ErrNilRandomSource = errors.New("effects: nil random source")
)

// Processor transforms multi-channel audio in place.
//
// channels[c][i] is frame i of channel c. All channels have the same length.
type Processor interface {
	Name() string
	Process(channels [][]float64) error
}

// RandomSource supplies uniform variates in [0, 1). *math/rand.Rand
// satisfies it.
type RandomSource interface {
	Float64() float64
}

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}

// Passthrough leaves audio untouched. It stands in for an empty chain.
type Passthrough struct{}

// NewPassthrough returns a Processor that does nothing.
func NewPassthrough() *Passthrough { return &Passthrough{} }

// Name implements Processor.
func (*Passthrough) Name() string { return "passthrough" }

// Process implements Processor.
func (*Passthrough) Process([][]float64) error { return nil }

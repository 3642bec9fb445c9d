package effectchain

import (
	"errors"
	"fmt"

	"github.com/remixstudio/algo-fx/dsp/effects"
	"github.com/remixstudio/algo-fx/dsp/oversample"
)

// ErrUnknownEffect is returned when a slot has no registered factory.
var ErrUnknownEffect = errors.New("effectchain: unknown effect slot")

var errDuplicateEffect = errors.New("effectchain: duplicate effect slot")

// Factory builds the processor for one slot from a sanitized config.
type Factory func(ctx Context, cfg Config) (effects.Processor, error)

// Registry maps slots to their factories.
type Registry struct {
	factories map[Slot]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Slot]Factory)}
}

// Register adds a factory for the given slot.
func (r *Registry) Register(slot Slot, factory Factory) error {
	if factory == nil {
		return errors.New("effectchain: nil factory")
	}

	if _, exists := r.factories[slot]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, slot)
	}

	r.factories[slot] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(slot Slot, factory Factory) {
	if err := r.Register(slot, factory); err != nil {
		panic(err.Error())
	}
}

// Lookup returns the factory for the given slot, or nil.
func (r *Registry) Lookup(slot Slot) Factory {
	return r.factories[slot]
}

// Build runs the factory registered for slot.
func (r *Registry) Build(slot Slot, ctx Context, cfg Config) (effects.Processor, error) {
	f := r.Lookup(slot)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, slot)
	}

	return f(ctx, cfg)
}

// DefaultRegistry returns a Registry with the five built-in effects.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister(SlotCompressor, func(ctx Context, cfg Config) (effects.Processor, error) {
		c := cfg.Compressor
		return effects.NewCompressor(ctx.SampleRate, c.Threshold, c.Ratio, c.Attack, c.Release)
	})
	r.MustRegister(SlotFilter, func(ctx Context, cfg Config) (effects.Processor, error) {
		f := cfg.Filter
		return effects.NewFilter(ctx.SampleRate, f.Type, f.Frequency, f.Resonance)
	})
	r.MustRegister(SlotDistortion, func(ctx Context, cfg Config) (effects.Processor, error) {
		return effects.NewDistortion(ctx.SampleRate, cfg.Distortion.Amount, oversample.WithQuality(ctx.Oversampling))
	})
	r.MustRegister(SlotDelay, func(ctx Context, cfg Config) (effects.Processor, error) {
		d := cfg.Delay
		return effects.NewDelay(ctx.SampleRate, d.Time, d.Feedback, d.Mix)
	})
	r.MustRegister(SlotReverb, func(ctx Context, cfg Config) (effects.Processor, error) {
		rv := cfg.Reverb
		return effects.NewReverb(ctx.SampleRate, rv.Amount, rv.Decay, ctx.Rand)
	})

	return r
}

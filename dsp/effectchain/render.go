package effectchain

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/remixstudio/algo-fx/dsp/buffer"
	"github.com/remixstudio/algo-fx/dsp/oversample"
)

var (
	// ErrFrameBudget is returned when the input is longer than WithMaxFrames
	// allows.
	ErrFrameBudget = errors.New("effectchain: frame budget exceeded")
	// ErrNilChain is returned by RenderChain for a nil chain.
	ErrNilChain = errors.New("effectchain: nil chain")
	// ErrShapeChanged is returned when a processor altered the channel
	// layout of the working buffer.
	ErrShapeChanged = errors.New("effectchain: processor changed buffer shape")
)

// Renderer renders buffers through effect chains. A Renderer is immutable
// after construction and safe for concurrent use; every call builds its own
// chain, random source and working buffers.
type Renderer struct {
	seeded    bool
	seed      int64
	logger    logrus.FieldLogger
	maxFrames int
	registry  *Registry
	quality   oversample.Quality
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSeed makes every render use a random source seeded with seed, so that
// the same input and config always produce the same output. Without it the
// seed is taken from the clock.
func WithSeed(seed int64) Option {
	return func(r *Renderer) {
		r.seeded = true
		r.seed = seed
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMaxFrames rejects inputs longer than n frames. n <= 0 means no limit.
func WithMaxFrames(n int) Option {
	return func(r *Renderer) {
		r.maxFrames = n
	}
}

// WithOversampling sets the oversampling quality of the distortion.
func WithOversampling(q oversample.Quality) Option {
	return func(r *Renderer) {
		r.quality = q
	}
}

// WithRegistry replaces the effect factories used by Render.
func WithRegistry(reg *Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// NewRenderer returns a Renderer configured by opts.
func NewRenderer(opts ...Option) *Renderer {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Renderer{logger: discard}
	for _, opt := range opts {
		opt(r)
	}

	if r.registry == nil {
		r.registry = DefaultRegistry()
	}

	return r
}

// Render runs in through a chain assembled from cfg and returns a new
// buffer with the same channel count, length and sample rate. in is never
// modified.
func Render(in *buffer.AudioBuffer, cfg Config) (*buffer.AudioBuffer, error) {
	return NewRenderer().Render(in, cfg)
}

// Render runs in through a chain assembled from cfg.
func (r *Renderer) Render(in *buffer.AudioBuffer, cfg Config) (*buffer.AudioBuffer, error) {
	if err := r.check(in); err != nil {
		return nil, err
	}

	cfg = cfg.Sanitize()
	seed := r.nextSeed()

	log := r.logger.WithFields(logrus.Fields{
		"function": "Renderer.Render",
		"seed":     seed,
		"slots":    fmt.Sprint(cfg.EnabledSlots()),
	})

	chain, err := assemble(r.registry, cfg, Context{
		SampleRate:   float64(in.SampleRate),
		Rand:         rand.New(rand.NewSource(seed)),
		Oversampling: r.quality,
	})
	if err != nil {
		log.WithError(err).Error("Chain assembly failed")
		return nil, err
	}

	return r.run(in, chain, log)
}

// RenderChain runs in through a chain the caller assembled. Processors
// keep no state between calls, so a chain may be rendered any number of
// times, but not from several goroutines at once.
func (r *Renderer) RenderChain(in *buffer.AudioBuffer, chain *Chain) (*buffer.AudioBuffer, error) {
	if err := r.check(in); err != nil {
		return nil, err
	}

	if chain == nil || chain.Head() == nil {
		return nil, ErrNilChain
	}

	log := r.logger.WithFields(logrus.Fields{
		"function": "Renderer.RenderChain",
		"slots":    fmt.Sprint(chain.Slots()),
	})

	return r.run(in, chain, log)
}

func (r *Renderer) check(in *buffer.AudioBuffer) error {
	if err := in.Validate(); err != nil {
		r.logger.WithFields(logrus.Fields{
			"function": "Renderer.check",
			"error":    err.Error(),
		}).Warn("Rejected input buffer")

		return err
	}

	if r.maxFrames > 0 && in.Length() > r.maxFrames {
		return fmt.Errorf("%w: %d frames > %d", ErrFrameBudget, in.Length(), r.maxFrames)
	}

	return nil
}

func (r *Renderer) nextSeed() int64 {
	if r.seeded {
		return r.seed
	}

	return time.Now().UnixNano()
}

func (r *Renderer) run(in *buffer.AudioBuffer, chain *Chain, log logrus.FieldLogger) (*buffer.AudioBuffer, error) {
	start := time.Now()
	channels, frames := in.NumberOfChannels(), in.Length()

	log.WithFields(logrus.Fields{
		"channels":    channels,
		"frames":      frames,
		"sample_rate": in.SampleRate,
	}).Debug("Starting render")

	work := in.Float64Channels()

	for _, n := range chain.Nodes() {
		if err := n.Processor().Process(work); err != nil {
			log.WithFields(logrus.Fields{
				"node":  n.Name(),
				"error": err.Error(),
			}).Error("Processor failed")

			return nil, engineError("process", n.Name(), err)
		}

		if !sameShape(work, channels, frames) {
			return nil, engineError("process", n.Name(), ErrShapeChanged)
		}

		log.WithField("node", n.Name()).Debug("Processed node")
	}

	out, err := buffer.FromFloat64Clamped(work, in.SampleRate)
	if err != nil {
		return nil, engineError("output", "", err)
	}

	log.WithFields(logrus.Fields{
		"elapsed": time.Since(start).String(),
		"peak":    out.Peak(),
	}).Info("Render complete")

	return out, nil
}

func sameShape(work [][]float64, channels, frames int) bool {
	if len(work) != channels {
		return false
	}

	for _, ch := range work {
		if len(ch) != frames {
			return false
		}
	}

	return true
}

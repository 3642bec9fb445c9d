package effectchain

import (
	"math/rand"
	"testing"

	"github.com/remixstudio/algo-fx/dsp/buffer"
	"github.com/remixstudio/algo-fx/dsp/effects"
)

// allEnabled returns the default config with every slot switched on.
func allEnabled() Config {
	cfg := DefaultConfig()
	cfg.Reverb.Enabled = true
	cfg.Delay.Enabled = true
	cfg.Filter.Enabled = true
	cfg.Distortion.Enabled = true
	cfg.Compressor.Enabled = true

	return cfg
}

// buildNodes instantiates slots in the given order with the default
// registry, using a random source seeded like a seeded Renderer would.
func buildNodes(t *testing.T, cfg Config, sampleRate int, seed int64, order ...Slot) []*Node {
	t.Helper()

	reg := DefaultRegistry()
	ctx := Context{SampleRate: float64(sampleRate), Rand: rand.New(rand.NewSource(seed))}

	nodes := make([]*Node, 0, len(order))
	for _, s := range order {
		p, err := reg.Build(s, ctx, cfg.Sanitize())
		if err != nil {
			t.Fatalf("build %s: %v", s, err)
		}

		nodes = append(nodes, NewNode(s, p))
	}

	return nodes
}

func requireIdentical(t *testing.T, got, want *buffer.AudioBuffer) {
	t.Helper()

	if got.SampleRate != want.SampleRate || got.NumberOfChannels() != want.NumberOfChannels() {
		t.Fatalf("shape mismatch: got %d ch @ %d Hz, want %d ch @ %d Hz",
			got.NumberOfChannels(), got.SampleRate, want.NumberOfChannels(), want.SampleRate)
	}

	for c := range want.Channels {
		if len(got.Channels[c]) != len(want.Channels[c]) {
			t.Fatalf("channel %d: length %d, want %d", c, len(got.Channels[c]), len(want.Channels[c]))
		}

		for i := range want.Channels[c] {
			if got.Channels[c][i] != want.Channels[c][i] {
				t.Fatalf("channel %d frame %d: got %v, want %v", c, i, got.Channels[c][i], want.Channels[c][i])
			}
		}
	}
}

// failingProcessor always fails.
type failingProcessor struct{ err error }

func (failingProcessor) Name() string { return "failing" }

func (f failingProcessor) Process([][]float64) error { return f.err }

// truncatingProcessor drops the last frame of every channel.
type truncatingProcessor struct{}

func (truncatingProcessor) Name() string { return "truncating" }

func (truncatingProcessor) Process(channels [][]float64) error {
	for c := range channels {
		channels[c] = channels[c][:len(channels[c])-1]
	}

	return nil
}

var (
	_ effects.Processor = failingProcessor{}
	_ effects.Processor = truncatingProcessor{}
)

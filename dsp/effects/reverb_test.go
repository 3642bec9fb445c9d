package effects

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/remixstudio/algo-fx/dsp/core"
	"github.com/remixstudio/algo-fx/internal/testutil"
)

func TestReverbValidation(t *testing.T) {
	if _, err := NewReverb(0, 50, 50, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("got %v, want ErrInvalidSampleRate", err)
	}

	if _, err := NewReverb(44100, 50, 50, nil); !errors.Is(err, ErrNilRandomSource) {
		t.Fatalf("got %v, want ErrNilRandomSource", err)
	}
}

func TestReverbImpulseResponse(t *testing.T) {
	r, err := NewReverb(8000, 50, 25, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}

	for c := range 2 {
		ir := r.ImpulseResponse(c)
		if len(ir) != ReverbLength(8000, 25) {
			t.Fatalf("channel %d: len %d, want %d", c, len(ir), ReverbLength(8000, 25))
		}

		var energy float64
		for _, v := range ir {
			energy += v * v
		}

		if math.Abs(energy-1) > 1e-9 {
			t.Fatalf("channel %d: energy %v, want 1", c, energy)
		}

		head := core.PeakAbs(ir[:len(ir)/10])
		tail := core.PeakAbs(ir[len(ir)*9/10:])
		if tail >= head {
			t.Fatalf("channel %d: tail peak %v not below head peak %v", c, tail, head)
		}
	}

	if d, _ := testutil.MaxAbsDiff(r.ImpulseResponse(0), r.ImpulseResponse(1)); d == 0 {
		t.Fatal("left and right impulse responses are identical")
	}
}

func TestReverbSeededDeterminism(t *testing.T) {
	a, err := NewReverb(8000, 50, 10, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewReverb(8000, 50, 10, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, a.ImpulseResponse(0), b.ImpulseResponse(0), 0)
	testutil.RequireSliceNearlyEqual(t, a.ImpulseResponse(1), b.ImpulseResponse(1), 0)
}

func TestReverbProcess(t *testing.T) {
	const n = 4000

	r, err := NewReverb(8000, 40, 10, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}

	channels := [][]float64{
		testutil.Impulse(n, 0),
		testutil.Impulse(n, 0),
		testutil.Impulse(n, 0),
	}

	if err := r.Process(channels); err != nil {
		t.Fatal(err)
	}

	for c, ch := range channels {
		if len(ch) != n {
			t.Fatalf("channel %d: len %d, want %d", c, len(ch), n)
		}

		ir := r.ImpulseResponse(c)
		want := 0.6 + 0.4*ir[0]
		if math.Abs(ch[0]-want) > 1e-9 {
			t.Fatalf("channel %d: first sample %v, want %v", c, ch[0], want)
		}

		if math.Abs(ch[5]-0.4*ir[5]) > 1e-9 {
			t.Fatalf("channel %d: sample 5 = %v, want %v", c, ch[5], 0.4*ir[5])
		}
	}

	testutil.RequireSliceNearlyEqual(t, channels[2], channels[0], 1e-12)
}

func TestReverbZeroAmountIsIdentity(t *testing.T) {
	r, err := NewReverb(8000, 0, 80, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicSine(440, 8000, 0.5, 512)
	ch := append([]float64(nil), in...)

	if err := r.Process([][]float64{ch}); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, ch, in, 0)
}

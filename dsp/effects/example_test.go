package effects_test

import (
	"fmt"
	"math/rand"

	"github.com/remixstudio/algo-fx/dsp/effects"
)

func ExampleNewDelay() {
	d, err := effects.NewDelay(1000, 1, 50, 50)
	if err != nil {
		fmt.Println(err)
		return
	}

	ch := []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if err := d.Process([][]float64{ch}); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(d.DelaySamples(), ch[0], ch[10])
	// Output: 10 0.5 0.5
}

func ExampleNewFilter() {
	f, err := effects.NewFilter(44100, effects.FilterBandpass, 50, 5)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s %.1f Hz Q=%.1f\n", f.Type(), f.Frequency(), f.Q())
	// Output: bandpass 632.5 Hz Q=1.0
}

func ExampleNewReverb() {
	r, err := effects.NewReverb(44100, 30, 50, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(r.Name(), len(r.ImpulseResponse(0)), r.Mix())
	// Output: reverb 66150 0.3
}

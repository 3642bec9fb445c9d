package effectchain

import (
	"github.com/remixstudio/algo-fx/dsp/effects"
	"github.com/remixstudio/algo-fx/dsp/oversample"
)

// Context provides environmental information that effect factories need.
type Context struct {
	SampleRate   float64
	Rand         effects.RandomSource
	Oversampling oversample.Quality
}

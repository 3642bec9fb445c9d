package biquad

import (
	"math"

	"github.com/remixstudio/algo-fx/dsp/core"
)

// Coefficients describe one second-order section normalized to a0 = 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Filter runs buf through the section in place, starting from rest. It uses
// the transposed direct form II; state values that decay below 1e-30 are
// flushed to zero so a silent tail stays exactly silent.
func (c Coefficients) Filter(buf []float64) {
	var s1, s2 float64

	for i, x := range buf {
		y := c.B0*x + s1
		s1 = core.FlushDenormals(c.B1*x - c.A1*y + s2)
		s2 = core.FlushDenormals(c.B2*x - c.A2*y)
		buf[i] = y
	}
}

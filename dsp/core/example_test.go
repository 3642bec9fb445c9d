package core_test

import (
	"fmt"

	"github.com/remixstudio/algo-fx/dsp/core"
)

func ExampleMapExponential() {
	// A cutoff slider at 0, 50 and 100 percent.
	for _, v := range []float64{0, 50, 100} {
		fmt.Printf("%.0f Hz\n", core.MapExponential(v, 20, 20000))
	}

	// Output:
	// 20 Hz
	// 632 Hz
	// 20000 Hz
}

func ExampleBlend() {
	dry := []float64{1, 1}
	wet := []float64{0, 2}
	core.Blend(dry, dry, wet, 0.75, 0.25)
	fmt.Println(dry)

	// Output:
	// [0.75 1.25]
}

// Command remixfx renders WAV files through the offline effects chain.
//
// Usage:
//
//	remixfx render [flags] <input.wav> <output.wav>
//	remixfx presets [name]
//	remixfx info <file.wav> ...
//
// Examples:
//
//	remixfx render --preset hip-hop vocals.wav vocals-fx.wav
//	remixfx render --config fx.json --seed 7 in.wav out.wav
//	remixfx presets future-bass
//	remixfx info out.wav
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package testutil

import (
	"math"
	"math/rand"

	"github.com/remixstudio/algo-fx/dsp/buffer"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// SineBuffer builds an AudioBuffer with the same sine on every channel.
func SineBuffer(freqHz float64, sampleRate, channels, length int, amplitude float64) *buffer.AudioBuffer {
	return fromMono(DeterministicSine(freqHz, float64(sampleRate), amplitude, length), sampleRate, channels)
}

// NoiseBuffer builds an AudioBuffer of seeded white noise, one seed per channel.
func NoiseBuffer(seed int64, sampleRate, channels, length int, amplitude float64) *buffer.AudioBuffer {
	b := &buffer.AudioBuffer{SampleRate: sampleRate, Channels: make([][]float32, channels)}
	for c := range b.Channels {
		b.Channels[c] = toFloat32(DeterministicNoise(seed+int64(c), amplitude, length))
	}

	return b
}

// ImpulseBuffer builds an AudioBuffer holding a unit impulse at pos on every channel.
func ImpulseBuffer(sampleRate, channels, length, pos int) *buffer.AudioBuffer {
	return fromMono(Impulse(length, pos), sampleRate, channels)
}

// ConstantBuffer builds an AudioBuffer filled with value on every channel.
func ConstantBuffer(value float32, sampleRate, channels, length int) *buffer.AudioBuffer {
	b := &buffer.AudioBuffer{SampleRate: sampleRate, Channels: make([][]float32, channels)}
	for c := range b.Channels {
		ch := make([]float32, length)
		for i := range ch {
			ch[i] = value
		}

		b.Channels[c] = ch
	}

	return b
}

func fromMono(mono []float64, sampleRate, channels int) *buffer.AudioBuffer {
	b := &buffer.AudioBuffer{SampleRate: sampleRate, Channels: make([][]float32, channels)}
	for c := range b.Channels {
		b.Channels[c] = toFloat32(mono)
	}

	return b
}

func toFloat32(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}

	return out
}

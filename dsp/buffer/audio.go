package buffer

import (
	"fmt"
	"math"
	"time"

	"github.com/remixstudio/algo-fx/dsp/core"
)

// AudioBuffer is a planar multi-channel buffer of float32 samples.
// Every channel holds the same number of frames.
type AudioBuffer struct {
	SampleRate int
	Channels   [][]float32
}

// New returns a zero-filled buffer with the given shape.
func New(channels, length, sampleRate int) (*AudioBuffer, error) {
	b := &AudioBuffer{SampleRate: sampleRate}
	if channels > 0 {
		b.Channels = make([][]float32, channels)
		for c := range b.Channels {
			b.Channels[c] = make([]float32, max(length, 0))
		}
	}

	if err := b.validateShape(); err != nil {
		return nil, err
	}

	return b, nil
}

// FromFloat32 wraps channel data without copying after validating it.
func FromFloat32(channels [][]float32, sampleRate int) (*AudioBuffer, error) {
	b := &AudioBuffer{SampleRate: sampleRate, Channels: channels}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// FromFloat64Clamped narrows float64 channel data into a new buffer,
// clamping every sample to [-1, 1]. NaN samples become 0.
func FromFloat64Clamped(channels [][]float64, sampleRate int) (*AudioBuffer, error) {
	if len(channels) == 0 {
		return nil, &ValidationError{Precondition: PreconditionNoChannels, Detail: "no channel data"}
	}

	out := &AudioBuffer{SampleRate: sampleRate, Channels: make([][]float32, len(channels))}
	for c, src := range channels {
		dst := make([]float32, len(src))
		for i, v := range src {
			if !math.IsNaN(v) {
				dst[i] = float32(core.ClampUnit(v))
			}
		}

		out.Channels[c] = dst
	}

	if err := out.validateShape(); err != nil {
		return nil, err
	}

	return out, nil
}

// NumberOfChannels returns the channel count.
func (b *AudioBuffer) NumberOfChannels() int {
	return len(b.Channels)
}

// Length returns the number of frames per channel.
func (b *AudioBuffer) Length() int {
	if len(b.Channels) == 0 {
		return 0
	}

	return len(b.Channels[0])
}

// Duration returns the playback length of the buffer.
func (b *AudioBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(b.Length()) / float64(b.SampleRate) * float64(time.Second))
}

// Validate checks shape and sample data. Samples outside [-1, 1] are legal;
// NaN and infinities are reported as corrupt data.
func (b *AudioBuffer) Validate() error {
	if err := b.validateShape(); err != nil {
		return err
	}

	for c, ch := range b.Channels {
		for i, v := range ch {
			if !core.IsFinite(float64(v)) {
				return &ValidationError{
					Precondition: PreconditionNonFinite,
					Channel:      c,
					Frame:        i,
					Detail:       fmt.Sprintf("sample is %v", v),
				}
			}
		}
	}

	return nil
}

func (b *AudioBuffer) validateShape() error {
	if b == nil {
		return &ValidationError{Precondition: PreconditionNilBuffer, Detail: "buffer is nil"}
	}

	if len(b.Channels) == 0 {
		return &ValidationError{Precondition: PreconditionNoChannels, Detail: "buffer has zero channels"}
	}

	if b.SampleRate <= 0 {
		return &ValidationError{
			Precondition: PreconditionSampleRate,
			Detail:       fmt.Sprintf("sample rate must be > 0: %d", b.SampleRate),
		}
	}

	length := len(b.Channels[0])
	if length <= 0 {
		return &ValidationError{Precondition: PreconditionZeroLength, Detail: "buffer has zero frames"}
	}

	for c, ch := range b.Channels {
		if len(ch) != length {
			return &ValidationError{
				Precondition: PreconditionRaggedChannels,
				Channel:      c,
				Detail:       fmt.Sprintf("has %d frames, channel 0 has %d", len(ch), length),
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the buffer.
func (b *AudioBuffer) Clone() *AudioBuffer {
	out := &AudioBuffer{SampleRate: b.SampleRate, Channels: make([][]float32, len(b.Channels))}
	for c, ch := range b.Channels {
		out.Channels[c] = append([]float32(nil), ch...)
	}

	return out
}

// Float64Channels widens every channel into a newly allocated float64 slice.
func (b *AudioBuffer) Float64Channels() [][]float64 {
	out := make([][]float64, len(b.Channels))
	for c, ch := range b.Channels {
		dst := make([]float64, len(ch))
		for i, v := range ch {
			dst[i] = float64(v)
		}

		out[c] = dst
	}

	return out
}

// Peak returns the largest absolute sample value across all channels.
func (b *AudioBuffer) Peak() float64 {
	var peak float64

	for _, ch := range b.Channels {
		for _, v := range ch {
			a := math.Abs(float64(v))
			if a > peak {
				peak = a
			}
		}
	}

	return peak
}

// RMS returns the root-mean-square level across all channels.
func (b *AudioBuffer) RMS() float64 {
	var (
		sum float64
		n   int
	)

	for _, ch := range b.Channels {
		for _, v := range ch {
			sum += float64(v) * float64(v)
		}

		n += len(ch)
	}

	if n == 0 {
		return 0
	}

	return math.Sqrt(sum / float64(n))
}

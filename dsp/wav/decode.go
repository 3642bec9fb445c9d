package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/remixstudio/algo-fx/dsp/buffer"
)

var (
	// ErrInvalidFile is returned for input that is not a RIFF/WAVE stream.
	ErrInvalidFile = errors.New("wav: invalid file")
	// ErrUnsupportedFormat is returned for non-PCM or unusual sample widths.
	ErrUnsupportedFormat = errors.New("wav: unsupported format")
)

// Info describes a decoded stream.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int
}

// Decode reads an integer PCM WAV stream into a new AudioBuffer.
func Decode(r io.ReadSeeker) (*buffer.AudioBuffer, error) {
	buf, _, err := DecodeInfo(r)
	return buf, err
}

// DecodeInfo is like Decode and also reports the source format.
func DecodeInfo(r io.ReadSeeker) (*buffer.AudioBuffer, Info, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, Info{}, ErrInvalidFile
	}

	if d.WavAudioFormat != formatPCM {
		return nil, Info{}, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}

	bits := int(d.BitDepth)
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, Info{}, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bits)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, fmt.Errorf("wav: decode samples: %w", err)
	}

	channels := int(d.NumChans)
	if channels == 0 {
		return nil, Info{}, fmt.Errorf("%w: zero channels", ErrInvalidFile)
	}

	frames := len(pcm.Data) / channels
	info := Info{SampleRate: int(d.SampleRate), Channels: channels, BitDepth: bits, Frames: frames}

	out, err := buffer.New(channels, frames, int(d.SampleRate))
	if err != nil {
		return nil, info, fmt.Errorf("wav: %w", err)
	}

	scale := 1 / float64(int64(1)<<(bits-1)-1)

	// 8-bit PCM is unsigned with a 128 midpoint.
	offset := 0
	if bits == 8 {
		offset = 128
	}

	for i := range frames {
		for c := range channels {
			out.Channels[c][i] = float32(float64(pcm.Data[i*channels+c]-offset) * scale)
		}
	}

	return out, info, nil
}

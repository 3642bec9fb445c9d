package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/remixstudio/algo-fx/dsp/buffer"
	"github.com/remixstudio/algo-fx/dsp/core"
)

// WriteDepth writes buf as integer PCM at 16, 24 or 32 bits through
// go-audio/wav. At 16 bits the output matches Encode.
func WriteDepth(w io.WriteSeeker, buf *buffer.AudioBuffer, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d-bit output", ErrUnsupportedFormat, bitDepth)
	}

	if _, err := newHeader(buf, bitDepth); err != nil {
		return err
	}

	channels := buf.NumberOfChannels()
	frames := buf.Length()
	full := float64(int64(1)<<(bitDepth-1) - 1)

	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: buf.SampleRate},
		Data:           make([]int, frames*channels),
		SourceBitDepth: bitDepth,
	}

	for i := range frames {
		for c, ch := range buf.Channels {
			ib.Data[i*channels+c] = int(math.Round(core.ClampUnit(float64(ch[i])) * full))
		}
	}

	enc := wav.NewEncoder(w, buf.SampleRate, bitDepth, channels, formatPCM)
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}

	return nil
}

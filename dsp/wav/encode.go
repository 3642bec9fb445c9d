package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/remixstudio/algo-fx/dsp/buffer"
	"github.com/remixstudio/algo-fx/dsp/core"
)

const (
	// HeaderSize is the length of the canonical RIFF/WAVE header.
	HeaderSize = 44
	// BitDepth is the sample width written by Encode.
	BitDepth = 16

	formatPCM     = 1
	fmtChunkSize  = 16
	maxChunkBytes = math.MaxUint32
)

var (
	// ErrTooLarge is returned when the sample data does not fit a RIFF chunk.
	ErrTooLarge = errors.New("wav: data exceeds 4 GiB")
	// ErrHeaderOverflow is returned when the sample rate or byte rate does
	// not fit its 32-bit header field.
	ErrHeaderOverflow = errors.New("wav: header field overflow")
)

// header is the on-disk layout of a canonical PCM header.
type header struct {
	RIFF          [4]byte
	ChunkSize     uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

// Encode returns buf as a 16-bit PCM WAV file.
func Encode(buf *buffer.AudioBuffer) ([]byte, error) {
	h, err := newHeader(buf, BitDepth)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(HeaderSize + int(h.DataSize))

	if err := write(&out, h, buf); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Write streams buf to w as a 16-bit PCM WAV file. The bytes are identical
// to those returned by Encode.
func Write(w io.Writer, buf *buffer.AudioBuffer) error {
	h, err := newHeader(buf, BitDepth)
	if err != nil {
		return err
	}

	return write(w, h, buf)
}

// Sample16 converts a float sample to 16-bit PCM: round(clamp(s)*32767).
func Sample16(s float32) int16 {
	v := float64(s)
	if math.IsNaN(v) {
		return 0
	}

	return int16(math.Round(core.ClampUnit(v) * math.MaxInt16))
}

// newHeader checks that buf fits a PCM header at bitDepth and builds it.
func newHeader(buf *buffer.AudioBuffer, bitDepth int) (header, error) {
	if err := buf.Validate(); err != nil {
		return header{}, fmt.Errorf("wav: %w", err)
	}

	channels := buf.NumberOfChannels()

	blockAlign := uint64(channels) * uint64(bitDepth) / 8
	if blockAlign > math.MaxUint16 {
		return header{}, fmt.Errorf("%w: %d channels at %d bits", ErrHeaderOverflow, channels, bitDepth)
	}

	byteRate := uint64(buf.SampleRate) * blockAlign
	if byteRate > math.MaxUint32 {
		return header{}, fmt.Errorf("%w: sample rate %d with %d channels", ErrHeaderOverflow, buf.SampleRate, channels)
	}

	dataSize := uint64(buf.Length()) * blockAlign
	if dataSize+HeaderSize-8 > maxChunkBytes {
		return header{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, dataSize)
	}

	return header{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + dataSize),
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       fmtChunkSize,
		AudioFormat:   formatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(buf.SampleRate),
		ByteRate:      uint32(byteRate),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(bitDepth),
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      uint32(dataSize),
	}, nil
}

func write(w io.Writer, h header, buf *buffer.AudioBuffer) error {
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}

	const framesPerChunk = 4096

	channels := buf.NumberOfChannels()
	frames := buf.Length()
	chunk := make([]byte, 0, framesPerChunk*channels*2)

	for start := 0; start < frames; start += framesPerChunk {
		end := min(start+framesPerChunk, frames)
		chunk = chunk[:0]

		for i := start; i < end; i++ {
			for _, ch := range buf.Channels {
				chunk = binary.LittleEndian.AppendUint16(chunk, uint16(Sample16(ch[i])))
			}
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("wav: write samples: %w", err)
		}
	}

	return nil
}

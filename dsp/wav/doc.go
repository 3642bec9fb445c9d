// Package wav converts between AudioBuffers and RIFF/WAVE bytes.
//
// [Encode] and [Write] produce canonical 16-bit PCM files with a 44-byte
// header and interleaved little-endian samples. Samples are clamped to
// [-1, 1] and scaled by 32767 with rounding, so -1 maps to -32767.
//
// [Decode] reads 8, 16, 24 and 32-bit integer PCM through go-audio/wav and
// scales every sample by 1/(2^(bits-1)-1).
package wav

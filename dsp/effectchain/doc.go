// Package effectchain assembles the five remix effects into a fixed-order
// chain and renders audio buffers through it offline.
//
// A [Config] holds one slot per effect. [Assemble] instantiates only the
// enabled slots, always in the canonical order
//
//	compressor -> filter -> distortion -> delay -> reverb
//
// and connects them head to tail. A [Renderer] validates the input buffer,
// builds a fresh chain and random source for every call, runs the audio
// through it and returns a new buffer of the same shape, clamped to [-1, 1].
//
// Out-of-range slider values are clamped by [Config.Sanitize]; a render never
// fails because of them. Invalid input buffers fail with a
// *buffer.ValidationError and processing failures with an *EngineError.
package effectchain

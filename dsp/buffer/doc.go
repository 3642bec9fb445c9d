// Package buffer defines AudioBuffer, the multi-channel float32 sample
// container exchanged between the effects core and its callers.
//
// An AudioBuffer is treated as immutable once handed to the core: renderers
// widen it into a private float64 working set and always return a freshly
// allocated buffer.
package buffer

// Package core holds small numeric helpers shared by the effect kernels:
// clamping, slider-to-unit mapping, dB conversion and slice utilities.
package core

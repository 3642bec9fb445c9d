package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Blend writes dryGain*dry[i] + wetGain*wet[i] into dst.
// All three slices must have the same length; dst may alias dry or wet.
func Blend(dst, dry, wet []float64, dryGain, wetGain float64) {
	if len(dst) == 0 {
		return
	}

	_ = dry[len(dst)-1]
	_ = wet[len(dst)-1]

	for i := range dst {
		dst[i] = dryGain*dry[i] + wetGain*wet[i]
	}
}

// PeakAbs returns the largest absolute value in buf.
func PeakAbs(buf []float64) float64 {
	var peak float64

	for _, v := range buf {
		if v < 0 {
			v = -v
		}

		if v > peak {
			peak = v
		}
	}

	return peak
}

package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
// NaN collapses to min.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min || math.IsNaN(value) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampUnit limits value to [-1, 1], the legal range of a float sample.
func ClampUnit(value float64) float64 {
	return Clamp(value, -1, 1)
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// MapLinear maps a normalized slider value in [0, 100] onto [lo, hi].
// Values outside the slider range are clamped first.
func MapLinear(value, lo, hi float64) float64 {
	t := Clamp(value, 0, 100) / 100
	return lo + t*(hi-lo)
}

// MapExponential maps a normalized slider value in [0, 100] onto [lo, hi]
// along a logarithmic scale: lo * (hi/lo)^(value/100).
// lo and hi must be positive.
func MapExponential(value, lo, hi float64) float64 {
	t := Clamp(value, 0, 100) / 100
	return lo * math.Pow(hi/lo, t)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// FlushDenormals converts tiny denormal-like values to exact zero.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

package geom

import "math"

// CosineTolerance is how far past ±1 a computed cosine may drift before the
// triangle is considered impossible rather than rounded.
const CosineTolerance = 1e-9

// LawOfCosines returns the angle between sides a and b of a triangle whose
// third side is c. A cosine within CosineTolerance of ±1 is clamped, so a
// straight or folded triangle yields exactly 0 or π. ok is false when the
// sides cannot close into a triangle or a or b is zero.
func LawOfCosines(a, b, c float64) (angle float64, ok bool) {
	if a == 0 || b == 0 {
		return math.NaN(), false
	}
	cos := (a*a + b*b - c*c) / (2 * a * b)
	if math.IsNaN(cos) || math.Abs(cos) > 1+CosineTolerance {
		return math.NaN(), false
	}
	return math.Acos(Clamp(cos, -1, 1)), true
}

// Clamp limits v to [lo, hi]. NaN passes through.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

package errors

import "math"

// ValidateLength checks that a segment length is finite and strictly positive.
func ValidateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "segment %s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "segment %s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateCoordinate checks that a target coordinate is a finite number.
// Range is not checked: targets outside [-1, 1] are legal and simply tend to
// be unreachable.
func ValidateCoordinate(axis string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidTarget, "%s must be a finite number, got %v", axis, v)
	}
	return nil
}

// ValidatePercent checks that a slider value lies in [-100, 100].
func ValidatePercent(axis string, v int) error {
	if v < -100 || v > 100 {
		return New(ErrCodeInvalidTarget, "%s must be between -100 and 100, got %d", axis, v)
	}
	return nil
}

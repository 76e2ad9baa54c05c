package linkage

import (
	"math"

	errs "github.com/matzehuels/linkage/pkg/errors"
)

// Default segment lengths.
const (
	DefaultAD = 0.6
	DefaultDE = 0.5
	DefaultAB = 0.3
	DefaultBC = 0.4
	DefaultCD = 0.2
)

// Segment names, in drawing order.
const (
	SegmentAD = "AD"
	SegmentDE = "DE"
	SegmentAB = "AB"
	SegmentBC = "BC"
	SegmentCD = "CD"
)

// SegmentNames lists every configurable segment in drawing order.
var SegmentNames = []string{SegmentAD, SegmentDE, SegmentAB, SegmentBC, SegmentCD}

// ArmConfig holds the five segment lengths of the linkage.
type ArmConfig struct {
	AD float64 `json:"ad" toml:"ad"` // lift arm, base side
	DE float64 `json:"de" toml:"de"` // lift arm, effector side
	AB float64 `json:"ab" toml:"ab"` // support arm, base side
	BC float64 `json:"bc" toml:"bc"` // support arm, middle
	CD float64 `json:"cd" toml:"cd"` // support arm, junction side
}

// DefaultConfig returns the reference linkage.
func DefaultConfig() ArmConfig {
	return ArmConfig{AD: DefaultAD, DE: DefaultDE, AB: DefaultAB, BC: DefaultBC, CD: DefaultCD}
}

// Validate returns an INVALID_CONFIG error for the first segment that is not a
// finite, strictly positive length.
func (c ArmConfig) Validate() error {
	for _, name := range SegmentNames {
		if err := errs.ValidateLength(name, c.Length(name)); err != nil {
			return err
		}
	}
	return nil
}

// Length returns the length of the named segment, or NaN for an unknown name.
func (c ArmConfig) Length(name string) float64 {
	switch name {
	case SegmentAD:
		return c.AD
	case SegmentDE:
		return c.DE
	case SegmentAB:
		return c.AB
	case SegmentBC:
		return c.BC
	case SegmentCD:
		return c.CD
	}
	return math.NaN()
}

// WithLength returns a copy of c with the named segment replaced.
func (c ArmConfig) WithLength(name string, v float64) (ArmConfig, error) {
	switch name {
	case SegmentAD:
		c.AD = v
	case SegmentDE:
		c.DE = v
	case SegmentAB:
		c.AB = v
	case SegmentBC:
		c.BC = v
	case SegmentCD:
		c.CD = v
	default:
		return c, errs.New(errs.ErrCodeInvalidSegment, "unknown segment %q", name)
	}
	return c, nil
}

// LiftReach is the fully extended length of the lift arm.
func (c ArmConfig) LiftReach() float64 { return c.AD + c.DE }

// SupportReach is the fully extended span of the support arm from A to C.
func (c ArmConfig) SupportReach() float64 { return c.AB + c.BC }

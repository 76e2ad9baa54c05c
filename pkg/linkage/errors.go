package linkage

import (
	"errors"
	"fmt"

	errs "github.com/matzehuels/linkage/pkg/errors"
)

// ErrorKind identifies which constraint a failed solve violated.
type ErrorKind int

const (
	// LiftArmUnreachable: the target is farther from A than AD+DE.
	LiftArmUnreachable ErrorKind = iota + 1
	// SupportArmUnreachable: C is farther from A than AB+BC.
	SupportArmUnreachable
	// DegenerateGeometry: an angle is undefined (target at the base,
	// zero-length ray, or x = 0 for the azimuth).
	DegenerateGeometry
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case LiftArmUnreachable:
		return "LiftArmUnreachable"
	case SupportArmUnreachable:
		return "SupportArmUnreachable"
	case DegenerateGeometry:
		return "DegenerateGeometry"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// OutOfRangeMessage is shown to users for unreachable targets.
const OutOfRangeMessage = "Position out of range"

// Sentinels for errors.Is. They match any *SolveError of the same kind.
var (
	ErrLiftArmUnreachable    = &SolveError{Kind: LiftArmUnreachable}
	ErrSupportArmUnreachable = &SolveError{Kind: SupportArmUnreachable}
	ErrDegenerateGeometry    = &SolveError{Kind: DegenerateGeometry}
)

// SolveError reports why no layout exists for a target.
type SolveError struct {
	Kind ErrorKind

	// Distance is the span the arm had to cover (AE or AC) and Reach the
	// arm's fully extended length. Both are zero for DegenerateGeometry.
	Distance float64
	Reach    float64

	// Reason describes a DegenerateGeometry failure.
	Reason string
}

// Error implements the error interface.
func (e *SolveError) Error() string {
	switch e.Kind {
	case LiftArmUnreachable:
		return fmt.Sprintf("lift arm unreachable: target distance %.4g exceeds AD+DE = %.4g", e.Distance, e.Reach)
	case SupportArmUnreachable:
		return fmt.Sprintf("support arm unreachable: distance to C %.4g exceeds AB+BC = %.4g", e.Distance, e.Reach)
	case DegenerateGeometry:
		if e.Reason != "" {
			return "degenerate geometry: " + e.Reason
		}
		return "degenerate geometry"
	}
	return e.Kind.String()
}

// Is matches sentinels by kind.
func (e *SolveError) Is(target error) bool {
	t, ok := target.(*SolveError)
	return ok && t.Kind == e.Kind
}

// Code maps the kind onto the shared error codes.
func (e *SolveError) Code() errs.Code {
	switch e.Kind {
	case LiftArmUnreachable:
		return errs.ErrCodeLiftArmUnreachable
	case SupportArmUnreachable:
		return errs.ErrCodeSupportArmUnreachable
	case DegenerateGeometry:
		return errs.ErrCodeDegenerateGeometry
	}
	return errs.ErrCodeInternal
}

// UserMessage returns the text a display layer shows for the failure.
func (e *SolveError) UserMessage() string {
	if e.Kind == DegenerateGeometry {
		return "Degenerate geometry"
	}
	return OutOfRangeMessage
}

// Unreachable reports whether the failure is one of the two reachability kinds.
func (e *SolveError) Unreachable() bool {
	return e.Kind == LiftArmUnreachable || e.Kind == SupportArmUnreachable
}

// IsSolveError reports whether err wraps a *SolveError.
func IsSolveError(err error) bool {
	var se *SolveError
	return errors.As(err, &se)
}

var _ errs.Coded = (*SolveError)(nil)

func degenerate(reason string) *SolveError {
	return &SolveError{Kind: DegenerateGeometry, Reason: reason}
}

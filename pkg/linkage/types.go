package linkage

import (
	"math"

	"github.com/matzehuels/linkage/pkg/geom"
)

// Target is the requested effector position in a frame centered on the base.
// Callers conventionally keep each component in [-1, 1]; the solver accepts
// any real value.
type Target struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// InUnitCube reports whether every component lies in [-1, 1].
func (t Target) InUnitCube() bool {
	return math.Abs(t.X) <= 1 && math.Abs(t.Y) <= 1 && math.Abs(t.Z) <= 1
}

// Dist is the straight-line distance from the base to the target.
func (t Target) Dist() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Layout is a solved joint configuration. A is always the origin.
type Layout struct {
	A, B, C, D, E geom.Point

	Angle1 float64 // elevation of AD
	Angle2 float64 // elevation of AB
	Angle3 float64 // azimuth of the target, not applied to the points
}

// Segment is a named rigid link between two joints.
type Segment struct {
	Name      string
	From, To  geom.Point
	FromJoint string
	ToJoint   string
}

// Length returns the distance between the segment's joints.
func (s Segment) Length() float64 { return s.From.Dist(s.To) }

// Segments returns the five links in drawing order: AD, DE, AB, BC, CD.
func (l Layout) Segments() []Segment {
	return []Segment{
		{Name: SegmentAD, From: l.A, To: l.D, FromJoint: "A", ToJoint: "D"},
		{Name: SegmentDE, From: l.D, To: l.E, FromJoint: "D", ToJoint: "E"},
		{Name: SegmentAB, From: l.A, To: l.B, FromJoint: "A", ToJoint: "B"},
		{Name: SegmentBC, From: l.B, To: l.C, FromJoint: "B", ToJoint: "C"},
		{Name: SegmentCD, From: l.C, To: l.D, FromJoint: "C", ToJoint: "D"},
	}
}

// Joints returns the joint positions keyed by name.
func (l Layout) Joints() map[string]geom.Point {
	return map[string]geom.Point{"A": l.A, "B": l.B, "C": l.C, "D": l.D, "E": l.E}
}

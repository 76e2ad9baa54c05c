package linkage

import (
	"math"

	"github.com/matzehuels/linkage/pkg/geom"
)

// Solve computes the joint layout that places the effector at t.
//
// The derivation is a fixed pipeline; every stage feeds the next and any
// failure discards the whole result:
//
//  1. lift arm: triangle A-D-E with sides AD, AE, DE gives the elevation of AD
//  2. junction: C extends the ray E→D by CD
//  3. support arm: triangles A-C-D and A-B-C give the elevation of AB
//  4. azimuth: atan(y/x), reported but not applied
//
// Reachability checks are inclusive: a target exactly AD+DE away succeeds
// with the lift arm fully extended. A target closer than |AD-DE|, or a
// junction closer than |AB-BC|, leaves a triangle that cannot close and is
// reported as DegenerateGeometry.
func Solve(cfg ArmConfig, t Target) (Layout, error) {
	a := geom.Point{}
	e := geom.Pt(math.Hypot(t.X, t.Y), t.Z)

	ae := t.Dist()
	if ae == 0 {
		return Layout{}, degenerate("target coincides with the base")
	}
	if ae > cfg.LiftReach() {
		return Layout{}, &SolveError{Kind: LiftArmUnreachable, Distance: ae, Reach: cfg.LiftReach()}
	}

	dae, ok := geom.LawOfCosines(cfg.AD, ae, cfg.DE)
	if !ok {
		return Layout{}, degenerate("lift triangle A-D-E cannot close")
	}
	elevation := math.Asin(geom.Clamp(t.Z/ae, -1, 1))
	angle1 := dae + elevation
	d := geom.Polar(a, cfg.AD, angle1)

	c, ok := geom.Extend(e, d, cfg.CD)
	if !ok {
		return Layout{}, degenerate("junction coincides with the target")
	}

	ac := a.Dist(c)
	if ac > cfg.SupportReach() {
		return Layout{}, &SolveError{Kind: SupportArmUnreachable, Distance: ac, Reach: cfg.SupportReach()}
	}
	if ac == 0 {
		return Layout{}, degenerate("support joint C coincides with the base")
	}

	cad, ok := geom.LawOfCosines(ac, cfg.AD, cfg.CD)
	if !ok {
		return Layout{}, degenerate("junction triangle A-C-D cannot close")
	}
	bac, ok := geom.LawOfCosines(cfg.AB, ac, cfg.BC)
	if !ok {
		return Layout{}, degenerate("support triangle A-B-C cannot close")
	}
	angle2 := angle1 + cad + bac
	b := geom.Polar(a, cfg.AB, angle2)

	if t.X == 0 {
		return Layout{}, degenerate("azimuth undefined for x = 0")
	}
	angle3 := math.Atan(t.Y / t.X)

	l := Layout{A: a, B: b, C: c, D: d, E: e, Angle1: angle1, Angle2: angle2, Angle3: angle3}
	if !l.finite() {
		return Layout{}, degenerate("non-finite intermediate value")
	}
	if !l.matches(cfg) {
		return Layout{}, degenerate("solved segments do not match the configured lengths")
	}
	return l, nil
}

// Forward places D and B from the two elevation angles. E, C and Angle3 are
// left zero: they depend on the target, not on the drive angles alone.
func Forward(cfg ArmConfig, angle1, angle2 float64) Layout {
	a := geom.Point{}
	return Layout{
		A:      a,
		D:      geom.Polar(a, cfg.AD, angle1),
		B:      geom.Polar(a, cfg.AB, angle2),
		Angle1: angle1,
		Angle2: angle2,
	}
}

// segmentTolerance bounds how far a solved link may stray from its
// configured length.
const segmentTolerance = 1e-6

func (l Layout) matches(cfg ArmConfig) bool {
	for _, s := range l.Segments() {
		if math.Abs(s.Length()-cfg.Length(s.Name)) > segmentTolerance {
			return false
		}
	}
	return true
}

func (l Layout) finite() bool {
	for _, p := range []geom.Point{l.B, l.C, l.D, l.E} {
		if !p.IsFinite() {
			return false
		}
	}
	return !math.IsNaN(l.Angle1) && !math.IsNaN(l.Angle2) && !math.IsNaN(l.Angle3)
}

// Package linkage solves the joint geometry of a planar five-segment linkage.
//
// # Overview
//
// The linkage has two arms that share a fixed base A and a junction D:
//
//   - the lift arm A-D-E, two segments ending in the effector E
//   - the support arm A-B-C-D, three segments bracing the lift arm
//
// Segment CD continues DE in a straight line past D, so C, D and E are always
// colinear. Given a target (x, y, z) the solver collapses the horizontal plane
// into a radial distance r = hypot(x, y), solves the 2D problem in the
// vertical plane through A and the target with E = (r, z), and reports
// every joint position plus the two elevation angles that drive the arms.
//
// # Solving
//
//	cfg := linkage.DefaultConfig()
//	l, err := linkage.Solve(cfg, linkage.Target{X: 0.8, Y: 0, Z: 0})
//	if errors.Is(err, linkage.ErrSupportArmUnreachable) {
//	    // choose another target or lengthen AB/BC
//	}
//	fmt.Println(geom.Degrees(l.Angle1), geom.Degrees(l.Angle2))
//
// [Solve] is a pure function: it reads its two value arguments, never logs and
// never retains state, so it is safe to call concurrently. Callers that share
// an [ArmConfig] across goroutines should pass a snapshot (see the config
// package).
//
// # Failure Modes
//
// A solve fails with a [*SolveError] when the lift arm cannot span the
// base-to-target distance, when the support arm cannot span the base-to-C
// distance, or when the geometry is degenerate (target at the base, a
// zero-length ray, or x = 0 for the azimuth). No partial layout is returned.
//
// # Azimuth
//
// Angle3 is the azimuth of the target about the vertical axis through A. It
// is reported alongside the planar solution but is not applied to the joint
// positions: the points always lie in the solved vertical plane.
package linkage

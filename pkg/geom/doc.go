// Package geom provides the 2D primitives used to solve and draw linkages.
//
// All values are plain float64 pairs in an x-right, y-up frame. Angles are in
// radians and measured counter-clockwise from the positive x axis.
//
// # Law of Cosines
//
// [LawOfCosines] returns the angle between two known sides of a triangle,
// opposite the third. Rounding noise just past ±1 is clamped, so a triangle
// that degenerates into a straight line (for example a fully extended arm)
// yields exactly 0 or π. Sides that cannot close at all report ok=false:
//
//	a, ok := geom.LawOfCosines(0.6, 1.1, 0.5) // 0, true: the arm is straight
//	_, ok = geom.LawOfCosines(0.6, 0.05, 0.5) // false: too short to close
//
// # Rays
//
// [Extend] continues a ray past its second point, which is how colinear
// joints are placed:
//
//	c, ok := geom.Extend(e, d, 0.2) // c lies 0.2 beyond d on the ray e→d
package geom

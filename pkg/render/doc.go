// Package render turns linkage solves into SVG figures, JSON documents and
// plain-text summaries.
//
// # Frames
//
// Every renderer consumes a [Frame]: the configuration and target that were
// solved, plus either a layout or the solve error. A failed frame is a normal
// input, not an error: renderers draw the target marker and the user message
// ("Position out of range" for unreachable targets) and omit the stale
// linkage.
//
// # Figure
//
// The SVG places the solved vertical plane on the left and a top-down target
// grid on the right. Plane coordinates map to pixels as
//
//	px = (x + 0.5) · S
//	py = (1 − (y + 0.1)) · S
//
// where S is the scale (300 by default), so the base sits near the bottom
// left third of the figure. The two drive angles are drawn as arcs from the
// horizontal around A (radius 20 for angle1, 30 for angle2).
//
// The grid is 10×10 cells of S pixels overall; the target marker is placed at
// ((x+1)/2, (y+1)/2) of the grid size measured from the top-left corner.
//
// # Styles
//
// [Simple] draws dark lines on white; [Blueprint] draws light lines on a blue
// ground. Both implement [Style].
package render

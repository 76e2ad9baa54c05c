package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/linkage/pkg/geom"
	"github.com/matzehuels/linkage/pkg/linkage"
)

// RenderText writes a plain-text summary of a frame: the target, every
// joint position, and the three angles in degrees.
func RenderText(f Frame) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "target  (%.4f, %.4f, %.4f)\n", f.Target.X, f.Target.Y, f.Target.Z)
	if !f.OK() {
		fmt.Fprintf(&b, "status  %s\n", f.Message())
		fmt.Fprintf(&b, "reason  %s\n", f.Err.Error())
		return []byte(b.String())
	}
	joints := f.Layout.Joints()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		p := joints[name]
		fmt.Fprintf(&b, "%-7s (%.4f, %.4f)\n", name, p.X, p.Y)
	}
	for _, a := range angles(f.Layout) {
		fmt.Fprintf(&b, "%-7s %.2f°\n", a.name, geom.Degrees(a.rad))
	}
	return []byte(b.String())
}

// Cell is one sample of a reachability sweep.
type Cell int

const (
	CellReachable Cell = iota
	CellLiftUnreachable
	CellSupportUnreachable
	CellDegenerate
)

// CellFor classifies a solve result.
func CellFor(err error) Cell {
	switch {
	case err == nil:
		return CellReachable
	case errors.Is(err, linkage.ErrLiftArmUnreachable):
		return CellLiftUnreachable
	case errors.Is(err, linkage.ErrSupportArmUnreachable):
		return CellSupportUnreachable
	}
	return CellDegenerate
}

// Rune is the character drawn for the cell in [RenderGrid].
func (c Cell) Rune() rune {
	switch c {
	case CellReachable:
		return '#'
	case CellLiftUnreachable:
		return '.'
	case CellSupportUnreachable:
		return '+'
	}
	return '?'
}

// Grid is a reachability sweep over the x/y plane at a fixed height.
// Cells[row][col] samples y from +1 (row 0) down to -1 and x from -1 to +1.
type Grid struct {
	Z     float64
	Cells [][]Cell
}

// GridCoord returns the coordinate of sample i of n across [-1, 1].
func GridCoord(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return -1 + 2*float64(i)/float64(n-1)
}

// Count returns how many cells hold c.
func (g Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}
	return n
}

// RenderGrid draws a sweep as rows of characters with a legend.
func RenderGrid(g Grid) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "z = %.2f\n", g.Z)
	for _, row := range g.Cells {
		for _, c := range row {
			b.WriteRune(c.Rune())
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%c reachable  %c lift arm  %c support arm  %c degenerate\n",
		CellReachable.Rune(), CellLiftUnreachable.Rune(), CellSupportUnreachable.Rune(), CellDegenerate.Rune())
	return []byte(b.String())
}

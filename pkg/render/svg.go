package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/linkage/pkg/geom"
	"github.com/matzehuels/linkage/pkg/linkage"
)

const (
	gridGap       = 20.0 // space between the plane view and the grid
	readoutHeight = 60.0 // band below the views for the angle readout
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style   Style
	figure  Figure
	grid    bool
	readout bool
}

// WithStyle selects the visual style. The default is [Simple].
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithScale sets the pixels per unit length of the plane view and the grid.
func WithScale(scale float64) SVGOption {
	return func(r *svgRenderer) { r.figure = NewFigure(scale) }
}

// WithoutGrid omits the top-down target grid.
func WithoutGrid() SVGOption { return func(r *svgRenderer) { r.grid = false } }

// WithoutReadout omits the angle readout band.
func WithoutReadout() SVGOption { return func(r *svgRenderer) { r.readout = false } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: Simple, figure: NewFigure(DefaultScale), grid: true, readout: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = Simple
	}
	return r
}

// RenderSVG draws f. A failed frame draws the grid marker and the failure
// message instead of the linkage.
func RenderSVG(f Frame, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	fig := r.figure

	width, height := fig.Width(), fig.Height()
	if r.grid {
		width += gridGap + fig.Scale
	}
	if r.readout {
		height += readoutHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	r.style.RenderDefs(&buf, width, height)

	if f.OK() {
		renderLinkage(&buf, r.style, fig, f.Layout)
	} else {
		r.style.RenderText(&buf, TextShape{
			ID: "error", Class: "error",
			X: fig.Width() / 4, Y: fig.Height() / 2,
			Text: f.Message(),
		})
	}

	if r.grid {
		left, top := GridPosition(f.Target, fig.Scale)
		r.style.RenderGrid(&buf, GridShape{
			X: fig.Width() + gridGap, Y: 0, Size: fig.Scale,
			Cells:   gridCells,
			MarkerX: left, MarkerY: top, MarkerR: markerRadius,
		})
	}

	if r.readout {
		renderReadout(&buf, r.style, fig, f)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderLinkage(buf *bytes.Buffer, s Style, fig Figure, l linkage.Layout) {
	for _, seg := range l.Segments() {
		arm := ArmSupport
		if seg.Name == linkage.SegmentAD || seg.Name == linkage.SegmentDE {
			arm = ArmLift
		}
		s.RenderSegment(buf, SegmentShape{
			ID:  "seg-" + strings.ToLower(seg.Name),
			Arm: arm,
			X1:  fig.X(seg.From.X), Y1: fig.Y(seg.From.Y),
			X2: fig.X(seg.To.X), Y2: fig.Y(seg.To.Y),
		})
	}

	s.RenderArc(buf, ArcShape{ID: "angle1", Path: fig.ArcPath(angle1Radius, l.Angle1)})
	s.RenderArc(buf, ArcShape{ID: "angle2", Path: fig.ArcPath(angle2Radius, l.Angle2)})

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		p := l.Joints()[name]
		s.RenderJoint(buf, JointShape{Name: name, X: fig.X(p.X), Y: fig.Y(p.Y)})
	}
}

func renderReadout(buf *bytes.Buffer, s Style, fig Figure, f Frame) {
	y := fig.Height() + 20
	target := fmt.Sprintf("target (%.2f, %.2f, %.2f)", f.Target.X, f.Target.Y, f.Target.Z)
	s.RenderText(buf, TextShape{ID: "val-target", Class: "readout", X: 10, Y: y, Text: target})
	if !f.OK() {
		return
	}
	for i, a := range angles(f.Layout) {
		s.RenderText(buf, TextShape{
			ID:    "val-" + a.name,
			Class: "readout",
			X:     10 + float64(i)*fig.Width()/3, Y: y + 24,
			Text: fmt.Sprintf("%s %.2f°", a.name, geom.Degrees(a.rad)),
		})
	}
}

type namedAngle struct {
	name string
	rad  float64
}

func angles(l linkage.Layout) []namedAngle {
	return []namedAngle{{"angle1", l.Angle1}, {"angle2", l.Angle2}, {"angle3", l.Angle3}}
}

package render

import (
	"bytes"
	"fmt"
	"html"

	errs "github.com/matzehuels/linkage/pkg/errors"
)

// Style defines the visual appearance of a figure.
type Style interface {
	// Name identifies the style on the command line and in JSON output.
	Name() string
	// RenderDefs writes the background and any shared SVG definitions.
	RenderDefs(buf *bytes.Buffer, w, h float64)
	// RenderSegment writes one rigid link.
	RenderSegment(buf *bytes.Buffer, s SegmentShape)
	// RenderJoint writes a joint marker and its label.
	RenderJoint(buf *bytes.Buffer, j JointShape)
	// RenderArc writes an angle arc.
	RenderArc(buf *bytes.Buffer, a ArcShape)
	// RenderGrid writes the top-down target grid and marker.
	RenderGrid(buf *bytes.Buffer, g GridShape)
	// RenderText writes a label or message.
	RenderText(buf *bytes.Buffer, t TextShape)
}

// Arm names used to color segments.
const (
	ArmLift    = "lift"
	ArmSupport = "support"
)

// SegmentShape is a link in pixel coordinates.
type SegmentShape struct {
	ID             string
	Arm            string // ArmLift or ArmSupport
	X1, Y1, X2, Y2 float64
}

// JointShape is a joint in pixel coordinates.
type JointShape struct {
	Name string
	X, Y float64
}

// ArcShape is an angle arc as an SVG path.
type ArcShape struct {
	ID   string
	Path string
}

// GridShape is the target grid panel in pixel coordinates.
type GridShape struct {
	X, Y, Size       float64
	Cells            int
	MarkerX, MarkerY float64
	MarkerR          float64
}

// TextShape is a piece of text anchored at X, Y.
type TextShape struct {
	ID    string
	Class string // "label", "readout" or "error"
	X, Y  float64
	Text  string
}

// Style names.
const (
	StyleSimple    = "simple"
	StyleBlueprint = "blueprint"
)

type palette struct {
	background string
	lift       string
	support    string
	joint      string
	arc        string
	grid       string
	marker     string
	text       string
	errText    string
}

type paletteStyle struct {
	name string
	p    palette
}

var (
	// Simple draws dark lines on white.
	Simple Style = paletteStyle{name: StyleSimple, p: palette{
		background: "white",
		lift:       "#333",
		support:    "#2a7f9e",
		joint:      "#333",
		arc:        "#e0a030",
		grid:       "#ccc",
		marker:     "#c0392b",
		text:       "#333",
		errText:    "#c0392b",
	}}

	// Blueprint draws light lines on a blue ground.
	Blueprint Style = paletteStyle{name: StyleBlueprint, p: palette{
		background: "#1d3f72",
		lift:       "#f5f7fa",
		support:    "#9cc9f0",
		joint:      "#f5f7fa",
		arc:        "#ffd479",
		grid:       "#4a6fa5",
		marker:     "#ffd479",
		text:       "#f5f7fa",
		errText:    "#ffb3a7",
	}}
)

// StyleByName returns the style with the given name.
func StyleByName(name string) (Style, error) {
	switch name {
	case StyleSimple, "":
		return Simple, nil
	case StyleBlueprint:
		return Blueprint, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidStyle, "invalid style: %s (must be 'simple' or 'blueprint')", name)
}

func (s paletteStyle) Name() string { return s.name }

func (s paletteStyle) RenderDefs(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <rect class="background" x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		w, h, s.p.background)
}

func (s paletteStyle) RenderSegment(buf *bytes.Buffer, seg SegmentShape) {
	color, width := s.p.support, 2.0
	if seg.Arm == ArmLift {
		color, width = s.p.lift, 3.0
	}
	fmt.Fprintf(buf, `  <line id="%s" class="segment %s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		html.EscapeString(seg.ID), html.EscapeString(seg.Arm), seg.X1, seg.Y1, seg.X2, seg.Y2, color, width)
}

func (s paletteStyle) RenderJoint(buf *bytes.Buffer, j JointShape) {
	fmt.Fprintf(buf, `  <circle id="joint-%s" class="joint" cx="%.2f" cy="%.2f" r="3" fill="%s"/>`+"\n",
		html.EscapeString(j.Name), j.X, j.Y, s.p.joint)
	fmt.Fprintf(buf, `  <text class="joint-label" x="%.2f" y="%.2f" font-family="sans-serif" font-size="11" fill="%s">%s</text>`+"\n",
		j.X+5, j.Y-5, s.p.text, html.EscapeString(j.Name))
}

func (s paletteStyle) RenderArc(buf *bytes.Buffer, a ArcShape) {
	fmt.Fprintf(buf, `  <path id="%s" class="angle" d="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		html.EscapeString(a.ID), a.Path, s.p.arc)
}

func (s paletteStyle) RenderGrid(buf *bytes.Buffer, g GridShape) {
	step := g.Size / float64(g.Cells)
	fmt.Fprintf(buf, `  <g id="grid" transform="translate(%.2f %.2f)">`+"\n", g.X, g.Y)
	fmt.Fprintf(buf, `    <rect x="0" y="0" width="%.2f" height="%.2f" fill="none" stroke="%s"/>`+"\n", g.Size, g.Size, s.p.grid)
	for i := 1; i < g.Cells; i++ {
		v := float64(i) * step
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="0" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n", v, v, g.Size, s.p.grid)
		fmt.Fprintf(buf, `    <line x1="0" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n", v, g.Size, v, s.p.grid)
	}
	fmt.Fprintf(buf, `    <circle id="target" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n", g.MarkerX, g.MarkerY, g.MarkerR, s.p.marker)
	buf.WriteString("  </g>\n")
}

func (s paletteStyle) RenderText(buf *bytes.Buffer, t TextShape) {
	color, size := s.p.text, 12
	if t.Class == "error" {
		color, size = s.p.errText, 16
	}
	id := ""
	if t.ID != "" {
		id = fmt.Sprintf(` id="%s"`, html.EscapeString(t.ID))
	}
	fmt.Fprintf(buf, `  <text%s class="%s" x="%.2f" y="%.2f" font-family="sans-serif" font-size="%d" fill="%s">%s</text>`+"\n",
		id, html.EscapeString(t.Class), t.X, t.Y, size, color, html.EscapeString(t.Text))
}

package render

import (
	"fmt"
	"math"

	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/linkage"
)

// Frame is one solve as seen by the renderers.
type Frame struct {
	Config linkage.ArmConfig
	Target linkage.Target
	Layout linkage.Layout
	Err    error // non-nil when the solve failed
}

// OK reports whether the frame holds a layout.
func (f Frame) OK() bool { return f.Err == nil }

// Message is the user-facing text for a failed frame, empty on success.
func (f Frame) Message() string {
	if f.Err == nil {
		return ""
	}
	return errs.UserMessage(f.Err)
}

// Figure maps solve-plane coordinates to SVG pixels.
type Figure struct {
	Scale   float64 // pixels per unit length
	OriginX float64 // horizontal offset of A, in units
	OriginY float64 // vertical offset of A, in units
}

// Figure defaults.
const (
	DefaultScale   = 300.0
	DefaultOriginX = 0.5
	DefaultOriginY = 0.1

	angle1Radius = 20.0
	angle2Radius = 30.0
	gridCells    = 10
	markerRadius = 5.0
)

// NewFigure returns the default figure transform at the given scale.
func NewFigure(scale float64) Figure {
	if scale <= 0 {
		scale = DefaultScale
	}
	return Figure{Scale: scale, OriginX: DefaultOriginX, OriginY: DefaultOriginY}
}

// X maps a plane x coordinate to pixels.
func (g Figure) X(x float64) float64 { return (x + g.OriginX) * g.Scale }

// Y maps a plane y coordinate to pixels; y grows upward in the plane and
// downward on screen.
func (g Figure) Y(y float64) float64 { return (1 - (y + g.OriginY)) * g.Scale }

// Width is the pixel width of the plane view.
func (g Figure) Width() float64 { return g.Scale * 1.5 }

// Height is the pixel height of the plane view.
func (g Figure) Height() float64 { return g.Scale }

// GridPosition returns the marker position for a target in a grid of size
// px, measured from the top-left corner.
func GridPosition(t linkage.Target, size float64) (left, top float64) {
	return (t.X + 1) / 2 * size, (t.Y + 1) / 2 * size
}

// ArcPath returns the SVG path of an angle arc of radius r drawn from the
// horizontal around the figure origin. Positive angles open upward.
func (g Figure) ArcPath(r, angle float64) string {
	ox, oy := g.X(0), g.Y(0)
	a := math.Mod(angle, 2*math.Pi)
	sweep, large := 0, 0
	if a < 0 {
		sweep = 1
	}
	if math.Abs(a) > math.Pi {
		large = 1
	}
	ex, ey := ox+r*math.Cos(angle), oy-r*math.Sin(angle)
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d %d %.2f %.2f",
		ox, oy, ox+r, oy, r, r, large, sweep, ex, ey)
}

package render

import (
	"math"
	"testing"

	"github.com/matzehuels/linkage/pkg/linkage"
)

func TestFigureTransform(t *testing.T) {
	g := NewFigure(300)
	if got := g.X(0); got != 150 {
		t.Errorf("X(0) = %v, want 150", got)
	}
	if got := g.Y(0); got != 270 {
		t.Errorf("Y(0) = %v, want 270", got)
	}
	if got := g.Y(0.9); math.Abs(got) > 1e-9 {
		t.Errorf("Y(0.9) = %v, want 0", got)
	}
	if g.Width() != 450 || g.Height() != 300 {
		t.Errorf("size = %vx%v, want 450x300", g.Width(), g.Height())
	}
}

func TestNewFigureDefaultScale(t *testing.T) {
	for _, s := range []float64{0, -10} {
		if got := NewFigure(s).Scale; got != DefaultScale {
			t.Errorf("NewFigure(%v).Scale = %v, want %v", s, got, DefaultScale)
		}
	}
}

func TestGridPosition(t *testing.T) {
	tests := []struct {
		target    linkage.Target
		left, top float64
	}{
		{linkage.Target{X: 0, Y: 0}, 150, 150},
		{linkage.Target{X: -1, Y: -1}, 0, 0},
		{linkage.Target{X: 1, Y: 1}, 300, 300},
		{linkage.Target{X: 0.5, Y: -0.5, Z: 0.9}, 225, 75},
	}
	for _, tt := range tests {
		left, top := GridPosition(tt.target, 300)
		if left != tt.left || top != tt.top {
			t.Errorf("GridPosition(%+v) = (%v, %v), want (%v, %v)", tt.target, left, top, tt.left, tt.top)
		}
	}
}

func TestArcPath(t *testing.T) {
	g := NewFigure(300)
	tests := []struct {
		name  string
		angle float64
		want  string
	}{
		{"quarter up", math.Pi / 2, "M 150.00 270.00 L 170.00 270.00 A 20.00 20.00 0 0 0 150.00 250.00"},
		{"quarter down", -math.Pi / 2, "M 150.00 270.00 L 170.00 270.00 A 20.00 20.00 0 0 1 150.00 290.00"},
		{"large arc", 3 * math.Pi / 2, "M 150.00 270.00 L 170.00 270.00 A 20.00 20.00 0 1 0 150.00 290.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ArcPath(20, tt.angle); got != tt.want {
				t.Errorf("ArcPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrameMessage(t *testing.T) {
	cfg := linkage.DefaultConfig()
	target := linkage.Target{X: 1, Y: 1, Z: 1}
	_, err := linkage.Solve(cfg, target)
	f := Frame{Config: cfg, Target: target, Err: err}
	if f.OK() {
		t.Fatal("OK() = true for unreachable target")
	}
	if got := f.Message(); got != linkage.OutOfRangeMessage {
		t.Errorf("Message() = %q, want %q", got, linkage.OutOfRangeMessage)
	}
	if got := (Frame{}).Message(); got != "" {
		t.Errorf("Message() on success = %q, want empty", got)
	}
}

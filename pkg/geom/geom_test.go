package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	assert.Equal(t, Pt(4, 2), p.Add(q))
	assert.Equal(t, Pt(2, 6), p.Sub(q))
	assert.Equal(t, Pt(1.5, 2), p.Mul(0.5))
	assert.Equal(t, 5.0, p.Len())
	assert.InDelta(t, math.Sqrt(40), p.Dist(q), eps)
}

func TestNormalize(t *testing.T) {
	n := Pt(0, -3).Normalize()
	assert.InDelta(t, 0, n.X, eps)
	assert.InDelta(t, -1, n.Y, eps)

	assert.Equal(t, Point{}, Point{}.Normalize(), "zero vector stays zero")
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name   string
		origin Point
		dist   float64
		angle  float64
		want   Point
	}{
		{"east", Pt(0, 0), 2, 0, Pt(2, 0)},
		{"north", Pt(0, 0), 1, math.Pi / 2, Pt(0, 1)},
		{"offset origin", Pt(1, 1), 1, math.Pi, Pt(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Polar(tt.origin, tt.dist, tt.angle)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
			assert.InDelta(t, tt.dist, tt.origin.Dist(got), eps)
		})
	}
}

func TestExtend(t *testing.T) {
	c, ok := Extend(Pt(1, 0), Pt(0.5, 0), 0.25)
	assert.True(t, ok)
	assert.InDelta(t, 0.25, c.X, eps)
	assert.InDelta(t, 0, c.Y, eps)

	// The extension is colinear with the ray.
	e, d := Pt(0.8, 0.1), Pt(0.2, 0.5)
	c, ok = Extend(e, d, 0.2)
	assert.True(t, ok)
	assert.InDelta(t, 0.2, d.Dist(c), eps)
	cross := (d.X-e.X)*(c.Y-e.Y) - (d.Y-e.Y)*(c.X-e.X)
	assert.InDelta(t, 0, cross, eps)
}

func TestExtendCoincident(t *testing.T) {
	p := Pt(0.3, 0.3)
	got, ok := Extend(p, p, 1)
	assert.False(t, ok)
	assert.Equal(t, p, got)
}

func TestLawOfCosines(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    float64
	}{
		{"right angle", 3, 4, 5, math.Pi / 2},
		{"equilateral", 1, 1, 1, math.Pi / 3},
		{"straight line", 0.5, 0.75, 0.25, 0},
		{"folded", 1, 1, 2, math.Pi},
		{"zero opposite side", 1, 1, 0, 0},
		{"rounding past folded", 1, 1, 2 + 1e-12, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LawOfCosines(tt.a, tt.b, tt.c)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLawOfCosinesCannotClose(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"third side too long", 1, 1, 3},
		{"third side too short", 0.6, 0.05, 0.5},
		{"zero first side", 0, 1, 1},
		{"zero second side", 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LawOfCosines(tt.a, tt.b, tt.c)
			assert.False(t, ok)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestLawOfCosinesBoundaryIsExactlyZero(t *testing.T) {
	if got, ok := LawOfCosines(0.5, 0.75, 0.25); !ok || got != 0 {
		t.Errorf("LawOfCosines on a straight triangle = %v, %v, want exactly 0", got, ok)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -1.0, Clamp(-1.0000001, -1, 1))
	assert.Equal(t, 1.0, Clamp(1.0000001, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
	assert.True(t, math.IsNaN(Clamp(math.NaN(), -1, 1)))
}

func TestDegrees(t *testing.T) {
	assert.InDelta(t, 180, Degrees(math.Pi), eps)
	assert.InDelta(t, -90, Degrees(-math.Pi/2), eps)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Pt(1, 2).IsFinite())
	assert.False(t, Pt(math.NaN(), 0).IsFinite())
	assert.False(t, Pt(0, math.Inf(1)).IsFinite())
}

package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/linkage/pkg/linkage"
)

func solvedFrame(t *testing.T, target linkage.Target) Frame {
	t.Helper()
	cfg := linkage.DefaultConfig()
	l, err := linkage.Solve(cfg, target)
	return Frame{Config: cfg, Target: target, Layout: l, Err: err}
}

func TestRenderSVG(t *testing.T) {
	f := solvedFrame(t, linkage.Target{X: 0.8})
	if !f.OK() {
		t.Fatalf("solve failed: %v", f.Err)
	}
	svg := string(RenderSVG(f))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output is not a single svg element")
	}
	for _, id := range []string{"seg-ad", "seg-de", "seg-ab", "seg-bc", "seg-cd", "angle1", "angle2", "grid", "target", "val-angle3"} {
		if !strings.Contains(svg, `id="`+id+`"`) {
			t.Errorf("missing element %q", id)
		}
	}
	if strings.Contains(svg, linkage.OutOfRangeMessage) {
		t.Error("successful frame shows out-of-range message")
	}
}

func TestRenderSVGFailure(t *testing.T) {
	f := solvedFrame(t, linkage.Target{X: 1, Y: 1, Z: 1})
	if f.OK() {
		t.Fatal("expected unreachable target")
	}
	svg := string(RenderSVG(f))

	if !strings.Contains(svg, linkage.OutOfRangeMessage) {
		t.Error("missing out-of-range message")
	}
	if strings.Contains(svg, `id="seg-ad"`) || strings.Contains(svg, `id="angle1"`) {
		t.Error("failed frame still draws the linkage")
	}
	if !strings.Contains(svg, `id="target"`) {
		t.Error("failed frame must still draw the grid marker")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	f := solvedFrame(t, linkage.Target{X: 0.8})

	t.Run("without grid", func(t *testing.T) {
		svg := string(RenderSVG(f, WithoutGrid(), WithoutReadout()))
		if strings.Contains(svg, `id="grid"`) {
			t.Error("grid drawn despite WithoutGrid")
		}
		if !strings.Contains(svg, `viewBox="0 0 450.0 300.0"`) {
			t.Errorf("unexpected viewBox in %q", svg[:120])
		}
	})

	t.Run("scale", func(t *testing.T) {
		svg := string(RenderSVG(f, WithScale(100), WithoutGrid(), WithoutReadout()))
		if !strings.Contains(svg, `viewBox="0 0 150.0 100.0"`) {
			t.Errorf("unexpected viewBox in %q", svg[:120])
		}
	})

	t.Run("blueprint", func(t *testing.T) {
		svg := string(RenderSVG(f, WithStyle(Blueprint)))
		if !strings.Contains(svg, "#1d3f72") {
			t.Error("blueprint background missing")
		}
	})

	t.Run("nil style", func(t *testing.T) {
		svg := string(RenderSVG(f, WithStyle(nil)))
		if !strings.Contains(svg, `fill="white"`) {
			t.Error("nil style should fall back to simple")
		}
	})
}

func TestStyleByName(t *testing.T) {
	for _, name := range []string{"", StyleSimple, StyleBlueprint} {
		if _, err := StyleByName(name); err != nil {
			t.Errorf("StyleByName(%q) error: %v", name, err)
		}
	}
	if _, err := StyleByName("handdrawn"); err == nil {
		t.Error("StyleByName(handdrawn) should fail")
	}
}

func TestRenderSVGEscapesMessage(t *testing.T) {
	f := Frame{Err: stubErr("<bad>")}
	svg := string(RenderSVG(f))
	if strings.Contains(svg, "<bad>") {
		t.Error("message not escaped")
	}
	if !strings.Contains(svg, "&lt;bad&gt;") {
		t.Error("escaped message missing")
	}
}

type stubErr string

func (e stubErr) Error() string { return string(e) }

package render_test

import (
	"fmt"

	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/render"
)

func ExampleRenderText() {
	cfg := linkage.DefaultConfig()
	target := linkage.Target{X: 1, Y: 1, Z: 1}
	l, err := linkage.Solve(cfg, target)
	fmt.Print(string(render.RenderText(render.Frame{Config: cfg, Target: target, Layout: l, Err: err})))
	// Output:
	// target  (1.0000, 1.0000, 1.0000)
	// status  Position out of range
	// reason  lift arm unreachable: target distance 1.732 exceeds AD+DE = 1.1
}

package linkage_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/linkage/pkg/geom"
	"github.com/matzehuels/linkage/pkg/linkage"
)

func ExampleSolve() {
	cfg := linkage.ArmConfig{AD: 0.5, DE: 0.25, AB: 0.25, BC: 0.25, CD: 0.25}

	// Fully extended lift arm: the target sits exactly AD+DE from the base.
	l, err := linkage.Solve(cfg, linkage.Target{X: 0.75})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("angle1: %.2f°\n", geom.Degrees(l.Angle1))
	fmt.Printf("angle2: %.2f°\n", geom.Degrees(l.Angle2))
	fmt.Printf("B: (%.4f, %.4f)\n", l.B.X, l.B.Y)
	// Output:
	// angle1: 0.00°
	// angle2: 60.00°
	// B: (0.1250, 0.2165)
}

func ExampleSolve_unreachable() {
	_, err := linkage.Solve(linkage.DefaultConfig(), linkage.Target{X: 0.5})

	fmt.Println(errors.Is(err, linkage.ErrSupportArmUnreachable))
	fmt.Println(err)
	// Output:
	// true
	// support arm unreachable: distance to C 0.7376 exceeds AB+BC = 0.7
}

package pipeline

import (
	"context"
	"time"

	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/observability"
	"github.com/matzehuels/linkage/pkg/render"
)

// MaxSweepSize bounds the side length of a sweep.
const MaxSweepSize = 201

// Sweep solves an n×n grid of targets spanning [-1, 1] in x and y at height
// z. Row 0 is y = +1 so the grid prints the way the plane is seen from
// above. Cancellation is checked between rows; a cancelled sweep returns
// ctx.Err() and no grid.
//
// Sweeps bypass the memo: each target is visited once.
func (r *Runner) Sweep(ctx context.Context, cfg linkage.ArmConfig, z float64, n int) (render.Grid, error) {
	if n < 1 || n > MaxSweepSize {
		return render.Grid{}, errs.New(errs.ErrCodeInvalidInput, "grid size must be between 1 and %d, got %d", MaxSweepSize, n)
	}
	if err := validateInputs(cfg, linkage.Target{Z: z}); err != nil {
		return render.Grid{}, err
	}

	hooks := observability.Solve()
	hooks.OnSweepStart(ctx, z, n)
	start := time.Now()

	g := render.Grid{Z: z, Cells: make([][]render.Cell, n)}
	for i := range n {
		if err := ctx.Err(); err != nil {
			hooks.OnSweepComplete(ctx, z, n, 0, time.Since(start), err)
			return render.Grid{}, err
		}
		y := -render.GridCoord(i, n)
		row := make([]render.Cell, n)
		for j := range n {
			_, err := linkage.Solve(cfg, linkage.Target{X: render.GridCoord(j, n), Y: y, Z: z})
			row[j] = render.CellFor(err)
		}
		g.Cells[i] = row
	}

	reachable := g.Count(render.CellReachable)
	elapsed := time.Since(start)
	hooks.OnSweepComplete(ctx, z, n, reachable, elapsed, nil)
	r.Logger.Debug("swept grid", "z", z, "size", n, "reachable", reachable, "duration", elapsed)
	return g, nil
}

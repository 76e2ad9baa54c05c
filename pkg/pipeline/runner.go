package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/observability"
	"github.com/matzehuels/linkage/pkg/render"
)

// Runner executes solves and renders them.
//
// The Runner holds no solve state besides its memo, so multiple goroutines
// can share one Runner.
type Runner struct {
	Memo   *Memo // nil disables memoization
	Logger *log.Logger
}

// NewRunner creates a runner. A nil memo disables memoization; a nil logger
// uses the default logger.
func NewRunner(memo *Memo, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Memo: memo, Logger: logger}
}

// Solve validates its inputs and solves t against cfg.
//
// Invalid inputs (non-positive or non-finite lengths, non-finite
// coordinates) return a coded error with no layout. An unreachable target
// returns the *linkage.SolveError unchanged.
func (r *Runner) Solve(ctx context.Context, cfg linkage.ArmConfig, t linkage.Target) (linkage.Layout, error) {
	l, _, err := r.solve(ctx, cfg, t)
	return l, err
}

func (r *Runner) solve(ctx context.Context, cfg linkage.ArmConfig, t linkage.Target) (linkage.Layout, bool, error) {
	if err := ctx.Err(); err != nil {
		return linkage.Layout{}, false, err
	}
	if err := validateInputs(cfg, t); err != nil {
		return linkage.Layout{}, false, err
	}

	key := keyFor(cfg, t)
	if e, ok := r.Memo.get(ctx, key); ok {
		r.Logger.Debug("solve memo hit", "x", t.X, "y", t.Y, "z", t.Z)
		return e.layout, true, e.err
	}

	hooks := observability.Solve()
	hooks.OnSolveStart(ctx, t.X, t.Y, t.Z)
	start := time.Now()
	l, err := linkage.Solve(cfg, t)
	elapsed := time.Since(start)
	hooks.OnSolveComplete(ctx, t.X, t.Y, t.Z, elapsed, err)

	r.Memo.add(key, memoEntry{layout: l, err: err})

	if err != nil {
		r.Logger.Debug("target unreachable", "x", t.X, "y", t.Y, "z", t.Z, "reason", err)
	} else {
		r.Logger.Debug("solved", "x", t.X, "y", t.Y, "z", t.Z, "duration", elapsed)
	}
	return l, false, err
}

func validateInputs(cfg linkage.ArmConfig, t linkage.Target) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, c := range []struct {
		axis string
		v    float64
	}{{"x", t.X}, {"y", t.Y}, {"z", t.Z}} {
		if err := errs.ValidateCoordinate(c.axis, c.v); err != nil {
			return err
		}
	}
	return nil
}

// Execute solves t and renders the outcome in every requested format.
//
// The returned error is non-nil only for invalid inputs, cancellation or a
// render failure; an unreachable target produces a Result whose Frame
// carries the solve error.
func (r *Runner) Execute(ctx context.Context, cfg linkage.ArmConfig, t linkage.Target, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	solveStart := time.Now()
	l, hit, err := r.solve(ctx, cfg, t)
	if err != nil && !linkage.IsSolveError(err) {
		return nil, err
	}

	result := &Result{
		Frame:   render.Frame{Config: cfg, Target: t, Layout: l, Err: err},
		MemoHit: hit,
	}
	result.Stats.SolveTime = time.Since(solveStart)

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result.Frame, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"ok", result.OK(),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Render draws f in every format listed in opts.
func (r *Runner) Render(ctx context.Context, f render.Frame, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err := renderFormats(f, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(f render.Frame, opts Options) (map[string][]byte, error) {
	style, err := render.StyleByName(opts.Style)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []render.SVGOption{render.WithStyle(style), render.WithScale(opts.Scale)}
			if opts.NoGrid {
				svgOpts = append(svgOpts, render.WithoutGrid())
			}
			artifacts[format] = render.RenderSVG(f, svgOpts...)
		case FormatJSON:
			data, err := render.RenderJSON(f, render.WithJSONStyle(style.Name()), render.WithJSONScale(opts.Scale))
			if err != nil {
				return nil, errs.Wrap(errs.ErrCodeInternal, err, "failed to render json")
			}
			artifacts[format] = data
		case FormatText:
			artifacts[format] = render.RenderText(f)
		}
	}
	return artifacts, nil
}

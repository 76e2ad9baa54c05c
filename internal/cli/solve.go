package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	target linkage.Target
	sets   []string // segment overrides, e.g. "ad=0.7"
	json   bool     // print the JSON document instead of the table
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one target and print joints and angles",
		Long: `Solve places every joint for the target (x, y, z) and prints the joint
positions in the arm plane together with angle1 (elevation of AD), angle2
(elevation of AB) and angle3 (base azimuth), all in degrees.

An unreachable target prints "Position out of range" and exits with status 2.`,
		Example: `  linkage solve --x 0.8
  linkage solve --x 0.3 --y 0.4 --z 0.5 --set ad=0.7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), opts)
		},
	}

	targetFlags(cmd, &opts.target)
	setFlag(cmd, &opts.sets)
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	settings, _, err := c.loadSettings(opts.sets)
	if err != nil {
		return err
	}
	warnOutsideCube(logger, opts.target)

	if opts.json {
		res, err := c.newRunner().Execute(ctx, settings.Arm, opts.target, pipeline.Options{
			Formats: []string{pipeline.FormatJSON},
			Scale:   settings.Render.Scale,
		})
		if err != nil {
			return err
		}
		if _, err := stdout.Write(res.Artifacts[pipeline.FormatJSON]); err != nil {
			return err
		}
		printNewline()
		if !res.OK() {
			return &ExitError{Code: exitUnreachable}
		}
		return nil
	}

	l, err := c.newRunner().Solve(ctx, settings.Arm, opts.target)
	printKeyValue("target", formatTarget(opts.target))
	if err != nil {
		return reportSolveError(err)
	}
	printNewline()
	printTitle("Layout")
	printLayout(l)
	return nil
}

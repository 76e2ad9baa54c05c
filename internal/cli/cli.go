// Package cli implements the linkage command-line interface.
//
// Commands share one [CLI] value holding the logger, the --config flag and
// a solve memo. Loggers also travel on the command context so helpers can
// reach them without a *CLI.
//
// # Commands
//
//   - solve: solve one target and print joints and angles
//   - render: write SVG, JSON or text artifacts for a target
//   - grid: print a reachability map for a fixed height
//   - interactive: adjust the target and segment lengths in a TUI
//   - config: show or initialize the settings file
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkage/pkg/buildinfo"
	"github.com/matzehuels/linkage/pkg/config"
	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/pipeline"
)

const appName = "linkage"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ExitError asks main to exit with Code without printing anything further;
// the command has already reported the problem.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// exitUnreachable is the status for a target the arm cannot reach.
const exitUnreachable = 2

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string

	memoOnce sync.Once
	memo     *pipeline.Memo
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Solve and draw a five-segment robot arm",
		Long: `linkage solves the inverse kinematics of a planar five-segment arm: given a
target point it places every joint, reports the two drive angles and the base
azimuth, or explains why the target is out of range.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug(buildinfo.Short(), "command", cmd.CommandPath())
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default $"+config.EnvPath+" or ~/.config/linkage/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner returns a pipeline runner sharing the CLI's memo.
func (c *CLI) newRunner() *pipeline.Runner {
	c.memoOnce.Do(func() {
		m, err := pipeline.NewMemo(pipeline.DefaultMemoSize)
		if err != nil {
			c.Logger.Warn("solve memo disabled", "err", err)
			return
		}
		c.memo = m
	})
	return pipeline.NewRunner(c.memo, c.Logger)
}

// loadSettings reads the settings file and applies --set overrides.
func (c *CLI) loadSettings(sets []string) (config.File, string, error) {
	path, err := config.Path(c.configPath)
	if err != nil {
		return config.File{}, "", err
	}
	f, found, err := config.LoadOrDefault(path)
	if err != nil {
		return config.File{}, path, err
	}
	if found {
		c.Logger.Debug("loaded settings", "path", path)
	} else {
		if c.configPath != "" {
			return config.File{}, path, errs.New(errs.ErrCodeFileNotFound, "settings file not found: %s", path)
		}
		c.Logger.Debug("no settings file, using defaults", "path", path)
	}

	arm, err := config.Apply(f.Arm, sets)
	if err != nil {
		return config.File{}, path, err
	}
	f.Arm = arm
	return f, path, nil
}

// targetFlags binds --x, --y and --z.
func targetFlags(cmd *cobra.Command, t *linkage.Target) {
	cmd.Flags().Float64Var(&t.X, "x", 0, "target x (horizontal, across the base)")
	cmd.Flags().Float64Var(&t.Y, "y", 0, "target y (horizontal, away from the base)")
	cmd.Flags().Float64Var(&t.Z, "z", 0, "target z (height)")
}

// setFlag binds the repeatable --set segment=length flag.
func setFlag(cmd *cobra.Command, sets *[]string) {
	cmd.Flags().StringArrayVar(sets, "set", nil, "override a segment length, e.g. --set ad=0.7 (repeatable)")
}

// warnOutsideCube logs when a target leaves the conventional unit cube.
func warnOutsideCube(l *log.Logger, t linkage.Target) {
	if !t.InUnitCube() {
		l.Warn("target outside [-1, 1]³", "x", t.X, "y", t.Y, "z", t.Z)
	}
}

// reportSolveError prints a failed solve and returns the exit status error.
// Errors that are not solve failures pass through unchanged.
func reportSolveError(err error) error {
	var se *linkage.SolveError
	if !errors.As(err, &se) {
		return err
	}
	printError("%s", errs.UserMessage(err))
	printDetail("%s", err.Error())
	return &ExitError{Code: exitUnreachable}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkage/pkg/render"
)

const defaultGridSize = 21

var cellStyles = map[render.Cell]lipgloss.Style{
	render.CellReachable:          lipgloss.NewStyle().Foreground(colorGreen),
	render.CellLiftUnreachable:    lipgloss.NewStyle().Foreground(colorDim),
	render.CellSupportUnreachable: lipgloss.NewStyle().Foreground(colorYellow),
	render.CellDegenerate:         lipgloss.NewStyle().Foreground(colorRed),
}

// gridOpts holds the command-line flags for the grid command.
type gridOpts struct {
	z     float64
	size  int
	sets  []string
	plain bool // uncolored output, same as render.RenderGrid
}

func (c *CLI) gridCommand() *cobra.Command {
	opts := gridOpts{size: defaultGridSize}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print a reachability map of the x/y plane at a fixed height",
		Long: `Grid solves a size×size lattice of targets spanning [-1, 1] in x and y at
height z and prints which ones the arm can reach. The top row is y = +1.

  #  reachable
  .  beyond the lift arm (AD+DE)
  +  beyond the support arm (AB+BC)
  ?  degenerate (target at the base or on the x = 0 line)`,
		Example: `  linkage grid --z 0.2 --size 41`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrid(cmd.Context(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.z, "z", 0, "target height")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "samples per side")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print without colors")
	setFlag(cmd, &opts.sets)

	return cmd
}

func (c *CLI) runGrid(ctx context.Context, opts gridOpts) error {
	logger := loggerFromContext(ctx)

	settings, _, err := c.loadSettings(opts.sets)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Sweeping z = %.2f", opts.z))
	spinner.Start()
	g, err := c.newRunner().Sweep(ctx, settings.Arm, opts.z, opts.size)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Swept %d targets", opts.size*opts.size))

	if opts.plain {
		_, err := stdout.Write(render.RenderGrid(g))
		return err
	}
	fmt.Fprint(stdout, colorGrid(g))
	printNewline()
	printKeyValue("reachable", fmt.Sprintf("%d / %d", g.Count(render.CellReachable), opts.size*opts.size))
	return nil
}

// colorGrid draws g like render.RenderGrid with one color per cell kind.
func colorGrid(g render.Grid) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("z = %.2f", g.Z)))
	b.WriteByte('\n')
	for _, row := range g.Cells {
		for _, c := range row {
			b.WriteString(cellStyles[c].Render(string(c.Rune())))
		}
		b.WriteByte('\n')
	}
	legend := []struct {
		cell  render.Cell
		label string
	}{
		{render.CellReachable, "reachable"},
		{render.CellLiftUnreachable, "lift arm"},
		{render.CellSupportUnreachable, "support arm"},
		{render.CellDegenerate, "degenerate"},
	}
	for i, l := range legend {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cellStyles[l.cell].Render(string(l.cell.Rune())) + " " + StyleDim.Render(l.label))
	}
	b.WriteByte('\n')
	return b.String()
}

package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkage/pkg/config"
	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/geom"
	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/pipeline"
)

var (
	tuiSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuiNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	tuiDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tuiEditStyle     = lipgloss.NewStyle().Foreground(colorYellow).Underline(true)
)

const (
	sliderWidth   = 21
	sliderStep    = 5
	segmentStep   = 0.01
	minSegmentLen = 0.01
)

// field is a selectable row of the interactive view.
type field int

const (
	fieldX field = iota
	fieldY
	fieldZ
	fieldAD
	fieldDE
	fieldAB
	fieldBC
	fieldCD
	fieldCount
)

func (f field) isSlider() bool { return f <= fieldZ }

func (f field) segment() string { return linkage.SegmentNames[f-fieldAD] }

func (f field) label() string {
	if f.isSlider() {
		return [...]string{"x", "y", "z"}[f]
	}
	return f.segment()
}

// =============================================================================
// armModel - interactive target and segment editor
// =============================================================================

// armModel is the bubbletea model for the interactive command. Sliders
// hold the target in percent of the unit cube; every change re-solves.
type armModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	holder *config.Holder

	pct     [3]int
	focus   field
	editing bool
	input   string
	notice  string

	layout linkage.Layout
	err    error
}

func newArmModel(ctx context.Context, runner *pipeline.Runner, holder *config.Holder, start linkage.Target) armModel {
	m := armModel{ctx: ctx, runner: runner, holder: holder}
	m.pct = [3]int{toPercent(start.X), toPercent(start.Y), toPercent(start.Z)}
	m.solve()
	return m
}

func toPercent(v float64) int {
	return max(-100, min(100, int(math.Round(v*100))))
}

// validateStart checks that a starting target fits on the percent sliders.
func validateStart(t linkage.Target) error {
	for i, v := range []float64{t.X, t.Y, t.Z} {
		axis := field(i).label()
		if err := errs.ValidateCoordinate(axis, v); err != nil {
			return err
		}
		if err := errs.ValidatePercent(axis, int(math.Round(v*100))); err != nil {
			return err
		}
	}
	return nil
}

func (m armModel) target() linkage.Target {
	return linkage.Target{
		X: float64(m.pct[0]) / 100,
		Y: float64(m.pct[1]) / 100,
		Z: float64(m.pct[2]) / 100,
	}
}

func (m *armModel) solve() {
	m.layout, m.err = m.runner.Solve(m.ctx, m.holder.Snapshot(), m.target())
}

func (m armModel) Init() tea.Cmd {
	return nil
}

func (m armModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "down", "j", "tab":
		m.focus = (m.focus + 1) % fieldCount
	case "left", "h":
		m.adjust(-1, sliderStep)
	case "right", "l":
		m.adjust(1, sliderStep)
	case "H", "shift+left":
		m.adjust(-1, 1)
	case "L", "shift+right":
		m.adjust(1, 1)
	case "0":
		if m.focus.isSlider() {
			m.pct[m.focus] = 0
			m.solve()
		}
	case "enter":
		if !m.focus.isSlider() {
			m.editing = true
			m.input = strconv.FormatFloat(m.holder.Snapshot().Length(m.focus.segment()), 'g', -1, 64)
			m.notice = ""
		}
	case "r":
		m.setArm(linkage.DefaultConfig())
	}
	return m, nil
}

// adjust moves the focused slider by step percent, or the focused segment
// by step hundredths, in direction dir.
func (m *armModel) adjust(dir, step int) {
	if m.focus.isSlider() {
		m.pct[m.focus] = max(-100, min(100, m.pct[m.focus]+dir*step))
		m.solve()
		return
	}
	name := m.focus.segment()
	cur := m.holder.Snapshot().Length(name)
	next := math.Max(minSegmentLen, math.Round((cur+float64(dir*step)*segmentStep)*1000)/1000)
	m.setSegment(name, next)
}

func (m armModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing, m.input = false, ""
	case tea.KeyEnter:
		m.editing = false
		v, err := strconv.ParseFloat(strings.TrimSpace(m.input), 64)
		m.input = ""
		if err != nil {
			m.notice = "not a number"
			return m, nil
		}
		m.setSegment(m.focus.segment(), v)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				m.input += string(r)
			}
		}
	}
	return m, nil
}

func (m *armModel) setSegment(name string, v float64) {
	err := m.holder.Update(func(cfg linkage.ArmConfig) (linkage.ArmConfig, error) {
		return config.Set(cfg, name, v)
	})
	if err != nil {
		m.notice = errs.UserMessage(err)
		return
	}
	m.notice = ""
	m.solve()
}

func (m *armModel) setArm(cfg linkage.ArmConfig) {
	if err := m.holder.Replace(cfg); err != nil {
		m.notice = errs.UserMessage(err)
		return
	}
	m.notice = ""
	m.solve()
}

func (m armModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Linkage"))
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("↑/↓ select  ←/→ adjust  ⏎ edit length  0 center  r reset  q quit"))
	b.WriteString("\n\n")

	cfg := m.holder.Snapshot()
	for f := field(0); f < fieldCount; f++ {
		if f == fieldAD {
			b.WriteString("\n")
		}
		cursor := "  "
		style := tuiNormalStyle
		if f == m.focus {
			cursor = "▸ "
			style = tuiSelectedStyle
		}
		var value string
		switch {
		case f.isSlider():
			value = fmt.Sprintf("%s %4d%%", slider(m.pct[f]), m.pct[f])
		case m.editing && f == m.focus:
			value = tuiEditStyle.Render(m.input + "_")
		default:
			value = fmt.Sprintf("%.3g", cfg.Length(f.segment()))
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-3s", cursor, f.label())) + " " + value + "\n")
	}
	if m.notice != "" {
		b.WriteString(StyleWarning.Render("  "+m.notice) + "\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(errs.UserMessage(m.err)))
		b.WriteString("\n")
		b.WriteString(tuiDimStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.resultTable())
	b.WriteString("\n")
	return b.String()
}

func (m armModel) resultTable() string {
	joints := m.layout.Joints()
	rows := [][]string{
		{"angle1", fmt.Sprintf("%.2f°", geom.Degrees(m.layout.Angle1)), "B", formatPoint(joints["B"])},
		{"angle2", fmt.Sprintf("%.2f°", geom.Degrees(m.layout.Angle2)), "C", formatPoint(joints["C"])},
		{"angle3", fmt.Sprintf("%.2f°", geom.Degrees(m.layout.Angle3)), "D", formatPoint(joints["D"])},
		{"", "", "E", formatPoint(joints["E"])},
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Angle", "Degrees", "Joint", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}

// slider draws pct in [-100, 100] as a bar with a knob.
func slider(pct int) string {
	pos := (pct + 100) * (sliderWidth - 1) / 200
	bar := []rune(strings.Repeat("─", sliderWidth))
	for i := range pos {
		bar[i] = '━'
	}
	bar[pos] = '●'
	return "[" + string(bar) + "]"
}

// =============================================================================
// Command
// =============================================================================

func (c *CLI) interactiveCommand() *cobra.Command {
	var (
		start linkage.Target
		sets  []string
	)
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   "Move the target and edit segment lengths interactively",
		Long: `Interactive opens a terminal view with sliders for x, y and z in percent
(-100 to 100) and an editor for the five segment lengths. Every change
re-solves and shows the angles in degrees, or "Position out of range".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("x") && !cmd.Flags().Changed("y") && !cmd.Flags().Changed("z") {
				start = linkage.Target{X: 0.8}
			}
			return c.runInteractive(cmd.Context(), start, sets)
		},
	}
	targetFlags(cmd, &start)
	setFlag(cmd, &sets)
	return cmd
}

func (c *CLI) runInteractive(ctx context.Context, start linkage.Target, sets []string) error {
	if err := validateStart(start); err != nil {
		return err
	}
	settings, _, err := c.loadSettings(sets)
	if err != nil {
		return err
	}
	holder, err := config.NewHolder(settings.Arm)
	if err != nil {
		return err
	}

	// Log lines would tear the alt screen.
	runner := pipeline.NewRunner(c.newRunner().Memo, log.NewWithOptions(io.Discard, log.Options{}))

	m := newArmModel(ctx, runner, holder, start)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(armModel); ok {
		cfg := fm.holder.Snapshot()
		if cfg != settings.Arm {
			printDetail("segment lengths changed this session")
			printNextStep("Inspect them", fmt.Sprintf("%s config show --set ad=%g --set de=%g --set ab=%g --set bc=%g --set cd=%g",
				appName, cfg.AD, cfg.DE, cfg.AB, cfg.BC, cfg.CD))
		}
	}
	return nil
}

// Package pipeline runs the solve → render flow shared by every command.
//
// A [Runner] validates its inputs, solves the target against a snapshot of
// the arm configuration (optionally through an LRU memo), and renders the
// resulting [render.Frame] into each requested format. Unreachable targets
// are not pipeline errors: the [Result] carries the solve error and the
// artifacts show the out-of-range state.
//
// # Usage
//
//	runner := pipeline.NewRunner(memo, logger)
//	res, err := runner.Execute(ctx, cfg, linkage.Target{X: 0.8}, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    return err // invalid input, not an unreachable target
//	}
//	svg := res.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/linkage/pkg/errors"
	"github.com/matzehuels/linkage/pkg/render"
)

// DefaultStyle is the default visual style.
const DefaultStyle = render.StyleSimple

// DefaultMemoSize is the number of solves the memo keeps.
const DefaultMemoSize = 4096

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	render.StyleSimple:    true,
	render.StyleBlueprint: true,
}

// Options controls rendering for [Runner.Execute].
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Style   string   `json:"style,omitempty"`
	NoGrid  bool     `json:"no_grid,omitempty"` // omit the target grid from SVG output

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the solve as handed to the renderers.
	Frame render.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// MemoHit reports whether the solve came from the memo.
	MemoHit bool

	Stats Stats
}

// OK reports whether the target was reachable.
func (r *Result) OK() bool { return r.Frame.OK() }

// Stats contains pipeline timing information.
type Stats struct {
	SolveTime  time.Duration
	RenderTime time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errs.New(errs.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, blueprint)", style)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and checks every field.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = render.DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return errs.New(errs.ErrCodeInvalidInput, "scale must be a positive number, got %v", o.Scale)
	}
	o.validated = true
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkage/pkg/linkage"
	"github.com/matzehuels/linkage/pkg/pipeline"
)

const defaultOutputBase = "linkage"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	target  linkage.Target
	sets    []string
	output  string   // output file (single format) or base path (multiple)
	formats []string // svg, json, text
	style   string   // simple or blueprint
	scale   float64  // pixels per unit length; 0 uses the settings file
	noGrid  bool     // omit the top-down target grid
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{style: pipeline.DefaultStyle}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the solved arm to SVG, JSON or text files",
		Long: `Render solves the target and writes one file per format. With a single format
-o names the file; with several it is a base path and each file gets its
format as extension.

Unreachable targets still produce artifacts showing the target marker and
"Position out of range".`,
		Example: `  linkage render --x 0.8 -o arm.svg
  linkage render --x 0.3 --y 0.4 --z 0.5 -f svg,json --style blueprint -o out/arm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	targetFlags(cmd, &opts.target)
	setFlag(cmd, &opts.sets)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, text (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: simple (default), blueprint")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixels per unit length (default from settings, 300)")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "omit the target grid panel")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	settings, _, err := c.loadSettings(opts.sets)
	if err != nil {
		return err
	}
	warnOutsideCube(logger, opts.target)

	scale := opts.scale
	if scale == 0 {
		scale = settings.Render.Scale
	}

	prog := newProgress(logger)
	res, err := c.newRunner().Execute(ctx, settings.Arm, opts.target, pipeline.Options{
		Formats: opts.formats,
		Style:   opts.style,
		Scale:   scale,
		NoGrid:  opts.noGrid,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	for _, format := range opts.formats {
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := writeArtifact(path, res.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", format, "bytes", len(res.Artifacts[format]))
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(opts.formats)))

	if !res.OK() {
		printWarning("%s", res.Frame.Message())
		printDetail("%s", res.Frame.Err.Error())
	}
	return nil
}

// outputPath picks the file for format. A single format uses output as
// given; several formats treat output as a base path.
func outputPath(output, format string, multiple bool) string {
	if output == "" {
		return defaultOutputBase + "." + extension(format)
	}
	if !multiple {
		return output
	}
	return basePath(output) + "." + extension(format)
}

// basePath strips a known format extension from output.
func basePath(output string) string {
	ext := filepath.Ext(output)
	name := strings.TrimPrefix(ext, ".")
	if pipeline.ValidFormats[name] || name == "txt" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func extension(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

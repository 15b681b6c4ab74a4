package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/microcharts/pkg/errors"
	"github.com/matzehuels/microcharts/pkg/pipeline"
)

// renderCommand creates the render command for drawing a chart definition.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart definition to SVG, PNG, PDF or JSON",
		Long: `Render a chart definition to one or more output formats.

The definition is a TOML or JSON file describing the chart kind, its entries
and kind options. Flags override the values in the file.

With a single format, -o names the output file. With several formats, -o is
a base path and each format gets its own extension. Without -o, outputs are
written next to the input.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Example: `  microcharts render examples/line.toml
  microcharts render chart.toml -f svg,png --scale 2 -o out/chart
  microcharts render chart.toml --kind pick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addChartFlags(cmd, &opts)
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	cmd.Flags().StringVar(&opts.Title, "title", "", "SVG/PDF document title")

	return cmd
}

// addChartFlags registers the flags that override the definition.
func addChartFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width (default: definition, then 512)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height (default: definition, then 512)")
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "chart kind override, or 'pick' to choose interactively")
	cmd.Flags().StringVar(&opts.Orientation, "orientation", "", "vertical or horizontal (point, bar, line)")
	registerChartCompletions(cmd)
}

// runRender loads the definition, renders it and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	if err := c.resolveKind(&opts); err != nil {
		return err
	}

	paths, err := outputPaths(output, input, opts.Formats)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	def, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spin := startSpinner(ctx, "Rendering "+filepath.Base(input))
	result, err := runner.Execute(ctx, def, opts)
	spin.Stop()
	if err != nil {
		return err
	}

	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done("rendered", "files", len(opts.Formats), "cached", result.CacheInfo.RenderHit())

	printSuccess("Rendered %s", input)
	size := 0
	for _, format := range opts.Formats {
		size += len(result.Artifacts[format])
	}
	printStats(renderStats{
		Kind:    string(result.Chart.Kind),
		Entries: result.Stats.EntryCount,
		Files:   len(opts.Formats),
		Bytes:   size,
		Cached:  result.CacheInfo.RenderHit(),
	})
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printNextStep("Inspect the geometry", fmt.Sprintf("%s layout %s", appName, input))
	return nil
}

// parseFormats splits a comma-separated --format value; empty means SVG.
func parseFormats(s string) []string {
	if formats := pipeline.ParseFormats(s); len(formats) > 0 {
		return formats
	}
	return []string{pipeline.FormatSVG}
}

// resolveKind replaces --kind=pick with the interactive choice.
func (c *CLI) resolveKind(opts *pipeline.Options) error {
	if !strings.EqualFold(opts.Kind, pickKind) {
		return nil
	}
	kind, err := pickChartKind()
	if err != nil {
		return err
	}
	opts.Kind = string(kind)
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. A known format
// extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(strings.ToLower(ext), ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single
// format with an explicit output uses that path unchanged.
func outputPaths(output, input string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
	} else {
		base := basePath(output, input)
		for _, f := range formats {
			paths[f] = base + "." + f
		}
	}

	for _, p := range paths {
		if err := errors.ValidateOutputPath(p); err != nil {
			return nil, err
		}
		if p == input {
			return nil, errors.New(errors.ErrCodeInvalidInput, "output would overwrite the input file %s", input)
		}
	}
	return paths, nil
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

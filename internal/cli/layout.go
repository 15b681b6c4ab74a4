package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/layout"
	"github.com/matzehuels/microcharts/pkg/pipeline"
	"github.com/matzehuels/microcharts/pkg/render"
)

// layoutCommand creates the layout command for inspecting computed geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Print the computed geometry of a chart definition",
		Long: `Compute the layout of a chart definition and print one row per entry.

The table shows where each entry ends up: the point of cartesian charts, the
bar rectangle, the donut sector, the radar vertex or the gauge ring. With -o
the full geometry is also written as JSON (same format as 'render -f json').`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the geometry JSON to this file")
	addChartFlags(cmd, &opts)

	return cmd
}

// runLayout loads the definition, computes its geometry and prints it.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string) error {
	if err := c.resolveKind(&opts); err != nil {
		return err
	}
	if output != "" {
		if _, err := outputPaths(output, input, []string{pipeline.FormatJSON}); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	def, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}

	opts.Formats = []string{pipeline.FormatJSON}
	result, err := runner.Execute(ctx, def, opts)
	if err != nil {
		return err
	}

	printGeometrySummary(result.Chart, result.Geometry)
	fmt.Fprintln(out, geometryTable(result.Chart, result.Geometry))

	if output != "" {
		if err := writeArtifact(output, result.Artifacts[pipeline.FormatJSON]); err != nil {
			return err
		}
		printFile(output)
	}
	return nil
}

func printGeometrySummary(c chart.Chart, g render.Geometry) {
	printKeyValue("Kind", string(g.Kind))
	printKeyValue("Canvas", fmt.Sprintf("%s × %s", num(g.Width), num(g.Height)))
	switch {
	case g.Cartesian != nil:
		l := g.Cartesian
		printKeyValue("Orientation", string(l.Orientation))
		printKeyValue("Range", formatRange(l.Range))
		printKeyValue("Body", formatRect(l.Body))
		printKeyValue("Origin", num(l.Origin))
	case g.Donut != nil:
		printKeyValue("Radius", fmt.Sprintf("%s (hole %s)", num(g.Donut.Radius), num(g.Donut.HoleRadius)))
		printKeyValue("Sum", num(g.Donut.Sum))
	case g.Radar != nil:
		printKeyValue("Radius", num(g.Radar.Radius))
		printKeyValue("Range", formatRange(g.Radar.Range))
	case g.Gauge != nil:
		printKeyValue("Radius", num(g.Gauge.Radius))
		printKeyValue("Stroke", num(g.Gauge.StrokeWidth))
		printKeyValue("Range", formatRange(g.Gauge.Range))
	}
	if len(c.Entries) == 0 {
		printInfo("No entries; nothing is drawn")
	}
}

// geometryTable renders one row per entry.
func geometryTable(c chart.Chart, g render.Geometry) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Value", "Geometry").
		Rows(geometryRows(c, g)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2:
				return StyleNumber
			case col == 3:
				return StyleValue
			}
			return StyleDim
		}).
		Render()
}

func geometryRows(c chart.Chart, g render.Geometry) [][]string {
	rows := make([][]string, 0, len(c.Entries))
	for i, e := range c.Entries {
		rows = append(rows, []string{strconv.Itoa(i), e.Label, num(e.Value), describeEntry(g, i)})
	}
	return rows
}

// describeEntry summarizes where entry i was placed.
func describeEntry(g render.Geometry, i int) string {
	switch {
	case g.Cartesian != nil:
		if i < len(g.Bars) {
			return "bar " + formatRect(g.Bars[i])
		}
		if i < len(g.Cartesian.Points) {
			return "point " + formatPoint(g.Cartesian.Points[i])
		}
	case g.Donut != nil:
		if i < len(g.Donut.Sectors) {
			s := g.Donut.Sectors[i]
			if s.Empty() {
				return "empty sector"
			}
			return fmt.Sprintf("sector %s%%, %s° → %s°", num((s.End-s.Start)*100), num(degrees(s.StartAngle)), num(degrees(s.EndAngle)))
		}
	case g.Radar != nil:
		if i < len(g.Radar.Vertices) {
			v := g.Radar.Vertices[i]
			return fmt.Sprintf("vertex %s, ring r=%s", formatPoint(v.Point), num(v.RingRadius))
		}
	case g.Gauge != nil:
		if i < len(g.Gauge.Rings) {
			r := g.Gauge.Rings[i]
			return fmt.Sprintf("ring r=%s, sweep %s°", num(r.Radius), num(r.SweepDegrees()))
		}
	}
	return "-"
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// num formats v with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func formatPoint(p layout.Point) string {
	return fmt.Sprintf("(%s, %s)", num(p.X), num(p.Y))
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("%s %s×%s", formatPoint(layout.Point{X: r.X, Y: r.Y}), num(r.W), num(r.H))
}

func formatRange(r layout.Range) string {
	return fmt.Sprintf("[%s, %s]", num(r.Min), num(r.Max))
}

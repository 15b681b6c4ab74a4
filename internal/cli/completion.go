package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/pipeline"
)

var completionShells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for microcharts. Chart kinds, orientations
and output formats complete as flag values.

  $ source <(microcharts completion bash)
  $ microcharts completion zsh > "${fpath[1]}/_microcharts"
  $ microcharts completion fish | source
  PS> microcharts completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// registerChartCompletions completes --kind, --orientation and, when the
// command has it, --format.
func registerChartCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		kinds := []string{pickKind + "\tchoose interactively"}
		for _, k := range chart.Kinds() {
			kinds = append(kinds, string(k)+"\t"+k.Description())
		}
		return kinds, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("orientation", cobra.FixedCompletions(
		[]string{string(chart.Vertical), string(chart.Horizontal)}, cobra.ShellCompDirectiveNoFileComp))

	if cmd.Flags().Lookup("format") == nil {
		return
	}
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		// Complete the last element of a comma-separated list.
		done, _ := splitLast(toComplete)
		var out []string
		for _, f := range []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON} {
			out = append(out, done+f)
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}

// splitLast splits "svg,pn" into "svg," and "pn".
func splitLast(s string) (head, last string) {
	i := strings.LastIndex(s, ",")
	return s[:i+1], s[i+1:]
}

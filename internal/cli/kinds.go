package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/microcharts/pkg/chart"
)

// kindsCommand lists the supported chart kinds.
func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported chart kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, StyleTitle.Render("Chart kinds"))
			for _, k := range chart.Kinds() {
				printKeyValue(string(k), k.Description())
			}
			fmt.Fprintln(out)
			printNextStep("Render one", fmt.Sprintf("%s render chart.toml --kind %s", appName, chart.KindLine))
		},
	}
}

// Package cli implements the microcharts command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/microcharts/pkg/buildinfo"
	"github.com/matzehuels/microcharts/pkg/cache"
	"github.com/matzehuels/microcharts/pkg/pipeline"
)

const (
	appName = "microcharts"

	// pickKind is the --kind value that opens the interactive picker.
	pickKind = "pick"
)

// Log levels for main.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
}

// New returns a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand assembles the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Microcharts lays out and renders small charts",
		Long: `Microcharts computes the geometry of compact point, bar, line, donut,
radar and radial gauge charts and renders it to SVG, PNG, PDF or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddGroup(
		&cobra.Group{ID: "charts", Title: "Charts:"},
		&cobra.Group{ID: "service", Title: "Service:"},
	)
	for _, cmd := range []*cobra.Command{c.renderCommand(), c.layoutCommand(), c.kindsCommand()} {
		cmd.GroupID = "charts"
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{c.serveCommand(), c.cacheCommand()} {
		cmd.GroupID = "service"
		root.AddCommand(cmd)
	}
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner returns a pipeline runner backed by the on-disk cache. Keys
// are scoped by release.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, cache.NewScopedKeyer(nil, buildinfo.Version), c.Logger), nil
}

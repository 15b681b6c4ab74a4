package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/microcharts/internal/server"
	"github.com/matzehuels/microcharts/pkg/buildinfo"
	"github.com/matzehuels/microcharts/pkg/cache"
	"github.com/matzehuels/microcharts/pkg/errors"
	"github.com/matzehuels/microcharts/pkg/pipeline"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr      string
	redisURL  string
	cacheSize string
	maxBody   string
	noCache   bool
}

// serveCommand creates the serve command for the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      server.DefaultAddress,
		cacheSize: humanize.IBytes(cache.DefaultMemoryBytes),
		maxBody:   humanize.IBytes(server.DefaultMaxBodyBytes),
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve chart layout and rendering over HTTP",
		Long: `Serve chart layout and rendering over HTTP.

Routes:
  GET  /healthz           liveness probe
  POST /layout            chart definition in, geometry JSON out
  POST /render/{format}   chart definition in, svg/png/pdf/json out

Rendered artifacts are cached in memory, or in Redis with --redis-url so
several instances share one cache.`,
		Example: `  microcharts serve --addr :9000
  curl -X POST --data-binary @chart.json localhost:9000/render/svg?width=320`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "shared Redis cache (redis://host:port/db)")
	cmd.Flags().StringVar(&opts.cacheSize, "cache-size", opts.cacheSize, "in-memory cache budget (e.g. 256MiB)")
	cmd.Flags().StringVar(&opts.maxBody, "max-body", opts.maxBody, "maximum definition size (e.g. 512KiB)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	maxBody, err := parseSize("max-body", opts.maxBody)
	if err != nil {
		return err
	}
	store, desc, err := serveCache(ctx, opts)
	if err != nil {
		return err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version)
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	srv := server.New(runner, c.Logger, server.Config{
		Address:      opts.addr,
		MaxBodyBytes: maxBody,
	})

	printSuccess("Serving on %s", StyleLink.Render(listenURL(opts.addr)))
	printDetail("Cache: %s", desc)
	return srv.Run(ctx)
}

// serveCache picks the artifact cache and describes it.
func serveCache(ctx context.Context, opts serveOpts) (cache.Cache, string, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), "disabled", nil
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, "", fmt.Errorf("connect redis: %w", err)
		}
		return rc, "redis", nil
	}
	size, err := parseSize("cache-size", opts.cacheSize)
	if err != nil {
		return nil, "", err
	}
	mc, err := cache.NewMemoryCache(size)
	if err != nil {
		return nil, "", err
	}
	return mc, "memory (" + StyleHighlight.Render(humanize.IBytes(uint64(size))) + ")", nil
}

// parseSize reads a byte size such as "64MiB" or "500kB".
func parseSize(flag, s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil || n == 0 || n > math.MaxInt64 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "--%s: %q is not a positive size", flag, s)
	}
	return int64(n), nil
}

// listenURL turns a listen address into a browsable URL.
func listenURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

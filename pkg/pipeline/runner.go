package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/microcharts/pkg/cache"
	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/fonts"
	chartio "github.com/matzehuels/microcharts/pkg/io"
	"github.com/matzehuels/microcharts/pkg/layout"
	"github.com/matzehuels/microcharts/pkg/observability"
	"github.com/matzehuels/microcharts/pkg/render"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and service use it so they behave the same.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads the definition file at path.
func (r *Runner) Load(ctx context.Context, path string) (chartio.Definition, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	def, err := chartio.ImportFile(path)
	hooks.OnLoadComplete(ctx, path, len(def.Entries), time.Since(start), err)
	if err != nil {
		return chartio.Definition{}, err
	}

	r.Logger.Debug("loaded definition", "path", path, "kind", def.Kind, "entries", len(def.Entries))
	return def, nil
}

// Execute runs the layout and render stages for def.
func (r *Runner) Execute(ctx context.Context, def chartio.Definition, opts Options) (*Result, error) {
	opts.SetLayoutDefaults(def.Width, def.Height)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	c, err := opts.Apply(def.Chart)
	if err != nil {
		return nil, err
	}
	result := &Result{Chart: c, Stats: Stats{EntryCount: len(c.Entries)}}

	m := r.measurer()
	fm, _ := m.(*fonts.Measurer)
	if fm != nil {
		defer fm.Close()
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	g, err := r.Layout(ctx, c, opts, m)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Geometry = g
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("computed layout",
		"kind", c.Kind,
		"entries", len(c.Entries),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, info, err := r.RenderWithCacheInfo(ctx, c, g, opts, fm)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(info.Hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout computes the geometry of c. A nil measurer approximates glyph
// widths.
func (r *Runner) Layout(ctx context.Context, c chart.Chart, opts Options, m layout.Measurer) (render.Geometry, error) {
	opts.SetLayoutDefaults(0, 0)
	if err := opts.ValidateForLayout(); err != nil {
		return render.Geometry{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, string(c.Kind), len(c.Entries))
	start := time.Now()

	g, err := render.Compute(c, opts.Width, opts.Height, m)
	hooks.OnLayoutComplete(ctx, string(c.Kind), time.Since(start), err)
	return g, err
}

// RenderWithCacheInfo renders every requested format of g, serving what it
// can from the cache, and reports which formats were hits.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c chart.Chart, g render.Geometry, opts Options, m *fonts.Measurer) (map[string][]byte, CacheInfo, error) {
	var info CacheInfo
	if err := opts.ValidateForRender(); err != nil {
		return nil, info, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, info, err := r.render(ctx, c, g, opts, m)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, info, err
}

// Render is a convenience wrapper that discards the cache info.
func (r *Runner) Render(ctx context.Context, c chart.Chart, g render.Geometry, opts Options, m *fonts.Measurer) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, c, g, opts, m)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, c chart.Chart, g render.Geometry, opts Options, m *fonts.Measurer) (map[string][]byte, CacheInfo, error) {
	var info CacheInfo
	defHash, err := definitionHash(c)
	if err != nil {
		return nil, info, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(defHash, artifactKeyOpts(format, g, opts))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, format)
			artifacts[format] = data
			info.Hits = append(info.Hits, format)
			continue
		} else if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, info, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, c, g, sub, m)
	if err != nil {
		return nil, info, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		info.Misses = append(info.Misses, format)

		key := r.Keyer.ArtifactKey(defHash, artifactKeyOpts(format, g, opts))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return artifacts, info, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// measurer loads the bundled font, falling back to approximate metrics.
func (r *Runner) measurer() layout.Measurer {
	m, err := fonts.NewMeasurer()
	if err != nil {
		r.Logger.Warn("font unavailable, approximating text metrics", "error", err)
		return layout.ApproxMeasurer{}
	}
	return m
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func definitionHash(c chart.Chart) (string, error) {
	h, err := cache.HashJSON(c)
	if err != nil {
		return "", fmt.Errorf("serialize chart for cache key: %w", err)
	}
	return h, nil
}

func artifactKeyOpts(format string, g render.Geometry, opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Width: g.Width, Height: g.Height}
	if format == FormatSVG || format == FormatPDF {
		k.Title = opts.Title
	}
	if format == FormatPNG {
		k.Scale = opts.Scale
	}
	return k
}

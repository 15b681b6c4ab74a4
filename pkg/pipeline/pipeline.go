// Package pipeline provides the load → layout → render pipeline shared by
// the CLI and the HTTP service.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a chart definition file (TOML or JSON)
//  2. Layout: compute the chart geometry for the canvas size
//  3. Render: draw the geometry in the requested formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Rendered artifacts can be cached; layout is cheap and always recomputed.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	def, err := runner.Load(ctx, "chart.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, def, pipeline.Options{Formats: []string{"svg", "png"}})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
	"github.com/matzehuels/microcharts/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Service
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 512.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 512.0

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 1.0

	// MaxScale bounds the PNG scale factor.
	MaxScale = 8.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps output formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. Zero fields fall back to the
// definition's values, then to the package defaults.
type Options struct {
	// Chart overrides
	Kind        string `json:"kind,omitempty"`
	Orientation string `json:"orientation,omitempty"`

	// Layout options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG only
	Title   string   `json:"title,omitempty"` // SVG <title>

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the chart after overrides were applied.
	Chart chart.Chart

	// Geometry is the computed layout.
	Geometry render.Geometry

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks cache usage of the render stage.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EntryCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits of the render stage.
type CacheInfo struct {
	Hits   []string // formats served from cache
	Misses []string // formats rendered
}

// RenderHit reports whether every artifact came from the cache.
func (c CacheInfo) RenderHit() bool { return len(c.Hits) > 0 && len(c.Misses) == 0 }

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
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

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetLayoutDefaults fills the canvas size from def, then from the
// package defaults.
func (o *Options) SetLayoutDefaults(defWidth, defHeight float64) {
	if o.Width == 0 {
		o.Width = defWidth
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = defHeight
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout checks the canvas size. Call SetLayoutDefaults first.
func (o *Options) ValidateForLayout() error {
	return errors.ValidateDimensions(o.Width, o.Height)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || o.Scale <= 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be within (0, %g], got %v", MaxScale, o.Scale)
	}
	if err := errors.ValidateLabel(o.Title); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "title")
	}
	return nil
}

// Apply returns c with the chart overrides of o applied and validated. A
// kind override also moves point options left at the source kind's
// defaults to the new kind's defaults.
func (o *Options) Apply(c chart.Chart) (chart.Chart, error) {
	if o.Kind != "" {
		k, err := chart.ParseKind(o.Kind)
		if err != nil {
			return chart.Chart{}, err
		}
		c = c.WithKind(k)
	}
	if o.Orientation != "" {
		or, err := chart.ParseOrientation(o.Orientation)
		if err != nil {
			return chart.Chart{}, err
		}
		c.Orientation = or
	}
	if err := c.Validate(); err != nil {
		return chart.Chart{}, err
	}
	return c, nil
}

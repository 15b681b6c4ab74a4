package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
	"github.com/matzehuels/microcharts/pkg/fonts"
	"github.com/matzehuels/microcharts/pkg/render"
	"github.com/matzehuels/microcharts/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. m supplies
// the PNG font faces; it should be the measurer g was computed with.
func Render(ctx context.Context, c chart.Chart, g render.Geometry, opts Options, m *fonts.Measurer) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(c, g, svgOpts...)
		case FormatPNG:
			pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
			if m != nil {
				pngOpts = append(pngOpts, sink.WithFonts(m))
			}
			data, err = sink.RenderPNG(c, g, pngOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, c, g, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(c, g, sink.WithJSONChart())
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	return svgOpts
}

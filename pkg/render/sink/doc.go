// Package sink turns computed chart geometry into output formats.
//
// # Overview
//
// A "sink" takes a [chart.Chart] together with the [render.Geometry]
// computed for it and produces bytes:
//
//   - SVG: vector output written with github.com/ajstarks/svgo
//   - PNG: raster output drawn with github.com/fogleman/gg
//   - JSON: the geometry itself, for external tools and tests
//   - PDF: print output converted from SVG (requires rsvg-convert)
//
// The SVG and PNG sinks are [render.Canvas] implementations; all layout
// decisions were already made by [render.Compute], so the sinks only
// translate drawing calls.
//
// # Usage
//
//	m, _ := fonts.NewMeasurer()
//	g, _ := render.Compute(c, 512, 512, m)
//	svg := sink.RenderSVG(c, g)
//	png, err := sink.RenderPNG(c, g, sink.WithFonts(m), sink.WithScale(2))
//
// Computing the geometry with the same [fonts.Measurer] that the PNG sink
// draws with keeps label truncation and glyph widths consistent.
//
// [chart.Chart]: github.com/matzehuels/microcharts/pkg/chart.Chart
// [fonts.Measurer]: github.com/matzehuels/microcharts/pkg/fonts.Measurer
package sink

// Package render turns a chart into drawing calls.
//
// # Overview
//
// [Compute] runs the layout engine matching the chart kind and gathers
// everything a backend needs into a [Geometry]: rectangles, paths,
// gradients and positioned labels. [Draw] computes the geometry and issues
// it to a [Canvas] in a fixed order: background, areas, bars or lines,
// points, labels, captions.
//
// Backends implement [Canvas]. Package
// [github.com/matzehuels/microcharts/pkg/render/sink] provides SVG and PNG
// canvases and a JSON export of the geometry.
//
//	m, _ := fonts.NewMeasurer()
//	svg, err := sink.RenderSVG(c, 512, 512, sink.WithMeasurer(m))
//
// # Format Conversion
//
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool (from
// librsvg).
package render

// Package pkg provides the libraries behind Microcharts, a layout engine for
// small, dense charts.
//
// # Overview
//
// A chart is an ordered list of signed entries plus the options of one chart
// kind: point, bar, line, donut, radar or radial gauge. The engine turns it
// into pure geometry (points, rectangles, paths, arcs, label anchors) and
// hands that geometry to a drawing backend.
//
//  1. [chart] - Entries, chart options, kinds and colors
//  2. [layout] - Value ranges, cartesian and radial layout, captions
//  3. [layout/path] - Straight and spline line paths, area paths, arcs
//  4. [render] - Geometry orchestration and the Canvas drawing contract
//  5. [render/sink] - SVG, PNG, PDF and JSON backends
//  6. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
//	chart definition (TOML/JSON)
//	         ↓
//	    [io] package (decode, apply kind defaults, validate)
//	         ↓
//	    [layout] package (range → cartesian or radial geometry)
//	         ↓
//	    [render] package (Geometry + draw through a Canvas)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/microcharts/pkg/chart"
//	    "github.com/matzehuels/microcharts/pkg/render"
//	    "github.com/matzehuels/microcharts/pkg/render/sink"
//	)
//
//	c := chart.New(chart.KindLine,
//	    chart.NewEntry(212), chart.NewEntry(-248), chart.NewEntry(514))
//	g, _ := render.Compute(c, 512, 512, nil)
//	svg := sink.RenderSVG(c, g)
//
// # Supporting Packages
//
//   - [io] reads and writes chart definition files
//   - [fonts] measures text with the bundled Go font
//   - [cache] stores rendered artifacts (file, memory, Redis)
//   - [errors] carries machine-readable error codes
//   - [observability] exposes pipeline, cache and HTTP hooks
//   - [buildinfo] holds version information set at build time
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/chart
// [layout]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/layout
// [layout/path]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/layout/path
// [render]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/io
// [fonts]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/microcharts/pkg/buildinfo
package pkg

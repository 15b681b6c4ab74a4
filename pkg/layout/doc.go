// Package layout computes chart geometry in screen space.
//
// Coordinates follow the usual raster convention: the origin is the top-left
// corner of the canvas and y grows downward. All functions are pure: they
// read a [chart.Chart], a canvas size and, where text is involved, a
// [Measurer], and return value types the caller owns.
//
// # Engines
//
//   - [ResolveRange], [ResolveAbsRange]: effective value bounds
//   - [Cartesian]: panels, item size, origin and point positions for point,
//     bar and line charts; [Bars], [BarAreas] and [PointAreas] derive
//     rectangles from it
//   - [Sectors], [Radar], [Gauge]: radial geometry
//   - [PartitionSectors], [PartitionGauge], [CaptionItems]: legend placement
//
// Degenerate inputs never produce NaN. A zero value range places every
// point on the header (or left) edge; a zero sum gives zero-width sectors.
//
// Line and area outlines are built from the points by package
// [github.com/matzehuels/microcharts/pkg/layout/path].
package layout

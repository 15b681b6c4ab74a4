package path

import (
	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/layout"
)

// splineTension is the control point offset as a fraction of the item
// extent along the category axis.
const splineTension = 0.8

// Line connects points in order. Straight mode draws a polyline; spline
// mode draws one cubic segment per consecutive pair, with control points
// pushed 0.8·extent forward from the first point and back from the second
// along the category axis. Fewer than two points, or mode none, give an
// empty path.
func Line(points []layout.Point, mode chart.LineMode, extent float64, o chart.Orientation) Path {
	var p Path
	if len(points) < 2 || mode == chart.LineModeNone {
		return p
	}
	p.MoveTo(points[0])
	appendSegments(&p, points, mode, extent, o)
	return p
}

// Area is the region between the line through points and the origin: it
// drops from the origin to the first point, follows the line, returns to
// the origin under the last point and closes.
func Area(points []layout.Point, mode chart.LineMode, extent, origin float64, o chart.Orientation) Path {
	var p Path
	if len(points) < 2 || mode == chart.LineModeNone {
		return p
	}
	first, last := points[0], points[len(points)-1]
	p.MoveTo(project(first, origin, o))
	p.LineTo(first)
	appendSegments(&p, points, mode, extent, o)
	p.LineTo(project(last, origin, o))
	p.Close()
	return p
}

func appendSegments(p *Path, points []layout.Point, mode chart.LineMode, extent float64, o chart.Orientation) {
	offset := layout.Point{X: splineTension * extent}
	if o == chart.Horizontal {
		offset = layout.Point{Y: splineTension * extent}
	}
	for i := 0; i < len(points)-1; i++ {
		next := points[i+1]
		if mode == chart.LineModeSpline {
			p.CubicTo(points[i].Add(offset), next.Sub(offset), next)
		} else {
			p.LineTo(next)
		}
	}
}

// project moves pt onto the origin line along the value axis.
func project(pt layout.Point, origin float64, o chart.Orientation) layout.Point {
	if o == chart.Horizontal {
		return layout.Point{X: origin, Y: pt.Y}
	}
	return layout.Point{X: pt.X, Y: origin}
}

// Gradient spreads the colors evenly along the category axis, from the
// first point to the last, each with the given alpha.
func Gradient(points []layout.Point, colors []chart.Color, alpha uint8, o chart.Orientation) layout.Gradient {
	var g layout.Gradient
	if len(points) == 0 || len(colors) == 0 {
		return g
	}
	first, last := points[0], points[len(points)-1]
	if o == chart.Horizontal {
		g.From, g.To = layout.Point{Y: first.Y}, layout.Point{Y: last.Y}
	} else {
		g.From, g.To = layout.Point{X: first.X}, layout.Point{X: last.X}
	}

	g.Stops = make([]layout.Stop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		g.Stops[i] = layout.Stop{Offset: offset, Color: c.WithAlpha(alpha)}
	}
	return g
}

package path

import (
	"math"

	"github.com/matzehuels/microcharts/pkg/layout"
)

// Sector outlines the donut slice between the fractions start and end of
// the circle (0 at the top, growing clockwise). The outer edge is traced
// clockwise and the inner edge back counter-clockwise; with no hole the
// slice closes through the center. A full turn becomes two concentric
// circles filled even-odd, and an empty span gives an empty path.
func Sector(center layout.Point, start, end, outer, inner float64) Path {
	var p Path
	span := end - start
	if span < eps || outer <= 0 {
		return p
	}

	if span >= 1-eps {
		p = Circle(center, outer)
		if inner > 0 {
			hole := Circle(center, inner)
			p.Segments = append(p.Segments, hole.Segments...)
			p.EvenOdd = true
		}
		return p
	}

	sa, ea := layout.FractionAngle(start), layout.FractionAngle(end)
	rim := ArcParams{Center: center, Radius: outer}
	p.MoveTo(rim.PointAt(sa))
	p.ArcTo(center, outer, sa, ea-sa)
	if inner > 0 {
		hole := ArcParams{Center: center, Radius: inner}
		p.LineTo(hole.PointAt(ea))
		p.ArcTo(center, inner, ea, sa-ea)
	} else {
		p.LineTo(center)
	}
	p.Close()
	return p
}

// Circle is a closed full circle.
func Circle(center layout.Point, r float64) Path {
	var p Path
	if r <= 0 {
		return p
	}
	p.ArcTo(center, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// Arc is an open arc of the circle around center, from angle start
// sweeping by sweep radians. A zero sweep gives an empty path.
func Arc(center layout.Point, r, start, sweep float64) Path {
	var p Path
	if math.Abs(sweep) < eps || r <= 0 {
		return p
	}
	p.ArcTo(center, r, start, sweep)
	return p
}

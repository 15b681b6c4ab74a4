package layout

import (
	"math"

	"github.com/matzehuels/microcharts/pkg/chart"
)

// MinBarLength is the shortest bar drawn, so zero values stay visible.
const MinBarLength = 4

// minPointAreaLength keeps point areas visible for values at the origin.
const minPointAreaLength = 2

// Bars returns one rectangle per point, spanning from the origin to the
// point with the item thickness. Bars shorter than [MinBarLength] are
// lengthened; if that pushes them past the body they are moved back flush
// against its far edge.
func Bars(l CartesianLayout) []Rect {
	out := make([]Rect, len(l.Points))
	for i, p := range l.Points {
		if l.Horizontal() {
			x := math.Min(l.Origin, p.X)
			w := math.Abs(l.Origin - p.X)
			if w < MinBarLength {
				w = MinBarLength
				if end := l.Panels.Left + l.Item.W; x+w > end {
					x = end - w
				}
			}
			out[i] = Rect{X: x, Y: p.Y - l.Item.H/2, W: w, H: l.Item.H}
			continue
		}

		y := math.Min(l.Origin, p.Y)
		h := math.Abs(l.Origin - p.Y)
		if h < MinBarLength {
			h = MinBarLength
			if end := l.Panels.Header + l.Item.H; y+h > end {
				y = end - h
			}
		}
		out[i] = Rect{X: p.X - l.Item.W/2, Y: y, W: l.Item.W, H: h}
	}
	return out
}

// BarAreas returns the background rectangle of each bar: from the point to
// the body edge on the value's side (the top for positive values of a
// vertical chart, the right for a horizontal one).
func BarAreas(l CartesianLayout, entries []chart.Entry) []Rect {
	out := make([]Rect, len(l.Points))
	for i, p := range l.Points {
		positive := i < len(entries) && entries[i].Value > 0
		if l.Horizontal() {
			edge := l.Panels.Left
			if positive {
				edge += l.Item.W
			}
			out[i] = Rect{
				X: math.Min(edge, p.X),
				Y: p.Y - l.Item.H/2,
				W: math.Abs(edge - p.X),
				H: l.Item.H,
			}
			continue
		}

		edge := l.Panels.Header + l.Item.H
		if positive {
			edge = l.Panels.Header
		}
		out[i] = Rect{
			X: p.X - l.Item.W/2,
			Y: math.Min(edge, p.Y),
			W: l.Item.W,
			H: math.Abs(edge - p.Y),
		}
	}
	return out
}

// PointAreas returns a gradient-filled rectangle per entry, running from
// the origin to the point with the given thickness. The gradient is the
// entry color at alpha at the point, fading to alpha/3 at the origin.
func PointAreas(l CartesianLayout, entries []chart.Entry, size float64, alpha uint8) []Area {
	out := make([]Area, 0, len(l.Points))
	for i, p := range l.Points {
		if i >= len(entries) {
			break
		}
		color := entries[i].Color
		stops := []Stop{
			{Offset: 0, Color: color.WithAlpha(alpha)},
			{Offset: 1, Color: color.WithAlpha(alpha / 3)},
		}

		var a Area
		a.Index = i
		if l.Horizontal() {
			a.Rect = Rect{
				X: math.Min(l.Origin, p.X),
				Y: p.Y - size/2,
				W: math.Max(minPointAreaLength, math.Abs(l.Origin-p.X)),
				H: size,
			}
			a.Gradient = Gradient{From: Point{p.X, p.Y}, To: Point{l.Origin, p.Y}, Stops: stops}
		} else {
			a.Rect = Rect{
				X: p.X - size/2,
				Y: math.Min(l.Origin, p.Y),
				W: size,
				H: math.Max(minPointAreaLength, math.Abs(l.Origin-p.Y)),
			}
			a.Gradient = Gradient{From: Point{p.X, p.Y}, To: Point{p.X, l.Origin}, Stops: stops}
		}
		out = append(out, a)
	}
	return out
}

package render

import (
	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/layout"
)

const (
	originLineWidth = 1
	radarFadeAlpha  = 0.75
)

// Draw computes the geometry of c and draws it onto canvas.
func Draw(canvas Canvas, c chart.Chart, width, height float64, m layout.Measurer) error {
	g, err := Compute(c, width, height, m)
	if err != nil {
		return err
	}
	DrawGeometry(canvas, c, g)
	return nil
}

// DrawGeometry draws precomputed geometry. g must have been computed from c.
// A chart without entries draws only its background.
func DrawGeometry(canvas Canvas, c chart.Chart, g Geometry) {
	canvas.Clear(c.Background)
	if len(c.Entries) == 0 {
		return
	}

	switch c.Kind {
	case chart.KindPoint:
		drawAreas(canvas, g.PointAreas)
		drawPoints(canvas, c, g.Cartesian.Points)
		drawCartesianLabels(canvas, c, g.Cartesian)

	case chart.KindBar:
		from, to := g.Cartesian.OriginLine()
		canvas.DrawLine(from, to, Stroke(chart.LightGray, originLineWidth))
		for i, r := range g.BarAreas {
			canvas.DrawRect(r, Fill(c.Entries[i].Color.WithAlpha(c.Bar.AreaAlpha)))
		}
		for i, r := range g.Bars {
			canvas.DrawRect(r, Fill(c.Entries[i].Color))
		}
		drawPoints(canvas, c, g.Cartesian.Points)
		drawCartesianLabels(canvas, c, g.Cartesian)

	case chart.KindLine:
		if g.Area != nil {
			canvas.DrawPath(*g.Area, Fill(chart.White).WithGradient(*g.AreaFill))
		}
		if g.Line != nil {
			canvas.DrawPath(*g.Line, Stroke(chart.White, c.Line.Size).WithGradient(*g.LineFill))
		}
		drawPoints(canvas, c, g.Cartesian.Points)
		drawCartesianLabels(canvas, c, g.Cartesian)

	case chart.KindDonut:
		for i, p := range g.SectorPaths {
			if p.Empty() {
				continue
			}
			canvas.DrawPath(p, Fill(c.Entries[i].Color))
		}
		drawCaptions(canvas, c, g)

	case chart.KindRadar:
		drawRadar(canvas, c, g.Radar)
		drawLabels(canvas, c, g.Labels)

	case chart.KindRadialGauge:
		drawCaptions(canvas, c, g)
		drawGauge(canvas, c, g)
	}
}

func drawAreas(canvas Canvas, areas []layout.Area) {
	for _, a := range areas {
		canvas.DrawRect(a.Rect, Fill(a.Gradient.Stops[0].Color).WithGradient(a.Gradient))
	}
}

func drawPoints(canvas Canvas, c chart.Chart, points []layout.Point) {
	for i, p := range points {
		drawPoint(canvas, p, c.Entries[i].Color, c.Point.Size, c.Point.Mode)
	}
}

func drawPoint(canvas Canvas, p layout.Point, color chart.Color, size float64, mode chart.PointMode) {
	switch mode {
	case chart.PointModeCircle:
		canvas.DrawCircle(p, size/2, Fill(color))
	case chart.PointModeSquare:
		canvas.DrawRect(layout.Rect{X: p.X - size/2, Y: p.Y - size/2, W: size, H: size}, Fill(color))
	}
}

func drawCartesianLabels(canvas Canvas, c chart.Chart, l *layout.CartesianLayout) {
	drawLabels(canvas, c, l.Labels)
	drawLabels(canvas, c, l.ValueLabels)
}

// drawLabels draws each label, outline first when the entry has one.
func drawLabels(canvas Canvas, c chart.Chart, labels []layout.Label) {
	for _, l := range labels {
		e := c.Entries[l.Index]
		style := TextStyle{Size: c.LabelTextSize, Align: l.Align, Rotation: l.Rotation}

		fill, outline, outlineWidth := e.TextColor, e.LabelStrokeColor, e.LabelStrokeWidth
		if l.Value {
			fill, outline, outlineWidth = e.Color, e.ValueStrokeColor, e.ValueStrokeWidth
		}

		if outlineWidth > 0 && !outline.IsZero() {
			s := style
			s.Color, s.StrokeWidth = outline, outlineWidth
			canvas.DrawText(l.Text, l.Anchor, s)
		}
		style.Color = fill
		canvas.DrawText(l.Text, l.Anchor, style)
	}
}

func drawCaptions(canvas Canvas, c chart.Chart, g Geometry) {
	for _, item := range g.Captions {
		canvas.DrawRect(item.Swatch, Fill(c.Entries[item.Index].Color))
	}
	drawLabels(canvas, c, g.Labels)
}

func drawRadar(canvas Canvas, c chart.Chart, l *layout.RadarLayout) {
	border := Stroke(c.Radar.BorderLineColor, c.Radar.BorderLineSize)
	canvas.DrawCircle(l.Center, l.Radius, border)

	for _, v := range l.Vertices {
		e := c.Entries[v.Index]
		next := l.Vertices[v.Next]
		faded := e.Color.ScaleAlpha(radarFadeAlpha)

		canvas.DrawLine(v.Point, v.Border, border)

		if v.RingRadius > 0 {
			size := c.Radar.BorderLineSize
			canvas.DrawCircle(l.Center, v.RingRadius, Stroke(faded, size).WithDash(size, 2*size))
		}

		spoke := layout.Gradient{From: l.Center, To: v.Point, Stops: []layout.Stop{
			{Offset: 0, Color: e.Color.WithAlpha(0)},
			{Offset: 1, Color: faded},
		}}
		canvas.DrawLine(l.Center, v.Point, Stroke(e.Color, c.Radar.LineSize).WithGradient(spoke))

		edge := layout.Gradient{From: v.Point, To: next.Point, Stops: []layout.Stop{
			{Offset: 0, Color: e.Color},
			{Offset: 1, Color: c.Entries[next.Index].Color},
		}}
		canvas.DrawLine(v.Point, next.Point, Stroke(e.Color, c.Radar.LineSize).WithGradient(edge))

		drawPoint(canvas, v.Point, e.Color, c.Point.Size, c.Point.Mode)
	}
}

func drawGauge(canvas Canvas, c chart.Chart, g Geometry) {
	l := g.Gauge
	for i, r := range l.Rings {
		e := c.Entries[r.Index]
		canvas.DrawCircle(l.Center, r.Radius, Stroke(e.Color.WithAlpha(c.Gauge.LineAreaAlpha), l.StrokeWidth))
		if arc := g.GaugeArcs[i]; !arc.Empty() {
			canvas.DrawPath(arc, Stroke(e.Color, l.StrokeWidth).WithCap(CapRound))
		}
	}
}

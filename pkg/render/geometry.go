package render

import (
	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
	"github.com/matzehuels/microcharts/pkg/layout"
	"github.com/matzehuels/microcharts/pkg/layout/path"
)

// Geometry is the complete computed layout of one chart. Fields belonging
// to other kinds are left empty.
type Geometry struct {
	Kind   chart.Kind `json:"kind"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`

	// Cartesian kinds.
	Cartesian  *layout.CartesianLayout `json:"cartesian,omitempty"`
	PointAreas []layout.Area           `json:"point_areas,omitempty"`
	Bars       []layout.Rect           `json:"bars,omitempty"`
	BarAreas   []layout.Rect           `json:"bar_areas,omitempty"`
	Line       *path.Path              `json:"line,omitempty"`
	Area       *path.Path              `json:"area,omitempty"`
	LineFill   *layout.Gradient        `json:"line_fill,omitempty"`
	AreaFill   *layout.Gradient        `json:"area_fill,omitempty"`

	// Radial kinds.
	Donut       *layout.SectorLayout `json:"donut,omitempty"`
	SectorPaths []path.Path          `json:"sector_paths,omitempty"`
	Radar       *layout.RadarLayout  `json:"radar,omitempty"`
	Gauge       *layout.GaugeLayout  `json:"gauge,omitempty"`
	GaugeArcs   []path.Path          `json:"gauge_arcs,omitempty"`

	// Legend captions (donut, gauge) and caption labels (donut, gauge,
	// radar). Cartesian labels live in Cartesian.
	Captions []layout.Caption `json:"captions,omitempty"`
	Labels   []layout.Label   `json:"labels,omitempty"`
}

// Compute lays out c on a width×height canvas. It fails only for an
// unknown chart kind; other configuration is assumed valid (see
// [chart.Chart.Validate]).
func Compute(c chart.Chart, width, height float64, m layout.Measurer) (Geometry, error) {
	if m == nil {
		m = layout.ApproxMeasurer{}
	}
	g := Geometry{Kind: c.Kind, Width: width, Height: height}

	switch c.Kind {
	case chart.KindPoint:
		l := layout.Cartesian(c, width, height, m)
		g.Cartesian = &l
		if c.Point.AreaAlpha > 0 {
			g.PointAreas = layout.PointAreas(l, c.Entries, c.Point.Size, c.Point.AreaAlpha)
		}

	case chart.KindBar:
		l := layout.Cartesian(c, width, height, m)
		g.Cartesian = &l
		g.Bars = layout.Bars(l)
		if c.Bar.AreaAlpha > 0 {
			g.BarAreas = layout.BarAreas(l, c.Entries)
		}

	case chart.KindLine:
		l := layout.Cartesian(c, width, height, m)
		g.Cartesian = &l
		computeLine(&g, c, l)

	case chart.KindDonut:
		l := layout.Sectors(c, width, height)
		g.Donut = &l
		for _, s := range l.Sectors {
			g.SectorPaths = append(g.SectorPaths, path.Sector(l.Center, s.Start, s.End, l.Radius, l.HoleRadius))
		}
		right, left := layout.PartitionSectors(c.Entries)
		computeCaptions(&g, c, right, left, m)

	case chart.KindRadar:
		l := layout.Radar(c, width, height)
		g.Radar = &l
		for _, v := range l.Vertices {
			g.Labels = append(g.Labels,
				layout.CaptionLabels(v.Index, c.Entries[v.Index], v.LabelAnchor, v.LabelAlign, c.LabelTextSize, m)...)
		}

	case chart.KindRadialGauge:
		l := layout.Gauge(c, width, height)
		g.Gauge = &l
		for _, r := range l.Rings {
			g.GaugeArcs = append(g.GaugeArcs, path.Arc(l.Center, r.Radius, l.StartAngle, r.Sweep))
		}
		right, left := layout.PartitionGauge(c.Entries, l.Range)
		computeCaptions(&g, c, right, left, m)

	default:
		return Geometry{}, errors.New(errors.ErrCodeInvalidKind, "unknown chart kind %q", c.Kind)
	}
	return g, nil
}

func computeLine(g *Geometry, c chart.Chart, l layout.CartesianLayout) {
	if len(l.Points) < 2 {
		return
	}
	colors := make([]chart.Color, len(c.Entries))
	for i, e := range c.Entries {
		colors[i] = e.Color
	}

	if line := path.Line(l.Points, c.Line.Mode, l.Extent(), l.Orientation); !line.Empty() {
		fill := path.Gradient(l.Points, colors, 255, l.Orientation)
		g.Line, g.LineFill = &line, &fill
	}
	if c.Line.AreaAlpha > 0 {
		if area := path.Area(l.Points, c.Line.Mode, l.Extent(), l.Origin, l.Orientation); !area.Empty() {
			fill := path.Gradient(l.Points, colors, c.Line.AreaAlpha, l.Orientation)
			g.Area, g.AreaFill = &area, &fill
		}
	}
}

func computeCaptions(g *Geometry, c chart.Chart, right, left []int, m layout.Measurer) {
	g.Captions = append(g.Captions, layout.CaptionItems(layout.CaptionRight, right, g.Width, g.Height, c)...)
	g.Captions = append(g.Captions, layout.CaptionItems(layout.CaptionLeft, left, g.Width, g.Height, c)...)
	for _, item := range g.Captions {
		g.Labels = append(g.Labels,
			layout.CaptionLabels(item.Index, c.Entries[item.Index], item.Anchor, item.Align, c.LabelTextSize, m)...)
	}
}

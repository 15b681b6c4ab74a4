package layout

import (
	"math"

	"github.com/matzehuels/microcharts/pkg/chart"
)

// radarPoleTolerance is how close (in radians) a radar vertex must be to
// straight up or down for its label to be centered.
const radarPoleTolerance = 0.01

// radarStartAngle puts the first radar vertex at the top of the circle.
const radarStartAngle = math.Pi

func radialCenter(width, height float64) Point {
	return Point{width / 2, height / 2}
}

func outerRadius(c chart.Chart, width, height float64) float64 {
	return clampZero((math.Min(width, height) - 2*c.Margin) / 2)
}

// Sector is one slice of a donut. Start and End are fractions of the full
// circle accumulated in entry order; the angles are in radians, clockwise
// from the positive x axis, starting at the top (-π/2).
type Sector struct {
	Index      int     `json:"index"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

// Sweep returns the angular span of the sector in radians.
func (s Sector) Sweep() float64 { return s.EndAngle - s.StartAngle }

// Empty reports whether the sector has no area.
func (s Sector) Empty() bool { return s.End-s.Start < eps }

// SectorLayout is the geometry of a donut chart.
type SectorLayout struct {
	Center     Point    `json:"center"`
	Radius     float64  `json:"radius"`
	HoleRadius float64  `json:"hole_radius"`
	Sum        float64  `json:"sum"`
	Sectors    []Sector `json:"sectors"`
}

// FractionAngle converts a fraction of the circle to an angle in radians
// measured from the top of the circle.
func FractionAngle(f float64) float64 {
	return 2*math.Pi*f - math.Pi/2
}

// Sectors lays out a donut chart. Spans are proportional to |value|; when
// every value is zero each sector has zero width.
func Sectors(c chart.Chart, width, height float64) SectorLayout {
	l := SectorLayout{
		Center: radialCenter(width, height),
		Radius: outerRadius(c, width, height),
	}
	l.HoleRadius = l.Radius * c.Donut.HoleRadius
	// Magnitudes are summed relative to the largest one so the sum stays
	// finite for values near math.MaxFloat64.
	scale := 0.0
	for _, e := range c.Entries {
		scale = math.Max(scale, e.AbsValue())
	}
	scaled := 0.0
	if scale > 0 {
		for _, e := range c.Entries {
			scaled += e.AbsValue() / scale
		}
	}
	l.Sum = scaled * scale

	start := 0.0
	for i, e := range c.Entries {
		end := start
		if scaled > 0 {
			end = start + (e.AbsValue()/scale)/scaled
			if i == len(c.Entries)-1 {
				end = 1
			}
		}
		l.Sectors = append(l.Sectors, Sector{
			Index:      i,
			Start:      start,
			End:        end,
			StartAngle: FractionAngle(start),
			EndAngle:   FractionAngle(end),
		})
		start = end
	}
	return l
}

// RadarVertex is the geometry contributed by one radar entry.
type RadarVertex struct {
	Index int `json:"index"`
	// Angle is the rotation of the vertex, π at the top, growing clockwise.
	Angle float64 `json:"angle"`
	// Amount is the normalized distance from the center in [0, 1].
	Amount float64 `json:"amount"`
	Point  Point   `json:"point"`
	// Border is where the spoke through this vertex meets the outer ring.
	Border Point `json:"border"`
	// RingRadius is the radius of the dashed ring through the vertex.
	RingRadius float64 `json:"ring_radius"`
	// Next is the index of the vertex the edge from this one leads to.
	Next        int   `json:"next"`
	LabelAnchor Point `json:"label_anchor"`
	LabelAlign  Align `json:"label_align"`
}

// RadarLayout is the geometry of a radar chart.
type RadarLayout struct {
	Center   Point         `json:"center"`
	Radius   float64       `json:"radius"`
	Range    Range         `json:"range"`
	Vertices []RadarVertex `json:"vertices"`
}

// Radar lays out a radar chart. The outer radius leaves room for the
// tallest caption; vertices are spread evenly, the first one at the top.
func Radar(c chart.Chart, width, height float64) RadarLayout {
	l := RadarLayout{
		Center: radialCenter(width, height),
		Range:  ResolveAbsRange(c.Entries, c.MinValue, c.MaxValue),
	}
	n := len(c.Entries)
	if n == 0 {
		l.Radius = outerRadius(c, width, height)
		return l
	}

	captionHeight := 0.0
	for _, e := range c.Entries {
		h := 0.0
		if e.HasLabel() {
			h += c.LabelTextSize
		}
		if e.HasValueLabel() {
			h += c.LabelTextSize
		}
		captionHeight = max(captionHeight, h)
	}
	l.Radius = clampZero(outerRadius(c, width, height) - captionHeight)

	eff := ResolveRange(c.Entries, c.MinValue, c.MaxValue)
	step := 2 * math.Pi / float64(n)
	labelRadius := l.Radius + c.LabelTextSize + c.Point.Size/2

	for i, e := range c.Entries {
		angle := radarStartAngle + float64(i)*step
		amount := l.amount(e.Value)
		v := RadarVertex{
			Index:       i,
			Angle:       angle,
			Amount:      amount,
			Point:       l.polar(angle, l.Radius*amount),
			Border:      l.polar(angle, l.Radius*l.amount(eff.Max)),
			RingRadius:  l.Radius * amount,
			Next:        (i + 1) % n,
			LabelAnchor: l.polar(angle, labelRadius*l.amount(eff.Max)),
			LabelAlign:  radarAlign(angle),
		}
		l.Vertices = append(l.Vertices, v)
	}
	return l
}

func (l RadarLayout) amount(v float64) float64 {
	return math.Abs(l.Range.Normalize(v))
}

// polar rotates the downward vector (0, r) by angle about the center.
func (l RadarLayout) polar(angle, r float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{l.Center.X - r*sin, l.Center.Y + r*cos}
}

// radarAlign centers labels at the poles and right-aligns labels of
// vertices on the left half so text grows away from the chart.
func radarAlign(angle float64) Align {
	if math.Abs(math.Remainder(angle, math.Pi)) < radarPoleTolerance {
		return AlignCenter
	}
	if math.Sin(angle) > 0 {
		return AlignEnd
	}
	return AlignStart
}

// GaugeRing is one concentric arc of a radial gauge.
type GaugeRing struct {
	Index  int     `json:"index"`
	Radius float64 `json:"radius"`
	// Sweep is the arc extent in radians, clockwise from the start angle.
	Sweep float64 `json:"sweep"`
}

// SweepDegrees returns Sweep in degrees.
func (r GaugeRing) SweepDegrees() float64 { return r.Sweep * 180 / math.Pi }

// GaugeLayout is the geometry of a radial gauge chart.
type GaugeLayout struct {
	Center      Point       `json:"center"`
	Radius      float64     `json:"radius"`
	StrokeWidth float64     `json:"stroke_width"`
	Range       Range       `json:"range"`
	StartAngle  float64     `json:"start_angle"`
	Rings       []GaugeRing `json:"rings"`
}

// Gauge lays out a radial gauge. Ring i sits at radius (i+1)·2·stroke so
// rings are separated by one stroke width; the stroke is LineSize when
// positive, otherwise derived so all rings fit in the outer radius.
func Gauge(c chart.Chart, width, height float64) GaugeLayout {
	l := GaugeLayout{
		Center:     radialCenter(width, height),
		Radius:     outerRadius(c, width, height),
		Range:      ResolveAbsRange(c.Entries, c.MinValue, c.MaxValue),
		StartAngle: c.Gauge.StartAngle * math.Pi / 180,
	}

	n := float64(len(c.Entries))
	l.StrokeWidth = c.Gauge.LineSize
	if l.StrokeWidth <= 0 {
		l.StrokeWidth = l.Radius / ((n + 1) * 2)
	}
	spacing := l.StrokeWidth * 2

	for i, e := range c.Entries {
		sweep := 2 * math.Pi * l.Range.Normalize(e.AbsValue())
		l.Rings = append(l.Rings, GaugeRing{
			Index:  i,
			Radius: float64(i+1) * spacing,
			Sweep:  sweep,
		})
	}
	return l
}

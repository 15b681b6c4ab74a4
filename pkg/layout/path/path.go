// Package path builds vector outlines from chart geometry: polylines and
// splines through data points, the areas under them, donut sectors and
// gauge arcs.
//
// A [Path] is a list of drawing commands in canvas coordinates, close to
// what SVG path data and raster contexts consume. [Path.SVG] serializes it
// to SVG path data.
package path

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/microcharts/pkg/layout"
)

const eps = 1e-9

// Op is a path command.
type Op string

// Path commands.
const (
	OpMove  Op = "M"
	OpLine  Op = "L"
	OpCubic Op = "C"
	OpArc   Op = "A"
	OpClose Op = "Z"
)

// Segment is one path command. Move and Line use To; Cubic uses C1, C2 and
// To; Arc uses Arc and To (the arc end point). Close uses nothing.
type Segment struct {
	Op  Op           `json:"op"`
	C1  layout.Point `json:"c1,omitzero"`
	C2  layout.Point `json:"c2,omitzero"`
	To  layout.Point `json:"to,omitzero"`
	Arc *ArcParams   `json:"arc,omitempty"`
}

// ArcParams describes a circular arc by its center. Angles are in radians,
// clockwise on screen from the positive x axis; a negative Sweep runs
// counter-clockwise.
type ArcParams struct {
	Center layout.Point `json:"center"`
	Radius float64      `json:"radius"`
	Start  float64      `json:"start"`
	Sweep  float64      `json:"sweep"`
}

// PointAt returns the point on the arc's circle at angle a.
func (a ArcParams) PointAt(angle float64) layout.Point {
	sin, cos := math.Sincos(angle)
	return layout.Point{X: a.Center.X + a.Radius*cos, Y: a.Center.Y + a.Radius*sin}
}

// Path is a sequence of segments. EvenOdd selects the even-odd fill rule,
// used by full-circle donut rings.
type Path struct {
	Segments []Segment `json:"segments"`
	EvenOdd  bool      `json:"even_odd,omitempty"`

	cur    layout.Point
	hasCur bool
}

// Empty reports whether the path draws nothing.
func (p *Path) Empty() bool { return len(p.Segments) == 0 }

// Count returns the number of segments with the given op.
func (p *Path) Count(op Op) int {
	n := 0
	for _, s := range p.Segments {
		if s.Op == op {
			n++
		}
	}
	return n
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt layout.Point) {
	p.Segments = append(p.Segments, Segment{Op: OpMove, To: pt})
	p.cur, p.hasCur = pt, true
}

// LineTo adds a straight segment to pt.
func (p *Path) LineTo(pt layout.Point) {
	if !p.hasCur {
		p.MoveTo(pt)
		return
	}
	p.Segments = append(p.Segments, Segment{Op: OpLine, To: pt})
	p.cur = pt
}

// CubicTo adds a cubic Bézier segment.
func (p *Path) CubicTo(c1, c2, pt layout.Point) {
	if !p.hasCur {
		p.MoveTo(c1)
	}
	p.Segments = append(p.Segments, Segment{Op: OpCubic, C1: c1, C2: c2, To: pt})
	p.cur = pt
}

// ArcTo adds a circular arc. When the current point is not the arc's start
// point a straight segment joins them first.
func (p *Path) ArcTo(center layout.Point, radius, start, sweep float64) {
	a := ArcParams{Center: center, Radius: radius, Start: start, Sweep: sweep}
	from := a.PointAt(start)
	switch {
	case !p.hasCur:
		p.MoveTo(from)
	case dist(p.cur, from) > 1e-6:
		p.LineTo(from)
	}
	to := a.PointAt(start + sweep)
	p.Segments = append(p.Segments, Segment{Op: OpArc, To: to, Arc: &a})
	p.cur = to
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.hasCur {
		return
	}
	p.Segments = append(p.Segments, Segment{Op: OpClose})
	p.hasCur = false
}

// SVG serializes the path to SVG path data. Arcs of a full turn or more are
// split in two, since a single SVG arc cannot start and end at one point.
func (p *Path) SVG() string {
	var b strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case OpMove, OpLine:
			b.WriteString(string(s.Op))
			writePoint(&b, s.To)
		case OpCubic:
			b.WriteString("C")
			writePoint(&b, s.C1)
			b.WriteByte(' ')
			writePoint(&b, s.C2)
			b.WriteByte(' ')
			writePoint(&b, s.To)
		case OpArc:
			writeArc(&b, *s.Arc)
		case OpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writeArc(b *strings.Builder, a ArcParams) {
	if math.Abs(a.Sweep) >= 2*math.Pi-eps {
		half := a.Sweep / 2
		writeArcPart(b, a, a.Start+half, half)
		b.WriteByte(' ')
		writeArcPart(b, a, a.Start+a.Sweep, half)
		return
	}
	writeArcPart(b, a, a.Start+a.Sweep, a.Sweep)
}

func writeArcPart(b *strings.Builder, a ArcParams, end, sweep float64) {
	large, clockwise := 0, 0
	if math.Abs(sweep) > math.Pi {
		large = 1
	}
	if sweep > 0 {
		clockwise = 1
	}
	r := FormatFloat(a.Radius)
	b.WriteString("A" + r + " " + r + " 0 " + strconv.Itoa(large) + " " + strconv.Itoa(clockwise) + " ")
	writePoint(b, a.PointAt(end))
}

func writePoint(b *strings.Builder, p layout.Point) {
	b.WriteString(FormatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(FormatFloat(p.Y))
}

// FormatFloat formats v for SVG output, rounded to hundredths of a unit.
func FormatFloat(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func dist(a, b layout.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

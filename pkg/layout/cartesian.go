package layout

import "github.com/matzehuels/microcharts/pkg/chart"

// valueLabelOffset is the gap between a point and the baseline of a value
// label placed above it.
const valueLabelOffset = 20

// Panels holds the gutter sizes around the plot body. Vertical charts use
// Header (value labels) and Footer (category labels); horizontal charts use
// Left (category labels) and Right (value labels). Unused fields are zero.
type Panels struct {
	Header float64 `json:"header,omitempty"`
	Footer float64 `json:"footer,omitempty"`
	Left   float64 `json:"left,omitempty"`
	Right  float64 `json:"right,omitempty"`
}

// CartesianLayout is the geometry shared by point, bar and line charts.
type CartesianLayout struct {
	Orientation chart.Orientation `json:"orientation"`
	Width       float64           `json:"width"`
	Height      float64           `json:"height"`
	Margin      float64           `json:"margin"`
	Range       Range             `json:"range"`
	Panels      Panels            `json:"panels"`
	// Item is the slot of one entry: the bar thickness along the category
	// axis and the full value extent along the value axis.
	Item Size `json:"item"`
	// Body is the area values are mapped onto.
	Body Rect `json:"body"`
	// Origin is the canvas coordinate of value zero on the value axis
	// (y for vertical charts, x for horizontal ones), clamped to the body.
	Origin      float64 `json:"origin"`
	Points      []Point `json:"points"`
	Labels      []Label `json:"labels,omitempty"`
	ValueLabels []Label `json:"value_labels,omitempty"`
}

// Horizontal reports whether the value axis runs along x.
func (l CartesianLayout) Horizontal() bool {
	return l.Orientation == chart.Horizontal
}

// Extent returns the item size along the category axis.
func (l CartesianLayout) Extent() float64 {
	if l.Horizontal() {
		return l.Item.H
	}
	return l.Item.W
}

// OriginLine returns the segment through the origin across the body.
func (l CartesianLayout) OriginLine() (Point, Point) {
	if l.Horizontal() {
		return Point{l.Origin, l.Body.Y}, Point{l.Origin, l.Body.Bottom()}
	}
	return Point{l.Body.X, l.Origin}, Point{l.Body.Right(), l.Origin}
}

// Cartesian lays out c on a width×height canvas. An empty chart yields a
// layout with no points.
func Cartesian(c chart.Chart, width, height float64, m Measurer) CartesianLayout {
	l := CartesianLayout{
		Orientation: c.Orientation,
		Width:       width,
		Height:      height,
		Margin:      c.Margin,
		Range:       ResolveRange(c.Entries, c.MinValue, c.MaxValue),
	}
	if l.Orientation != chart.Horizontal {
		l.Orientation = chart.Vertical
	}

	labelSizes := measureAll(c.Entries, c.LabelTextSize, m, func(e chart.Entry) string { return e.Label })
	valueSizes := measureAll(c.Entries, c.LabelTextSize, m, func(e chart.Entry) string { return e.ValueLabel })

	if l.Horizontal() {
		l.layoutHorizontal(c, labelSizes, valueSizes)
	} else {
		l.layoutVertical(c, valueSizes, m)
	}
	return l
}

func (l *CartesianLayout) layoutVertical(c chart.Chart, valueSizes []Size, m Measurer) {
	n := float64(len(c.Entries))
	margin := c.Margin

	l.Panels.Footer = margin
	if c.HasLabels() {
		l.Panels.Footer += c.LabelTextSize + margin
	}
	l.Panels.Header = margin
	if w := maxWidth(valueSizes); w > 0 {
		l.Panels.Header += w + margin
	}

	if n > 0 {
		l.Item.W = clampZero((l.Width - (n+1)*margin) / n)
	}
	l.Item.H = clampZero(l.Height - margin - l.Panels.Footer - l.Panels.Header)
	l.Body = Rect{X: margin, Y: l.Panels.Header, W: clampZero(l.Width - 2*margin), H: l.Item.H}
	l.Origin = l.verticalOrigin()

	l.Points = make([]Point, len(c.Entries))
	for i, e := range c.Entries {
		l.Points[i] = Point{
			X: margin + l.Item.W/2 + float64(i)*(l.Item.W+margin),
			Y: l.Panels.Header + l.Range.fromMax(e.Value)*l.Item.H,
		}
	}

	baseline := l.Height - (margin + c.LabelTextSize/2)
	for i, e := range c.Entries {
		p := l.Points[i]
		if e.HasLabel() {
			text, sz := FitLabel(e.Label, c.LabelTextSize, l.Item.W, m)
			l.Labels = append(l.Labels, Label{
				Index:  i,
				Text:   text,
				Anchor: Point{p.X, baseline},
				Align:  AlignCenter,
				Size:   sz,
			})
		}
		if e.HasValueLabel() {
			l.ValueLabels = append(l.ValueLabels, l.verticalValueLabel(c, i, valueSizes[i], m))
		}
	}
}

// verticalValueLabel places the value label of entry i according to the
// chart's value placement. Unrotated labels are truncated to the item width.
func (l *CartesianLayout) verticalValueLabel(c chart.Chart, i int, sz Size, m Measurer) Label {
	p, e := l.Points[i], c.Entries[i]
	if c.ValuePlacement == chart.ValueAbovePoint || c.ValuePlacement == chart.ValueTop {
		text, fit := FitLabel(e.ValueLabel, c.LabelTextSize, l.Item.W, m)
		y := p.Y - valueLabelOffset
		if c.ValuePlacement == chart.ValueTop {
			y = c.Margin
		}
		return Label{Index: i, Text: text, Anchor: Point{p.X, y}, Align: AlignCenter, Size: fit, Value: true}
	}
	// Reads top to bottom, glyphs centered on the point's column.
	return Label{
		Index:    i,
		Text:     e.ValueLabel,
		Anchor:   Point{p.X - sz.H/2, c.Margin},
		Align:    AlignStart,
		Rotation: 90,
		Size:     sz,
		Value:    true,
	}
}

func (l *CartesianLayout) layoutHorizontal(c chart.Chart, labelSizes, valueSizes []Size) {
	n := float64(len(c.Entries))
	margin := c.Margin

	l.Panels.Left = margin
	if w := maxWidth(labelSizes); w > 0 {
		l.Panels.Left += w + margin
	}
	l.Panels.Right = margin
	if w := maxWidth(valueSizes); w > 0 {
		l.Panels.Right += w + margin
	}

	if n > 0 {
		l.Item.H = clampZero((l.Height - (n+1)*margin) / n)
	}
	l.Item.W = clampZero(l.Width - margin - l.Panels.Left - l.Panels.Right)
	l.Body = Rect{X: l.Panels.Left, Y: margin, W: l.Item.W, H: clampZero(l.Height - 2*margin)}
	l.Origin = l.horizontalOrigin()

	l.Points = make([]Point, len(c.Entries))
	for i, e := range c.Entries {
		l.Points[i] = Point{
			X: l.Panels.Left + l.Range.Normalize(e.Value)*l.Item.W,
			Y: margin + l.Item.H/2 + float64(i)*(l.Item.H+margin),
		}
	}

	valueX := l.Width - l.Panels.Right + margin
	for i, e := range c.Entries {
		p := l.Points[i]
		if e.HasLabel() {
			sz := labelSizes[i]
			l.Labels = append(l.Labels, Label{
				Index:  i,
				Text:   e.Label,
				Anchor: Point{l.Panels.Left - margin, p.Y + sz.H/2},
				Align:  AlignEnd,
				Size:   sz,
			})
		}
		if e.HasValueLabel() {
			sz := valueSizes[i]
			l.ValueLabels = append(l.ValueLabels, Label{
				Index:  i,
				Text:   e.ValueLabel,
				Anchor: Point{valueX, p.Y + sz.H/2},
				Align:  AlignStart,
				Size:   sz,
				Value:  true,
			})
		}
	}
}

// verticalOrigin places value zero on the y axis. All-negative ranges put
// it on the header edge, all-positive ranges on the bottom of the body.
func (l CartesianLayout) verticalOrigin() float64 {
	header, h := l.Panels.Header, l.Item.H
	switch {
	case l.Range.Max <= 0:
		return header
	case l.Range.Min > 0:
		return header + h
	}
	return header + l.Range.fromMax(0)*h
}

// horizontalOrigin mirrors verticalOrigin on the x axis, where larger
// values sit further right.
func (l CartesianLayout) horizontalOrigin() float64 {
	left, w := l.Panels.Left, l.Item.W
	switch {
	case l.Range.Min > 0:
		return left
	case l.Range.Max <= 0:
		return left + w
	}
	return left + l.Range.Normalize(0)*w
}

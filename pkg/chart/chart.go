package chart

import (
	"math"

	"github.com/matzehuels/microcharts/pkg/errors"
)

// Shared defaults.
const (
	DefaultMargin        = 20
	DefaultLabelTextSize = 16
)

// Chart is the full description of one chart: its kind, its entries and the
// options of every kind. Only the options of Kind are read by the layout.
type Chart struct {
	Kind          Kind        `json:"kind" toml:"kind"`
	Entries       []Entry     `json:"entries" toml:"entries"`
	Margin        float64     `json:"margin" toml:"margin"`
	LabelTextSize float64     `json:"label_text_size" toml:"label_text_size"`
	MinValue      *float64    `json:"min_value,omitempty" toml:"min_value"`
	MaxValue      *float64    `json:"max_value,omitempty" toml:"max_value"`
	Background    Color       `json:"background" toml:"background"`
	Orientation   Orientation `json:"orientation" toml:"orientation"`
	// ValuePlacement positions value labels of vertical point, bar and
	// line charts.
	ValuePlacement ValuePlacement `json:"value_placement" toml:"value_placement"`

	Point PointOptions `json:"point" toml:"point"`
	Line  LineOptions  `json:"line" toml:"line"`
	Bar   BarOptions   `json:"bar" toml:"bar"`
	Donut DonutOptions `json:"donut" toml:"donut"`
	Radar RadarOptions `json:"radar" toml:"radar"`
	Gauge GaugeOptions `json:"gauge" toml:"gauge"`
}

// PointOptions configures point markers and the per-point gradient area.
type PointOptions struct {
	Size      float64   `json:"size" toml:"size"`
	Mode      PointMode `json:"mode" toml:"mode"`
	AreaAlpha uint8     `json:"area_alpha" toml:"area_alpha"`
}

// LineOptions configures the line of a line chart and the area below it.
type LineOptions struct {
	Size      float64  `json:"size" toml:"size"`
	Mode      LineMode `json:"mode" toml:"mode"`
	AreaAlpha uint8    `json:"area_alpha" toml:"area_alpha"`
}

// BarOptions configures bar charts.
type BarOptions struct {
	// AreaAlpha is the alpha of the background area drawn behind each bar.
	// Zero disables it.
	AreaAlpha uint8 `json:"area_alpha" toml:"area_alpha"`
}

// DonutOptions configures donut charts.
type DonutOptions struct {
	// HoleRadius is the inner radius as a fraction of the outer radius.
	// Zero draws a pie.
	HoleRadius float64 `json:"hole_radius" toml:"hole_radius"`
}

// RadarOptions configures radar charts.
type RadarOptions struct {
	LineSize        float64 `json:"line_size" toml:"line_size"`
	BorderLineColor Color   `json:"border_line_color" toml:"border_line_color"`
	BorderLineSize  float64 `json:"border_line_size" toml:"border_line_size"`
}

// GaugeOptions configures radial gauge charts.
type GaugeOptions struct {
	// LineSize is the ring stroke width. Zero or negative derives it from
	// the radius and the entry count.
	LineSize      float64 `json:"line_size" toml:"line_size"`
	LineAreaAlpha uint8   `json:"line_area_alpha" toml:"line_area_alpha"`
	// StartAngle is in degrees, clockwise from the positive x axis.
	StartAngle float64 `json:"start_angle" toml:"start_angle"`
}

// New returns a chart of the given kind with that kind's defaults.
// Entries are copied.
func New(kind Kind, entries ...Entry) Chart {
	c := Chart{
		Kind:           kind,
		Entries:        append([]Entry(nil), entries...),
		Margin:         DefaultMargin,
		LabelTextSize:  DefaultLabelTextSize,
		Background:     White,
		Orientation:    Vertical,
		ValuePlacement: ValueHeader,
		Point:          PointOptions{Size: 14, Mode: PointModeCircle, AreaAlpha: 100},
		Line:           LineOptions{Size: 3, Mode: LineModeSpline, AreaAlpha: 32},
		Bar:            BarOptions{AreaAlpha: 32},
		Donut:          DonutOptions{HoleRadius: 0},
		Radar: RadarOptions{
			LineSize:        3,
			BorderLineColor: LightGray.WithAlpha(110),
			BorderLineSize:  2,
		},
		Gauge: GaugeOptions{LineSize: -1, LineAreaAlpha: 52, StartAngle: -90},
	}

	switch kind {
	case KindLine:
		c.Point.Size = 10
		c.Point.AreaAlpha = 0
	case KindBar:
		c.Point.Mode = PointModeNone
	}
	return c
}

// WithKind returns c switched to kind k. Kind-dependent point options
// still at the defaults of the current kind take the defaults of k; values
// set explicitly are kept.
func (c Chart) WithKind(k Kind) Chart {
	from, to := New(c.Kind).Point, New(k).Point
	if c.Point.Mode == from.Mode {
		c.Point.Mode = to.Mode
	}
	if c.Point.Size == from.Size {
		c.Point.Size = to.Size
	}
	if c.Point.AreaAlpha == from.AreaAlpha {
		c.Point.AreaAlpha = to.AreaAlpha
	}
	c.Kind = k
	return c
}

// IsHorizontal reports whether the value axis runs left to right.
func (c Chart) IsHorizontal() bool {
	return c.Orientation == Horizontal
}

// HasLabels reports whether any entry carries a category label.
func (c Chart) HasLabels() bool {
	for _, e := range c.Entries {
		if e.HasLabel() {
			return true
		}
	}
	return false
}

// HasValueLabels reports whether any entry carries a value label.
func (c Chart) HasValueLabels() bool {
	for _, e := range c.Entries {
		if e.HasValueLabel() {
			return true
		}
	}
	return false
}

// Validate checks the chart at an input boundary. The layout engines assume
// a chart that passes Validate.
func (c Chart) Validate() error {
	if !c.Kind.IsCartesian() && !c.Kind.IsRadial() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown chart kind %q", c.Kind)
	}
	if c.Orientation != Vertical && c.Orientation != Horizontal {
		return errors.New(errors.ErrCodeInvalidOrientation, "unknown orientation %q", c.Orientation)
	}
	if _, err := ParsePointMode(string(c.Point.Mode)); err != nil {
		return err
	}
	if _, err := ParseLineMode(string(c.Line.Mode)); err != nil {
		return err
	}
	if _, err := ParseValuePlacement(string(c.ValuePlacement)); err != nil {
		return err
	}

	if !finite(c.Margin) || c.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "margin must be a non-negative number, got %v", c.Margin)
	}
	if !finite(c.LabelTextSize) || c.LabelTextSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "label text size must be positive, got %v", c.LabelTextSize)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"point size", c.Point.Size},
		{"line size", c.Line.Size},
		{"radar line size", c.Radar.LineSize},
		{"radar border size", c.Radar.BorderLineSize},
	} {
		if !finite(f.v) || f.v < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be a non-negative number, got %v", f.name, f.v)
		}
	}
	if !finite(c.Gauge.LineSize) || !finite(c.Gauge.StartAngle) {
		return errors.New(errors.ErrCodeInvalidInput, "gauge options must be finite")
	}
	if !finite(c.Donut.HoleRadius) || c.Donut.HoleRadius < 0 || c.Donut.HoleRadius > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "donut hole radius must be within [0, 1], got %v", c.Donut.HoleRadius)
	}
	if c.MinValue != nil && !inRange(*c.MinValue) {
		return errors.New(errors.ErrCodeInvalidInput, "min value must be finite with magnitude at most %g", errors.MaxMagnitude)
	}
	if c.MaxValue != nil && !inRange(*c.MaxValue) {
		return errors.New(errors.ErrCodeInvalidInput, "max value must be finite with magnitude at most %g", errors.MaxMagnitude)
	}

	if len(c.Entries) > errors.MaxEntries {
		return errors.New(errors.ErrCodeInvalidInput, "too many entries (%d, max %d)", len(c.Entries), errors.MaxEntries)
	}
	for i, e := range c.Entries {
		if !inRange(e.Value) {
			return errors.New(errors.ErrCodeInvalidInput, "entry %d: value must be finite with magnitude at most %g", i, errors.MaxMagnitude)
		}
		if err := errors.ValidateLabel(e.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "entry %d: label", i)
		}
		if err := errors.ValidateLabel(e.ValueLabel); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "entry %d: value label", i)
		}
		if e.LabelStrokeWidth < 0 || e.ValueStrokeWidth < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "entry %d: stroke widths must be non-negative", i)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func inRange(v float64) bool {
	return finite(v) && math.Abs(v) <= errors.MaxMagnitude
}

package chart

import (
	"math"
	"testing"

	"github.com/matzehuels/microcharts/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	tests := []struct {
		kind      Kind
		pointSize float64
		pointMode PointMode
	}{
		{KindPoint, 14, PointModeCircle},
		{KindLine, 10, PointModeCircle},
		{KindBar, 14, PointModeNone},
		{KindRadar, 14, PointModeCircle},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			c := New(tt.kind)
			if c.Margin != 20 || c.LabelTextSize != 16 {
				t.Errorf("margin/text = %v/%v, want 20/16", c.Margin, c.LabelTextSize)
			}
			if c.Point.Size != tt.pointSize {
				t.Errorf("Point.Size = %v, want %v", c.Point.Size, tt.pointSize)
			}
			if c.Point.Mode != tt.pointMode {
				t.Errorf("Point.Mode = %v, want %v", c.Point.Mode, tt.pointMode)
			}
			if err := c.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{NewEntry(1), NewEntry(2)}
	c := New(KindBar, entries...)
	entries[0].Value = 99
	if c.Entries[0].Value != 1 {
		t.Errorf("New should copy entries, got %v", c.Entries[0].Value)
	}
}

func TestKindDefaults(t *testing.T) {
	c := New(KindRadialGauge)
	if c.Gauge.StartAngle != -90 || c.Gauge.LineAreaAlpha != 52 || c.Gauge.LineSize > 0 {
		t.Errorf("gauge defaults = %+v", c.Gauge)
	}

	r := New(KindRadar)
	if r.Radar.BorderLineColor != LightGray.WithAlpha(110) || r.Radar.BorderLineSize != 2 || r.Radar.LineSize != 3 {
		t.Errorf("radar defaults = %+v", r.Radar)
	}

	l := New(KindLine)
	if l.Line.Mode != LineModeSpline || l.Line.Size != 3 || l.Line.AreaAlpha != 32 {
		t.Errorf("line defaults = %+v", l.Line)
	}
}

func TestWithKind(t *testing.T) {
	tests := []struct {
		name   string
		from   Chart
		to     Kind
		want   PointOptions
		modify func(*Chart)
	}{
		{"line to bar", New(KindLine), KindBar, PointOptions{Size: 14, Mode: PointModeNone, AreaAlpha: 100}, nil},
		{"bar to line", New(KindBar), KindLine, PointOptions{Size: 10, Mode: PointModeCircle, AreaAlpha: 0}, nil},
		{"line to point", New(KindLine), KindPoint, PointOptions{Size: 14, Mode: PointModeCircle, AreaAlpha: 100}, nil},
		{"explicit size kept", New(KindLine), KindBar, PointOptions{Size: 6, Mode: PointModeNone, AreaAlpha: 100},
			func(c *Chart) { c.Point.Size = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := tt.from
			if tt.modify != nil {
				tt.modify(&from)
			}
			got := from.WithKind(tt.to)
			if got.Kind != tt.to {
				t.Errorf("Kind = %s, want %s", got.Kind, tt.to)
			}
			if got.Point != tt.want {
				t.Errorf("Point = %+v, want %+v", got.Point, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"point", KindPoint},
		{"BAR", KindBar},
		{" line ", KindLine},
		{"pie", KindDonut},
		{"gauge", KindRadialGauge},
		{"radialgauge", KindRadialGauge},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseKind("scatter"); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("ParseKind(scatter) error = %v, want INVALID_KIND", err)
	}
}

func TestKindClassification(t *testing.T) {
	for _, k := range Kinds() {
		if k.IsCartesian() == k.IsRadial() {
			t.Errorf("%s must be exactly one of cartesian or radial", k)
		}
		if k.Description() == "" {
			t.Errorf("%s has no description", k)
		}
	}
}

func TestParseModes(t *testing.T) {
	if m, err := ParsePointMode("Square"); err != nil || m != PointModeSquare {
		t.Errorf("ParsePointMode(Square) = %v, %v", m, err)
	}
	if m, err := ParseLineMode("straight"); err != nil || m != LineModeStraight {
		t.Errorf("ParseLineMode(straight) = %v, %v", m, err)
	}
	if o, err := ParseOrientation("h"); err != nil || o != Horizontal {
		t.Errorf("ParseOrientation(h) = %v, %v", o, err)
	}
	if p, err := ParseValuePlacement(" Point "); err != nil || p != ValueAbovePoint {
		t.Errorf("ParseValuePlacement(Point) = %v, %v", p, err)
	}
	if _, err := ParsePointMode("triangle"); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("ParsePointMode(triangle) error = %v", err)
	}
	if _, err := ParseOrientation("diagonal"); !errors.Is(err, errors.ErrCodeInvalidOrientation) {
		t.Errorf("ParseOrientation(diagonal) error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	nan := math.NaN()
	huge := math.MaxFloat64 / 2

	tests := []struct {
		name   string
		modify func(*Chart)
		code   errors.Code
	}{
		{"unknown kind", func(c *Chart) { c.Kind = "scatter" }, errors.ErrCodeInvalidKind},
		{"bad orientation", func(c *Chart) { c.Orientation = "diagonal" }, errors.ErrCodeInvalidOrientation},
		{"bad point mode", func(c *Chart) { c.Point.Mode = "star" }, errors.ErrCodeInvalidMode},
		{"bad line mode", func(c *Chart) { c.Line.Mode = "" }, errors.ErrCodeInvalidMode},
		{"bad value placement", func(c *Chart) { c.ValuePlacement = "inside" }, errors.ErrCodeInvalidMode},
		{"negative margin", func(c *Chart) { c.Margin = -1 }, errors.ErrCodeInvalidInput},
		{"zero text size", func(c *Chart) { c.LabelTextSize = 0 }, errors.ErrCodeInvalidInput},
		{"negative point size", func(c *Chart) { c.Point.Size = -2 }, errors.ErrCodeInvalidInput},
		{"hole too large", func(c *Chart) { c.Donut.HoleRadius = 1.5 }, errors.ErrCodeInvalidInput},
		{"nan min", func(c *Chart) { c.MinValue = &nan }, errors.ErrCodeInvalidInput},
		{"nan value", func(c *Chart) { c.Entries[0].Value = nan }, errors.ErrCodeInvalidInput},
		{"huge value", func(c *Chart) { c.Entries[0].Value = -huge }, errors.ErrCodeInvalidInput},
		{"huge max", func(c *Chart) { c.MaxValue = &huge }, errors.ErrCodeInvalidInput},
		{"control label", func(c *Chart) { c.Entries[1].Label = "a\tb" }, errors.ErrCodeInvalidInput},
		{"negative stroke", func(c *Chart) { c.Entries[0].LabelStrokeWidth = -1 }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(KindLine, NewEntry(1), NewEntry(-2))
			tt.modify(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestValidateAcceptsOutOfRangeValues(t *testing.T) {
	lo, hi := 0.0, 10.0
	c := New(KindBar, NewEntry(-50), NewEntry(500))
	c.MinValue, c.MaxValue = &lo, &hi
	if err := c.Validate(); err != nil {
		t.Errorf("values outside the override range must be accepted: %v", err)
	}
}

func TestValidateAcceptsMaxMagnitude(t *testing.T) {
	c := New(KindDonut, NewEntry(errors.MaxMagnitude), NewEntry(-errors.MaxMagnitude))
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil at the magnitude bound", err)
	}
}

func TestHasLabels(t *testing.T) {
	c := New(KindPoint, NewEntry(1), Entry{Value: 2, ValueLabel: "2"})
	if c.HasLabels() {
		t.Error("HasLabels() = true, want false")
	}
	if !c.HasValueLabels() {
		t.Error("HasValueLabels() = false, want true")
	}
}

package chart

import (
	"strings"

	"github.com/matzehuels/microcharts/pkg/errors"
)

// Kind selects the layout engine and drawing routine for a chart.
type Kind string

// Chart kinds.
const (
	KindPoint       Kind = "point"
	KindBar         Kind = "bar"
	KindLine        Kind = "line"
	KindDonut       Kind = "donut"
	KindRadar       Kind = "radar"
	KindRadialGauge Kind = "radialgauge"
)

var kindAliases = map[string]Kind{
	"pie":   KindDonut,
	"gauge": KindRadialGauge,
}

var kindDescriptions = map[Kind]string{
	KindPoint:       "points with a gradient area down to the origin",
	KindBar:         "bars grown from the origin, with optional background areas",
	KindLine:        "straight or spline line with a filled area",
	KindDonut:       "proportional sectors with an optional hole and side captions",
	KindRadar:       "polygon over equally spaced spokes",
	KindRadialGauge: "concentric arcs swept in proportion to each value",
}

// Kinds returns all chart kinds in display order.
func Kinds() []Kind {
	return []Kind{KindPoint, KindBar, KindLine, KindDonut, KindRadar, KindRadialGauge}
}

// ParseKind parses a kind name, case-insensitively. "pie" and "gauge" are
// accepted as aliases.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown chart kind %q (want one of %s)", s, joinKinds())
}

func joinKinds() string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// Description returns a one-line human description of the kind.
func (k Kind) Description() string {
	return kindDescriptions[k]
}

// IsCartesian reports whether k is laid out on a value axis.
func (k Kind) IsCartesian() bool {
	return k == KindPoint || k == KindBar || k == KindLine
}

// IsRadial reports whether k is laid out around a center.
func (k Kind) IsRadial() bool {
	return k == KindDonut || k == KindRadar || k == KindRadialGauge
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Orientation is the direction of the value axis of cartesian charts.
type Orientation string

// Orientations.
const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// ParseOrientation parses "vertical" or "horizontal" ("v" and "h" also work).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return "", errors.New(errors.ErrCodeInvalidOrientation, "unknown orientation %q (want vertical or horizontal)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// PointMode is the marker drawn at each data point.
type PointMode string

// Point modes.
const (
	PointModeNone   PointMode = "none"
	PointModeCircle PointMode = "circle"
	PointModeSquare PointMode = "square"
)

// ParsePointMode parses a point mode name.
func ParsePointMode(s string) (PointMode, error) {
	switch m := PointMode(strings.ToLower(strings.TrimSpace(s))); m {
	case PointModeNone, PointModeCircle, PointModeSquare:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown point mode %q (want none, circle or square)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PointMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePointMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// LineMode is how consecutive points of a line chart are connected.
type LineMode string

// Line modes.
const (
	LineModeNone     LineMode = "none"
	LineModeStraight LineMode = "straight"
	LineModeSpline   LineMode = "spline"
)

// ParseLineMode parses a line mode name.
func ParseLineMode(s string) (LineMode, error) {
	switch m := LineMode(strings.ToLower(strings.TrimSpace(s))); m {
	case LineModeNone, LineModeStraight, LineModeSpline:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown line mode %q (want none, straight or spline)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *LineMode) UnmarshalText(text []byte) error {
	parsed, err := ParseLineMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ValuePlacement is where vertical cartesian charts draw value labels.
// Horizontal charts always use the right panel.
type ValuePlacement string

// Value label placements.
const (
	// ValueHeader rotates labels into the header panel above each column.
	ValueHeader ValuePlacement = "header"
	// ValueAbovePoint draws labels unrotated just above each point.
	ValueAbovePoint ValuePlacement = "point"
	// ValueTop draws labels unrotated along the top margin.
	ValueTop ValuePlacement = "top"
)

// ParseValuePlacement parses a value label placement name.
func ParseValuePlacement(s string) (ValuePlacement, error) {
	switch p := ValuePlacement(strings.ToLower(strings.TrimSpace(s))); p {
	case ValueHeader, ValueAbovePoint, ValueTop:
		return p, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown value placement %q (want header, point or top)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ValuePlacement) UnmarshalText(text []byte) error {
	parsed, err := ParseValuePlacement(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package chart

import "math"

// Default entry presentation.
const DefaultStrokeWidth = 2

// Entry is one data point of a chart.
type Entry struct {
	Value      float64 `json:"value" toml:"value"`
	Label      string  `json:"label,omitempty" toml:"label"`
	ValueLabel string  `json:"value_label,omitempty" toml:"value_label"`

	Color     Color `json:"color" toml:"color"`
	TextColor Color `json:"text_color" toml:"text_color"`

	LabelStrokeColor Color   `json:"label_stroke_color,omitempty" toml:"label_stroke_color"`
	LabelStrokeWidth float64 `json:"label_stroke_width,omitempty" toml:"label_stroke_width"`
	ValueStrokeColor Color   `json:"value_stroke_color,omitempty" toml:"value_stroke_color"`
	ValueStrokeWidth float64 `json:"value_stroke_width,omitempty" toml:"value_stroke_width"`
}

// NewEntry returns an entry with the default presentation: black fill, gray
// text, no label outlines.
func NewEntry(value float64) Entry {
	return Entry{
		Value:            value,
		Color:            Black,
		TextColor:        Gray,
		LabelStrokeWidth: DefaultStrokeWidth,
		ValueStrokeWidth: DefaultStrokeWidth,
	}
}

// AbsValue returns |Value|. It is always derived, never stored.
func (e Entry) AbsValue() float64 {
	return math.Abs(e.Value)
}

// HasLabel reports whether the entry carries a category label.
func (e Entry) HasLabel() bool { return e.Label != "" }

// HasValueLabel reports whether the entry carries a value label.
func (e Entry) HasValueLabel() bool { return e.ValueLabel != "" }

// WithDefaults fills presentation fields left at their zero value by a
// decoder. An explicitly transparent fill ("#00000000") is indistinguishable
// from an unset one and becomes black.
func (e Entry) WithDefaults() Entry {
	if e.Color.IsZero() {
		e.Color = Black
	}
	if e.TextColor.IsZero() {
		e.TextColor = Gray
	}
	if e.LabelStrokeWidth == 0 {
		e.LabelStrokeWidth = DefaultStrokeWidth
	}
	if e.ValueStrokeWidth == 0 {
		e.ValueStrokeWidth = DefaultStrokeWidth
	}
	return e
}

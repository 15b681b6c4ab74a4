package render

import (
	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/layout"
	"github.com/matzehuels/microcharts/pkg/layout/path"
)

// Canvas is a drawing backend. Implementations hold no layout logic: every
// call is fully positioned and styled by the caller.
type Canvas interface {
	// Clear fills the whole canvas.
	Clear(c chart.Color)
	DrawRect(r layout.Rect, p Paint)
	DrawCircle(center layout.Point, radius float64, p Paint)
	DrawLine(from, to layout.Point, p Paint)
	DrawPath(p path.Path, paint Paint)
	// DrawText draws text with its baseline anchored at anchor.
	DrawText(text string, anchor layout.Point, s TextStyle)
}

// PaintStyle selects between filling and stroking a shape.
type PaintStyle string

// Paint styles.
const (
	StyleFill   PaintStyle = "fill"
	StyleStroke PaintStyle = "stroke"
)

// LineCap is the shape of open stroke ends.
type LineCap string

// Line caps.
const (
	CapButt  LineCap = "butt"
	CapRound LineCap = "round"
)

// Paint describes how a shape is filled or stroked. When Gradient is set it
// replaces Color.
type Paint struct {
	Style       PaintStyle       `json:"style"`
	Color       chart.Color      `json:"color"`
	Gradient    *layout.Gradient `json:"gradient,omitempty"`
	StrokeWidth float64          `json:"stroke_width,omitempty"`
	Cap         LineCap          `json:"cap,omitempty"`
	// Dash alternates on and off lengths.
	Dash []float64 `json:"dash,omitempty"`
}

// Fill returns a solid fill paint.
func Fill(c chart.Color) Paint {
	return Paint{Style: StyleFill, Color: c}
}

// Stroke returns a solid stroke paint.
func Stroke(c chart.Color, width float64) Paint {
	return Paint{Style: StyleStroke, Color: c, StrokeWidth: width, Cap: CapButt}
}

// WithGradient returns p painted with g.
func (p Paint) WithGradient(g layout.Gradient) Paint {
	p.Gradient = &g
	return p
}

// WithCap returns p with the given line cap.
func (p Paint) WithCap(c LineCap) Paint {
	p.Cap = c
	return p
}

// WithDash returns p with a dash pattern.
func (p Paint) WithDash(dash ...float64) Paint {
	p.Dash = dash
	return p
}

// IsStroke reports whether the paint strokes.
func (p Paint) IsStroke() bool { return p.Style == StyleStroke }

// TextStyle describes a text run. A positive StrokeWidth draws the glyph
// outlines instead of filling them.
type TextStyle struct {
	Size        float64      `json:"size"`
	Color       chart.Color  `json:"color"`
	Align       layout.Align `json:"align"`
	Rotation    float64      `json:"rotation,omitempty"`
	StrokeWidth float64      `json:"stroke_width,omitempty"`
}

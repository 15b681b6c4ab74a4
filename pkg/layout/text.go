package layout

import (
	"unicode/utf8"

	"github.com/matzehuels/microcharts/pkg/chart"
)

// Measurer measures rendered text. W is the advance width and H the height
// of the glyph bounds above the baseline, both at the given font size.
type Measurer interface {
	MeasureText(text string, size float64) Size
}

const (
	approxCharWidth  = 0.55
	approxCapHeight  = 0.72
	captionSpacing   = 0.6
	truncateLong     = 3
	truncateShortest = 1
)

// ApproxMeasurer estimates text size from the rune count. It needs no font
// and is the fallback when none is loaded.
type ApproxMeasurer struct{}

// MeasureText implements [Measurer].
func (ApproxMeasurer) MeasureText(text string, size float64) Size {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return Size{}
	}
	return Size{W: float64(n) * size * approxCharWidth, H: size * approxCapHeight}
}

// Align is the horizontal anchoring of a text run. The values match the SVG
// text-anchor attribute.
type Align string

// Alignments.
const (
	AlignStart  Align = "start"
	AlignCenter Align = "middle"
	AlignEnd    Align = "end"
)

// Label is a positioned text run.
type Label struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	// Anchor is the baseline point the text is aligned to.
	Anchor Point `json:"anchor"`
	Align  Align `json:"align"`
	// Rotation is in degrees, clockwise about Anchor.
	Rotation float64 `json:"rotation,omitempty"`
	Size     Size    `json:"size"`
	// Value marks an entry's value label, drawn in the entry color. Category
	// labels use the entry text color.
	Value bool `json:"value,omitempty"`
}

// FitLabel shortens text that is wider than avail: first to its first three
// runes, then to its first rune. The result may still overflow.
func FitLabel(text string, size, avail float64, m Measurer) (string, Size) {
	sz := m.MeasureText(text, size)
	if sz.W <= avail {
		return text, sz
	}
	for _, n := range []int{truncateLong, truncateShortest} {
		text = truncateRunes(text, n)
		sz = m.MeasureText(text, size)
		if sz.W <= avail {
			break
		}
	}
	return text, sz
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// CaptionLabels places an entry's label and value label around anchor, the
// vertical center of the pair. When both are present the label sits
// 0.6·textSize above the anchor and the value label the same distance below.
func CaptionLabels(index int, e chart.Entry, anchor Point, align Align, textSize float64, m Measurer) []Label {
	hasLabel, hasValue := e.HasLabel(), e.HasValueLabel()
	if !hasLabel && !hasValue {
		return nil
	}

	space := 0.0
	if hasLabel && hasValue {
		space = textSize * captionSpacing
	}

	var out []Label
	if hasLabel {
		sz := m.MeasureText(e.Label, textSize)
		out = append(out, Label{
			Index:  index,
			Text:   e.Label,
			Anchor: Point{anchor.X, anchor.Y + sz.H/2 - space},
			Align:  align,
			Size:   sz,
		})
	}
	if hasValue {
		sz := m.MeasureText(e.ValueLabel, textSize)
		out = append(out, Label{
			Index:  index,
			Text:   e.ValueLabel,
			Anchor: Point{anchor.X, anchor.Y + sz.H/2 + space},
			Align:  align,
			Size:   sz,
			Value:  true,
		})
	}
	return out
}

func measureAll(entries []chart.Entry, size float64, m Measurer, text func(chart.Entry) string) []Size {
	out := make([]Size, len(entries))
	for i, e := range entries {
		if t := text(e); t != "" {
			out[i] = m.MeasureText(t, size)
		}
	}
	return out
}

func maxWidth(sizes []Size) float64 {
	w := 0.0
	for _, s := range sizes {
		w = max(w, s.W)
	}
	return w
}

package layout

import "github.com/matzehuels/microcharts/pkg/chart"

// CaptionSide is the canvas edge a caption column is drawn along.
type CaptionSide string

// Caption sides.
const (
	CaptionLeft  CaptionSide = "left"
	CaptionRight CaptionSide = "right"
)

// Caption is one legend item: a color swatch and the anchor of the
// entry's caption labels (see [CaptionLabels]).
type Caption struct {
	Index  int         `json:"index"`
	Side   CaptionSide `json:"side"`
	Swatch Rect        `json:"swatch"`
	Anchor Point       `json:"anchor"`
	Align  Align       `json:"align"`
}

// PartitionSectors splits donut entries by position: the first half goes
// to the right column in order, the rest to the left column from the last
// entry backwards, so both columns follow the circle clockwise.
func PartitionSectors(entries []chart.Entry) (right, left []int) {
	n := len(entries)
	for i := 0; i < n/2; i++ {
		right = append(right, i)
	}
	for i := n - 1; i >= n/2; i-- {
		left = append(left, i)
	}
	return right, left
}

// PartitionGauge splits gauge entries by magnitude: values below half the
// absolute span go right, the others left. The left column is reversed.
func PartitionGauge(entries []chart.Entry, abs Range) (right, left []int) {
	center := abs.Span() / 2
	for i, e := range entries {
		if e.AbsValue() < center {
			right = append(right, i)
		} else {
			left = append(left, i)
		}
	}
	for i, j := 0, len(left)-1; i < j; i, j = i+1, j-1 {
		left[i], left[j] = left[j], left[i]
	}
	return right, left
}

// CaptionItems places a caption column. Items are spread evenly over the
// canvas height inside a 2·margin inset; a single item is centered.
// Entries with neither label nor value label keep their slot but produce
// no caption.
func CaptionItems(side CaptionSide, indices []int, width, height float64, c chart.Chart) []Caption {
	if len(indices) == 0 {
		return nil
	}

	size := c.LabelTextSize
	inset := 2 * c.Margin
	available := height - 2*inset

	slots := float64(len(indices) - 1)
	if len(indices) <= 1 {
		slots = 1
	}
	step := (available - size) / slots

	x := width - c.Margin - size
	align := AlignEnd
	textX := x - size*captionSpacing
	if side == CaptionLeft {
		x = c.Margin
		align = AlignStart
		textX = x + size + size*captionSpacing
	}

	var out []Caption
	for i, idx := range indices {
		if idx < 0 || idx >= len(c.Entries) {
			continue
		}
		e := c.Entries[idx]
		if !e.HasLabel() && !e.HasValueLabel() {
			continue
		}

		y := inset + float64(i)*step
		if len(indices) <= 1 {
			y += (available - size) / 2
		}
		out = append(out, Caption{
			Index:  idx,
			Side:   side,
			Swatch: Rect{X: x, Y: y, W: size, H: size},
			Anchor: Point{textX, y + size/2},
			Align:  align,
		})
	}
	return out
}

package layout

import (
	"math"

	"github.com/matzehuels/microcharts/pkg/chart"
)

// Range is an effective [Min, Max] value interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ResolveRange returns the effective value bounds: each override when set,
// otherwise the extreme entry value. With no entries and no overrides the
// range is [0, 0].
func ResolveRange(entries []chart.Entry, minOverride, maxOverride *float64) Range {
	var r Range
	if len(entries) > 0 {
		r.Min, r.Max = math.Inf(1), math.Inf(-1)
		for _, e := range entries {
			r.Min = math.Min(r.Min, e.Value)
			r.Max = math.Max(r.Max, e.Value)
		}
	}
	if minOverride != nil {
		r.Min = *minOverride
	}
	if maxOverride != nil {
		r.Max = *maxOverride
	}
	return r
}

// ResolveAbsRange returns the bounds of the absolute values used by radar
// and gauge charts: the magnitudes of every entry value, of both effective
// bounds and of the min override (zero when unset).
func ResolveAbsRange(entries []chart.Entry, minOverride, maxOverride *float64) Range {
	eff := ResolveRange(entries, minOverride, maxOverride)

	internalMin := 0.0
	if minOverride != nil {
		internalMin = *minOverride
	}

	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	include := func(v float64) {
		v = math.Abs(v)
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	for _, e := range entries {
		include(e.Value)
	}
	include(eff.Max)
	include(eff.Min)
	include(internalMin)
	return r
}

// Span returns Max - Min. It overflows to +Inf for bounds near
// ±math.MaxFloat64; ratios use halfSpan instead.
func (r Range) Span() float64 { return r.Max - r.Min }

// halfSpan is Span()/2, finite for any finite bounds.
func (r Range) halfSpan() float64 { return r.Max/2 - r.Min/2 }

// Degenerate reports whether the range has no usable extent.
func (r Range) Degenerate() bool { return math.Abs(r.halfSpan()) < eps/2 }

// Normalize maps v onto [0, 1] (extrapolating outside the range).
// It returns 0 for a degenerate range.
func (r Range) Normalize(v float64) float64 {
	if r.Degenerate() {
		return 0
	}
	return (v/2 - r.Min/2) / r.halfSpan()
}

// fromMax is the fraction of the span between v and Max, used by the
// vertical layout where larger values sit higher on the canvas.
func (r Range) fromMax(v float64) float64 {
	if r.Degenerate() {
		return 0
	}
	return (r.Max/2 - v/2) / r.halfSpan()
}

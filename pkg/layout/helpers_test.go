package layout

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/microcharts/pkg/chart"
)

const tol = 1e-6

func approx(a, b float64) bool { return math.Abs(a-b) < tol }

// fixedMeasurer gives every rune the same width.
type fixedMeasurer struct{ char, height float64 }

func (m fixedMeasurer) MeasureText(text string, _ float64) Size {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return Size{}
	}
	return Size{W: float64(n) * m.char, H: m.height}
}

var testMeasurer = fixedMeasurer{char: 8, height: 10}

func demoEntries() []chart.Entry {
	return []chart.Entry{
		{Value: 212, Label: "UWP", ValueLabel: "212", Color: chart.MustParseColor("#2c3e50")},
		{Value: -248, Label: "Android", ValueLabel: "-248", Color: chart.MustParseColor("#77d065")},
		{Value: -128, Label: "iOS", ValueLabel: "-128", Color: chart.MustParseColor("#b455b6")},
		{Value: 514, Label: "Shared", ValueLabel: "514", Color: chart.MustParseColor("#3498db")},
	}
}

func values(vs ...float64) []chart.Entry {
	out := make([]chart.Entry, len(vs))
	for i, v := range vs {
		out[i] = chart.NewEntry(v)
	}
	return out
}

func assertFinite(t *testing.T, name string, vs ...float64) {
	t.Helper()
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s: got non-finite value %v", name, v)
		}
	}
}

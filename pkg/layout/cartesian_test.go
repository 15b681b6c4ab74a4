package layout

import (
	"fmt"
	"testing"

	"github.com/matzehuels/microcharts/pkg/chart"
)

func TestCartesianVertical(t *testing.T) {
	c := chart.New(chart.KindPoint, demoEntries()...)
	l := Cartesian(c, 512, 512, testMeasurer)

	if l.Panels.Footer != 56 {
		t.Errorf("Footer = %v, want 56 (margin + text size + margin)", l.Panels.Footer)
	}
	if l.Panels.Header != 72 {
		t.Errorf("Header = %v, want 72 (margin + widest value label + margin)", l.Panels.Header)
	}
	if l.Item != (Size{W: 103, H: 364}) {
		t.Errorf("Item = %+v, want {103 364}", l.Item)
	}
	if want := 72 + 514.0/762*364; !approx(l.Origin, want) {
		t.Errorf("Origin = %v, want %v", l.Origin, want)
	}

	wantPoints := []Point{
		{71.5, 72 + (514-212)/762.0*364},
		{194.5, 436},
		{317.5, 72 + (514+128)/762.0*364},
		{440.5, 72},
	}
	for i, want := range wantPoints {
		got := l.Points[i]
		if !approx(got.X, want.X) || !approx(got.Y, want.Y) {
			t.Errorf("Points[%d] = %+v, want %+v", i, got, want)
		}
	}

	if len(l.Labels) != 4 {
		t.Fatalf("len(Labels) = %d, want 4", len(l.Labels))
	}
	if got := l.Labels[1]; got.Text != "Android" || got.Align != AlignCenter || got.Anchor != (Point{194.5, 484}) {
		t.Errorf("Labels[1] = %+v", got)
	}
	if got := l.ValueLabels[0]; got.Rotation != 90 || got.Anchor != (Point{66.5, 20}) || !got.Value {
		t.Errorf("ValueLabels[0] = %+v, want rotated label anchored at {66.5 20}", got)
	}
}

// Mixed signs put the origin inside the body, positive values above it and
// negative values below.
func TestCartesianMixedSigns(t *testing.T) {
	c := chart.New(chart.KindLine, demoEntries()...)
	l := Cartesian(c, 512, 512, ApproxMeasurer{})

	top, bottom := l.Panels.Header, l.Panels.Header+l.Item.H
	if !(l.Origin > top && l.Origin < bottom) {
		t.Fatalf("Origin %v not strictly inside (%v, %v)", l.Origin, top, bottom)
	}
	for i, e := range c.Entries {
		above := l.Points[i].Y < l.Origin
		if above != (e.Value > 0) {
			t.Errorf("entry %d (%v): y=%v origin=%v", i, e.Value, l.Points[i].Y, l.Origin)
		}
	}
}

func TestCartesianEqualValues(t *testing.T) {
	c := chart.New(chart.KindPoint, values(100, 100, 100, 100)...)
	l := Cartesian(c, 400, 300, ApproxMeasurer{})

	for i, p := range l.Points {
		assertFinite(t, "point", p.X, p.Y)
		if p.Y != l.Points[0].Y {
			t.Errorf("Points[%d].Y = %v, want constant %v", i, p.Y, l.Points[0].Y)
		}
	}
	if l.Points[0].Y != l.Panels.Header {
		t.Errorf("zero range should align points on the header edge, got %v", l.Points[0].Y)
	}
	assertFinite(t, "origin", l.Origin)
}

func TestCartesianOrigin(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		orientation chart.Orientation
		want        func(l CartesianLayout) float64
	}{
		{"vertical all positive", []float64{1, 5}, chart.Vertical,
			func(l CartesianLayout) float64 { return l.Panels.Header + l.Item.H }},
		{"vertical all negative", []float64{-1, -5}, chart.Vertical,
			func(l CartesianLayout) float64 { return l.Panels.Header }},
		{"vertical zero max", []float64{0, -5}, chart.Vertical,
			func(l CartesianLayout) float64 { return l.Panels.Header }},
		{"vertical mixed", []float64{-1, 3}, chart.Vertical,
			func(l CartesianLayout) float64 { return l.Panels.Header + 0.75*l.Item.H }},
		{"horizontal all positive", []float64{1, 5}, chart.Horizontal,
			func(l CartesianLayout) float64 { return l.Panels.Left }},
		{"horizontal all negative", []float64{-1, -5}, chart.Horizontal,
			func(l CartesianLayout) float64 { return l.Panels.Left + l.Item.W }},
		{"horizontal mixed", []float64{-1, 3}, chart.Horizontal,
			func(l CartesianLayout) float64 { return l.Panels.Left + 0.25*l.Item.W }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chart.New(chart.KindBar, values(tt.values...)...)
			c.Orientation = tt.orientation
			l := Cartesian(c, 300, 200, ApproxMeasurer{})
			if want := tt.want(l); !approx(l.Origin, want) {
				t.Errorf("Origin = %v, want %v", l.Origin, want)
			}
		})
	}
}

func TestCartesianHorizontal(t *testing.T) {
	c := chart.New(chart.KindBar, demoEntries()...)
	c.Orientation = chart.Horizontal
	l := Cartesian(c, 512, 512, testMeasurer)

	if l.Panels.Left != 96 || l.Panels.Right != 72 {
		t.Errorf("Panels = %+v, want left 96 right 72", l.Panels)
	}
	if l.Item != (Size{W: 324, H: 103}) {
		t.Errorf("Item = %+v, want {324 103}", l.Item)
	}
	if want := 96 + 248.0/762*324; !approx(l.Origin, want) {
		t.Errorf("Origin = %v, want %v", l.Origin, want)
	}
	if p := l.Points[1]; !approx(p.X, 96) || !approx(p.Y, 194.5) {
		t.Errorf("Points[1] = %+v, want {96 194.5}", p)
	}
	if p := l.Points[3]; !approx(p.X, 420) {
		t.Errorf("Points[3].X = %v, want 420", p.X)
	}
	if got := l.Labels[0]; got.Align != AlignEnd || got.Anchor != (Point{76, 76.5}) {
		t.Errorf("Labels[0] = %+v", got)
	}
	if got := l.ValueLabels[0]; got.Align != AlignStart || got.Anchor.X != 460 || got.Rotation != 0 {
		t.Errorf("ValueLabels[0] = %+v", got)
	}
	if l.Extent() != l.Item.H {
		t.Errorf("Extent() = %v, want item height", l.Extent())
	}
}

func TestCartesianLabelTruncation(t *testing.T) {
	// Four slots of (100 - 5·20)/4 = 0 width force the one-rune fallback.
	c := chart.New(chart.KindBar, chart.Entry{Value: 1, Label: "Android"}, chart.Entry{Value: 2, Label: "W"},
		chart.Entry{Value: 3}, chart.Entry{Value: 4})
	l := Cartesian(c, 100, 200, testMeasurer)

	if l.Item.W != 0 {
		t.Fatalf("Item.W = %v, want 0", l.Item.W)
	}
	if got := l.Labels[0].Text; got != "A" {
		t.Errorf("truncated label = %q, want %q", got, "A")
	}
	if got := l.Labels[1].Text; got != "W" {
		t.Errorf("single rune label = %q, want it kept", got)
	}
}

func TestCartesianValuePlacement(t *testing.T) {
	entries := []chart.Entry{
		{Value: 10, ValueLabel: "12345678901"},
		{Value: 20, ValueLabel: "20"},
	}
	tests := []struct {
		placement chart.ValuePlacement
		rotation  float64
		text      string
		anchorY   func(l CartesianLayout) float64
	}{
		{chart.ValueHeader, 90, "12345678901", func(CartesianLayout) float64 { return 20 }},
		{chart.ValueAbovePoint, 0, "123", func(l CartesianLayout) float64 { return l.Points[0].Y - 20 }},
		{chart.ValueTop, 0, "123", func(CartesianLayout) float64 { return 20 }},
	}

	for _, tt := range tests {
		t.Run(string(tt.placement), func(t *testing.T) {
			c := chart.New(chart.KindPoint, entries...)
			c.ValuePlacement = tt.placement
			// Slots are (200 - 3·20)/2 = 70 wide; the long label measures 88.
			l := Cartesian(c, 200, 400, testMeasurer)

			v := l.ValueLabels[0]
			if v.Rotation != tt.rotation || v.Text != tt.text {
				t.Errorf("label = %q rotated %v, want %q rotated %v", v.Text, v.Rotation, tt.text, tt.rotation)
			}
			if !approx(v.Anchor.Y, tt.anchorY(l)) {
				t.Errorf("anchor y = %v, want %v", v.Anchor.Y, tt.anchorY(l))
			}
			if tt.rotation == 0 && (v.Align != AlignCenter || v.Anchor.X != l.Points[0].X) {
				t.Errorf("unrotated label anchored at %v %s, want centered on x=%v", v.Anchor, v.Align, l.Points[0].X)
			}
		})
	}
}

func TestCartesianEmpty(t *testing.T) {
	for _, o := range []chart.Orientation{chart.Vertical, chart.Horizontal} {
		c := chart.New(chart.KindLine)
		c.Orientation = o
		l := Cartesian(c, 200, 100, ApproxMeasurer{})
		if len(l.Points) != 0 || len(l.Labels) != 0 {
			t.Errorf("%s: empty chart produced geometry: %+v", o, l)
		}
		assertFinite(t, string(o), l.Origin, l.Item.W, l.Item.H)
	}
}

func TestCartesianTinyCanvasClamps(t *testing.T) {
	c := chart.New(chart.KindPoint, demoEntries()...)
	l := Cartesian(c, 10, 10, ApproxMeasurer{})
	if l.Item.W < 0 || l.Item.H < 0 {
		t.Errorf("Item = %+v, want non-negative", l.Item)
	}
	for _, p := range l.Points {
		assertFinite(t, "point", p.X, p.Y)
	}
}

func TestCartesianIdempotent(t *testing.T) {
	c := chart.New(chart.KindLine, demoEntries()...)
	a := Cartesian(c, 512, 512, ApproxMeasurer{})
	b := Cartesian(c, 512, 512, ApproxMeasurer{})
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("Points[%d] differ between identical calls: %v vs %v", i, a.Points[i], b.Points[i])
		}
	}
	if a.Origin != b.Origin || a.Panels != b.Panels || a.Item != b.Item {
		t.Error("layout differs between identical calls")
	}
}

func TestOriginLine(t *testing.T) {
	c := chart.New(chart.KindBar, values(-1, 3)...)
	l := Cartesian(c, 300, 200, ApproxMeasurer{})
	from, to := l.OriginLine()
	if from.Y != l.Origin || to.Y != l.Origin || from.X != l.Body.X || to.X != l.Body.Right() {
		t.Errorf("OriginLine() = %v, %v", from, to)
	}
}

func TestCartesianExtremeValues(t *testing.T) {
	for _, o := range []chart.Orientation{chart.Vertical, chart.Horizontal} {
		t.Run(string(o), func(t *testing.T) {
			c := chart.New(chart.KindBar, values(1e308, -1e308)...)
			c.Orientation = o
			l := Cartesian(c, 512, 512, ApproxMeasurer{})

			for i, p := range l.Points {
				assertFinite(t, fmt.Sprintf("point %d", i), p.X, p.Y)
			}
			for i, r := range Bars(l) {
				assertFinite(t, fmt.Sprintf("bar %d", i), r.X, r.Y, r.W, r.H)
			}

			mid := l.Panels.Header + l.Item.H/2
			if l.Horizontal() {
				mid = l.Panels.Left + l.Item.W/2
			}
			if !approx(l.Origin, mid) {
				t.Errorf("Origin = %v, want the body midpoint %v", l.Origin, mid)
			}
		})
	}
}

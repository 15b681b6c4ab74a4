package layout

import (
	"testing"

	"github.com/matzehuels/microcharts/pkg/chart"
)

func TestBarsVertical(t *testing.T) {
	c := chart.New(chart.KindBar, values(-1, 3)...)
	l := Cartesian(c, 300, 200, ApproxMeasurer{})
	bars := Bars(l)

	if len(bars) != 2 {
		t.Fatalf("len(Bars) = %d, want 2", len(bars))
	}
	neg, pos := bars[0], bars[1]

	if !approx(neg.Y, l.Origin) || !approx(neg.Bottom(), l.Points[0].Y) {
		t.Errorf("negative bar = %+v, want from origin %v down to %v", neg, l.Origin, l.Points[0].Y)
	}
	if !approx(pos.Y, l.Points[1].Y) || !approx(pos.Bottom(), l.Origin) {
		t.Errorf("positive bar = %+v, want from %v down to origin %v", pos, l.Points[1].Y, l.Origin)
	}
	for i, b := range bars {
		if b.W != l.Item.W || !approx(b.CenterX(), l.Points[i].X) {
			t.Errorf("bar %d = %+v, want width %v centered on %v", i, b, l.Item.W, l.Points[i].X)
		}
	}
}

func TestBarsMinimumLength(t *testing.T) {
	// Range [0, 10]: the origin is the bottom of the body, so the floored
	// zero bar must be pulled back inside it.
	c := chart.New(chart.KindBar, values(0, 10)...)
	l := Cartesian(c, 300, 200, ApproxMeasurer{})
	b := Bars(l)[0]

	if b.H != MinBarLength {
		t.Errorf("zero bar height = %v, want %v", b.H, MinBarLength)
	}
	if end := l.Panels.Header + l.Item.H; !approx(b.Bottom(), end) {
		t.Errorf("zero bar bottom = %v, want flush with body end %v", b.Bottom(), end)
	}
}

func TestBarsMinimumLengthNoOverflow(t *testing.T) {
	// Range [-10, 0]: the origin is the header edge, the floored bar grows
	// downward inside the body and is not moved.
	c := chart.New(chart.KindBar, values(0, -10)...)
	l := Cartesian(c, 300, 200, ApproxMeasurer{})
	b := Bars(l)[0]

	if b.H != MinBarLength || !approx(b.Y, l.Panels.Header) {
		t.Errorf("zero bar = %+v, want height %v at header %v", b, MinBarLength, l.Panels.Header)
	}
}

func TestBarsHorizontal(t *testing.T) {
	c := chart.New(chart.KindBar, values(0, -10)...)
	c.Orientation = chart.Horizontal
	l := Cartesian(c, 300, 200, ApproxMeasurer{})
	bars := Bars(l)

	end := l.Panels.Left + l.Item.W
	zero := bars[0]
	if zero.W != MinBarLength || !approx(zero.Right(), end) {
		t.Errorf("zero bar = %+v, want width %v flush with %v", zero, MinBarLength, end)
	}
	neg := bars[1]
	if !approx(neg.X, l.Panels.Left) || !approx(neg.Right(), l.Origin) {
		t.Errorf("negative bar = %+v, want from %v to origin %v", neg, l.Panels.Left, l.Origin)
	}
	if neg.H != l.Item.H {
		t.Errorf("bar thickness = %v, want %v", neg.H, l.Item.H)
	}
}

func TestBarAreas(t *testing.T) {
	c := chart.New(chart.KindBar, values(-1, 3)...)
	l := Cartesian(c, 300, 200, ApproxMeasurer{})
	areas := BarAreas(l, c.Entries)

	// Negative: from the point down to the bottom of the body.
	if !approx(areas[0].Y, l.Points[0].Y) || !approx(areas[0].Bottom(), l.Panels.Header+l.Item.H) {
		t.Errorf("negative area = %+v", areas[0])
	}
	// Positive: from the top of the body down to the point.
	if !approx(areas[1].Y, l.Panels.Header) || !approx(areas[1].Bottom(), l.Points[1].Y) {
		t.Errorf("positive area = %+v", areas[1])
	}

	c.Orientation = chart.Horizontal
	l = Cartesian(c, 300, 200, ApproxMeasurer{})
	areas = BarAreas(l, c.Entries)
	if !approx(areas[0].X, l.Panels.Left) || !approx(areas[0].Right(), l.Points[0].X) {
		t.Errorf("horizontal negative area = %+v", areas[0])
	}
	if !approx(areas[1].X, l.Points[1].X) || !approx(areas[1].Right(), l.Panels.Left+l.Item.W) {
		t.Errorf("horizontal positive area = %+v", areas[1])
	}
}

func TestPointAreas(t *testing.T) {
	entries := values(0, 10)
	entries[1].Color = chart.MustParseColor("#3498db")
	c := chart.New(chart.KindPoint, entries...)
	l := Cartesian(c, 300, 200, ApproxMeasurer{})
	areas := PointAreas(l, c.Entries, c.Point.Size, c.Point.AreaAlpha)

	if len(areas) != 2 {
		t.Fatalf("len(PointAreas) = %d, want 2", len(areas))
	}
	if h := areas[0].Rect.H; h != 2 {
		t.Errorf("area at the origin has height %v, want the minimum 2", h)
	}

	a := areas[1]
	if a.Rect.W != c.Point.Size || !approx(a.Rect.CenterX(), l.Points[1].X) {
		t.Errorf("area rect = %+v, want width %v centered on the point", a.Rect, c.Point.Size)
	}
	if !approx(a.Rect.Y, l.Points[1].Y) || !approx(a.Rect.Bottom(), l.Origin) {
		t.Errorf("area rect = %+v, want from point to origin", a.Rect)
	}
	if a.Gradient.From != l.Points[1] || a.Gradient.To.Y != l.Origin {
		t.Errorf("gradient runs %v -> %v, want point -> origin", a.Gradient.From, a.Gradient.To)
	}
	if got := a.Gradient.Stops[0].Color.A; got != 100 {
		t.Errorf("point stop alpha = %d, want 100", got)
	}
	if got := a.Gradient.Stops[1].Color.A; got != 33 {
		t.Errorf("origin stop alpha = %d, want 33", got)
	}
}

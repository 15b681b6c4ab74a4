package render

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
	"github.com/matzehuels/microcharts/pkg/layout"
	"github.com/matzehuels/microcharts/pkg/layout/path"
)

type call struct {
	op    string
	paint Paint
	text  string
	style TextStyle
}

// recorder is a Canvas that remembers every call.
type recorder struct{ calls []call }

func (r *recorder) Clear(c chart.Color) {
	r.calls = append(r.calls, call{op: "clear", paint: Fill(c)})
}
func (r *recorder) DrawRect(_ layout.Rect, p Paint) {
	r.calls = append(r.calls, call{op: "rect", paint: p})
}
func (r *recorder) DrawCircle(_ layout.Point, _ float64, p Paint) {
	r.calls = append(r.calls, call{op: "circle", paint: p})
}
func (r *recorder) DrawLine(_, _ layout.Point, p Paint) {
	r.calls = append(r.calls, call{op: "line", paint: p})
}
func (r *recorder) DrawPath(_ path.Path, p Paint) {
	r.calls = append(r.calls, call{op: "path", paint: p})
}
func (r *recorder) DrawText(text string, _ layout.Point, s TextStyle) {
	r.calls = append(r.calls, call{op: "text", text: text, style: s})
}

func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func demoEntries() []chart.Entry {
	return []chart.Entry{
		{Value: 212, Label: "UWP", ValueLabel: "212", Color: chart.MustParseColor("#2c3e50"), TextColor: chart.Gray},
		{Value: -248, Label: "Android", ValueLabel: "248", Color: chart.MustParseColor("#77d065"), TextColor: chart.Gray},
		{Value: -128, Label: "iOS", ValueLabel: "128", Color: chart.MustParseColor("#b455b6"), TextColor: chart.Gray},
		{Value: 514, Label: "Shared", ValueLabel: "514", Color: chart.MustParseColor("#3498db"), TextColor: chart.Gray},
	}
}

func draw(t *testing.T, c chart.Chart) *recorder {
	t.Helper()
	r := &recorder{}
	if err := Draw(r, c, 512, 512, layout.ApproxMeasurer{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	return r
}

func TestDrawEmptyChart(t *testing.T) {
	for _, k := range chart.Kinds() {
		t.Run(string(k), func(t *testing.T) {
			r := draw(t, chart.New(k))
			if got := r.ops(); !reflect.DeepEqual(got, []string{"clear"}) {
				t.Errorf("empty %s chart drew %v, want only the background", k, got)
			}
		})
	}
}

func TestDrawLineOrder(t *testing.T) {
	r := draw(t, chart.New(chart.KindLine, demoEntries()...))

	want := []string{"clear", "path", "path", "circle", "circle", "circle", "circle"}
	if got := r.ops()[:len(want)]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ops = %v, want prefix %v", got, want)
	}
	if got := r.count("text"); got != 8 {
		t.Errorf("text calls = %d, want 8 (labels and value labels)", got)
	}

	area, line := r.calls[1].paint, r.calls[2].paint
	if area.IsStroke() || area.Gradient == nil || area.Gradient.Stops[0].Color.A != 32 {
		t.Errorf("area paint = %+v, want gradient fill at alpha 32", area)
	}
	if !line.IsStroke() || line.StrokeWidth != 3 || line.Gradient == nil {
		t.Errorf("line paint = %+v, want 3px gradient stroke", line)
	}
}

func TestDrawLineWithoutArea(t *testing.T) {
	c := chart.New(chart.KindLine, demoEntries()...)
	c.Line.AreaAlpha = 0
	c.Line.Mode = chart.LineModeStraight
	r := draw(t, c)
	if got := r.count("path"); got != 1 {
		t.Errorf("paths = %d, want only the line", got)
	}
}

func TestDrawBar(t *testing.T) {
	c := chart.New(chart.KindBar, demoEntries()...)
	r := draw(t, c)

	want := []string{"clear", "line", "rect", "rect", "rect", "rect", "rect", "rect", "rect", "rect", "text"}
	if got := r.ops()[:len(want)]; !reflect.DeepEqual(got, want) {
		t.Fatalf("ops = %v, want prefix %v", got, want)
	}
	if r.count("circle") != 0 {
		t.Error("bar charts default to no point markers")
	}
	if got := r.calls[2].paint.Color.A; got != 32 {
		t.Errorf("bar area alpha = %d, want 32", got)
	}
	if got := r.calls[6].paint.Color; got != c.Entries[0].Color {
		t.Errorf("first bar color = %v, want %v", got, c.Entries[0].Color)
	}
}

func TestDrawPoint(t *testing.T) {
	c := chart.New(chart.KindPoint, demoEntries()...)
	c.Point.Mode = chart.PointModeSquare
	r := draw(t, c)

	// Four gradient areas then four square markers.
	for i := 1; i <= 4; i++ {
		if r.calls[i].op != "rect" || r.calls[i].paint.Gradient == nil {
			t.Errorf("call %d = %+v, want a gradient area", i, r.calls[i])
		}
	}
	for i := 5; i <= 8; i++ {
		if r.calls[i].op != "rect" || r.calls[i].paint.Gradient != nil {
			t.Errorf("call %d = %+v, want a square marker", i, r.calls[i])
		}
	}
}

func TestDrawDonutSkipsEmptySectors(t *testing.T) {
	entries := demoEntries()[:3]
	entries[1].Value = 0
	r := draw(t, chart.New(chart.KindDonut, entries...))

	if got := r.count("path"); got != 2 {
		t.Errorf("sector paths = %d, want 2", got)
	}
	if got := r.count("rect"); got != 3 {
		t.Errorf("caption swatches = %d, want 3", got)
	}
	if got := r.count("text"); got != 6 {
		t.Errorf("caption texts = %d, want 6", got)
	}
}

func TestDrawRadar(t *testing.T) {
	c := chart.New(chart.KindRadar, demoEntries()...)
	r := draw(t, c)

	if r.calls[1].op != "circle" || r.calls[1].paint.Color != c.Radar.BorderLineColor {
		t.Fatalf("second call = %+v, want the border circle", r.calls[1])
	}
	perVertex := []string{"line", "circle", "line", "line", "circle"}
	if got := r.ops()[2:7]; !reflect.DeepEqual(got, perVertex) {
		t.Errorf("first vertex ops = %v, want %v", got, perVertex)
	}
	ring := r.calls[3].paint
	if len(ring.Dash) != 2 || ring.Dash[1] != 2*ring.Dash[0] {
		t.Errorf("ring dash = %v, want [size, 2·size]", ring.Dash)
	}
	if got := r.count("text"); got != 8 {
		t.Errorf("texts = %d, want 8", got)
	}
}

func TestDrawGauge(t *testing.T) {
	c := chart.New(chart.KindRadialGauge, demoEntries()...)
	r := draw(t, c)

	// Captions come first, then a track circle and an arc per ring.
	firstCircle := -1
	for i, call := range r.calls {
		if call.op == "circle" {
			firstCircle = i
			break
		}
	}
	for _, call := range r.calls[1:firstCircle] {
		if call.op != "rect" && call.op != "text" {
			t.Fatalf("caption section contains %s", call.op)
		}
	}
	track, arc := r.calls[firstCircle], r.calls[firstCircle+1]
	if track.paint.Color.A != 52 {
		t.Errorf("track alpha = %d, want 52", track.paint.Color.A)
	}
	if arc.op != "path" || arc.paint.Cap != CapRound {
		t.Errorf("arc = %+v, want a round-capped path", arc)
	}
}

func TestDrawLabelOutline(t *testing.T) {
	entries := demoEntries()[:1]
	entries[0].LabelStrokeColor = chart.White
	entries[0].LabelStrokeWidth = 3
	r := draw(t, chart.New(chart.KindPoint, entries...))

	var texts []call
	for _, c := range r.calls {
		if c.op == "text" {
			texts = append(texts, c)
		}
	}
	if len(texts) != 3 {
		t.Fatalf("texts = %d, want outline + label + value label", len(texts))
	}
	if texts[0].style.StrokeWidth != 3 || texts[0].style.Color != chart.White {
		t.Errorf("outline = %+v", texts[0].style)
	}
	if texts[1].style.StrokeWidth != 0 || texts[1].style.Color != chart.Gray {
		t.Errorf("label fill = %+v", texts[1].style)
	}
	if texts[2].style.Color != entries[0].Color || texts[2].style.Rotation != 90 {
		t.Errorf("value label = %+v, want entry color rotated 90°", texts[2].style)
	}
}

func TestComputeUnknownKind(t *testing.T) {
	_, err := Compute(chart.Chart{Kind: "scatter"}, 100, 100, nil)
	if !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("Compute(scatter) error = %v, want INVALID_KIND", err)
	}
}

// Degenerate inputs must never leak NaN into the geometry; encoding/json
// rejects NaN, so a successful marshal proves it.
func TestComputeDegenerateInputs(t *testing.T) {
	inputs := map[string][]chart.Entry{
		"all zero":  {chart.NewEntry(0), chart.NewEntry(0)},
		"all equal": {chart.NewEntry(100), chart.NewEntry(100), chart.NewEntry(100)},
		"single":    {chart.NewEntry(-5)},
	}
	for name, entries := range inputs {
		for _, k := range chart.Kinds() {
			g, err := Compute(chart.New(k, entries...), 300, 200, nil)
			if err != nil {
				t.Fatalf("%s/%s: %v", name, k, err)
			}
			if _, err := json.Marshal(g); err != nil {
				t.Errorf("%s/%s: geometry not encodable: %v", name, k, err)
			}
		}
	}

	g, err := Compute(chart.New(chart.KindLine, demoEntries()...), 1, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := json.Marshal(g); err != nil {
		t.Errorf("tiny canvas: %v", err)
	}
}

func TestComputeIdempotent(t *testing.T) {
	for _, k := range chart.Kinds() {
		c := chart.New(k, demoEntries()...)
		a, _ := Compute(c, 512, 512, nil)
		b, _ := Compute(c, 512, 512, nil)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: Compute is not idempotent", k)
		}
	}
}

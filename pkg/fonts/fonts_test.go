package fonts

import (
	"testing"

	"github.com/matzehuels/microcharts/pkg/layout"
)

var _ layout.Measurer = (*Measurer)(nil)

func newTestMeasurer(t *testing.T) *Measurer {
	t.Helper()
	m, err := NewMeasurer()
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestRegularParsesOnce(t *testing.T) {
	a, err := Regular()
	if err != nil {
		t.Fatalf("Regular: %v", err)
	}
	b, _ := Regular()
	if a != b {
		t.Error("Regular should return the cached font")
	}
}

func TestMeasureText(t *testing.T) {
	m := newTestMeasurer(t)

	if got := m.MeasureText("", 16); got != (layout.Size{}) {
		t.Errorf("empty text = %+v, want zero", got)
	}

	short := m.MeasureText("UWP", 16)
	long := m.MeasureText("UWP Android", 16)
	if short.W <= 0 || short.H <= 0 {
		t.Fatalf("MeasureText(UWP) = %+v, want positive size", short)
	}
	if long.W <= short.W {
		t.Errorf("longer text should be wider: %v <= %v", long.W, short.W)
	}
	if short.H > 16 {
		t.Errorf("ink height %v exceeds the font size", short.H)
	}

	big := m.MeasureText("UWP", 32)
	if big.W < 1.9*short.W || big.W > 2.1*short.W {
		t.Errorf("width should scale with size: 16px=%v 32px=%v", short.W, big.W)
	}
}

func TestFaceCached(t *testing.T) {
	m := newTestMeasurer(t)
	a, err := m.Face(16)
	if err != nil {
		t.Fatalf("Face(16): %v", err)
	}
	b, _ := m.Face(16)
	if a != b {
		t.Error("Face should cache per size")
	}
	c, _ := m.Face(20)
	if a == c {
		t.Error("different sizes should get different faces")
	}
}

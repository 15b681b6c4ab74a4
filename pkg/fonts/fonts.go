// Package fonts provides the embedded font used to measure and rasterize
// chart text.
//
// The Go Regular typeface ships with golang.org/x/image, so no font files
// are needed at runtime. SVG output references it by family name with
// generic fallbacks; PNG output draws with it directly.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/microcharts/pkg/layout"
)

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go"

// FallbackFontFamily is the font-family list written into SVG output.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// Parsed once on first access.
var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular font.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Measurer measures text with the embedded font and hands out font faces
// for rasterization. Faces are cached per size.
//
// MeasureText may be called from several goroutines. Faces returned by
// [Measurer.Face] keep internal buffers and must only be used by one
// goroutine at a time, so concurrent renders should each own a Measurer.
type Measurer struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewMeasurer returns a Measurer backed by the embedded font.
func NewMeasurer() (*Measurer, error) {
	f, err := Regular()
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return &Measurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns the font face at the given size in pixels.
func (m *Measurer) Face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.faceLocked(size)
}

func (m *Measurer) faceLocked(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font face at %gpx: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// MeasureText implements [layout.Measurer]: W is the advance width and H
// the ink height above the baseline. It falls back to
// [layout.ApproxMeasurer] if no face can be built.
func (m *Measurer) MeasureText(text string, size float64) layout.Size {
	if text == "" {
		return layout.Size{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.faceLocked(size)
	if err != nil {
		return layout.ApproxMeasurer{}.MeasureText(text, size)
	}
	bounds, advance := font.BoundString(face, text)
	return layout.Size{W: toFloat(advance), H: toFloat(-bounds.Min.Y)}
}

// Close releases the cached faces.
func (m *Measurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var first error
	for size, face := range m.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(m.faces, size)
	}
	return first
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

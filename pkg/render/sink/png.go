package sink

import (
	"bytes"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
	"github.com/matzehuels/microcharts/pkg/fonts"
	"github.com/matzehuels/microcharts/pkg/layout"
	"github.com/matzehuels/microcharts/pkg/layout/path"
	"github.com/matzehuels/microcharts/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	fonts *fonts.Measurer
	scale float64
}

// WithFonts draws text with faces from m. Without it a private measurer is
// created per call.
func WithFonts(m *fonts.Measurer) PNGOption {
	return func(r *pngRenderer) { r.fonts = m }
}

// WithScale sets the PNG scale factor (default 1; 2 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes g.
func RenderPNG(c chart.Chart, g render.Geometry, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsInf(r.scale, 0) || math.IsNaN(r.scale) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", r.scale)
	}
	if r.fonts == nil {
		m, err := fonts.NewMeasurer()
		if err != nil {
			return nil, err
		}
		defer m.Close()
		r.fonts = m
	}

	canvas := NewRasterCanvas(g.Width, g.Height, r.scale, r.fonts)
	render.DrawGeometry(canvas, c, g)

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RasterCanvas is a [render.Canvas] backed by a gg context.
type RasterCanvas struct {
	dc    *gg.Context
	fonts *fonts.Measurer
	scale float64
}

// NewRasterCanvas allocates a width×height canvas, scaled by scale.
func NewRasterCanvas(width, height, scale float64, m *fonts.Measurer) *RasterCanvas {
	w := max(1, int(math.Ceil(width*scale)))
	h := max(1, int(math.Ceil(height*scale)))
	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	return &RasterCanvas{dc: dc, fonts: m, scale: scale}
}

// Context exposes the underlying gg context.
func (c *RasterCanvas) Context() *gg.Context { return c.dc }

// EncodePNG writes the canvas as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *RasterCanvas) Clear(color chart.Color) {
	c.dc.SetColor(color)
	c.dc.Clear()
}

func (c *RasterCanvas) DrawRect(r layout.Rect, p render.Paint) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.finish(p)
}

func (c *RasterCanvas) DrawCircle(center layout.Point, radius float64, p render.Paint) {
	if radius <= 0 {
		return
	}
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.finish(p)
}

func (c *RasterCanvas) DrawLine(from, to layout.Point, p render.Paint) {
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.finish(p)
}

func (c *RasterCanvas) DrawPath(pth path.Path, p render.Paint) {
	if pth.Empty() {
		return
	}
	for _, s := range pth.Segments {
		switch s.Op {
		case path.OpMove:
			c.dc.MoveTo(s.To.X, s.To.Y)
		case path.OpLine:
			c.dc.LineTo(s.To.X, s.To.Y)
		case path.OpCubic:
			c.dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
		case path.OpArc:
			a := s.Arc
			c.dc.DrawArc(a.Center.X, a.Center.Y, a.Radius, a.Start, a.Start+a.Sweep)
		case path.OpClose:
			c.dc.ClosePath()
		}
	}
	if pth.EvenOdd {
		c.dc.SetFillRule(gg.FillRuleEvenOdd)
		defer c.dc.SetFillRule(gg.FillRuleWinding)
	}
	c.finish(p)
}

// outlineOffsets approximates a glyph outline by stamping the text around
// its anchor; gg has no text-to-path conversion.
var outlineOffsets = [][2]float64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

func (c *RasterCanvas) DrawText(text string, anchor layout.Point, s render.TextStyle) {
	if text == "" {
		return
	}
	face, err := c.fonts.Face(s.Size)
	if err != nil {
		return
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(s.Color)

	ax := 0.0
	switch s.Align {
	case layout.AlignCenter:
		ax = 0.5
	case layout.AlignEnd:
		ax = 1
	}

	c.dc.Push()
	defer c.dc.Pop()
	if s.Rotation != 0 {
		c.dc.RotateAbout(gg.Radians(s.Rotation), anchor.X, anchor.Y)
	}
	if s.StrokeWidth > 0 {
		r := s.StrokeWidth / 2
		for _, o := range outlineOffsets {
			c.dc.DrawStringAnchored(text, anchor.X+o[0]*r, anchor.Y+o[1]*r, ax, 0)
		}
		return
	}
	c.dc.DrawStringAnchored(text, anchor.X, anchor.Y, ax, 0)
}

// finish fills or strokes the current path with p.
func (c *RasterCanvas) finish(p render.Paint) {
	if p.Gradient != nil {
		c.setGradient(p)
	} else {
		c.dc.SetColor(p.Color)
	}

	if !p.IsStroke() {
		c.dc.Fill()
		return
	}
	c.dc.SetLineWidth(p.StrokeWidth)
	if p.Cap == render.CapRound {
		c.dc.SetLineCapRound()
	} else {
		c.dc.SetLineCapButt()
	}
	c.dc.SetDash(p.Dash...)
	c.dc.Stroke()
	c.dc.SetDash()
}

func (c *RasterCanvas) setGradient(p render.Paint) {
	g := p.Gradient
	if len(g.Stops) == 0 {
		c.dc.SetColor(p.Color)
		return
	}
	// A zero-length gradient paints its last stop.
	if math.Hypot(g.To.X-g.From.X, g.To.Y-g.From.Y) < 1e-9 {
		c.dc.SetColor(g.Stops[len(g.Stops)-1].Color)
		return
	}
	// Patterns are sampled in device pixels, outside the context scale.
	k := c.scale
	grad := gg.NewLinearGradient(g.From.X*k, g.From.Y*k, g.To.X*k, g.To.Y*k)
	for _, s := range g.Stops {
		grad.AddColorStop(s.Offset, s.Color)
	}
	if p.IsStroke() {
		c.dc.SetStrokeStyle(grad)
	} else {
		c.dc.SetFillStyle(grad)
	}
}

package sink

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/fonts"
	"github.com/matzehuels/microcharts/pkg/layout"
	"github.com/matzehuels/microcharts/pkg/layout/path"
	"github.com/matzehuels/microcharts/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	title      string
}

// WithFontFamily sets the CSS font-family of every text element.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithTitle adds a <title> element, shown as a tooltip by most viewers.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG draws g as a standalone SVG document.
func RenderSVG(c chart.Chart, g render.Geometry, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: fonts.FallbackFontFamily}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := NewSVGCanvas(&buf, g.Width, g.Height)
	canvas.fontFamily = r.fontFamily
	if r.title != "" {
		canvas.svg.Title(r.title)
	}
	render.DrawGeometry(canvas, c, g)
	canvas.End()
	return buf.Bytes()
}

// SVGCanvas is a [render.Canvas] writing SVG elements.
type SVGCanvas struct {
	svg        *svg.SVG
	width      float64
	height     float64
	fontFamily string
	gradients  int
}

// NewSVGCanvas starts an SVG document of the given size on w. Call End to
// close it.
func NewSVGCanvas(w io.Writer, width, height float64) *SVGCanvas {
	s := svg.New(w)
	s.Start(int(math.Ceil(width)), int(math.Ceil(height)),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, path.FormatFloat(width), path.FormatFloat(height)))
	return &SVGCanvas{svg: s, width: width, height: height, fontFamily: fonts.FallbackFontFamily}
}

// End closes the document.
func (c *SVGCanvas) End() { c.svg.End() }

func (c *SVGCanvas) Clear(color chart.Color) {
	if color.A == 0 {
		return
	}
	c.svg.Rect(0, 0, int(math.Ceil(c.width)), int(math.Ceil(c.height)), c.paint(render.Fill(color)))
}

func (c *SVGCanvas) DrawRect(r layout.Rect, p render.Paint) {
	// svgo takes integer rects; path data keeps sub-pixel edges.
	d := fmt.Sprintf("M%s %sh%sv%sh%sZ", path.FormatFloat(r.X), path.FormatFloat(r.Y), path.FormatFloat(r.W), path.FormatFloat(r.H), path.FormatFloat(-r.W))
	c.svg.Path(d, c.paint(p))
}

func (c *SVGCanvas) DrawCircle(center layout.Point, radius float64, p render.Paint) {
	if radius <= 0 {
		return
	}
	if isWhole(center.X) && isWhole(center.Y) && isWhole(radius) {
		c.svg.Circle(int(center.X), int(center.Y), int(radius), c.paint(p))
		return
	}
	var circle path.Path
	circle.ArcTo(center, radius, 0, 2*math.Pi)
	circle.Close()
	c.svg.Path(circle.SVG(), c.paint(p))
}

func (c *SVGCanvas) DrawLine(from, to layout.Point, p render.Paint) {
	c.svg.Path(fmt.Sprintf("M%s %sL%s %s", path.FormatFloat(from.X), path.FormatFloat(from.Y), path.FormatFloat(to.X), path.FormatFloat(to.Y)), c.paint(p))
}

func (c *SVGCanvas) DrawPath(pth path.Path, p render.Paint) {
	if pth.Empty() {
		return
	}
	attrs := c.paint(p)
	if pth.EvenOdd {
		attrs += ` fill-rule="evenodd"`
	}
	c.svg.Path(pth.SVG(), attrs)
}

func (c *SVGCanvas) DrawText(text string, anchor layout.Point, s render.TextStyle) {
	if text == "" {
		return
	}
	attrs := []string{
		fmt.Sprintf(`font-family="%s"`, c.fontFamily),
		fmt.Sprintf(`font-size="%s"`, path.FormatFloat(s.Size)),
		fmt.Sprintf(`text-anchor="%s"`, s.Align),
		fmt.Sprintf(`fill="%s"`, s.Color.RGB()),
	}
	if s.Color.A < 255 {
		attrs = append(attrs, fmt.Sprintf(`fill-opacity="%s"`, path.FormatFloat(s.Color.Opacity())))
	}
	if s.StrokeWidth > 0 {
		attrs = append(attrs,
			fmt.Sprintf(`stroke="%s"`, s.Color.RGB()),
			fmt.Sprintf(`stroke-width="%s"`, path.FormatFloat(s.StrokeWidth)),
			`stroke-linejoin="round"`)
	}

	if s.Rotation != 0 {
		c.svg.Gtransform(fmt.Sprintf("rotate(%s %s %s)", path.FormatFloat(s.Rotation), path.FormatFloat(anchor.X), path.FormatFloat(anchor.Y)))
		defer c.svg.Gend()
	}
	// Text positions are integral in svgo; shift the remainder with a
	// translate so labels stay where the layout put them.
	x, y := math.Floor(anchor.X), math.Floor(anchor.Y)
	if dx, dy := anchor.X-x, anchor.Y-y; dx != 0 || dy != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="translate(%s %s)"`, path.FormatFloat(dx), path.FormatFloat(dy)))
	}
	c.svg.Text(int(x), int(y), text, strings.Join(attrs, " "))
}

// paint renders p as presentation attributes, emitting a gradient
// definition first when needed.
func (c *SVGCanvas) paint(p render.Paint) string {
	ref, opacity := p.Color.RGB(), p.Color.Opacity()
	if p.Gradient != nil {
		ref, opacity = c.gradient(*p.Gradient), 1
	}

	var attrs []string
	if p.IsStroke() {
		attrs = append(attrs, `fill="none"`,
			fmt.Sprintf(`stroke="%s"`, ref),
			fmt.Sprintf(`stroke-width="%s"`, path.FormatFloat(p.StrokeWidth)))
		if opacity < 1 {
			attrs = append(attrs, fmt.Sprintf(`stroke-opacity="%s"`, path.FormatFloat(opacity)))
		}
		if p.Cap != "" && p.Cap != render.CapButt {
			attrs = append(attrs, fmt.Sprintf(`stroke-linecap="%s"`, p.Cap))
		}
		if len(p.Dash) > 0 {
			dash := make([]string, len(p.Dash))
			for i, d := range p.Dash {
				dash[i] = path.FormatFloat(d)
			}
			attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%s"`, strings.Join(dash, " ")))
		}
	} else {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, ref))
		if opacity < 1 {
			attrs = append(attrs, fmt.Sprintf(`fill-opacity="%s"`, path.FormatFloat(opacity)))
		}
	}
	return strings.Join(attrs, " ")
}

// gradient writes a userSpaceOnUse linear gradient and returns its paint
// reference. svgo's LinearGradient only supports bounding-box percentages,
// which collapse on horizontal lines.
func (c *SVGCanvas) gradient(g layout.Gradient) string {
	id := "gradient-" + strconv.Itoa(c.gradients)
	c.gradients++

	w := c.svg.Writer
	c.svg.Def()
	fmt.Fprintf(w, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
		id, path.FormatFloat(g.From.X), path.FormatFloat(g.From.Y), path.FormatFloat(g.To.X), path.FormatFloat(g.To.Y))
	for _, s := range g.Stops {
		fmt.Fprintf(w, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
			path.FormatFloat(s.Offset), s.Color.RGB(), path.FormatFloat(s.Color.Opacity()))
	}
	fmt.Fprintln(w, `</linearGradient>`)
	c.svg.DefEnd()
	return "url(#" + id + ")"
}

func isWhole(v float64) bool { return v == math.Trunc(v) }

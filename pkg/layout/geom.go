package layout

import "github.com/matzehuels/microcharts/pkg/chart"

// eps is the tolerance used for float comparisons throughout the package.
const eps = 1e-9

// Point is a position in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is a width/height pair in canvas units.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Stop is one color stop of a [Gradient]. Offset is in [0, 1].
type Stop struct {
	Offset float64     `json:"offset"`
	Color  chart.Color `json:"color"`
}

// Gradient is a linear gradient between two canvas points. Colors outside
// the From-To segment are clamped to the end stops.
type Gradient struct {
	From  Point  `json:"from"`
	To    Point  `json:"to"`
	Stops []Stop `json:"stops"`
}

// Area is a rectangle filled with a gradient.
type Area struct {
	Index    int      `json:"index"`
	Rect     Rect     `json:"rect"`
	Gradient Gradient `json:"gradient"`
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

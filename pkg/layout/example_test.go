package layout_test

import (
	"fmt"
	"math"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/layout"
)

func ExampleSectors() {
	c := chart.New(chart.KindDonut,
		chart.NewEntry(1), chart.NewEntry(1), chart.NewEntry(2),
	)
	l := layout.Sectors(c, 200, 200)

	for _, s := range l.Sectors {
		fmt.Printf("%d: %.2f-%.2f (%.0f°)\n", s.Index, s.Start, s.End, s.Sweep()*180/math.Pi)
	}
	// Output:
	// 0: 0.00-0.25 (90°)
	// 1: 0.25-0.50 (90°)
	// 2: 0.50-1.00 (180°)
}

func ExampleCartesian() {
	c := chart.New(chart.KindBar,
		chart.NewEntry(-1), chart.NewEntry(3),
	)
	l := layout.Cartesian(c, 200, 140, layout.ApproxMeasurer{})

	fmt.Printf("item %.0fx%.0f, origin y=%.0f\n", l.Item.W, l.Item.H, l.Origin)
	for i, p := range l.Points {
		fmt.Printf("%d: (%.0f, %.0f)\n", i, p.X, p.Y)
	}
	// Output:
	// item 70x80, origin y=80
	// 0: (55, 100)
	// 1: (145, 20)
}

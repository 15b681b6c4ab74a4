// Package chart defines the chart model: entries, colors, chart kinds and
// the per-kind configuration that the layout engines consume.
//
// A [Chart] is a plain value. Construct one with [New], which applies the
// defaults of the requested [Kind], then adjust fields directly:
//
//	c := chart.New(chart.KindLine,
//	    chart.Entry{Value: 212, Label: "UWP", ValueLabel: "212", Color: chart.MustParseColor("#2c3e50")},
//	    chart.Entry{Value: -248, Label: "Android", ValueLabel: "-248", Color: chart.MustParseColor("#77d065")},
//	)
//	c.Line.Mode = chart.LineModeStraight
//
// Charts coming from untrusted input (definition files, HTTP bodies) should
// be checked with [Chart.Validate]. The layout engines treat a valid chart as
// a precondition and never return errors.
package chart

package sink

import (
	"encoding/json"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	withChart bool
	compact   bool
}

// WithJSONChart embeds the chart definition next to its geometry, so the
// output can be rendered again without the source file.
func WithJSONChart() JSONOption { return func(r *jsonRenderer) { r.withChart = true } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	Chart    *chart.Chart    `json:"chart,omitempty"`
	Geometry render.Geometry `json:"geometry"`
}

// RenderJSON exports g.
func RenderJSON(c chart.Chart, g render.Geometry, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Geometry: g}
	if r.withChart {
		out.Chart = &c
	}
	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

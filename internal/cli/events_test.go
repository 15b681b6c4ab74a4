package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/microcharts/pkg/observability"
	"github.com/matzehuels/microcharts/pkg/pipeline"
)

func TestLogEvents(t *testing.T) {
	t.Cleanup(observability.Reset)
	captureOutput(t)

	var logs bytes.Buffer
	c := New(&logs, LogDebug)
	c.LogEvents()

	input := writeDefinition(t, "sales.toml", lineTOML)
	opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
	if err := c.runRender(context.Background(), input, opts, "", true); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	for _, want := range []string{"loaded", "entries=3", "laid out", "kind=line", "rendered", "cache miss", "format=svg"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("event log missing %q:\n%s", want, logs.String())
		}
	}
}

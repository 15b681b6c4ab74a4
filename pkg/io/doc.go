// Package io reads and writes chart definition files.
//
// # Overview
//
// A definition is a chart plus the canvas size it should be rendered at.
// Two encodings are supported, chosen by file extension:
//
//   - TOML (.toml), the format meant for hand-written charts
//   - JSON (.json), convenient for generated charts and the HTTP API
//
// # TOML Format
//
//	kind = "line"
//	width = 512
//	height = 512
//
//	[line]
//	mode = "spline"
//
//	[[entries]]
//	value = 212
//	label = "UWP"
//	value_label = "212"
//	color = "#2c3e50"
//
// The JSON form uses the same field names.
//
// # Defaults and Validation
//
// Decoding happens in two passes: the kind is read first, the document is
// then decoded on top of [chart.New] for that kind, so any field left out
// keeps its per-kind default. Entries get [chart.Entry.WithDefaults], and
// the result must pass [chart.Chart.Validate]. Unknown fields are rejected.
//
// All failures carry a [errors.Code]: INVALID_DEFINITION for malformed
// documents, FILE_NOT_FOUND for missing files, INVALID_FORMAT for an
// unsupported extension, and the validation codes of package chart.
//
// [chart.New]: github.com/matzehuels/microcharts/pkg/chart.New
// [chart.Entry.WithDefaults]: github.com/matzehuels/microcharts/pkg/chart.Entry.WithDefaults
// [chart.Chart.Validate]: github.com/matzehuels/microcharts/pkg/chart.Chart.Validate
// [errors.Code]: github.com/matzehuels/microcharts/pkg/errors.Code
package io

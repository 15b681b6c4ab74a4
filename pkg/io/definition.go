package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
)

// Format is a definition file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Definition is a chart together with its canvas size. A zero Width or
// Height means the caller's default.
type Definition struct {
	Width  float64 `json:"width,omitempty" toml:"width,omitempty"`
	Height float64 `json:"height,omitempty" toml:"height,omitempty"`
	chart.Chart
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported definition file %q (expected .toml or .json)", filepath.Base(path))
}

// finish applies entry defaults and validates the decoded definition.
func (d *Definition) finish() error {
	for i := range d.Entries {
		d.Entries[i] = d.Entries[i].WithDefaults()
	}
	if d.Width < 0 || d.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDefinition, "negative canvas size %vx%v", d.Width, d.Height)
	}
	if d.Width > 0 && d.Height > 0 {
		if err := errors.ValidateDimensions(d.Width, d.Height); err != nil {
			return err
		}
	}
	return d.Validate()
}

package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/microcharts/pkg/errors"
)

// Write encodes d in format f to w. The output can be read back with
// [Read].
func Write(d Definition, w io.Writer, f Format) error {
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format %q", f)
}

// ExportFile writes d to path, picking the format from its extension.
func ExportFile(d Definition, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer file.Close()
	return Write(d, file, f)
}

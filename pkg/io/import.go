package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/microcharts/pkg/chart"
	"github.com/matzehuels/microcharts/pkg/errors"
)

// Read decodes a definition in format f from r.
//
// The returned definition has per-kind defaults for every omitted field
// and has passed validation. Read does not close r.
func Read(r io.Reader, f Format) (Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "read definition")
	}
	switch f {
	case FormatTOML:
		return decodeTOML(data)
	case FormatJSON:
		return decodeJSON(data)
	}
	return Definition{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format %q", f)
}

// ReadTOML decodes a TOML definition from r.
func ReadTOML(r io.Reader) (Definition, error) { return Read(r, FormatTOML) }

// ReadJSON decodes a JSON definition from r.
func ReadJSON(r io.Reader) (Definition, error) { return Read(r, FormatJSON) }

// ImportFile reads the definition file at path, picking the format from
// its extension.
func ImportFile(path string) (Definition, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Definition{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Definition{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s not found", path)
		}
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "open %s", path)
	}
	defer file.Close()

	d, err := Read(file, f)
	if err != nil {
		return Definition{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return d, nil
}

type kindPeek struct {
	Kind string `json:"kind" toml:"kind"`
}

func peekKind(kind string) (chart.Kind, error) {
	if strings.TrimSpace(kind) == "" {
		return "", errors.New(errors.ErrCodeInvalidDefinition, "definition has no kind")
	}
	return chart.ParseKind(kind)
}

func decodeTOML(data []byte) (Definition, error) {
	var peek kindPeek
	if _, err := toml.Decode(string(data), &peek); err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode toml")
	}
	kind, err := peekKind(peek.Kind)
	if err != nil {
		return Definition{}, err
	}

	d := Definition{Chart: chart.New(kind)}
	meta, err := toml.Decode(string(data), &d)
	if err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode toml")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Definition{}, errors.New(errors.ErrCodeInvalidDefinition,
			"unknown fields: %s", strings.Join(keys, ", "))
	}
	d.Kind = kind
	return d, d.finish()
}

func decodeJSON(data []byte) (Definition, error) {
	var peek kindPeek
	if err := json.Unmarshal(data, &peek); err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode json")
	}
	kind, err := peekKind(peek.Kind)
	if err != nil {
		return Definition{}, err
	}

	d := Definition{Chart: chart.New(kind)}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode json")
	}
	d.Kind = kind
	return d, d.finish()
}

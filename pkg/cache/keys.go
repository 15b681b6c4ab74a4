package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale,omitempty"`
	Title  string  `json:"title,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey keys one rendered format of the definition whose content
	// hash is defHash.
	ArtifactKey(defHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "artifact:<format>:<digest>",
// where digest covers the definition hash and every option.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(defHash string, opts ArtifactKeyOpts) string {
	digest, err := HashJSON(struct {
		Definition string          `json:"definition"`
		Options    ArtifactKeyOpts `json:"options"`
	}{defHash, opts})
	if err != nil {
		// Options are plain numbers and strings; only NaN/Inf can fail.
		digest = Hash(fmt.Appendf(nil, "%s|%+v", defHash, opts))
	}
	format := opts.Format
	if format == "" {
		format = "any"
	}
	return "artifact:" + format + ":" + digest
}

// ScopedKeyer prefixes the keys of another Keyer. Scoping by release
// keeps artifacts drawn by different versions apart:
//
//	keyer := NewScopedKeyer(nil, buildinfo.Version) // "v1.2.0:artifact:svg:…"
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (the [DefaultKeyer] when nil). A ':' is
// appended to a non-empty prefix that lacks one.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey implements [Keyer].
func (k ScopedKeyer) ArtifactKey(defHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(defHash, opts)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON hashes the JSON encoding of v. Struct fields encode in
// declaration order, so equal values of one type hash equally.
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}

package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits applied to untrusted chart input (HTTP bodies, definition files).
const (
	MaxDimension = 8192
	MaxEntries   = 1024
	MaxLabelLen  = 256
	// MaxMagnitude bounds |value| of entries and range overrides so sums
	// over MaxEntries values stay finite.
	MaxMagnitude = 1e300
)

// ValidateDimensions checks that a canvas size is positive, finite and
// within [MaxDimension].
func ValidateDimensions(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "canvas size must be finite")
		}
		if v <= 0 {
			return New(ErrCodeInvalidInput, "canvas size must be positive, got %gx%g", width, height)
		}
		if v > MaxDimension {
			return New(ErrCodeInvalidInput, "canvas size exceeds %d pixels", MaxDimension)
		}
	}
	return nil
}

// ValidateLabel rejects labels that are too long or contain control
// characters. Empty labels are valid and mean "no label".
func ValidateLabel(label string) error {
	if len(label) > MaxLabelLen {
		return New(ErrCodeInvalidInput, "label too long (max %d characters)", MaxLabelLen)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
// It rejects empty paths, null bytes and paths that climb out of the
// working directory through "..".
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidInput, "output path contains null bytes")
	}
	if filepath.IsAbs(path) {
		return nil
	}
	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return New(ErrCodeInvalidInput, "output path escapes the working directory: %s", path)
	}
	return nil
}

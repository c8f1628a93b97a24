package errors

import (
	"strings"
	"unicode"
)

// ValidateGrid validates the card grid dimensions for a generation run.
// A grid smaller than 1x1 cannot hold any card, so both dimensions must be
// at least 1. Larger-than-page grids are the caller's problem; the layout
// math itself has no upper bound.
func ValidateGrid(rows, cols int) error {
	if rows < 1 {
		return New(ErrCodeInvalidConfig, "grid rows must be at least 1, got %d", rows)
	}
	if cols < 1 {
		return New(ErrCodeInvalidConfig, "grid cols must be at least 1, got %d", cols)
	}
	return nil
}

// ValidateCaseName validates an algorithm case name for safety.
// Case names end up in file names (icon SVGs) and in LaTeX text, so the
// validation is intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateCaseName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "case name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidConfig, "case name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "case name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidConfig, "case name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputDir validates a target directory path for generated files.
// It rejects empty paths and embedded null bytes; everything else is left to
// the filesystem (the directory is created on demand).
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "target directory cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidConfig, "target directory contains invalid characters")
	}
	return nil
}

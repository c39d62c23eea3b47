package errors

import (
	"strings"
	"unicode"
)

// ValidatePackCount validates the requested number of packs.
// The engine itself clamps low values; adapters reject them up front
// so callers get a clear error instead of a silent clamp.
func ValidatePackCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidPackCount, "pack count must be at least 1, got %d", n)
	}
	const maxPackCount = 1000
	if n > maxPackCount {
		return New(ErrCodeInvalidPackCount, "pack count too large (max %d)", maxPackCount)
	}
	return nil
}

// ValidateOutputFormat validates an output format name against the
// closed set the engine renders.
func ValidateOutputFormat(format string, known func(string) bool) error {
	if format == "" {
		return nil // engine default applies
	}
	if !known(format) {
		return New(ErrCodeInvalidFormat, "unknown output format: %q", format)
	}
	return nil
}

// ValidateFilePath validates one input file path for safety and
// correctness. It rejects paths that could be used for traversal or
// injection when a pack is later written back to storage.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - No path traversal sequences (..)
//   - No absolute paths
//   - Maximum length of 500 characters
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "file path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "file path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return New(ErrCodeInvalidPath, "file path must be relative: %q", path)
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "file path cannot contain traversal sequences (..): %q", path)
	}

	return nil
}

// ValidateTreePath validates a path requested from the discovery
// endpoint before it is resolved against the confined root.
func ValidateTreePath(path string) error {
	if path == "" {
		return nil // empty means the root itself
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain traversal sequences (..)")
	}
	return nil
}

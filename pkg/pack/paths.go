package pack

import (
	"path"
	"strings"
)

// NormalizePath converts p to its canonical forward-slash form with
// "." and ".." segments resolved against an implicit root. The result
// never escapes the root and never refers to a real filesystem
// location; it is only a graph key.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	// Joining against "/" pins ".." at the implicit root, then the
	// leading slash is dropped to keep keys root-relative.
	normalized := path.Join("/", p)
	return strings.TrimPrefix(normalized, "/")
}

// parentDir returns the directory portion of a normalized path, or ""
// for a root-level file.
func parentDir(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

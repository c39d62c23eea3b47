package pack

import (
	"path"
	"strings"
)

// aliasPrefix maps the common source-root alias onto its
// root-relative expansion.
const (
	aliasPrefix    = "@/"
	aliasExpansion = "src/"
)

// externalPrefixes mark specifiers that can never name an input file:
// URLs and runtime builtins.
var externalPrefixes = []string{
	"http://",
	"https://",
	"node:",
	"bun:",
	"deno:",
}

// probeExtensions is the closed list of extensions tried, in order,
// for candidates written without one. Each extension is probed as
// both "<base>.<ext>" and "<base>/index.<ext>".
var probeExtensions = []string{
	"ts", "tsx", "js", "jsx", "mjs", "cjs",
	"py", "rs", "go", "rb", "java", "css", "json",
}

// Resolver maps module specifiers onto the indices of a fixed file
// set. It is deterministic and touches no filesystem: a specifier
// resolves only if a matching normalized path exists in the set.
type Resolver struct {
	index map[string]int
}

// NewResolver builds a resolver over the given normalized paths, in
// input order. When two files normalize to the same path the first
// keeps the key.
func NewResolver(paths []string) *Resolver {
	index := make(map[string]int, len(paths))
	for i, p := range paths {
		if _, exists := index[p]; !exists {
			index[p] = i
		}
	}
	return &Resolver{index: index}
}

// Resolve maps one specifier, referenced from the file at fromPath
// (normalized), to a file index. The boolean reports whether any
// candidate matched; a false result means the reference is external.
func (r *Resolver) Resolve(spec, fromPath string) (int, bool) {
	if spec == "" {
		return 0, false
	}
	for _, p := range externalPrefixes {
		if strings.HasPrefix(spec, p) {
			return 0, false
		}
	}

	for _, base := range r.candidates(spec, fromPath) {
		if idx, ok := r.probe(base); ok {
			return idx, true
		}
	}
	return 0, false
}

// candidates builds the base paths to probe: alias expansion,
// relative resolution, root-relative, or the specifier verbatim. The
// verbatim form is what lets same-repo bare references resolve while
// genuine package names fail.
func (r *Resolver) candidates(spec, fromPath string) []string {
	switch {
	case strings.HasPrefix(spec, aliasPrefix):
		return []string{NormalizePath(aliasExpansion + spec[len(aliasPrefix):])}
	case strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../"):
		return []string{NormalizePath(path.Join(parentDir(fromPath), spec))}
	case strings.HasPrefix(spec, "/"):
		return []string{NormalizePath(spec)}
	}
	return []string{NormalizePath(spec)}
}

// probe looks up a candidate base path. Bases carrying an explicit
// extension are looked up directly; the rest go through the
// extension/index probe list in fixed order.
func (r *Resolver) probe(base string) (int, bool) {
	if base == "" {
		return 0, false
	}
	if path.Ext(base) != "" {
		idx, ok := r.index[base]
		return idx, ok
	}
	for _, ext := range probeExtensions {
		if idx, ok := r.index[base+"."+ext]; ok {
			return idx, true
		}
		if idx, ok := r.index[base+"/index."+ext]; ok {
			return idx, true
		}
	}
	return 0, false
}

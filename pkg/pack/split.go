package pack

import (
	"path"
	"slices"
	"strings"
)

// docExtensions classify a file as documentation rather than code.
var docExtensions = map[string]struct{}{
	".md":   {},
	".mdx":  {},
	".txt":  {},
	".rst":  {},
	".adoc": {},
}

// docPrefixes assign priority bucket 1: conceptual documents that
// should follow READMEs but precede everything else.
var docPrefixes = []string{"overview", "architecture", "design", "spec", "contributing"}

func isDoc(normalizedPath string) bool {
	_, ok := docExtensions[strings.ToLower(path.Ext(normalizedPath))]
	return ok
}

// splitDocs partitions an ordered index sequence into documentation
// and code subsequences. Code keeps the incoming (topological) order.
// Documentation is re-sorted by a 4-bucket priority: READMEs first,
// then conceptual docs, then anything under a docs/ directory, then
// the rest; ties break on the lowercase normalized path.
func splitDocs(order []int, paths []string) (docs, code []int) {
	for _, idx := range order {
		if isDoc(paths[idx]) {
			docs = append(docs, idx)
		} else {
			code = append(code, idx)
		}
	}

	slices.SortStableFunc(docs, func(a, b int) int {
		pa, pb := strings.ToLower(paths[a]), strings.ToLower(paths[b])
		if ba, bb := docBucket(pa), docBucket(pb); ba != bb {
			return ba - bb
		}
		return strings.Compare(pa, pb)
	})
	return docs, code
}

// docBucket computes the priority bucket for a lowercase normalized
// documentation path.
func docBucket(lowerPath string) int {
	base := path.Base(lowerPath)
	if strings.HasPrefix(base, "readme") {
		return 0
	}
	for _, p := range docPrefixes {
		if strings.HasPrefix(base, p) {
			return 1
		}
	}
	if strings.HasPrefix(lowerPath, "docs/") || strings.Contains(lowerPath, "/docs/") {
		return 2
	}
	return 3
}

package pack

import (
	"github.com/contextpack/contextpack/pkg/depgraph"
)

// BuildGraph extracts every file's specifiers and resolves them
// against the full set, producing the dependency graph the pipeline
// orders and groups with. The directed edges and the undirected
// related adjacency are populated from the same resolution pass;
// duplicate specifiers have no additional effect.
func BuildGraph(files []SourceFile) *depgraph.Graph {
	paths := normalizedPaths(files)
	resolver := NewResolver(paths)
	g := depgraph.New(paths)

	for i := range files {
		for _, spec := range ExtractSpecifiers(files[i].Content) {
			dep, ok := resolver.Resolve(spec, paths[i])
			if !ok || dep == i {
				continue
			}
			g.AddDependency(dep, i)
			g.AddRelated(dep, i)
		}
	}
	return g
}

func normalizedPaths(files []SourceFile) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = NormalizePath(f.Path)
	}
	return paths
}

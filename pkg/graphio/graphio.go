// Package graphio serializes file dependency graphs for external
// consumption: a canonical JSON form for tooling, Graphviz DOT for
// diagramming, and rendered SVG.
//
// Output is deterministic: nodes are sorted by normalized path and
// edges by endpoint, so identical inputs serialize identically.
package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/contextpack/contextpack/pkg/depgraph"
)

// Graph is the canonical serialization format for a file dependency
// graph. Edges point dependency→dependent; related pairs carry the
// undirected adjacency used for grouping.
type Graph struct {
	Nodes   []Node `json:"nodes"`
	Edges   []Edge `json:"edges"`
	Related []Edge `json:"related,omitempty"`
}

// Node is one file in the graph.
type Node struct {
	Path     string `json:"path"`
	Indegree int    `json:"indegree"`
}

// Edge is a directed dependency→dependent pair, by path.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FromGraph converts the dependency graph into its serialization
// form. Nodes are sorted by path, edges by (from, to).
func FromGraph(g *depgraph.Graph) Graph {
	out := Graph{
		Nodes: make([]Node, 0, g.NodeCount()),
	}
	for i := 0; i < g.NodeCount(); i++ {
		out.Nodes = append(out.Nodes, Node{Path: g.Path(i), Indegree: g.Indegree(i)})
	}
	slices.SortFunc(out.Nodes, func(a, b Node) int {
		return strings.Compare(a.Path, b.Path)
	})

	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Edge{From: g.Path(e[0]), To: g.Path(e[1])})
	}
	for i := 0; i < g.NodeCount(); i++ {
		for _, nb := range g.Related(i) {
			if i < nb {
				out.Related = append(out.Related, Edge{From: g.Path(i), To: g.Path(nb)})
			}
		}
	}
	sortEdges(out.Edges)
	sortEdges(out.Related)
	return out
}

func sortEdges(edges []Edge) {
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
}

// WriteJSON writes the graph as indented JSON to w.
func WriteJSON(g *depgraph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON serializes the graph to JSON bytes.
func MarshalJSON(g *depgraph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToDOT converts the dependency graph to Graphviz DOT format.
// Directed dependency edges are solid; files with no edges still
// appear as isolated nodes.
func ToDOT(g *depgraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	serialized := FromGraph(g)
	for _, n := range serialized.Nodes {
		fmt.Fprintf(&buf, "  %q;\n", n.Path)
	}
	buf.WriteString("\n")
	for _, e := range serialized.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

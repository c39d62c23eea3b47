package pack

import (
	"github.com/contextpack/contextpack/pkg/depgraph"
)

// groupComponents reorders the code subsequence so import-connected
// files sit next to each other. Connected components of the related
// adjacency (restricted to members of code) are emitted in the order
// their earliest member appears; within a component, members keep
// their relative order. Files joined by a resolvable reference are
// therefore always contiguous here, though pack boundaries may still
// fall inside a component.
func groupComponents(code []int, g *depgraph.Graph) []int {
	if len(code) < 2 {
		return code
	}
	out := make([]int, 0, len(code))
	for _, component := range g.Components(code) {
		out = append(out, component...)
	}
	return out
}

// Package depgraph provides the dependency structures the packing
// pipeline orders files with: a directed dependency→dependent edge
// set with indegree counts, and an undirected "related" adjacency
// used for grouping.
//
// Nodes are file indices into a fixed input list; normalized paths
// serve only as deterministic tiebreaks. The graph is built once and
// read afterwards; it is not safe for concurrent mutation.
package depgraph

import (
	"slices"
	"strings"
)

type edgeKey struct{ from, to int }

// Graph holds directed and undirected adjacency over a fixed set of
// files. Use New, then AddDependency/AddRelated while building; every
// accessor is read-only.
type Graph struct {
	paths      []string
	dependents [][]int // dependency index -> dependent indices
	indegree   []int
	related    [][]int // undirected, symmetric

	edgeSet map[edgeKey]struct{}
	relSet  map[edgeKey]struct{}
}

// New creates an empty graph over files identified by their
// normalized paths. Index i of paths is file index i.
func New(paths []string) *Graph {
	return &Graph{
		paths:      paths,
		dependents: make([][]int, len(paths)),
		indegree:   make([]int, len(paths)),
		related:    make([][]int, len(paths)),
		edgeSet:    make(map[edgeKey]struct{}),
		relSet:     make(map[edgeKey]struct{}),
	}
}

// AddDependency records that dependent imports dep. Duplicate edges
// and self-edges are ignored, so a dependent's indegree counts each
// distinct dependency exactly once.
func (g *Graph) AddDependency(dep, dependent int) {
	if dep == dependent {
		return
	}
	key := edgeKey{dep, dependent}
	if _, dup := g.edgeSet[key]; dup {
		return
	}
	g.edgeSet[key] = struct{}{}
	g.dependents[dep] = append(g.dependents[dep], dependent)
	g.indegree[dependent]++
}

// AddRelated records an undirected relation between a and b. Both
// directions are stored; duplicates and self-relations are ignored.
func (g *Graph) AddRelated(a, b int) {
	if a == b {
		return
	}
	key := edgeKey{min(a, b), max(a, b)}
	if _, dup := g.relSet[key]; dup {
		return
	}
	g.relSet[key] = struct{}{}
	g.related[a] = append(g.related[a], b)
	g.related[b] = append(g.related[b], a)
}

// NodeCount returns the number of files in the graph.
func (g *Graph) NodeCount() int { return len(g.paths) }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int { return len(g.edgeSet) }

// Path returns the normalized path of file i.
func (g *Graph) Path(i int) string { return g.paths[i] }

// Indegree returns the number of distinct dependencies of file i.
func (g *Graph) Indegree(i int) int { return g.indegree[i] }

// Dependents returns the files that import file i. The slice is a
// read-only view.
func (g *Graph) Dependents(i int) []int { return g.dependents[i] }

// Related returns the files undirectedly related to file i. The
// slice is a read-only view.
func (g *Graph) Related(i int) []int { return g.related[i] }

// Edges returns every directed edge as [dependency, dependent]
// pairs, sorted for deterministic output.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, len(g.edgeSet))
	for k := range g.edgeSet {
		out = append(out, [2]int{k.from, k.to})
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return out
}

// TopoOrder returns a deterministic ordering in which every file
// appears after its dependencies. Ready files are extracted smallest
// (normalizedPath, index) first, so the result never depends on input
// enumeration order. Files caught in dependency cycles are appended
// at the end, sorted by normalized path, guaranteeing a total order
// for any input.
func (g *Graph) TopoOrder() []int {
	n := len(g.paths)
	indegree := slices.Clone(g.indegree)

	var ready readySet
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			ready.insert(i, g.paths[i])
		}
	}

	order := make([]int, 0, n)
	placed := make([]bool, n)
	for ready.len() > 0 {
		i := ready.popMin()
		order = append(order, i)
		placed[i] = true
		for _, dep := range g.dependents[i] {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready.insert(dep, g.paths[dep])
			}
		}
	}

	// Anything left is part of a cycle. Append it in path order so
	// the fallback stays deterministic too.
	var rest []int
	for i := 0; i < n; i++ {
		if !placed[i] {
			rest = append(rest, i)
		}
	}
	slices.SortFunc(rest, func(a, b int) int {
		if c := strings.Compare(g.paths[a], g.paths[b]); c != 0 {
			return c
		}
		return a - b
	})
	return append(order, rest...)
}

// Components partitions seq into connected components of the related
// adjacency, restricted to members of seq. Within a component,
// members keep their relative order from seq; components are emitted
// in the order their earliest member appears in seq.
func (g *Graph) Components(seq []int) [][]int {
	pos := make(map[int]int, len(seq))
	for i, idx := range seq {
		pos[idx] = i
	}

	comp := make(map[int]int, len(seq)) // file index -> component id
	nextComp := 0
	for _, start := range seq {
		if _, visited := comp[start]; visited {
			continue
		}
		id := nextComp
		nextComp++
		stack := []int{start}
		comp[start] = id
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range g.related[cur] {
				if _, inSeq := pos[nb]; !inSeq {
					continue
				}
				if _, visited := comp[nb]; visited {
					continue
				}
				comp[nb] = id
				stack = append(stack, nb)
			}
		}
	}

	out := make([][]int, nextComp)
	for _, idx := range seq {
		id := comp[idx]
		out[id] = append(out[id], idx)
	}
	return out
}

// readySet keeps pending files sorted by (path, index) so extraction
// order is deterministic regardless of insertion order.
type readySet struct {
	entries []readyEntry
}

type readyEntry struct {
	index int
	path  string
}

func (r *readySet) len() int { return len(r.entries) }

func (r *readySet) insert(index int, path string) {
	e := readyEntry{index: index, path: path}
	at, _ := slices.BinarySearchFunc(r.entries, e, compareReady)
	r.entries = slices.Insert(r.entries, at, e)
}

func (r *readySet) popMin() int {
	e := r.entries[0]
	r.entries = r.entries[1:]
	return e.index
}

func compareReady(a, b readyEntry) int {
	if c := strings.Compare(a.path, b.path); c != 0 {
		return c
	}
	return a.index - b.index
}

package depgraph

import (
	"slices"
	"testing"
)

func TestAddDependency_Dedup(t *testing.T) {
	g := New([]string{"a", "b"})
	g.AddDependency(0, 1)
	g.AddDependency(0, 1)

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if g.Indegree(1) != 1 {
		t.Errorf("Indegree(1) = %d, want 1", g.Indegree(1))
	}
}

func TestAddDependency_SelfEdgeIgnored(t *testing.T) {
	g := New([]string{"a"})
	g.AddDependency(0, 0)

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestAddRelated_Symmetric(t *testing.T) {
	g := New([]string{"a", "b"})
	g.AddRelated(0, 1)
	g.AddRelated(1, 0) // duplicate in the other direction

	if got := g.Related(0); !slices.Equal(got, []int{1}) {
		t.Errorf("Related(0) = %v, want [1]", got)
	}
	if got := g.Related(1); !slices.Equal(got, []int{0}) {
		t.Errorf("Related(1) = %v, want [0]", got)
	}
}

func TestTopoOrder_DependenciesFirst(t *testing.T) {
	// b depends on a, c depends on b.
	g := New([]string{"c", "b", "a"})
	g.AddDependency(2, 1) // a -> b
	g.AddDependency(1, 0) // b -> c

	got := g.TopoOrder()
	want := []int{2, 1, 0}
	if !slices.Equal(got, want) {
		t.Errorf("TopoOrder() = %v, want %v", got, want)
	}
}

func TestTopoOrder_LexicographicTiebreak(t *testing.T) {
	// No edges: order is purely by normalized path.
	g := New([]string{"z.go", "a.go", "m.go"})

	got := g.TopoOrder()
	want := []int{1, 2, 0} // a.go, m.go, z.go
	if !slices.Equal(got, want) {
		t.Errorf("TopoOrder() = %v, want %v", got, want)
	}
}

func TestTopoOrder_InsensitiveToInsertionOrder(t *testing.T) {
	build := func(edges [][2]int) []int {
		g := New([]string{"a", "b", "c", "d"})
		for _, e := range edges {
			g.AddDependency(e[0], e[1])
		}
		return g.TopoOrder()
	}

	forward := build([][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	reversed := build([][2]int{{2, 3}, {1, 3}, {0, 2}, {0, 1}})

	if !slices.Equal(forward, reversed) {
		t.Errorf("TopoOrder() varies with insertion order: %v vs %v", forward, reversed)
	}
}

func TestTopoOrder_TwoCycle(t *testing.T) {
	g := New([]string{"a", "b"})
	g.AddDependency(0, 1)
	g.AddDependency(1, 0)

	got := g.TopoOrder()
	if len(got) != 2 {
		t.Fatalf("TopoOrder() returned %d nodes, want 2", len(got))
	}
	// Cycle fallback: both appended, sorted by path.
	want := []int{0, 1}
	if !slices.Equal(got, want) {
		t.Errorf("TopoOrder() = %v, want %v", got, want)
	}
}

func TestTopoOrder_SelfCycleViaDirectEdge(t *testing.T) {
	// A self-edge is rejected at Add time, so the node stays ready.
	g := New([]string{"a"})
	g.AddDependency(0, 0)

	got := g.TopoOrder()
	if !slices.Equal(got, []int{0}) {
		t.Errorf("TopoOrder() = %v, want [0]", got)
	}
}

func TestTopoOrder_PartialCycle(t *testing.T) {
	// a -> b <-> c, plus free-standing d.
	g := New([]string{"a", "b", "c", "d"})
	g.AddDependency(0, 1)
	g.AddDependency(1, 2)
	g.AddDependency(2, 1)

	got := g.TopoOrder()
	if len(got) != 4 {
		t.Fatalf("TopoOrder() returned %d nodes, want 4", len(got))
	}
	seen := make(map[int]int)
	for _, idx := range got {
		seen[idx]++
	}
	for i := 0; i < 4; i++ {
		if seen[i] != 1 {
			t.Errorf("node %d appears %d times, want exactly once", i, seen[i])
		}
	}
	// a precedes b (a is b's dependency and not in the cycle).
	if slices.Index(got, 0) > slices.Index(got, 1) {
		t.Errorf("TopoOrder() = %v, want a before b", got)
	}
}

func TestComponents_OrderPreserved(t *testing.T) {
	g := New([]string{"a", "b", "c", "d", "e"})
	g.AddRelated(0, 3) // a-d one component
	g.AddRelated(1, 4) // b-e another

	seq := []int{0, 1, 2, 3, 4}
	got := g.Components(seq)

	want := [][]int{{0, 3}, {1, 4}, {2}}
	if len(got) != len(want) {
		t.Fatalf("Components() = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("Components()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestComponents_RestrictedToSubset(t *testing.T) {
	g := New([]string{"a", "b", "c"})
	g.AddRelated(0, 1)
	g.AddRelated(1, 2)

	// b is not in the subset, so a and c must not join through it.
	got := g.Components([]int{0, 2})
	want := [][]int{{0}, {2}}
	if len(got) != 2 || !slices.Equal(got[0], want[0]) || !slices.Equal(got[1], want[1]) {
		t.Errorf("Components() = %v, want %v", got, want)
	}
}

func TestEdges_Sorted(t *testing.T) {
	g := New([]string{"a", "b", "c"})
	g.AddDependency(2, 0)
	g.AddDependency(0, 1)
	g.AddDependency(1, 2)

	got := g.Edges()
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

package cliques_test

import (
	"sort"

	"github.com/katalvlaran/subgraphs/core"
)

// sortSets sorts each inner slice and then sorts the outer slice
// lexicographically, so set-of-sets comparisons are order-independent.
func sortSets(sets [][]string) [][]string {
	out := make([][]string, len(sets))
	for i, s := range sets {
		cp := append([]string(nil), s...)
		sort.Strings(cp)
		out[i] = cp
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})

	return out
}

func newTriangle() *core.Graph {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("a", "c", 0)

	return g
}

// newPath4 builds a-b-c-d.
func newPath4() *core.Graph {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("c", "d", 0)

	return g
}

// newCycle4 builds a-b-c-d-a.
func newCycle4() *core.Graph {
	g := newPath4()
	_, _ = g.AddEdge("d", "a", 0)

	return g
}

// newDisjointEdges builds two disconnected edges: a-b, c-d.
func newDisjointEdges() *core.Graph {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("c", "d", 0)

	return g
}

func newSingleVertex() *core.Graph {
	g := core.NewGraph()
	_ = g.AddVertex("a")

	return g
}

// newEmpty3 builds three vertices with no edges.
func newEmpty3() *core.Graph {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddVertex(id)
	}

	return g
}

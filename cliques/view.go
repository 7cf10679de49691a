package cliques

import (
	"sort"

	"github.com/katalvlaran/subgraphs/core"
)

// IndexedGraph is a View over a *core.Graph: vertex IDs are assigned dense
// indices 0..n-1 by sorting core.Graph.Vertices() (already lexicographically
// sorted, core's own determinism invariant — see core/methods_vertices.go),
// and neighbor lists are the ascending, symmetrized union of incident edges
// in both directions, so that a directed edge u->v makes u and v mutually
// adjacent here (direction is ignored, per spec, with a one-time warning).
type IndexedGraph struct {
	ids   []string // index -> vertex ID, ascending
	index map[string]int
	adj   [][]int // index -> ascending, deduplicated neighbor indices
}

// NewIndexedGraph builds an IndexedGraph snapshot of g. g is read once and
// never retained or mutated afterward. opts' OnWarning hook (if any) is
// invoked once if g has directed edges.
func NewIndexedGraph(g *core.Graph, opts ...Option) (*IndexedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := resolveOptions(opts...)

	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	n := len(ids)
	adjSets := make([]map[int]struct{}, n)
	for i := range adjSets {
		adjSets[i] = make(map[int]struct{})
	}

	if g.HasDirectedEdges() {
		o.warn(warnDirectionIgnored())
	}

	for _, e := range g.Edges() {
		u, uok := index[e.From]
		v, vok := index[e.To]
		if !uok || !vok || u == v {
			continue
		}
		adjSets[u][v] = struct{}{}
		adjSets[v][u] = struct{}{}
	}

	adj := make([][]int, n)
	for i, set := range adjSets {
		list := make([]int, 0, len(set))
		for v := range set {
			list = append(list, v)
		}
		sort.Ints(list)
		adj[i] = list
	}

	return &IndexedGraph{ids: ids, index: index, adj: adj}, nil
}

// VertexCount implements View.
func (ig *IndexedGraph) VertexCount() int { return len(ig.ids) }

// Neighbors implements View.
func (ig *IndexedGraph) Neighbors(v int) []int { return ig.adj[v] }

// VertexID returns the original core.Graph vertex ID for index v.
func (ig *IndexedGraph) VertexID(v int) string { return ig.ids[v] }

// IndexOf returns the dense index assigned to vertex ID id, and whether id
// was present in the graph this IndexedGraph was built from.
func (ig *IndexedGraph) IndexOf(id string) (int, bool) {
	v, ok := ig.index[id]
	return v, ok
}

// ComplementView wraps a View and exposes, for every v, the ascending
// enumeration of V \ ({v} union Neighbors(v)) — the edge-complement
// adjacency used by independent-set queries (spec: "Complement adjacency").
// It is built once, eagerly, at construction time.
type ComplementView struct {
	n   int
	adj [][]int
}

// NewComplementView builds the complement of base.
func NewComplementView(base View) *ComplementView {
	n := base.VertexCount()
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		neigh := base.Neighbors(v)
		list := make([]int, 0, n-len(neigh)-1)
		j := 0
		for u := 0; u < n; u++ {
			if u == v {
				continue
			}
			for j < len(neigh) && neigh[j] < u {
				j++
			}
			if j < len(neigh) && neigh[j] == u {
				continue
			}
			list = append(list, u)
		}
		adj[v] = list
	}

	return &ComplementView{n: n, adj: adj}
}

// VertexCount implements View.
func (cv *ComplementView) VertexCount() int { return cv.n }

// Neighbors implements View.
func (cv *ComplementView) Neighbors(v int) []int { return cv.adj[v] }

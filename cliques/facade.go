package cliques

import "github.com/katalvlaran/subgraphs/core"

// AllCliques returns every clique of g with size in [minSize, maxSize]
// (inclusive). A non-positive or out-of-range maxSize means "no upper
// bound"; a negative minSize means "no lower bound" — both normalized
// exactly as the origin igraph_cliques does. Results are vertex-ID sets
// from g, one per clique, in ascending-size order.
func AllCliques(g *core.Graph, minSize, maxSize int, opts ...Option) ([][]string, error) {
	return boundedQuery(g, minSize, maxSize, false, opts...)
}

// AllIndependentSets returns every independent vertex set of g with size
// in [minSize, maxSize], with the same bound normalization as AllCliques.
func AllIndependentSets(g *core.Graph, minSize, maxSize int, opts ...Option) ([][]string, error) {
	return boundedQuery(g, minSize, maxSize, true, opts...)
}

// MaximalCliques returns every clique of g that cannot be extended by
// adding another vertex. Implemented as a maximal independent vertex set
// search over the edge-complement of g.
func MaximalCliques(g *core.Graph, opts ...Option) ([][]string, error) {
	return backtrackQuery(g, true, false, opts...)
}

// MaximalIndependentSets returns every independent vertex set of g that
// cannot be extended by adding another vertex, via the
// Tsukiyama-Ide-Ariyoshi-Shirakawa algorithm.
func MaximalIndependentSets(g *core.Graph, opts ...Option) ([][]string, error) {
	return backtrackQuery(g, false, false, opts...)
}

// LargestCliques returns the clique(s) of maximum size in g. Largest
// cliques are always maximal, but not every maximal clique is largest.
func LargestCliques(g *core.Graph, opts ...Option) ([][]string, error) {
	return backtrackQuery(g, true, true, opts...)
}

// LargestIndependentSets returns the independent vertex set(s) of maximum
// size in g.
func LargestIndependentSets(g *core.Graph, opts ...Option) ([][]string, error) {
	return backtrackQuery(g, false, true, opts...)
}

// CliqueNumber returns omega(g), the size of the largest clique, without
// materializing any vertex sets.
func CliqueNumber(g *core.Graph, opts ...Option) (int, error) {
	return backtrackSizeQuery(g, true, opts...)
}

// IndependenceNumber returns alpha(g), the size of the largest independent
// vertex set, without materializing any vertex sets.
func IndependenceNumber(g *core.Graph, opts ...Option) (int, error) {
	return backtrackSizeQuery(g, false, opts...)
}

func boundedQuery(g *core.Graph, minSize, maxSize int, independent bool, opts ...Option) ([][]string, error) {
	ig, err := NewIndexedGraph(g, opts...)
	if err != nil {
		return nil, err
	}

	o := resolveOptions(opts...)
	sink := NewSink()
	if err := expand(ig, minSize, maxSize, independent, sink, o); err != nil {
		return nil, err
	}

	return materialize(ig, sink), nil
}

func backtrackQuery(g *core.Graph, cliqueMode, largestOnly bool, opts ...Option) ([][]string, error) {
	ig, err := NewIndexedGraph(g, opts...)
	if err != nil {
		return nil, err
	}
	o := resolveOptions(opts...)

	var view View = ig
	if cliqueMode {
		view = NewComplementView(ig)
	}

	sink := NewSink()
	e := newBacktrackEngine(view, sink, largestOnly, o)
	if _, err := e.run(); err != nil {
		return nil, err
	}

	return materialize(ig, sink), nil
}

func backtrackSizeQuery(g *core.Graph, cliqueMode bool, opts ...Option) (int, error) {
	ig, err := NewIndexedGraph(g, opts...)
	if err != nil {
		return 0, err
	}
	o := resolveOptions(opts...)

	var view View = ig
	if cliqueMode {
		view = NewComplementView(ig)
	}

	e := newBacktrackEngine(view, nil, false, o)
	return e.run()
}

// materialize maps a Sink's index-based sets back to the original
// core.Graph vertex IDs, sorted ascending within each set (ig's index
// order is already ascending by vertex ID).
func materialize(ig *IndexedGraph, sink *Sink) [][]string {
	sets := sink.Sets()
	out := make([][]string, len(sets))
	for i, set := range sets {
		ids := make([]string, len(set))
		for j, v := range set {
			ids[j] = ig.VertexID(v)
		}
		out[i] = ids
	}

	return out
}

// Package cliques enumerates cliques and independent vertex sets on
// core.Graph values.
//
// # Cliques and independent vertex sets
//
// A clique is a set of vertices that are pairwise adjacent. An independent
// vertex set is a set of vertices that are pairwise non-adjacent; it is a
// clique of the edge-complement graph. This package provides bounded
// enumeration (all cliques/sets within a size range), maximal enumeration
// (sets that cannot be extended), largest enumeration (the maximum-size
// sets only), and the two derived scalars: the clique number and the
// independence number.
//
// Two engines cooperate:
//
//   - The level expander builds k-vertex cliques from (k-1)-vertex cliques
//     by merging pairs that differ in exactly one vertex and are joined by
//     an edge (or, for independent sets, are not). This is the bounded,
//     "all cliques in [min,max]" code path.
//   - The backtrack engine is a Tsukiyama-Ide-Ariyoshi-Shirakawa search for
//     maximal independent vertex sets, driven over either the plain or the
//     complement adjacency depending on whether cliques or independent sets
//     are wanted. This is the "maximal" and "largest" code path, since the
//     largest cliques/sets are always maximal.
//
// Both engines run on a View, a minimal read-only adjacency abstraction
// (view.go) built once over a core.Graph and left untouched afterwards —
// this package never mutates the graph it is given.
//
// Directed edges are treated as undirected (direction is ignored, with a
// one-time warning through Options.OnWarning); the package performs no
// I/O, holds no file handles, and does not reach for any wire protocol —
// only in-memory enumeration over a caller-supplied graph.
//
// Steps for a bounded query (facade.go, AllCliques/AllIndependentSets):
//  1. Normalize min/max size.
//  2. Emit singletons directly if min<=1.
//  3. Expand generation k from generation k-1 by pairwise merge (expander.go).
//  4. Emit generation k into the Sink if k is within [min,max].
//  5. Stop when a generation produces at most one set, or max is reached.
//
// Steps for a maximal/largest query (facade.go, MaximalCliques/LargestCliques/...):
//  1. Build the (possibly complemented) adjacency view.
//  2. Run the TIAS backtrack search from level 0 (backtrack.go).
//  3. At each leaf, collect the vertices with IS[v]==0 into a set.
//  4. Push the set into the Sink (append, or clear-and-replace under
//     keep-only-largest), or just track the size for clique-number/
//     independence-number queries (Sink is nil).
package cliques

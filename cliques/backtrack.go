package cliques

import "github.com/bits-and-blooms/bitset"

// backtrackEngine runs the Tsukiyama-Ide-Ariyoshi-Shirakawa backtracking
// search for maximal independent vertex sets over view (view is already the
// complemented adjacency when the caller wants maximal cliques instead).
//
// Shaped as a dedicated struct with explicit fields rather than closures
// over local variables.
//
// Grounded on igraph_i_maximal_independent_vertex_sets_backtrack: is[v] is
// the number of v's neighbors in the independent set being built that
// force v out of it (is[v]==0 means v is currently a member); buckets[v1] records, for the "speculative removal" branch,
// which neighbor-list positions were tentatively removed so they can be
// replayed (undone) afterward.
type backtrackEngine struct {
	n     int
	neigh [][]int // per-vertex ascending neighbor list (snapshot of the view)
	deg   []int

	is      []int
	buckets []*bitset.BitSet

	sink            *Sink
	keepOnlyLargest bool
	largestSetSize  int

	opts Options
}

func newBacktrackEngine(view View, sink *Sink, keepOnlyLargest bool, opts Options) *backtrackEngine {
	n := view.VertexCount()
	e := &backtrackEngine{
		n:               n,
		neigh:           make([][]int, n),
		deg:             make([]int, n),
		is:              make([]int, n),
		buckets:         make([]*bitset.BitSet, n),
		sink:            sink,
		keepOnlyLargest: keepOnlyLargest,
		opts:            opts,
	}
	for v := 0; v < n; v++ {
		e.neigh[v] = view.Neighbors(v)
		e.deg[v] = len(e.neigh[v])
		e.buckets[v] = bitset.New(uint(e.deg[v]))
	}

	return e
}

// run drives the search to completion and returns the size of the largest
// set found (the independence/clique number under the active view).
func (e *backtrackEngine) run() (int, error) {
	if e.sink != nil {
		e.sink.ClearAndFree()
	}
	if err := e.solve(0); err != nil {
		return 0, err
	}

	return e.largestSetSize, nil
}

// solve is the recursive backtrack step at the given level. It is
// state-neutral: every mutation it makes to e.is / e.buckets is undone
// before it returns, except along an error-return path, where the engine
// is abandoned by the caller anyway.
func (e *backtrackEngine) solve(level int) error {
	if err := checkCancelled(e.opts.ctx); err != nil {
		return err
	}

	// Leaf: the bit-for-bit off-by-one from the origin algorithm — the
	// last real level is n-1, so recursion stops one step early.
	if level >= e.n-1 {
		e.leaf()
		return nil
	}

	v1 := level + 1
	neis1 := e.neigh[v1]
	deg1 := e.deg[v1]

	// Count neighbors of v1 among vertices <= level that are in the set (is==0).
	c := 0
	j := 0
	for j < deg1 && neis1[j] <= level {
		if e.is[neis1[j]] == 0 {
			c++
		}
		j++
	}

	if c == 0 {
		// v1 has no free neighbor among the decided vertices: it is forced
		// into the candidate set. Mark its neighbors excluded, recurse,
		// then undo.
		j = 0
		for j < deg1 && neis1[j] <= level {
			e.is[neis1[j]]++
			j++
		}
		if err := e.solve(v1); err != nil {
			return err
		}
		j = 0
		for j < deg1 && neis1[j] <= level {
			e.is[neis1[j]]--
			j++
		}

		return nil
	}

	// Branch A: exclude v1 itself (is[v1]=c marks it non-candidate), recurse.
	e.is[v1] = c
	if err := e.solve(v1); err != nil {
		return err
	}
	e.is[v1] = 0

	// Branch B: speculatively admit v1 by excluding each currently-free
	// neighbor v2 of v1 (<=level) along with v2's own decided neighbors,
	// tracking removals in buckets[v1] so they can be replayed. f stays
	// true only if every removal is "safe" (doesn't zero out an already
	// fully-excluded vertex that had no other witness).
	f := true
	j = 0
	for j < deg1 && neis1[j] <= level {
		v2 := neis1[j]
		if e.is[v2] == 0 {
			e.buckets[v1].Set(uint(j))
			neis2 := e.neigh[v2]
			deg2 := e.deg[v2]
			k := 0
			for k < deg2 && neis2[k] <= level {
				v3 := neis2[k]
				e.is[v3]--
				if e.is[v3] == 0 {
					f = false
				}
				k++
			}
		}
		e.is[v2]++
		j++
	}

	if f {
		if err := e.solve(v1); err != nil {
			return err
		}
	}

	j = 0
	for j < deg1 && neis1[j] <= level {
		e.is[neis1[j]]--
		j++
	}

	// Replay (undo) every speculative removal recorded in buckets[v1].
	idx, ok := e.buckets[v1].NextSet(0)
	for ok {
		v2 := neis1[idx]
		neis2 := e.neigh[v2]
		deg2 := e.deg[v2]
		k := 0
		for k < deg2 && neis2[k] <= level {
			e.is[neis2[k]]++
			k++
		}
		idx, ok = e.buckets[v1].NextSet(idx + 1)
	}
	e.buckets[v1].ClearAll()

	return nil
}

// leaf collects the vertices with is[v]==0 (the candidate set reached at
// this branch of the search) and records it per the sink's emission
// policy, updating largestSetSize.
func (e *backtrackEngine) leaf() {
	if e.sink == nil {
		size := 0
		for v := 0; v < e.n; v++ {
			if e.is[v] == 0 {
				size++
			}
		}
		if size > e.largestSetSize {
			e.largestSetSize = size
		}

		return
	}

	set := make([]int, 0, e.n)
	for v := 0; v < e.n; v++ {
		if e.is[v] == 0 {
			set = append(set, v)
		}
	}

	if e.keepOnlyLargest {
		e.sink.pushKeepingLargest(set, e.largestSetSize)
	} else {
		e.sink.Push(set)
	}

	if len(set) > e.largestSetSize {
		e.largestSetSize = len(set)
	}
}

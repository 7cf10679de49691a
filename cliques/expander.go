package cliques

import (
	"context"
	"sort"
)

// generation is a dense, double-buffered store of same-size vertex sets: a
// flat []int of length count*size, count == len(buf)/size. Growth goes
// through Go's native append (amortized geometric growth); maxGenerationSlots
// guards against pathological growth (see errors.go).
type generation struct {
	size int
	buf  []int
}

func (g generation) count() int { return len(g.buf) / g.size }

func (g generation) slot(i int) []int { return g.buf[i*g.size : (i+1)*g.size] }

// checkCancelled reports ErrInterrupted if ctx has been cancelled or its
// deadline has passed.
func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrInterrupted
	default:
		return nil
	}
}

// expand runs the bottom-up level expander: it builds all vertex sets of
// size [minSize, maxSize] by repeatedly merging pairs of (k-1)-sets that
// differ in exactly one vertex and are joined (clique mode) or not joined
// (independent-set mode) by an edge in view. Results land in sink in
// ascending size order. Grounded on igraph_i_cliques/igraph_i_find_k_cliques.
func expand(view View, minSize, maxSize int, independent bool, sink *Sink, opts Options) error {
	n := view.VertexCount()
	if minSize < 0 {
		minSize = 0
	}
	if maxSize <= 0 || maxSize > n {
		maxSize = n
	}

	sink.ClearAndFree()

	if minSize <= 1 {
		for i := 0; i < n; i++ {
			sink.Push([]int{i})
		}
	}

	// Generation 1: every vertex is its own 1-clique.
	cur := generation{size: 1, buf: make([]int, n)}
	for i := 0; i < n; i++ {
		cur.buf[i] = i
	}
	cliqueCount := n

	for size := 2; size <= maxSize && cliqueCount > 1; size++ {
		next, count, err := mergeLevel(view, cur, size, independent, opts)
		if err != nil {
			return err
		}
		cur = next
		cliqueCount = count

		if size >= minSize && size <= maxSize {
			for k := 0; k < count; k++ {
				sink.Push(cur.slot(k))
			}
		}
	}

	return nil
}

// mergeLevel produces the generation of size-vertex sets from prev, the
// generation of (size-1)-vertex sets. Ported structurally from
// igraph_i_find_k_cliques: two (size-1)-sets merge iff their sorted index
// sequences agree everywhere except one position, and the two differing
// vertices are joined (clique) or not joined (independent set) by an edge.
func mergeLevel(view View, prev generation, size int, independent bool, opts Options) (generation, int, error) {
	width := size - 1
	oldCount := prev.count()

	buf := make([]int, 0, size*oldCount)
	n := 0 // committed length; buf[:n] holds only fully-validated slots

	for j := 0; j < oldCount; j++ {
		for k := j + 1; k < oldCount; k++ {
			if err := checkCancelled(opts.ctx); err != nil {
				return generation{}, 0, err
			}

			c1 := prev.slot(j)
			c2 := prev.slot(k)

			// Longest common prefix.
			l := 0
			for l < width && c1[l] == c2[l] {
				buf = append(buf, c1[l])
				l++
			}

			if l == width {
				// The two (size-1)-sets are completely identical, which the
				// strict j<k ordering over distinct sets should make
				// unreachable; kept as a defensive, non-fatal branch.
				opts.warn(warnPossibleBug())
				buf = buf[:n]
				continue
			}

			// c1[l] < c2[l] is guaranteed by the ascending ordering of sets
			// within a generation. v1 is the shared divergence anchor; v2
			// tracks the single other differing vertex seen so far.
			buf = append(buf, c1[l])
			v1, v2 := c1[l], c2[l]
			l++

			tracking := true
			mismatch := false
			for ; l < width; l++ {
				switch {
				case c1[l] == c2[l]:
					buf = append(buf, c1[l])
					tracking = false
				case tracking && c1[l] < c2[l]:
					if c1[l] == v1 {
						buf = append(buf, c1[l])
						v2 = c2[l]
					} else {
						mismatch = true
					}
				case tracking:
					if c2[l] == v1 {
						buf = append(buf, c2[l])
						v2 = c1[l]
					} else {
						mismatch = true
					}
				default:
					mismatch = true
				}
				if mismatch {
					break
				}
			}

			if l != width {
				// Differed in more than one position: not mergeable.
				buf = buf[:n]
				continue
			}

			neigh := view.Neighbors(v1)
			idx := sort.SearchInts(neigh, v2)
			adjacent := idx < len(neigh) && neigh[idx] == v2

			if adjacent != independent {
				if len(buf) == n || v2 > buf[len(buf)-1] {
					buf = append(buf, v2)
					n = len(buf)
				} else {
					buf = buf[:n]
				}
			} else {
				buf = buf[:n]
			}

			if n > maxGenerationSlots {
				return generation{}, 0, ErrOutOfMemory
			}
		}
	}

	return generation{size: size, buf: buf[:n]}, n / size, nil
}

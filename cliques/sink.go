package cliques

// Sink is the owned, dynamic container enumeration results are written
// into. It owns its backing storage outright: callers must not retain
// slices returned by At beyond the call if they intend to mutate the Sink
// further, since ClearAndFree discards them.
//
// A nil *Sink is a valid, inert sink: Push is a no-op, Size is always 0.
// The backtrack engine uses this to implement "size-only"
// queries (clique number / independence number) without allocating any
// vertex sets at all, exactly as the origin C code's res==0 branch does.
type Sink struct {
	sets [][]int
}

// NewSink returns an empty, ready-to-use Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Push appends a copy of set to the sink. set is copied so the caller may
// reuse or mutate its backing array afterward.
func (s *Sink) Push(set []int) {
	if s == nil {
		return
	}
	cp := make([]int, len(set))
	copy(cp, set)
	s.sets = append(s.sets, cp)
}

// ClearAndFree discards all previously pushed sets.
func (s *Sink) ClearAndFree() {
	if s == nil {
		return
	}
	s.sets = nil
}

// Size returns the number of sets currently held.
func (s *Sink) Size() int {
	if s == nil {
		return 0
	}
	return len(s.sets)
}

// At returns the set at index i. The caller must not mutate it.
func (s *Sink) At(i int) []int {
	return s.sets[i]
}

// Sets returns all held sets. The caller must not mutate them or their
// backing arrays.
func (s *Sink) Sets() [][]int {
	if s == nil {
		return nil
	}
	return s.sets
}

// pushKeepingLargest implements the keep-only-largest emission policy
// shared by the backtrack engine's leaves: a newly found set strictly
// larger than every previous one clears the sink before being pushed; a
// set tying the current largest is appended; a smaller set is discarded.
func (s *Sink) pushKeepingLargest(set []int, largestSoFar int) {
	if s == nil {
		return
	}
	switch {
	case len(set) > largestSoFar:
		s.ClearAndFree()
		s.Push(set)
	case len(set) == largestSoFar:
		s.Push(set)
	}
}

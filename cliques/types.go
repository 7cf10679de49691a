package cliques

import "context"

// maxGenerationSlots bounds the total number of ints a single level-expander
// generation buffer may hold before growth is refused with ErrOutOfMemory.
// See errors.go and DESIGN.md for why this guard exists at all.
const maxGenerationSlots = 1 << 30

// View is the minimal read-only adjacency abstraction both enumeration
// engines run on. Implementations must return, for every v, an ascending,
// deduplicated, self-loop-free neighbor list — both engines' termination
// and correctness arguments rely on that ordering.
type View interface {
	// VertexCount returns n, the number of vertices; valid indices are 0..n-1.
	VertexCount() int

	// Neighbors returns the ascending, deduplicated neighbor indices of v.
	// The returned slice must not be mutated by the caller.
	Neighbors(v int) []int
}

// Options configures an enumeration call. The zero value is a valid
// configuration: background context, no warning hook.
type Options struct {
	ctx       context.Context
	onWarning func(Warning)
}

// Option configures an Options value.
type Option func(*Options)

// WithContext sets the context used for cooperative cancellation. Checked
// at the outer pair loop of the level expander and at the top of each
// backtrack call; a cancelled context aborts with ErrInterrupted.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

// WithOnWarning registers a hook invoked synchronously whenever the engine
// emits an advisory, non-fatal diagnostic (see warnings.go). The hook must
// not retain the Warning value's slices beyond the call.
func WithOnWarning(fn func(Warning)) Option {
	return func(o *Options) { o.onWarning = fn }
}

// resolve applies opts over the zero value and fills in the defaults.
func resolveOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}

	return o
}

func (o Options) warn(w Warning) {
	if o.onWarning != nil {
		o.onWarning(w)
	}
}

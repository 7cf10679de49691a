package cliques

import "fmt"

// ErrNilGraph is returned when a nil *core.Graph is passed to a constructor.
var ErrNilGraph = fmt.Errorf("cliques: %w", errNilGraph)
var errNilGraph = fmt.Errorf("graph is nil")

// ErrInterrupted is returned when the caller's context is cancelled or its
// deadline expires while an enumeration is in progress. Any partial Sink
// contents at that point must be discarded by the caller.
var ErrInterrupted = fmt.Errorf("cliques: %w", errInterrupted)
var errInterrupted = fmt.Errorf("enumeration interrupted")

// ErrOutOfMemory is returned when a generation buffer would have to grow
// past maxGenerationSlots. This is a defensive guard, not a feature: Go's
// append cannot itself report allocation failure as an error value, so this
// bound exists to give growth a reachable, observable failure mode instead
// of a runtime OOM panic. It should not be reachable by any graph that fits
// in memory in the first place.
var ErrOutOfMemory = fmt.Errorf("cliques: %w", errOutOfMemory)
var errOutOfMemory = fmt.Errorf("generation buffer exceeds safety bound")

package cliques

import "fmt"

// WarningKind classifies an advisory diagnostic raised during enumeration.
// Warnings never abort an enumeration; they are reported through
// Options.OnWarning purely for the caller's observability.
type WarningKind int

const (
	// WarnDirectionIgnored is raised once per call when the source graph has
	// at least one directed edge: direction is ignored (both endpoints are
	// treated as mutually adjacent), mirroring igraph's own
	// "directionality of edges is ignored for directed graphs" notice.
	WarnDirectionIgnored WarningKind = iota

	// WarnPossibleBug is raised by the level expander if two (k-1)-cliques
	// under merge turn out to be completely identical prefixes — a state
	// the strict ascending outer-loop (j<k) should make unreachable. It is
	// kept as a defensive branch rather than a panic, exactly as the
	// original C "possible bug in igraph_cliques" warning is defensive.
	WarnPossibleBug
)

// Warning is an advisory diagnostic passed to Options.OnWarning.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("cliques: %s", w.Message)
}

func warnDirectionIgnored() Warning {
	return Warning{Kind: WarnDirectionIgnored, Message: "directionality of edges is ignored"}
}

func warnPossibleBug() Warning {
	return Warning{Kind: WarnPossibleBug, Message: "possible bug: two (k-1)-cliques were found fully identical during merge"}
}

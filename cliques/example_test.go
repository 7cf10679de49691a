package cliques_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/subgraphs/cliques"
	"github.com/katalvlaran/subgraphs/core"
)

// ExampleMaximalCliques builds a triangle plus a pendant vertex and reports
// its maximal cliques.
func ExampleMaximalCliques() {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("a", "c", 0)
	_, _ = g.AddEdge("c", "d", 0)

	sets, err := cliques.MaximalCliques(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	lines := make([]string, 0, len(sets))
	for _, set := range sets {
		cp := append([]string(nil), set...)
		sort.Strings(cp)
		lines = append(lines, fmt.Sprint(cp))
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Println(line)
	}
	// Output:
	// [a b c]
	// [c d]
}

// ExampleCliqueNumber reports the clique number of a 4-cycle, which has no
// triangles.
func ExampleCliqueNumber() {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("c", "d", 0)
	_, _ = g.AddEdge("d", "a", 0)

	n, err := cliques.CliqueNumber(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output:
	// 2
}

// Topological sorting over the directed part of the graph, and the Pre
// helper used by order-dependent conditioning sets.

package core

import "sort"

// TopologicalSort returns a linear order of ALL vertices (fixed
// included) such that every directed edge points forward. Bidirected and
// undirected edges impose no constraint. Kahn's algorithm with a
// deterministic tie-break: among simultaneously-ready roots the
// lexicographically smallest is emitted first, so the result is unique.
//
// On a graph with a directed cycle the order is partial (shorter than
// V); acyclicity-checked graphs always get a full order.
// Complexity: O(V log V + E).
func (g *Graph) TopologicalSort() []string {
	indeg := make(map[string]int, len(g.vertices))
	for name := range g.vertices {
		indeg[name] = len(g.parents[name])
	}

	// Ready roots, kept sorted ascending; pop from the front.
	ready := make([]string, 0)
	for _, name := range g.VertexNames() {
		if indeg[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(g.vertices))
	for len(ready) > 0 {
		r := ready[0]
		ready = ready[1:]
		order = append(order, r)

		for _, c := range g.children[r].Sorted() {
			indeg[c]--
			if indeg[c] == 0 {
				at := sort.SearchStrings(ready, c)
				ready = append(ready, "")
				copy(ready[at+1:], ready[at:])
				ready[at] = c
			}
		}
	}

	return order
}

// Pre returns the prefix of order strictly before the first occurrence
// of any of the given vertices.
func (g *Graph) Pre(names []string, order []string) []string {
	targets := NewVertexSet(names...)
	pre := make([]string, 0, len(order))
	for _, v := range order {
		if targets.Has(v) {
			break
		}
		pre = append(pre, v)
	}

	return pre
}

// Directed-path enumeration between vertex sets.

package core

// DirectedPaths enumerates every directed path from a source vertex to a
// sink vertex as a sequence of directed edges, via BFS from each source.
// A path stops at the first sink it reaches. Enumeration relies on
// acyclicity for termination. Output order is deterministic: sources and
// children are expanded in ascending name order.
// Complexity: exponential in the worst case (all paths are materialized).
func (g *Graph) DirectedPaths(sources, sinks []string) [][]Edge {
	sinkSet := NewVertexSet()
	for _, s := range sinks {
		if g.HasVertex(s) {
			sinkSet.Add(s)
		}
	}

	var paths [][]Edge
	srcSorted := NewVertexSet(sources...).Sorted()
	for _, src := range srcSorted {
		if !g.HasVertex(src) {
			continue
		}
		paths = append(paths, g.bfsDirectedPaths(src, sinkSet)...)
	}

	return paths
}

// bfsDirectedPaths expands edge paths from a single source in
// breadth-first order.
func (g *Graph) bfsDirectedPaths(source string, sinks VertexSet) [][]Edge {
	type item struct {
		at   string
		path []Edge
	}

	var found [][]Edge
	queue := []item{{at: source}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, c := range g.children[cur.at].Sorted() {
			step := Edge{From: cur.at, To: c}
			next := make([]Edge, len(cur.path), len(cur.path)+1)
			copy(next, cur.path)
			next = append(next, step)

			if sinks.Has(c) {
				found = append(found, next)

				continue
			}
			queue = append(queue, item{at: c, path: next})
		}
	}

	return found
}

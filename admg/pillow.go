// Markov pillows and blankets.

package admg

import "github.com/ghosthamlet/ananke/core"

// MarkovPillow returns the Markov pillow of the given vertices under a
// topological order: in the subgraph induced on their predecessors (plus
// the vertices themselves), the union of their districts together with
// that union's parents, minus the vertices. The result depends on the
// order; callers typically pick one placing the treatment as late as
// possible to keep the pillow small.
// Complexity: O(V + E) past the induced subgraph construction.
func MarkovPillow(g *core.Graph, names []string, topOrder []string) core.VertexSet {
	pre := g.Pre(names, topOrder)
	sub := g.Subgraph(append(pre, names...)...)

	return blanketOn(sub, names)
}

// MarkovBlanket returns the Markov blanket of the given vertices on the
// full graph: the union of their districts plus that union's parents,
// minus the vertices. Order-independent analogue of MarkovPillow.
func MarkovBlanket(g *core.Graph, names ...string) core.VertexSet {
	return blanketOn(g, names)
}

// blanketOn unions districts and their parents on the given graph.
func blanketOn(g *core.Graph, names []string) core.VertexSet {
	district := core.NewVertexSet()
	for _, v := range names {
		if d := g.District(v); d != nil {
			district = district.Union(d)
		}
	}

	return district.Union(g.Parents(district.Sorted()...)).Diff(core.NewVertexSet(names...))
}

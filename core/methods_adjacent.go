// Genealogical queries: one-step relations and their iterative closures.
// All of them take a union over the given names; unknown names are
// ignored so derived sets compose without error plumbing.

package core

// Parents returns the union of parents of the given vertices. Members of
// the input set reappear when they parent each other.
// Complexity: O(Σ deg).
func (g *Graph) Parents(names ...string) VertexSet {
	return g.relationUnion(g.parents, names)
}

// Children returns the union of children of the given vertices.
func (g *Graph) Children(names ...string) VertexSet {
	return g.relationUnion(g.children, names)
}

// Siblings returns the union of bidirected co-endpoints of the given
// vertices.
func (g *Graph) Siblings(names ...string) VertexSet {
	return g.relationUnion(g.siblings, names)
}

// Neighbors returns the union of undirected co-endpoints of the given
// vertices.
func (g *Graph) Neighbors(names ...string) VertexSet {
	return g.relationUnion(g.neighbors, names)
}

// Ancestors returns the given vertices plus everything reachable
// against directed edges, via an iterative stack-based closure.
// Complexity: O(V + E).
func (g *Graph) Ancestors(names ...string) VertexSet {
	return g.closure(g.parents, names)
}

// Descendants returns the given vertices plus everything reachable
// along directed edges.
// Complexity: O(V + E).
func (g *Graph) Descendants(names ...string) VertexSet {
	return g.closure(g.children, names)
}

// relationUnion unions a one-step relation over names.
func (g *Graph) relationUnion(rel map[string]VertexSet, names []string) VertexSet {
	out := NewVertexSet()
	for _, n := range names {
		for r := range rel[n] {
			out[r] = struct{}{}
		}
	}

	return out
}

// closure walks rel transitively from names, including the starting
// vertices themselves.
func (g *Graph) closure(rel map[string]VertexSet, names []string) VertexSet {
	out := NewVertexSet()
	stack := make([]string, 0, len(names))
	for _, n := range names {
		if g.HasVertex(n) {
			stack = append(stack, n)
		}
	}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if out.Has(v) {
			continue
		}
		out.Add(v)
		for next := range rel[v] {
			if !out.Has(next) {
				stack = append(stack, next)
			}
		}
	}

	return out
}

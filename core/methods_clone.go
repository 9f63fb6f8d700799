// Cloning and subgraphing. Clone is the isolation primitive every
// speculative search relies on: copy first, mutate the copy only.

package core

// Clone returns a deep copy of the graph: capabilities, vertices with
// their fixed flags and cardinalities, all three edge sets, and the
// relational indices. The partitions are rebuilt lazily on the clone.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		caps:       g.caps,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		diEdges:    make(map[Edge]struct{}, len(g.diEdges)),
		biEdges:    make(map[Edge]struct{}, len(g.biEdges)),
		udEdges:    make(map[Edge]struct{}, len(g.udEdges)),
		parents:    make(map[string]VertexSet, len(g.parents)),
		children:   make(map[string]VertexSet, len(g.children)),
		siblings:   make(map[string]VertexSet, len(g.siblings)),
		neighbors:  make(map[string]VertexSet, len(g.neighbors)),
		partsDirty: true,
	}

	for name, v := range g.vertices {
		cp := *v
		out.vertices[name] = &cp
		out.parents[name] = g.parents[name].Clone()
		out.children[name] = g.children[name].Clone()
		out.siblings[name] = g.siblings[name].Clone()
		out.neighbors[name] = g.neighbors[name].Clone()
	}
	for e := range g.diEdges {
		out.diEdges[e] = struct{}{}
	}
	for e := range g.biEdges {
		out.biEdges[e] = struct{}{}
	}
	for e := range g.udEdges {
		out.udEdges[e] = struct{}{}
	}

	return out
}

// Subgraph returns a new graph of the same capabilities on the given
// vertex subset, keeping only edges with both endpoints retained and
// preserving fixed flags and cardinalities. Unknown names are ignored,
// so Subgraph composes: g.Subgraph(v1...).Subgraph(v2...) equals
// g.Subgraph(intersection) whenever v2 ⊆ v1.
// Complexity: O(V + E).
func (g *Graph) Subgraph(names ...string) *Graph {
	keep := NewVertexSet()
	for _, n := range names {
		if g.HasVertex(n) {
			keep.Add(n)
		}
	}

	out := &Graph{
		caps:       g.caps,
		vertices:   make(map[string]*Vertex, len(keep)),
		diEdges:    make(map[Edge]struct{}),
		biEdges:    make(map[Edge]struct{}),
		udEdges:    make(map[Edge]struct{}),
		parents:    make(map[string]VertexSet, len(keep)),
		children:   make(map[string]VertexSet, len(keep)),
		siblings:   make(map[string]VertexSet, len(keep)),
		neighbors:  make(map[string]VertexSet, len(keep)),
		partsDirty: true,
	}

	for name := range keep {
		cp := *g.vertices[name]
		out.vertices[name] = &cp
		out.parents[name] = NewVertexSet()
		out.children[name] = NewVertexSet()
		out.siblings[name] = NewVertexSet()
		out.neighbors[name] = NewVertexSet()
	}
	for e := range g.diEdges {
		if keep.Has(e.From) && keep.Has(e.To) {
			out.diEdges[e] = struct{}{}
			out.children[e.From].Add(e.To)
			out.parents[e.To].Add(e.From)
		}
	}
	for e := range g.biEdges {
		if keep.Has(e.From) && keep.Has(e.To) {
			out.biEdges[e] = struct{}{}
			out.siblings[e.From].Add(e.To)
			out.siblings[e.To].Add(e.From)
		}
	}
	for e := range g.udEdges {
		if keep.Has(e.From) && keep.Has(e.To) {
			out.udEdges[e] = struct{}{}
			out.neighbors[e.From].Add(e.To)
			out.neighbors[e.To].Add(e.From)
		}
	}

	return out
}

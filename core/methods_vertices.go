// Vertex lifecycle and lookups.

package core

import "sort"

// AddVertex inserts a named vertex with default cardinality. Adding an
// existing name is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(name string) error {
	if name == "" {
		return ErrEmptyVertexName
	}
	if _, ok := g.vertices[name]; ok {
		return nil
	}

	g.vertices[name] = &Vertex{Name: name, Cardinality: DefaultCardinality}
	g.parents[name] = NewVertexSet()
	g.children[name] = NewVertexSet()
	g.siblings[name] = NewVertexSet()
	g.neighbors[name] = NewVertexSet()
	g.partsDirty = true

	return nil
}

// HasVertex reports whether name exists in the graph.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.vertices[name]

	return ok
}

// Vertex returns the vertex record for name, or ErrVertexNotFound.
// The returned *Vertex is read-only by convention; mutate the graph only
// through its methods.
func (g *Graph) Vertex(name string) (*Vertex, error) {
	v, ok := g.vertices[name]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// IsFixed reports whether name exists and is marked fixed.
func (g *Graph) IsFixed(name string) bool {
	v, ok := g.vertices[name]

	return ok && v.Fixed
}

// SetCardinality records the number of categories for a variable.
func (g *Graph) SetCardinality(name string, cardinality int) error {
	v, ok := g.vertices[name]
	if !ok {
		return ErrVertexNotFound
	}
	v.Cardinality = cardinality

	return nil
}

// VertexNames returns every vertex name in ascending lexicographic
// order.
// Complexity: O(V log V).
func (g *Graph) VertexNames() []string {
	out := make([]string, 0, len(g.vertices))
	for name := range g.vertices {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// AllVertices returns the set of every vertex name, fixed or not.
func (g *Graph) AllVertices() VertexSet {
	out := make(VertexSet, len(g.vertices))
	for name := range g.vertices {
		out[name] = struct{}{}
	}

	return out
}

// UnfixedVertices returns the set of vertices not marked fixed, the
// random vertices of a CADMG.
func (g *Graph) UnfixedVertices() VertexSet {
	out := make(VertexSet)
	for name, v := range g.vertices {
		if !v.Fixed {
			out[name] = struct{}{}
		}
	}

	return out
}

// FixedVertices returns the names of fixed vertices in ascending order.
func (g *Graph) FixedVertices() []string {
	out := make([]string, 0)
	for name, v := range g.vertices {
		if v.Fixed {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

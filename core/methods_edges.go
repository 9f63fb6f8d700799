// Edge lifecycle & queries for the three edge kinds. Every mutator
// updates the edge set and both endpoints' relational indices
// atomically, and marks the district/block caches dirty.

package core

import "sort"

// AddDiEdge adds a directed edge parent→child. Endpoints are auto-added;
// re-adding an existing edge is a no-op.
// Complexity: O(1).
func (g *Graph) AddDiEdge(parent, child string) error {
	if !g.caps.has(CapDirected) {
		return ErrEdgeKindNotAllowed
	}
	if err := g.AddVertex(parent); err != nil {
		return err
	}
	if err := g.AddVertex(child); err != nil {
		return err
	}

	g.diEdges[Edge{From: parent, To: child}] = struct{}{}
	g.children[parent].Add(child)
	g.parents[child].Add(parent)

	return nil
}

// DeleteDiEdge removes the directed edge parent→child, or reports
// ErrEdgeNotFound.
func (g *Graph) DeleteDiEdge(parent, child string) error {
	e := Edge{From: parent, To: child}
	if _, ok := g.diEdges[e]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.diEdges, e)
	g.children[parent].Remove(child)
	g.parents[child].Remove(parent)

	return nil
}

// HasDiEdge reports whether the directed edge parent→child exists.
func (g *Graph) HasDiEdge(parent, child string) bool {
	_, ok := g.diEdges[Edge{From: parent, To: child}]

	return ok
}

// AddBiEdge adds a bidirected edge sib1↔sib2. Endpoints are auto-added;
// orientation is immaterial and re-adding is a no-op.
func (g *Graph) AddBiEdge(sib1, sib2 string) error {
	if !g.caps.has(CapBidirected) {
		return ErrEdgeKindNotAllowed
	}
	if err := g.AddVertex(sib1); err != nil {
		return err
	}
	if err := g.AddVertex(sib2); err != nil {
		return err
	}

	g.biEdges[Edge{From: sib1, To: sib2}.canonical()] = struct{}{}
	g.siblings[sib1].Add(sib2)
	g.siblings[sib2].Add(sib1)
	g.partsDirty = true

	return nil
}

// DeleteBiEdge removes the bidirected edge sib1↔sib2 in either
// orientation, or reports ErrEdgeNotFound.
func (g *Graph) DeleteBiEdge(sib1, sib2 string) error {
	e := Edge{From: sib1, To: sib2}.canonical()
	if _, ok := g.biEdges[e]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.biEdges, e)
	g.siblings[sib1].Remove(sib2)
	g.siblings[sib2].Remove(sib1)
	g.partsDirty = true

	return nil
}

// HasBiEdge reports whether a bidirected edge joins sib1 and sib2.
func (g *Graph) HasBiEdge(sib1, sib2 string) bool {
	_, ok := g.biEdges[Edge{From: sib1, To: sib2}.canonical()]

	return ok
}

// AddUdEdge adds an undirected edge neb1−neb2. Endpoints are auto-added;
// orientation is immaterial and re-adding is a no-op.
func (g *Graph) AddUdEdge(neb1, neb2 string) error {
	if !g.caps.has(CapUndirected) {
		return ErrEdgeKindNotAllowed
	}
	if err := g.AddVertex(neb1); err != nil {
		return err
	}
	if err := g.AddVertex(neb2); err != nil {
		return err
	}

	g.udEdges[Edge{From: neb1, To: neb2}.canonical()] = struct{}{}
	g.neighbors[neb1].Add(neb2)
	g.neighbors[neb2].Add(neb1)
	g.partsDirty = true

	return nil
}

// DeleteUdEdge removes the undirected edge neb1−neb2 in either
// orientation, or reports ErrEdgeNotFound.
func (g *Graph) DeleteUdEdge(neb1, neb2 string) error {
	e := Edge{From: neb1, To: neb2}.canonical()
	if _, ok := g.udEdges[e]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.udEdges, e)
	g.neighbors[neb1].Remove(neb2)
	g.neighbors[neb2].Remove(neb1)
	g.partsDirty = true

	return nil
}

// HasUdEdge reports whether an undirected edge joins neb1 and neb2.
func (g *Graph) HasUdEdge(neb1, neb2 string) bool {
	_, ok := g.udEdges[Edge{From: neb1, To: neb2}.canonical()]

	return ok
}

// Adjacent reports whether u and v are joined by an edge of any kind.
func (g *Graph) Adjacent(u, v string) bool {
	return g.HasDiEdge(u, v) || g.HasDiEdge(v, u) || g.HasBiEdge(u, v) || g.HasUdEdge(u, v)
}

// DiEdges returns the directed edges sorted by (From, To).
func (g *Graph) DiEdges() []Edge { return sortedEdges(g.diEdges) }

// BiEdges returns the bidirected edges in canonical form sorted by
// (From, To).
func (g *Graph) BiEdges() []Edge { return sortedEdges(g.biEdges) }

// UdEdges returns the undirected edges in canonical form sorted by
// (From, To).
func (g *Graph) UdEdges() []Edge { return sortedEdges(g.udEdges) }

// sortedEdges flattens an edge set into a deterministic slice.
func sortedEdges(set map[Edge]struct{}) []Edge {
	out := make([]Edge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

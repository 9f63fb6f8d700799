// District and block partitioning. Both are derived caches over the
// non-fixed vertices, invalidated by every structural mutation and
// recomputed on first access.

package core

import "sort"

// District returns the district of name: the maximal set of non-fixed
// vertices reachable from it through bidirected edges. Returns nil for
// unknown or fixed vertices.
// Complexity: O(1) after the cached partition is built.
func (g *Graph) District(name string) VertexSet {
	g.ensureParts()
	id, ok := g.districtOf[name]
	if !ok {
		return nil
	}

	return g.districts[id]
}

// Districts returns every district, sorted by canonical key for
// deterministic iteration.
func (g *Graph) Districts() []VertexSet {
	g.ensureParts()

	return g.districts
}

// Block returns the block of name: the maximal set of non-fixed vertices
// reachable from it through undirected edges. Returns nil for unknown or
// fixed vertices.
func (g *Graph) Block(name string) VertexSet {
	g.ensureParts()
	id, ok := g.blockOf[name]
	if !ok {
		return nil
	}

	return g.blocks[id]
}

// Blocks returns every block, sorted by canonical key.
func (g *Graph) Blocks() []VertexSet {
	g.ensureParts()

	return g.blocks
}

// ensureParts rebuilds the district and block partitions when dirty.
func (g *Graph) ensureParts() {
	if !g.partsDirty {
		return
	}

	g.districts, g.districtOf = g.partition(g.siblings)
	g.blocks, g.blockOf = g.partition(g.neighbors)
	g.partsDirty = false
}

// partition groups non-fixed vertices into connected components of rel.
// Fixed vertices neither seed nor relay a component: once fixed, a
// vertex is permanently out of every district and block.
// Complexity: O(V + E).
func (g *Graph) partition(rel map[string]VertexSet) ([]VertexSet, map[string]int) {
	idOf := make(map[string]int)
	var parts []VertexSet

	for _, root := range g.VertexNames() {
		if g.vertices[root].Fixed {
			continue
		}
		if _, seen := idOf[root]; seen {
			continue
		}

		id := len(parts)
		part := NewVertexSet()
		stack := []string{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if part.Has(v) {
				continue
			}
			part.Add(v)
			idOf[v] = id
			for next := range rel[v] {
				if !g.vertices[next].Fixed && !part.Has(next) {
					stack = append(stack, next)
				}
			}
		}
		parts = append(parts, part)
	}

	// Canonical listing order, independent of discovery order.
	sort.Slice(parts, func(i, j int) bool { return parts[i].Key() < parts[j].Key() })
	for id, part := range parts {
		for v := range part {
			idOf[v] = id
		}
	}

	return parts, idOf
}

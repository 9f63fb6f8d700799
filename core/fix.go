// The fixing operation and the greedy fixability search.

package core

// Fix performs the graphical fixing operation on each named vertex, in
// the order given: mark it fixed, delete its incoming directed edges,
// delete every bidirected edge touching it, and delete undirected edges
// to neighbors that are themselves already fixed. Fixing an
// already-fixed vertex is an idempotent no-op.
//
// Districts and blocks are invalidated by the whole batch and
// recomputed on next access.
// Complexity: O(Σ deg) over the batch.
func (g *Graph) Fix(names ...string) error {
	for _, name := range names {
		v, ok := g.vertices[name]
		if !ok {
			return ErrVertexNotFound
		}
		if v.Fixed {
			continue
		}
		v.Fixed = true

		for _, p := range g.parents[name].Sorted() {
			if err := g.DeleteDiEdge(p, name); err != nil {
				return err
			}
		}
		for _, s := range g.siblings[name].Sorted() {
			if err := g.DeleteBiEdge(s, name); err != nil {
				return err
			}
		}
		for _, n := range g.neighbors[name].Sorted() {
			if g.vertices[n].Fixed {
				if err := g.DeleteUdEdge(n, name); err != nil {
					return err
				}
			}
		}
	}
	g.partsDirty = true

	return nil
}

// Fixable reports whether the named vertices admit a valid fixing order,
// and returns the order found. A single vertex v is safely fixable when
// descendants(v) ∩ district(v) == {v}; the search greedily fixes any
// safe target on a clone and rescans, since fixing earlier vertices can
// make later ones safe.
//
// Failure is an expected outcome, not an error: the result is
// (false, partialOrder) with whatever prefix was achieved. The receiver
// is never mutated. Unknown names make the set trivially unfixable.
// Complexity: O(k²) district recomputations for k targets.
func (g *Graph) Fixable(names ...string) (bool, []string) {
	remaining := NewVertexSet()
	for _, n := range names {
		if !g.HasVertex(n) {
			return false, nil
		}
		remaining.Add(n)
	}

	order := make([]string, 0, len(remaining))
	clone := g.Clone()

	for len(remaining) > 0 {
		progress := false
		for _, v := range remaining.Sorted() {
			if clone.fixableOne(v) {
				_ = clone.Fix(v) // v exists on the clone by construction
				remaining.Remove(v)
				order = append(order, v)
				progress = true

				break
			}
		}
		// No target qualified in a full pass: stop, the rest is stuck.
		if !progress {
			return false, order
		}
	}

	return true, order
}

// fixableOne is the single-vertex safety condition: nothing else is
// reachable from v via → and ↔ simultaneously.
func (g *Graph) fixableOne(v string) bool {
	district := g.District(v)
	if district == nil {
		return false
	}

	return g.Descendants(v).Intersect(district).Equal(NewVertexSet(v))
}

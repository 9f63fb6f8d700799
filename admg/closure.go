// Reachable closures.

package admg

import "github.com/ghosthamlet/ananke/core"

// ReachableClosure computes the reachable closure of the given vertex
// set: on a clone, repeatedly fix any not-yet-fixed vertex outside the
// set satisfying the single-vertex safety condition, until a full pass
// makes no progress. It returns the closure (every vertex never fixed),
// the fixing order that witnessed it, and the resulting CADMG.
//
// The closure is a superset of the input and the operation is
// idempotent: closing a closure returns it unchanged. Candidates are
// scanned in ascending name order, so the fixing order is deterministic.
// The caller's graph is never mutated.
// Complexity: O(V²) district recomputations in the worst case.
func ReachableClosure(g *core.Graph, names ...string) (core.VertexSet, []string, *core.Graph) {
	target := core.NewVertexSet(names...)
	clone := g.Clone()
	var order []string

	for {
		progress := false
		for _, v := range clone.VertexNames() {
			if clone.IsFixed(v) || target.Has(v) {
				continue
			}
			if safelyFixable(clone, v) {
				_ = clone.Fix(v)
				order = append(order, v)
				progress = true

				break
			}
		}
		// Termination guard: a pass with no fix means no outside vertex
		// can ever become safe again.
		if !progress {
			break
		}
	}

	return clone.UnfixedVertices(), order, clone
}

// safelyFixable is the single-vertex safety condition on the current
// state of the (mutated) clone.
func safelyFixable(g *core.Graph, v string) bool {
	district := g.District(v)
	if district == nil {
		return false
	}

	return g.Descendants(v).Intersect(district).Equal(core.NewVertexSet(v))
}

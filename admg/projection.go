// Maximal arid projection.

package admg

import (
	"fmt"

	"github.com/ghosthamlet/ananke/core"
)

// MaximalAridProjection computes the maximal arid ADMG sharing the
// input's identification theory. Each unordered pair of non-fixed
// vertices contributes at most one edge:
//   - when u is an ancestor of v, the projection has u→v iff u parents
//     the reachable closure of {v} in its CADMG;
//   - otherwise (no ancestor relation either way, or the directed
//     condition failed), the projection has u↔v iff the pair's joint
//     reachable closure lies within a single district of the resulting
//     CADMG.
//
// An ancestrally related pair can still earn a bidirected edge: dense
// confounding survives the projection even across a directed path.
// Fixed context vertices are carried over untouched.
// Complexity: O(V²) closure computations.
func MaximalAridProjection(g *core.Graph) (*core.Graph, error) {
	names := g.UnfixedVertices().Sorted()

	var di, bi []core.Edge
	for i, u := range names {
		for _, v := range names[i+1:] {
			from, to := u, v
			if g.Ancestors(u).Has(v) {
				from, to = v, u
			}
			if g.Ancestors(to).Has(from) {
				closure, _, cadmg := ReachableClosure(g, to)
				if cadmg.Parents(closure.Sorted()...).Has(from) {
					di = append(di, core.Edge{From: from, To: to})

					continue
				}
			}
			closure, _, cadmg := ReachableClosure(g, u, v)
			if d := cadmg.District(u); d != nil && d.ContainsAll(closure) {
				bi = append(bi, core.Edge{From: u, To: v})
			}
		}
	}

	out, err := core.NewCADMG(
		core.WithVertices(g.VertexNames()...),
		core.WithDiEdges(di...),
		core.WithBiEdges(bi...),
		core.WithFixed(g.FixedVertices()...),
	)
	if err != nil {
		return nil, fmt.Errorf("admg: arid projection: %w", err)
	}

	return out, nil
}

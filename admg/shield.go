// Pairwise structural tests: mb-shielding and nonparametric saturation.

package admg

import "github.com/ghosthamlet/ananke/core"

// MBShielded reports whether the graph is Markov-blanket shielded: every
// pair of non-adjacent vertices must stay out of each other's Markov
// blankets. A non-adjacent pair inside a blanket signals a
// hidden-confounding pattern that blocks certain efficient estimators.
// Complexity: O(V²) blanket computations.
func MBShielded(g *core.Graph) bool {
	names := g.VertexNames()
	for i, vi := range names {
		for _, vj := range names[i+1:] {
			if g.Adjacent(vi, vj) {
				continue
			}
			if MarkovBlanket(g, vj).Has(vi) || MarkovBlanket(g, vi).Has(vj) {
				return false
			}
		}
	}

	return true
}

// NonparametricSaturated reports whether the ADMG imposes no equality
// constraints on the observed joint distribution. Every vertex pair
// (Vi, Vj) must satisfy at least one of:
//   - Vi is a parent of the reachable closure of {Vj},
//   - Vj is a parent of the reachable closure of {Vi},
//   - Vj lies in the district of Vi within the CADMG reached by closing
//     {Vi, Vj} jointly.
//
// Any failing pair is a constraint, so the answer is false.
// Complexity: O(V²) closure computations.
func NonparametricSaturated(g *core.Graph) bool {
	names := g.VertexNames()
	for i, vi := range names {
		for _, vj := range names[i+1:] {
			if saturatedPair(g, vi, vj) {
				continue
			}

			return false
		}
	}

	return true
}

// saturatedPair checks the three-way condition for one pair.
func saturatedPair(g *core.Graph, vi, vj string) bool {
	closureJ, _, _ := ReachableClosure(g, vj)
	if g.Parents(closureJ.Sorted()...).Has(vi) {
		return true
	}

	closureI, _, _ := ReachableClosure(g, vi)
	if g.Parents(closureI.Sorted()...).Has(vj) {
		return true
	}

	_, _, cadmg := ReachableClosure(g, vi, vj)
	district := cadmg.District(vi)

	return district != nil && district.Has(vj)
}

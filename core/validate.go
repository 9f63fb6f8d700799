// Construction-time invariant checks: segregation and freedom from
// directed or partially directed cycles. Mutators do not re-run these;
// deletions cannot break them and additions are the caller's contract.

package core

// checkSegregated fails when any vertex has both a sibling and a
// neighbor (a Z↔X−Y pattern somewhere in the graph).
// Complexity: O(V).
func (g *Graph) checkSegregated() error {
	for name := range g.vertices {
		if len(g.siblings[name]) > 0 && len(g.neighbors[name]) > 0 {
			return ErrNotSegregated
		}
	}

	return nil
}

// checkAcyclic fails on any cycle through directed and/or undirected
// edges with at least one directed edge. Undirected-only cycles are
// legal.
//
// The check contracts undirected components and verifies that
//  1. no directed edge joins two vertices of the same component (such an
//     edge closes a partially directed cycle with the undirected path
//     between its endpoints), and
//  2. directed edges between components form a DAG.
//
// Complexity: O(V + E).
func (g *Graph) checkAcyclic() error {
	// 1) Undirected components over ALL vertices (fixed included; the
	//    invariant concerns the whole structure).
	comp := make(map[string]int, len(g.vertices))
	nComp := 0
	for _, root := range g.VertexNames() {
		if _, seen := comp[root]; seen {
			continue
		}
		stack := []string{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := comp[v]; seen {
				continue
			}
			comp[v] = nComp
			for n := range g.neighbors[v] {
				if _, seen := comp[n]; !seen {
					stack = append(stack, n)
				}
			}
		}
		nComp++
	}

	// 2) Intra-component directed edge ⇒ partially directed cycle.
	//    Inter-component edges feed the quotient digraph.
	indeg := make([]int, nComp)
	succ := make([]map[int]struct{}, nComp)
	for e := range g.diEdges {
		cu, cv := comp[e.From], comp[e.To]
		if cu == cv {
			return ErrCyclic
		}
		if succ[cu] == nil {
			succ[cu] = make(map[int]struct{})
		}
		if _, dup := succ[cu][cv]; !dup {
			succ[cu][cv] = struct{}{}
			indeg[cv]++
		}
	}

	// 3) Kahn over the quotient: leftovers mean a directed cycle.
	queue := make([]int, 0, nComp)
	for c := 0; c < nComp; c++ {
		if indeg[c] == 0 {
			queue = append(queue, c)
		}
	}
	removed := 0
	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		removed++
		for next := range succ[c] {
			indeg[next]--
			if indeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if removed != nComp {
		return ErrCyclic
	}

	return nil
}

package ig

import (
	"sort"

	"github.com/ghosthamlet/ananke/admg"
	"github.com/ghosthamlet/ananke/core"
)

// IG is the intrinsic graph of an ADMG. Its vertices are sets of
// original vertex names, keyed by their canonical form; its edges are
// the containment lattice (directed) and the bidirected-connectivity
// relation between non-nested sets.
type IG struct {
	admg *core.Graph

	members map[string]core.VertexSet // key → set of original names
	orders  map[string][]string       // key → fixing order at creation
	subset  map[string]core.VertexSet // key → keys of strict supersets
	biEdges map[biKey]struct{}
}

// biKey identifies an unordered bidirected IG edge; Lo < Hi.
type biKey struct {
	Lo string
	Hi string
}

func newBiKey(k1, k2 string) biKey {
	if k2 < k1 {
		k1, k2 = k2, k1
	}

	return biKey{Lo: k1, Hi: k2}
}

// New builds the intrinsic graph of g, seeded with the reachable
// closures of every non-fixed singleton. The input graph is only read,
// never mutated: all fixing happens on clones inside ReachableClosure.
// Complexity: O(V) closure computations for seeding.
func New(g *core.Graph) *IG {
	ig := &IG{
		admg:    g,
		members: make(map[string]core.VertexSet),
		orders:  make(map[string][]string),
		subset:  make(map[string]core.VertexSet),
		biEdges: make(map[biKey]struct{}),
	}

	// Singleton reachable closures are guaranteed intrinsic.
	for _, v := range g.UnfixedVertices().Sorted() {
		closure, order, _ := admg.ReachableClosure(g, v)
		ig.insert(closure, order)
	}

	return ig
}

// Sets returns the current IG vertices sorted by canonical key.
func (ig *IG) Sets() []core.VertexSet {
	keys := make([]string, 0, len(ig.members))
	for k := range ig.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]core.VertexSet, 0, len(keys))
	for _, k := range keys {
		out = append(out, ig.members[k])
	}

	return out
}

// FixingOrders returns, per canonical set key, the fixing order recorded
// when the set was first reached.
func (ig *IG) FixingOrders() map[string][]string { return ig.orders }

// Supersets returns the canonical keys of the current IG vertices
// strictly containing the set keyed by key, in ascending order.
func (ig *IG) Supersets(key string) []string {
	return ig.subset[key].Sorted()
}

// IntrinsicSets runs the merge loop to completion and returns every
// intrinsic set of the underlying ADMG together with the fixing orders
// that witness them. Edges are popped smallest-key first, so the
// enumeration (and each recorded order) is deterministic.
func (ig *IG) IntrinsicSets() ([]core.VertexSet, map[string][]string) {
	for len(ig.biEdges) > 0 {
		e := ig.popSmallest()
		ig.merge(e)
	}

	return ig.Sets(), ig.orders
}

// IntrinsicSets is the one-shot convenience: enumerate the intrinsic
// sets of g without keeping the intermediate IG around.
func IntrinsicSets(g *core.Graph) ([]core.VertexSet, map[string][]string) {
	return New(g).IntrinsicSets()
}

// popSmallest removes and returns the lexicographically smallest
// remaining bidirected edge.
func (ig *IG) popSmallest() biKey {
	var best biKey
	first := true
	for e := range ig.biEdges {
		if first || e.Lo < best.Lo || (e.Lo == best.Lo && e.Hi < best.Hi) {
			best = e
			first = false
		}
	}
	delete(ig.biEdges, best)

	return best
}

// merge computes the reachable closure of the union of the popped
// edge's endpoints against the ORIGINAL ADMG. A closure already present
// is a no-op (the edge is simply gone); a new closure is inserted and
// wired into both edge relations.
func (ig *IG) merge(e biKey) {
	union := ig.members[e.Lo].Union(ig.members[e.Hi])
	closure, order, _ := admg.ReachableClosure(ig.admg, union.Sorted()...)
	if _, exists := ig.members[closure.Key()]; exists {
		return
	}
	ig.insert(closure, order)
}

// insert adds a set vertex, wiring containment edges to every existing
// vertex and bidirected edges to every existing vertex that is
// bidirected-connected to it and not nested with it. Inserting an
// existing key is a no-op (the first recorded fixing order wins).
func (ig *IG) insert(set core.VertexSet, order []string) {
	key := set.Key()
	if _, exists := ig.members[key]; exists {
		return
	}

	ig.members[key] = set
	ig.orders[key] = order
	ig.subset[key] = core.NewVertexSet()

	for otherKey, other := range ig.members {
		if otherKey == key {
			continue
		}
		switch {
		case other.ContainsAll(set):
			ig.subset[key].Add(otherKey)
		case set.ContainsAll(other):
			ig.subset[otherKey].Add(key)
		case ig.biConnected(set, other):
			ig.biEdges[newBiKey(key, otherKey)] = struct{}{}
		}
	}
}

// biConnected reports whether some member of s has an original
// bidirected edge to some member of t.
func (ig *IG) biConnected(s, t core.VertexSet) bool {
	for a := range s {
		for b := range t {
			if ig.admg.HasBiEdge(a, b) {
				return true
			}
		}
	}

	return false
}

// Package ig implements the intrinsic graph: a derived, throwaway
// structure whose vertices are sets of original-graph vertices, used to
// enumerate every intrinsic set of an ADMG (with a witnessing fixing
// order each) in time polynomial per discovered set.
//
// Construction seeds the IG with the reachable closures of singletons,
// which are guaranteed intrinsic. A directed IG edge s→t records strict
// containment s ⊂ t; a bidirected IG edge joins two sets that are not
// nested and share an original bidirected edge between their members.
// Enumeration repeatedly pops a bidirected edge and merges its
// endpoints through the reachable closure of their union until no edge
// remains; the surviving IG vertices are exactly the intrinsic sets.
//
// Every merge either discovers a new set or strictly removes an edge,
// so the loop terminates; the bound is the number of distinct subsets
// of V, exponential in |V| in the worst case. That ceiling is inherent
// to the representation (no canonicalization beyond exact set equality)
// and acceptable for the small graphs this core targets.
package ig

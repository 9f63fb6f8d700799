// Package admg implements the algorithms specific to (conditional)
// acyclic directed mixed graphs, the workhorses of nonparametric
// identification.
//
// What:
//
//   - ReachableClosure: the maximal intrinsic superset of a vertex set,
//     obtained by repeatedly fixing safe outside vertices on a clone.
//   - MarkovPillow / MarkovBlanket: the order-dependent and unrestricted
//     minimal conditioning sets generalizing "parents" to mixed graphs.
//   - MBShielded: rules out hidden-confounding patterns that block
//     certain efficient estimators.
//   - NonparametricSaturated: tests whether the model places no equality
//     constraints on the observed joint.
//   - MaximalAridProjection: the arid ADMG with the same identification
//     theory as the input.
//   - IsSubgraph / IsAncestralSubgraph: containment tests used to
//     validate experimental distributions.
//   - MConnectingPaths: enumeration of m-connecting paths under a
//     conditioning set.
//
// All functions treat their input as read-only: speculative fixing
// happens on clones, never the caller's graph.
//
// Complexity: each closure is O(V²) district recomputations in the
// worst case; the pairwise tests run closures per vertex pair.
package admg

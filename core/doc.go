// Package core defines the central Vertex and Graph types for causal
// mixed graphs, and the structural operations every higher layer builds
// on: adjacency queries, genealogical closures, district and block
// partitioning, subgraphing, topological sorting, and the fixing
// operation with its fixability search.
//
// What:
//
//   - Graph owns three edge sets (directed X→Y, bidirected X↔Y,
//     undirected X−Y) plus a vertex map; the relational indices
//     (parents/children/siblings/neighbors) are centrally-owned
//     adjacency maps maintained exclusively by the edge mutators.
//   - Capability flags selected at construction decide which edge kinds
//     a graph admits and which invariants (acyclicity, segregation) are
//     validated, replacing a class lattice of graph subtypes. NewDAG,
//     NewADMG, NewCADMG, NewSG, NewCG, NewUG and NewBG are thin
//     capability presets over NewGraph.
//   - Fix marks vertices as fixed (context, not modeled jointly) and
//     strips the edges their mechanism no longer generates; Fixable
//     searches greedily for a valid fixing order on a clone.
//
// Why:
//
//   - Districts (maximal bidirected-connected sets of non-fixed
//     vertices) are the unit over which identified interventional
//     densities factorize; fixing and fixability are the primitive moves
//     of one-line identification.
//
// Determinism:
//
//   - Every set-valued scan iterates vertex names in ascending
//     lexicographic order; TopologicalSort pops the lexicographically
//     smallest ready root. Fixing orders and district listings are
//     therefore reproducible run to run.
//
// Concurrency:
//
//   - Graphs are not safe for concurrent mutation; guard sharing at the
//     caller. Speculative searches (Fixable) operate
//     on explicit clones and never mutate the receiver; only Fix and the
//     edge mutators change a graph in place.
//
// Errors:
//
//   - ErrConstruction: acyclicity/segregation invariant violated at
//     build time; no partial graph is produced.
//   - ErrCyclic, ErrNotSegregated: the specific invariant that failed
//     (wrapped by ErrConstruction).
//   - ErrEdgeKindNotAllowed: edge kind outside the graph's capabilities.
//   - ErrEdgeNotFound: deleting a nonexistent edge.
//   - ErrVertexNotFound: operation referenced an unknown vertex.
//   - ErrEmptyVertexName: vertex name is the empty string.
package core

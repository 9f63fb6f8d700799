// Package identify decides whether interventional queries on causal
// mixed graphs are identified from available distributions, purely from
// graph structure.
//
// What:
//
//   - OneLineID: one-line identification of p(Y(a)) from the observed
//     joint p(V). A query is identified iff, for every district of the
//     induced subgraph on Y* (the relevant ancestors of the outcomes
//     once treatments are fixed), the rest of the graph admits a valid
//     fixing order. ID() answers the boolean; Functional() renders the
//     identifying functional from the cached fixing orders.
//   - OneLineGID: the generalization to a collection of available
//     experimental distributions, each given as an ancestral subgraph
//     (ADMG/CADMG) of the base model; every district of G[Y*] must be
//     reachable inside some experiment.
//   - OnelineAID: the intrinsic-set formulation. Every intrinsic set
//     of G[Y*] must be covered by the intrinsic sets the experiments
//     make available.
//   - MissingFullID: full-law identification for missing-data models
//     (vertices named X_i / R_i), via colluding-path detection on
//     Markov blankets.
//
// Non-identification is an expected outcome: ID() returns false, and
// only Functional() treats it as an error (ErrNotIdentified); a partial
// functional is never produced.
package identify

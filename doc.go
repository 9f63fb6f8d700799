// Package ananke is an in-memory toolkit for causal structural models:
// mixed graphs (directed, bidirected and undirected edges) and the
// graph-only algorithms of nonparametric identification.
//
// What you get:
//
//   - Core primitives: mixed graphs with districts, blocks, fixing and
//     fixability search
//   - ADMG machinery: reachable closures, Markov pillows and blankets,
//     mb-shielding and nonparametric-saturation tests, maximal arid
//     projections
//   - Intrinsic sets: polynomial-time enumeration via the intrinsic graph
//   - Identification: one-line ID and its generalizations to experimental
//     distributions (gID / AID), plus full-law ID for missing-data models
//
// Everything is organized under four subpackages:
//
//	core/     — Vertex, Graph, edge mutators, districts, fix/fixable
//	admg/     — algorithms specific to (conditional) ADMGs
//	ig/       — the intrinsic graph and intrinsic-set enumeration
//	identify/ — one-line ID, gID, AID, missing-data full-law ID
//
// The library is purely combinatorial: it never touches sampled data,
// only graph topology. Estimation, plotting and persistence are left to
// external consumers of the query surface.
package ananke

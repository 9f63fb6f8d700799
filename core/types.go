// This file declares Vertex, Edge, Caps, Graph, GraphOption, the
// sentinel errors, and the capability-preset constructors.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrConstruction indicates a structural invariant was violated while
	// building a graph; no partial graph is produced.
	ErrConstruction = errors.New("core: graph construction failed")

	// ErrCyclic indicates a directed or partially directed cycle in a
	// graph whose capabilities demand acyclicity.
	ErrCyclic = errors.New("core: graph is not acyclic")

	// ErrNotSegregated indicates a vertex with both a sibling and a
	// neighbor in a graph whose capabilities demand segregation.
	ErrNotSegregated = errors.New("core: graph is not segregated")

	// ErrEdgeKindNotAllowed indicates an edge kind outside the graph's
	// capability set (e.g. an undirected edge in an ADMG).
	ErrEdgeKindNotAllowed = errors.New("core: edge kind not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyVertexName indicates a vertex name is the empty string.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")
)

// DefaultCardinality is assumed for vertices whose cardinality is never
// set explicitly (binary variables).
const DefaultCardinality = 2

// Vertex represents a node of a causal mixed graph.
//
// The relational indices (parents, children, siblings, neighbors) are
// NOT stored here: they are adjacency maps centrally owned by the Graph,
// so clones can never carry dangling object references.
type Vertex struct {
	// Name uniquely identifies this Vertex within its Graph.
	Name string

	// Fixed marks the vertex as context: already conditioned on, its
	// generating mechanism irrelevant. Fixed vertices are permanently
	// excluded from districts and blocks.
	Fixed bool

	// Cardinality is the number of categories the variable takes.
	Cardinality int
}

// Edge is an endpoint pair. For directed edges From→To is meaningful;
// bidirected and undirected edges are stored with From ≤ To.
type Edge struct {
	From string
	To   string
}

// canonical returns e with its endpoints in ascending order, the storage
// form for bidirected and undirected edges.
func (e Edge) canonical() Edge {
	if e.To < e.From {
		return Edge{From: e.To, To: e.From}
	}

	return e
}

// Caps selects the edge kinds a graph admits and the invariants checked
// at construction.
type Caps uint8

const (
	// CapDirected admits directed edges X→Y.
	CapDirected Caps = 1 << iota
	// CapBidirected admits bidirected edges X↔Y.
	CapBidirected
	// CapUndirected admits undirected edges X−Y.
	CapUndirected
	// CapAcyclic rejects directed and partially directed cycles at
	// construction.
	CapAcyclic
	// CapSegregated rejects vertices having both a sibling and a
	// neighbor at construction.
	CapSegregated
)

// has reports whether c includes every capability in want.
func (c Caps) has(want Caps) bool { return c&want == want }

// Graph is the in-memory mixed graph.
//
// Invariant: every edge endpoint exists in vertices (mutators auto-add
// missing endpoints). Districts and blocks are derived caches,
// recomputed lazily after any structural mutation.
type Graph struct {
	caps Caps

	vertices map[string]*Vertex

	diEdges map[Edge]struct{} // as given
	biEdges map[Edge]struct{} // canonical
	udEdges map[Edge]struct{} // canonical

	// Centrally-owned relational indices, kept symmetric by mutators.
	parents   map[string]VertexSet
	children  map[string]VertexSet
	siblings  map[string]VertexSet
	neighbors map[string]VertexSet

	// Derived partitions over non-fixed vertices.
	districts  []VertexSet
	districtOf map[string]int
	blocks     []VertexSet
	blockOf    map[string]int
	partsDirty bool
}

// GraphOption seeds vertices, edges and context at construction.
type GraphOption func(*graphSeed)

// graphSeed accumulates construction inputs before validation.
type graphSeed struct {
	vertices []string
	fixed    []string
	diEdges  []Edge
	biEdges  []Edge
	udEdges  []Edge
}

// WithVertices seeds named vertices.
func WithVertices(names ...string) GraphOption {
	return func(s *graphSeed) { s.vertices = append(s.vertices, names...) }
}

// WithDiEdges seeds directed edges (From→To).
func WithDiEdges(edges ...Edge) GraphOption {
	return func(s *graphSeed) { s.diEdges = append(s.diEdges, edges...) }
}

// WithBiEdges seeds bidirected edges (From↔To).
func WithBiEdges(edges ...Edge) GraphOption {
	return func(s *graphSeed) { s.biEdges = append(s.biEdges, edges...) }
}

// WithUdEdges seeds undirected edges (From−To).
func WithUdEdges(edges ...Edge) GraphOption {
	return func(s *graphSeed) { s.udEdges = append(s.udEdges, edges...) }
}

// WithFixed marks named vertices as fixed context (CADMG construction).
// The names are added as vertices if not otherwise seeded.
func WithFixed(names ...string) GraphOption {
	return func(s *graphSeed) { s.fixed = append(s.fixed, names...) }
}

// NewGraph builds a mixed graph admitting all three edge kinds with no
// structural invariants checked.
func NewGraph(opts ...GraphOption) (*Graph, error) {
	return build(CapDirected|CapBidirected|CapUndirected, opts)
}

// NewSG builds a segregated graph: all three edge kinds, validated to be
// segregated and free of directed or partially directed cycles.
func NewSG(opts ...GraphOption) (*Graph, error) {
	return build(CapDirected|CapBidirected|CapUndirected|CapAcyclic|CapSegregated, opts)
}

// NewADMG builds an acyclic directed mixed graph: directed and
// bidirected edges only, validated acyclic.
func NewADMG(opts ...GraphOption) (*Graph, error) {
	return build(CapDirected|CapBidirected|CapAcyclic, opts)
}

// NewCADMG builds a conditional ADMG: an ADMG whose context vertices are
// marked fixed via WithFixed.
func NewCADMG(opts ...GraphOption) (*Graph, error) {
	return build(CapDirected|CapBidirected|CapAcyclic, opts)
}

// NewDAG builds a directed acyclic graph: directed edges only.
func NewDAG(opts ...GraphOption) (*Graph, error) {
	return build(CapDirected|CapAcyclic, opts)
}

// NewCG builds a chain graph: directed and undirected edges, no directed
// or partially directed cycles.
func NewCG(opts ...GraphOption) (*Graph, error) {
	return build(CapDirected|CapUndirected|CapAcyclic, opts)
}

// NewUG builds an undirected graph.
func NewUG(opts ...GraphOption) (*Graph, error) {
	return build(CapUndirected, opts)
}

// NewBG builds a bidirected graph.
func NewBG(opts ...GraphOption) (*Graph, error) {
	return build(CapBidirected, opts)
}

// build assembles a graph from seeds under the given capabilities, then
// validates the capability invariants. Failure is fatal: no partial
// graph escapes.
func build(caps Caps, opts []GraphOption) (*Graph, error) {
	var seed graphSeed
	for _, opt := range opts {
		opt(&seed)
	}

	g := &Graph{
		caps:      caps,
		vertices:  make(map[string]*Vertex),
		diEdges:   make(map[Edge]struct{}),
		biEdges:   make(map[Edge]struct{}),
		udEdges:   make(map[Edge]struct{}),
		parents:   make(map[string]VertexSet),
		children:  make(map[string]VertexSet),
		siblings:  make(map[string]VertexSet),
		neighbors: make(map[string]VertexSet),
	}

	// 1) Vertices first, so edge seeding cannot mask name typos… they
	//    would simply be auto-added, same as the mutators do.
	for _, name := range seed.vertices {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
		}
	}

	// 2) Edges through the regular mutators (capability-checked).
	for _, e := range seed.diEdges {
		if err := g.AddDiEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
		}
	}
	for _, e := range seed.biEdges {
		if err := g.AddBiEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
		}
	}
	for _, e := range seed.udEdges {
		if err := g.AddUdEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
		}
	}

	// 3) Context vertices (CADMG construction).
	for _, name := range seed.fixed {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
		}
		g.vertices[name].Fixed = true
	}

	// 4) Invariants, only now that the whole structure is present.
	if caps.has(CapSegregated) {
		if err := g.checkSegregated(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
		}
	}
	if caps.has(CapAcyclic) {
		if err := g.checkAcyclic(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
		}
	}

	g.partsDirty = true

	return g, nil
}

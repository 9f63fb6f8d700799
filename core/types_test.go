package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthamlet/ananke/core"
)

func TestNewADMG_BuildsMixedGraph(t *testing.T) {
	g := fiveVarADMG(t)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []string{"A", "B", "C", "D", "Y"}, g.VertexNames())
	assert.True(t, g.HasDiEdge("A", "B"))
	assert.True(t, g.HasBiEdge("A", "C"))
	assert.False(t, g.HasDiEdge("B", "A"), "directed edges are one-way")
}

func TestNewADMG_Empty(t *testing.T) {
	g, err := core.NewADMG()
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.VertexNames())
}

func TestNewDAG_RejectsBidirectedEdges(t *testing.T) {
	_, err := core.NewDAG(
		core.WithVertices("A", "B"),
		core.WithBiEdges(e("A", "B")),
	)
	assert.ErrorIs(t, err, core.ErrConstruction)
	assert.ErrorIs(t, err, core.ErrEdgeKindNotAllowed)
}

func TestNewUG_RejectsDirectedEdges(t *testing.T) {
	_, err := core.NewUG(
		core.WithVertices("A", "B"),
		core.WithDiEdges(e("A", "B")),
	)
	assert.ErrorIs(t, err, core.ErrConstruction)
	assert.ErrorIs(t, err, core.ErrEdgeKindNotAllowed)
}

func TestNewDAG_RejectsDirectedCycle(t *testing.T) {
	_, err := core.NewDAG(
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "B"), e("B", "C"), e("C", "A")),
	)
	assert.ErrorIs(t, err, core.ErrConstruction)
	assert.ErrorIs(t, err, core.ErrCyclic)
}

func TestNewSG_RejectsNonSegregated(t *testing.T) {
	// B carries both a bidirected and an undirected edge.
	_, err := core.NewSG(
		core.WithVertices("A", "B", "C"),
		core.WithBiEdges(e("A", "B")),
		core.WithUdEdges(e("B", "C")),
	)
	assert.ErrorIs(t, err, core.ErrConstruction)
	assert.ErrorIs(t, err, core.ErrNotSegregated)
}

func TestNewSG_RejectsDirectedCycle(t *testing.T) {
	_, err := core.NewSG(
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "B"), e("B", "C"), e("C", "A")),
		core.WithBiEdges(e("A", "B")),
	)
	assert.ErrorIs(t, err, core.ErrConstruction)
	assert.ErrorIs(t, err, core.ErrCyclic)
}

func TestNewSG_RejectsPartiallyDirectedCycle(t *testing.T) {
	// A−B−C joined back by C→A: the directed edge re-enters its own
	// undirected component.
	_, err := core.NewSG(
		core.WithVertices("A", "B", "C"),
		core.WithUdEdges(e("A", "B"), e("B", "C")),
		core.WithDiEdges(e("C", "A")),
	)
	assert.ErrorIs(t, err, core.ErrConstruction)
	assert.ErrorIs(t, err, core.ErrCyclic)
}

func TestNewSG_AcceptsUndirectedCycle(t *testing.T) {
	g, err := core.NewSG(
		core.WithVertices("A", "B", "C"),
		core.WithUdEdges(e("A", "B"), e("B", "C"), e("C", "A")),
	)
	require.NoError(t, err)
	assert.True(t, g.HasUdEdge("A", "C"))
}

func TestNewCADMG_FixedContext(t *testing.T) {
	g, err := core.NewCADMG(
		core.WithVertices("W", "X_1"),
		core.WithDiEdges(e("X_1", "W")),
		core.WithBiEdges(e("X_1", "W")),
		core.WithFixed("X_1"),
	)
	require.NoError(t, err)

	// Marking context at construction does not prune edges; only the
	// Fix operation does.
	assert.True(t, g.IsFixed("X_1"))
	assert.False(t, g.IsFixed("W"))
	assert.Equal(t, []string{"X_1"}, g.FixedVertices())
	assert.True(t, g.HasDiEdge("X_1", "W"))
	assert.True(t, g.HasBiEdge("X_1", "W"))
}

func TestConstruction_RejectsEmptyVertexName(t *testing.T) {
	_, err := core.NewADMG(core.WithVertices(""))
	assert.ErrorIs(t, err, core.ErrConstruction)
	assert.ErrorIs(t, err, core.ErrEmptyVertexName)
}

func TestNewBG_Minimal(t *testing.T) {
	g, err := core.NewBG(
		core.WithVertices("A", "B"),
		core.WithBiEdges(e("A", "B")),
	)
	require.NoError(t, err)
	assert.True(t, g.HasBiEdge("B", "A"), "bidirected edges are symmetric")
}

func TestNewGraph_NoInvariantsChecked(t *testing.T) {
	// The plain mixed graph admits structures every validated family
	// rejects.
	g, err := core.NewGraph(
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "B"), e("B", "C"), e("C", "A")),
		core.WithBiEdges(e("A", "B")),
		core.WithUdEdges(e("B", "C")),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
}

func TestVertex_DefaultCardinality(t *testing.T) {
	g := mustADMG(t, core.WithVertices("A"))

	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultCardinality, v.Cardinality)

	require.NoError(t, g.SetCardinality("A", 5))
	v, err = g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, 5, v.Cardinality)

	assert.ErrorIs(t, g.SetCardinality("Z", 3), core.ErrVertexNotFound)
}

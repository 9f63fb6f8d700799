package identify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthamlet/ananke/core"
	"github.com/ghosthamlet/ananke/identify"
)

func TestMissingFullID_Identified(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("X_1", "X_2", "R_1", "R_2"),
		core.WithDiEdges(e("X_1", "X_2"), e("X_1", "R_2"), e("R_2", "R_1")),
	)

	assert.True(t, identify.NewMissingFullID(g).ID())
}

func TestMissingFullID_Colluder(t *testing.T) {
	// R_1 and X_1 collide at R_2: the full law is not identified.
	g := mustADMG(t,
		core.WithVertices("X_1", "X_2", "R_1", "R_2"),
		core.WithDiEdges(e("X_1", "R_2"), e("R_1", "R_2")),
	)

	assert.False(t, identify.NewMissingFullID(g).ID())
}

func TestMissingFullID_CrossPattern(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("X_1", "X_2", "R_1", "R_2"),
		core.WithDiEdges(e("X_1", "R_2"), e("X_2", "R_1"), e("R_2", "R_1")),
	)

	assert.False(t, identify.NewMissingFullID(g).ID())
}

func TestMissingFullID_Chain(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("X_1", "X_2", "X_3", "R_1", "R_2", "R_3"),
		core.WithDiEdges(
			e("X_1", "R_2"), e("X_2", "R_3"), e("X_3", "R_1"),
			e("R_3", "R_2"), e("R_2", "R_1"),
		),
	)
	assert.True(t, identify.NewMissingFullID(g).ID())

	// An extra cause of a downstream indicator keeps the law identified.
	require.NoError(t, g.AddDiEdge("X_1", "R_3"))
	assert.True(t, identify.NewMissingFullID(g).ID())
}

func TestMissingFullID_Complicated(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("X_1", "X_2", "X_3", "X_4", "X_5", "R_1", "R_2", "R_3", "R_4", "R_5"),
		core.WithDiEdges(
			e("X_1", "R_2"), e("X_2", "R_3"), e("X_2", "R_4"), e("X_2", "R_5"), e("X_3", "R_1"),
			e("X_4", "R_3"), e("X_4", "R_5"), e("X_5", "R_3"), e("X_5", "R_4"),
			e("R_3", "R_2"), e("R_3", "R_4"), e("R_3", "R_5"), e("R_4", "R_2"), e("R_5", "R_2"),
		),
	)
	assert.True(t, identify.NewMissingFullID(g).ID())

	require.NoError(t, g.AddDiEdge("R_2", "R_1"))
	assert.True(t, identify.NewMissingFullID(g).ID())
}

func TestMissingFullID_BidirectedColludingPath(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("X_1", "X_2", "X_3", "R_1", "R_2", "R_3", "Xp_1", "Xp_2", "Xp_3"),
		core.WithDiEdges(
			e("X_1", "X_2"), e("X_1", "R_2"), e("X_1", "R_3"),
			e("X_2", "R_3"), e("X_2", "X_3"), e("X_3", "R_1"),
			e("R_3", "R_2"), e("R_2", "R_1"),
		),
		core.WithBiEdges(e("X_1", "X_3"), e("X_2", "R_3")),
	)
	assert.True(t, identify.NewMissingFullID(g).ID())

	// A confounding arc between indicators reopens a colluding path.
	require.NoError(t, g.AddBiEdge("R_1", "R_3"))
	assert.False(t, identify.NewMissingFullID(g).ID())
}

package admg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghosthamlet/ananke/admg"
	"github.com/ghosthamlet/ananke/core"
)

func TestMSeparated_ColliderBehavior(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "C"), e("B", "C")),
	)

	assert.True(t, admg.MSeparated(g, "A", "B"), "an unconditioned collider blocks")
	assert.False(t, admg.MSeparated(g, "A", "B", "C"), "conditioning on the collider opens the path")
}

func TestMSeparated_NonColliderBehavior(t *testing.T) {
	fork := mustADMG(t,
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("C", "A"), e("C", "B")),
	)
	assert.False(t, admg.MSeparated(fork, "A", "B"))
	assert.True(t, admg.MSeparated(fork, "A", "B", "C"), "conditioning on a common cause blocks")

	chain := mustADMG(t,
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "B"), e("B", "C")),
	)
	assert.False(t, admg.MSeparated(chain, "A", "C"))
	assert.True(t, admg.MSeparated(chain, "A", "C", "B"))
}

func TestMSeparated_DescendantOfCollider(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("A", "B", "C", "D"),
		core.WithDiEdges(e("A", "C"), e("B", "C"), e("C", "D")),
	)

	// Conditioning on a descendant of the collider opens it too.
	assert.False(t, admg.MSeparated(g, "A", "B", "D"))
}

func TestMConnectingPaths_TwoArmFixture(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("X1", "U", "X2", "A1", "A2", "Y1", "Y2"),
		core.WithDiEdges(
			e("X1", "A1"), e("X1", "Y1"), e("A1", "Y1"),
			e("X2", "A2"), e("X2", "Y2"), e("A2", "Y2"),
			e("U", "A1"), e("U", "Y1"), e("U", "A2"), e("U", "Y2"),
			e("A2", "Y1"), e("A1", "Y2"),
		),
		core.WithBiEdges(e("X1", "U"), e("U", "X2"), e("X1", "X2"), e("Y1", "Y2")),
	)

	paths := admg.MConnectingPaths(g, "X1", "Y2")
	assert.ElementsMatch(t, []string{
		"X1->A1->Y2",
		"X1<->X2->Y2",
		"X1<->U->Y2",
		"X1<->X2->A2->Y2",
		"X1<->U->A1->Y2",
		"X1<->U->A2->Y2",
	}, renderPaths(paths))
}

func TestMConnectingPaths_UnknownEndpoint(t *testing.T) {
	g := mustADMG(t, core.WithVertices("A"))
	assert.Nil(t, admg.MConnectingPaths(g, "A", "Z"))
}

package admg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghosthamlet/ananke/admg"
	"github.com/ghosthamlet/ananke/core"
)

func TestMBShielded_NonAdjacentPairInBlanket(t *testing.T) {
	// A parents the district of C, so A sits in C's Markov blanket
	// without being adjacent to it.
	g := mustADMG(t,
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "B")),
		core.WithBiEdges(e("B", "C")),
	)
	assert.False(t, admg.MBShielded(g))

	// Adding the missing edge shields the pair.
	shielded := mustADMG(t,
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "B"), e("A", "C")),
		core.WithBiEdges(e("B", "C")),
	)
	assert.True(t, admg.MBShielded(shielded))
}

func TestMBShielded_DisconnectedPairs(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("A", "B", "C", "D"),
		core.WithDiEdges(e("A", "B"), e("C", "D")),
	)
	assert.True(t, admg.MBShielded(g), "vertices in unrelated components never share blankets")
}

func TestNonparametricSaturated_MediatorFixture(t *testing.T) {
	vertices := core.WithVertices("Treatment", "M", "L", "Confounders", "Outcome")
	diEdges := core.WithDiEdges(
		e("Confounders", "M"), e("Confounders", "L"),
		e("Treatment", "M"), e("Treatment", "Outcome"), e("Treatment", "L"),
		e("M", "L"), e("L", "Outcome"),
	)

	saturated := mustADMG(t, vertices, diEdges,
		core.WithBiEdges(e("Treatment", "Confounders"), e("M", "Outcome"), e("L", "Outcome")))
	assert.True(t, admg.NonparametricSaturated(saturated))

	// Dropping L↔Outcome reintroduces an equality constraint.
	constrained := mustADMG(t, vertices, diEdges,
		core.WithBiEdges(e("Treatment", "Confounders"), e("M", "Outcome")))
	assert.False(t, admg.NonparametricSaturated(constrained))
}

func TestNonparametricSaturated_SmallGraph(t *testing.T) {
	g := mustADMG(t,
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("B", "A"), e("B", "C")),
		core.WithBiEdges(e("A", "B"), e("C", "B")),
	)
	assert.True(t, admg.NonparametricSaturated(g))
}

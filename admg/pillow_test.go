package admg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghosthamlet/ananke/admg"
	"github.com/ghosthamlet/ananke/core"
)

// pillowFixture is A→B→C←D, C→Y with A↔C, B↔Y, B↔D.
func pillowFixture(t *testing.T) *core.Graph {
	t.Helper()

	return mustADMG(t,
		core.WithVertices("A", "B", "C", "D", "Y"),
		core.WithDiEdges(e("A", "B"), e("B", "C"), e("D", "C"), e("C", "Y")),
		core.WithBiEdges(e("A", "C"), e("B", "Y"), e("B", "D")),
	)
}

func TestMarkovPillow_DependsOnOrder(t *testing.T) {
	g := pillowFixture(t)
	topOrder := []string{"D", "A", "B", "C", "Y"}

	assert.Empty(t, admg.MarkovPillow(g, []string{"A", "D"}, topOrder).Sorted(),
		"nothing precedes A and D in this order")
	assert.Equal(t, []string{"A", "B", "D"},
		admg.MarkovPillow(g, []string{"C"}, topOrder).Sorted())
}

func TestMarkovBlanket_OrderFree(t *testing.T) {
	g := pillowFixture(t)

	assert.Equal(t, []string{"B", "C", "Y"}, admg.MarkovBlanket(g, "A", "D").Sorted())
	assert.Equal(t, []string{"A", "B", "D"}, admg.MarkovBlanket(g, "C").Sorted())
}

func TestMarkovPillow_MatchesBlanketOnFullPrefix(t *testing.T) {
	g := pillowFixture(t)

	// With every other vertex preceding the target, the pillow sees the
	// whole graph and coincides with the blanket.
	topOrder := g.TopologicalSort()
	last := topOrder[len(topOrder)-1]
	assert.True(t, admg.MarkovPillow(g, []string{last}, topOrder).
		Equal(admg.MarkovBlanket(g, last)))
}

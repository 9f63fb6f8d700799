package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghosthamlet/ananke/core"
)

// e builds an edge literal; direction only matters for directed edges.
func e(from, to string) core.Edge { return core.Edge{From: from, To: to} }

// mustADMG builds an ADMG and fails the test on construction error.
func mustADMG(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewADMG(opts...)
	require.NoError(t, err)

	return g
}

// mustSG builds a segregated graph and fails the test on construction error.
func mustSG(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewSG(opts...)
	require.NoError(t, err)

	return g
}

// fiveVarADMG is the standard front-door style fixture:
// A→B, A→D, B→C, C→Y, B→D, D→Y with A↔C, B↔Y, B↔D.
// Its districts are {A,C} and {B,D,Y}.
func fiveVarADMG(t *testing.T) *core.Graph {
	t.Helper()

	return mustADMG(t,
		core.WithVertices("A", "B", "C", "D", "Y"),
		core.WithDiEdges(e("A", "B"), e("A", "D"), e("B", "C"), e("C", "Y"), e("B", "D"), e("D", "Y")),
		core.WithBiEdges(e("A", "C"), e("B", "Y"), e("B", "D")),
	)
}

// sevenVarSG is a two-arm sequential-treatment fixture with districts
// {X1,X2,U}, {A1}, {A2} and {Y1,Y2}.
func sevenVarSG(t *testing.T) *core.Graph {
	t.Helper()

	return mustSG(t,
		core.WithVertices("X1", "U", "X2", "A1", "A2", "Y1", "Y2"),
		core.WithDiEdges(
			e("X1", "A1"), e("X1", "Y1"), e("A1", "Y1"),
			e("X2", "A2"), e("X2", "Y2"), e("A2", "Y2"),
			e("U", "A1"), e("U", "Y1"), e("U", "A2"), e("U", "Y2"),
			e("A2", "Y1"), e("A1", "Y2"),
		),
		core.WithBiEdges(e("X1", "U"), e("U", "X2"), e("X1", "X2"), e("Y1", "Y2")),
	)
}

// chainADMG is A→B→C with B↔C.
func chainADMG(t *testing.T) *core.Graph {
	t.Helper()

	return mustADMG(t,
		core.WithVertices("A", "B", "C"),
		core.WithDiEdges(e("A", "B"), e("B", "C")),
		core.WithBiEdges(e("B", "C")),
	)
}

// keys collects the canonical keys of a district or block partition.
func keys(parts []core.VertexSet) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.Key())
	}

	return out
}

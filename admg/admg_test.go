package admg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghosthamlet/ananke/admg"
	"github.com/ghosthamlet/ananke/core"
)

func e(from, to string) core.Edge { return core.Edge{From: from, To: to} }

// mustADMG builds an ADMG and fails the test on construction error.
func mustADMG(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewADMG(opts...)
	require.NoError(t, err)

	return g
}

// renderPaths flattens step paths into strings like "A->B<->C" so path
// sets can be compared without caring about enumeration order.
func renderPaths(paths [][]admg.Step) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		var b strings.Builder
		for i, s := range p {
			if i == 0 {
				b.WriteString(s.From)
			}
			b.WriteString(string(s.Mark))
			b.WriteString(s.To)
		}
		out = append(out, b.String())
	}

	return out
}

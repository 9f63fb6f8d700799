package identify

import (
	"strings"

	"github.com/ghosthamlet/ananke/admg"
	"github.com/ghosthamlet/ananke/core"
)

// MissingFullID decides identification of the full law in a missing
// data model. Vertex naming carries the roles: "X_i" is the true
// (possibly unobserved) variable and "R_i" its missingness indicator.
type MissingFullID struct {
	graph *core.Graph
}

// NewMissingFullID prepares the full-law check for g. The graph is
// only read.
func NewMissingFullID(g *core.Graph) *MissingFullID {
	return &MissingFullID{graph: g}
}

// ID reports whether the full law is identified. It is iff no
// missingness indicator R_i lies on a colluding path to its own
// counterfactual X_i: the Markov blanket of R_i together with its
// indicator children must not contain X_i.
func (m *MissingFullID) ID() bool {
	for _, ri := range m.graph.VertexNames() {
		if !strings.HasPrefix(ri, "R_") {
			continue
		}

		childR := []string{ri}
		for c := range m.graph.Children(ri) {
			if strings.HasPrefix(c, "R_") {
				childR = append(childR, c)
			}
		}

		colluding := admg.MarkovBlanket(m.graph, childR...)
		for _, c := range childR[1:] {
			colluding.Add(c)
		}

		xi := "X_" + strings.TrimPrefix(ri, "R_")
		if colluding.Has(xi) {
			return false
		}
	}
	return true
}

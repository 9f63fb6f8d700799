package identify

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ghosthamlet/ananke/core"
)

// ErrNotIdentified indicates a functional was requested for a query
// that is not identified; no partial functional is ever produced.
var ErrNotIdentified = errors.New("identify: query is not identified")

// ErrNotAncestralSubgraph indicates an experimental distribution whose
// graph is not an ancestral subgraph of the base model.
var ErrNotAncestralSubgraph = errors.New("identify: experiment is not an ancestral subgraph of the base graph")

// query carries the shared per-query state of the one-line family:
// the SWIG obtained by fixing the treatments, the relevant outcome
// ancestors Y*, and the induced subgraph G[Y*] of the ORIGINAL graph.
type query struct {
	graph      *core.Graph
	treatments []string
	outcomes   []string

	swig   *core.Graph
	ystar  core.VertexSet
	gystar *core.Graph
}

// newQuery validates the variable names and precomputes swig, Y* and
// G[Y*].
func newQuery(g *core.Graph, treatments, outcomes []string) (*query, error) {
	for _, name := range append(append([]string{}, treatments...), outcomes...) {
		if !g.HasVertex(name) {
			return nil, fmt.Errorf("identify: query variable %q: %w", name, core.ErrVertexNotFound)
		}
	}

	swig := g.Clone()
	if err := swig.Fix(treatments...); err != nil {
		return nil, err
	}

	ystar := core.NewVertexSet()
	for v := range swig.Ancestors(outcomes...) {
		if !swig.IsFixed(v) {
			ystar.Add(v)
		}
	}

	return &query{
		graph:      g,
		treatments: append([]string{}, treatments...),
		outcomes:   append([]string{}, outcomes...),
		swig:       swig,
		ystar:      ystar,
		gystar:     g.Subgraph(ystar.Sorted()...),
	}, nil
}

// OneLineID runs one-line identification of p(Y(a)) against the
// observed joint p(V).
type OneLineID struct {
	query

	// fixingOrders caches, per district key of G[Y*], the witnessing
	// fixing order found by the last ID() call.
	fixingOrders map[string][]string
}

// NewOneLineID prepares a query for the causal effect of treatments on
// outcomes in g. The graph is only read; the SWIG is built on a clone.
func NewOneLineID(g *core.Graph, treatments, outcomes []string) (*OneLineID, error) {
	q, err := newQuery(g, treatments, outcomes)
	if err != nil {
		return nil, err
	}

	return &OneLineID{query: *q}, nil
}

// YStar returns the relevant outcome ancestors Y* of the query.
func (o *OneLineID) YStar() core.VertexSet { return o.ystar }

// ID reports whether p(Y(a)) is identified: every district D of G[Y*]
// must admit a valid fixing order for V − D on the original graph. Any
// district failing fixability makes the whole query non-identified.
// Complexity: O(districts × V²) district recomputations.
func (o *OneLineID) ID() bool {
	o.fixingOrders = make(map[string][]string)
	all := o.graph.UnfixedVertices()

	for _, district := range o.gystar.Districts() {
		ok, order := o.graph.Fixable(all.Diff(district).Sorted()...)
		if !ok {
			return false
		}
		o.fixingOrders[district.Key()] = order
	}

	return true
}

// FixingOrders returns the per-district witnessing orders cached by the
// last successful ID() call.
func (o *OneLineID) FixingOrders() map[string][]string { return o.fixingOrders }

// Functional renders the identifying functional: a sum over Y* minus
// the outcomes of, per district, a fixing operator Φ (the district's
// order, reversed) applied to the joint density p(V). Returns
// ErrNotIdentified when ID() is false.
func (o *OneLineID) Functional() (string, error) {
	if !o.ID() {
		return "", ErrNotIdentified
	}

	var b strings.Builder
	writeMarginal(&b, o.ystar.Diff(core.NewVertexSet(o.outcomes...)))

	keys := make([]string, 0, len(o.fixingOrders))
	for k := range o.fixingOrders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		writePhi(&b, o.fixingOrders[k], "p(V);G")
	}

	return b.String(), nil
}

// writeMarginal emits the Σ prefix over the marginalized variables, if
// any.
func writeMarginal(b *strings.Builder, marginal core.VertexSet) {
	if len(marginal) == 0 {
		return
	}
	b.WriteString("Σ")
	b.WriteString(strings.Join(marginal.Sorted(), ","))
	b.WriteByte(' ')
}

// writePhi emits one fixing operator: Φ with the order reversed,
// applied to the given density term.
func writePhi(b *strings.Builder, order []string, term string) {
	reversed := make([]string, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		reversed = append(reversed, order[i])
	}
	b.WriteString("Φ")
	b.WriteString(strings.Join(reversed, ","))
	b.WriteString("(")
	b.WriteString(term)
	b.WriteString(")")
}

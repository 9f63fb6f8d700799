// Generalizations of one-line ID to available experimental
// distributions.

package identify

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ghosthamlet/ananke/admg"
	"github.com/ghosthamlet/ananke/core"
	"github.com/ghosthamlet/ananke/ig"
)

// gidWitness records where a district of G[Y*] was reached: the index
// of the covering experiment and the fixing order inside it.
type gidWitness struct {
	experiment int
	order      []string
}

// OneLineGID generalizes one-line ID to a collection of experimental
// distributions. Each experiment is the ADMG/CADMG of an available
// interventional distribution and must be an ancestral subgraph of the
// base model.
type OneLineGID struct {
	query

	witnesses map[string]gidWitness
}

// NewOneLineGID prepares a gID query for treatments and outcomes in g.
func NewOneLineGID(g *core.Graph, treatments, outcomes []string) (*OneLineGID, error) {
	q, err := newQuery(g, treatments, outcomes)
	if err != nil {
		return nil, err
	}

	return &OneLineGID{query: *q}, nil
}

// ID reports whether p(Y(a)) is identified from the experiments: every
// district D of G[Y*] must lie among some experiment's random vertices
// and be reachable there (the remaining random vertices fixable).
// Experiments that are not ancestral subgraphs of the base graph are
// rejected with ErrNotAncestralSubgraph.
func (o *OneLineGID) ID(experiments []*core.Graph) (bool, error) {
	if err := checkExperiments(o.graph, experiments); err != nil {
		return false, err
	}

	o.witnesses = make(map[string]gidWitness)
	for _, district := range o.gystar.Districts() {
		covered := false
		for i, experiment := range experiments {
			random := experiment.UnfixedVertices()
			if !random.ContainsAll(district) {
				continue
			}
			if ok, order := experiment.Fixable(random.Diff(district).Sorted()...); ok {
				o.witnesses[district.Key()] = gidWitness{experiment: i, order: order}
				covered = true

				break
			}
		}
		if !covered {
			return false, nil
		}
	}

	return true, nil
}

// Functional renders the identifying functional against the
// experimental distributions: per district, a fixing operator applied
// to the experiment's distribution p(V \ b | do(b)). Returns
// ErrNotIdentified when the query is not identified.
func (o *OneLineGID) Functional(experiments []*core.Graph) (string, error) {
	ok, err := o.ID(experiments)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotIdentified
	}

	var b strings.Builder
	writeMarginal(&b, o.ystar.Diff(core.NewVertexSet(o.outcomes...)))

	keys := make([]string, 0, len(o.witnesses))
	for k := range o.witnesses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		w := o.witnesses[k]
		writePhi(&b, w.order, experimentTerm(experiments[w.experiment], w.experiment))
	}

	return b.String(), nil
}

// experimentTerm renders the density contributed by one experiment:
// its random vertices conditioned on the do() of its fixed context.
func experimentTerm(experiment *core.Graph, index int) string {
	var b strings.Builder
	b.WriteString("p(")
	b.WriteString(strings.Join(experiment.UnfixedVertices().Sorted(), ","))
	if fixed := experiment.FixedVertices(); len(fixed) > 0 {
		b.WriteString("|do(")
		b.WriteString(strings.Join(fixed, ","))
		b.WriteString(")")
	}
	b.WriteString(");G[")
	b.WriteString(strconv.Itoa(index))
	b.WriteString("]")

	return b.String()
}

// OnelineAID is the intrinsic-set formulation of identification from
// experiments: the required intrinsic sets of G[Y*] must all appear
// among the intrinsic sets the experiments make available.
type OnelineAID struct {
	query
}

// NewOnelineAID prepares an AID query for treatments and outcomes in g.
func NewOnelineAID(g *core.Graph, treatments, outcomes []string) (*OnelineAID, error) {
	q, err := newQuery(g, treatments, outcomes)
	if err != nil {
		return nil, err
	}

	return &OnelineAID{query: *q}, nil
}

// ID reports whether every intrinsic set of G[Y*] is covered by the
// union of the experiments' intrinsic-set families. Same set-coverage
// backbone as OneLineGID, different granularity: intrinsic sets instead
// of whole districts.
// Complexity: one intrinsic-set enumeration per graph involved.
func (o *OnelineAID) ID(experiments []*core.Graph) (bool, error) {
	if err := checkExperiments(o.graph, experiments); err != nil {
		return false, err
	}

	allowed := core.NewVertexSet() // keys of available intrinsic sets
	for _, experiment := range experiments {
		sets, _ := ig.IntrinsicSets(experiment)
		for _, s := range sets {
			allowed.Add(s.Key())
		}
	}

	required, _ := ig.IntrinsicSets(o.gystar)
	for _, s := range required {
		if !allowed.Has(s.Key()) {
			return false, nil
		}
	}

	return true, nil
}

// checkExperiments validates that every experiment is an ancestral
// subgraph of the base model.
func checkExperiments(base *core.Graph, experiments []*core.Graph) error {
	for _, experiment := range experiments {
		if !admg.IsAncestralSubgraph(experiment, base) {
			return ErrNotAncestralSubgraph
		}
	}

	return nil
}

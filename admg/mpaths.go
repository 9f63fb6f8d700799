// m-connecting path enumeration.

package admg

import "github.com/ghosthamlet/ananke/core"

// Mark labels the traversal direction of one step on a mixed path.
type Mark string

const (
	// MarkOut steps to a child: tail at the current vertex.
	MarkOut Mark = "->"
	// MarkIn steps to a parent: arrowhead at the current vertex.
	MarkIn Mark = "<-"
	// MarkBi steps to a sibling: arrowheads at both endpoints.
	MarkBi Mark = "<->"
)

// Step is one edge of an m-connecting path, oriented in walk order.
type Step struct {
	From string
	To   string
	Mark Mark
}

// arrowAtTo reports whether the step's edge carries an arrowhead at the
// vertex it enters.
func (s Step) arrowAtTo() bool { return s.Mark != MarkIn }

// MConnectingPaths enumerates all m-connecting paths from x to y given a
// conditioning set Z, by BFS over children, parents and siblings. An
// intermediate vertex may be crossed as a collider only when it is an
// ancestor of Z, and as a non-collider only when it is outside Z.
// Simple paths only: no vertex repeats. Expansion order is
// deterministic (ascending names).
// Complexity: exponential in the worst case (all paths materialized).
func MConnectingPaths(g *core.Graph, x, y string, conditioned ...string) [][]Step {
	if !g.HasVertex(x) || !g.HasVertex(y) {
		return nil
	}

	z := core.NewVertexSet(conditioned...)
	ancZ := core.NewVertexSet()
	if len(conditioned) > 0 {
		ancZ = g.Ancestors(conditioned...)
	}

	type item struct {
		at    string
		seen  core.VertexSet
		steps []Step
	}

	var paths [][]Step
	queue := []item{{at: x, seen: core.NewVertexSet(x)}}

	extend := func(steps []Step, s Step) []Step {
		next := make([]Step, len(steps), len(steps)+1)
		copy(next, steps)

		return append(next, s)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Arrowhead into the current vertex from the step that got us
		// here; false at the source endpoint.
		inArrow := len(cur.steps) > 0 && cur.steps[len(cur.steps)-1].arrowAtTo()
		atSource := len(cur.steps) == 0

		// 1) Children: tail exit, so the current vertex acts as a
		//    non-collider and must be outside Z.
		if atSource || !z.Has(cur.at) {
			for _, c := range g.Children(cur.at).Sorted() {
				if cur.seen.Has(c) {
					continue
				}
				step := Step{From: cur.at, To: c, Mark: MarkOut}
				if c == y {
					paths = append(paths, extend(cur.steps, step))

					continue
				}
				queue = append(queue, item{at: c, seen: cur.seen.Clone().Add(c), steps: extend(cur.steps, step)})
			}
		}

		// 2) Parents and siblings: arrowhead exit. With an arrowhead in,
		//    the vertex is a collider and must be an ancestor of Z; with
		//    a tail in, it is a non-collider and must be outside Z.
		if !atSource {
			if inArrow && !ancZ.Has(cur.at) {
				continue
			}
			if !inArrow && z.Has(cur.at) {
				continue
			}
		}
		for _, p := range g.Parents(cur.at).Sorted() {
			if cur.seen.Has(p) {
				continue
			}
			step := Step{From: cur.at, To: p, Mark: MarkIn}
			if p == y {
				paths = append(paths, extend(cur.steps, step))

				continue
			}
			queue = append(queue, item{at: p, seen: cur.seen.Clone().Add(p), steps: extend(cur.steps, step)})
		}
		for _, s := range g.Siblings(cur.at).Sorted() {
			if cur.seen.Has(s) {
				continue
			}
			step := Step{From: cur.at, To: s, Mark: MarkBi}
			if s == y {
				paths = append(paths, extend(cur.steps, step))

				continue
			}
			queue = append(queue, item{at: s, seen: cur.seen.Clone().Add(s), steps: extend(cur.steps, step)})
		}
	}

	return paths
}

// MSeparated reports whether x and y are m-separated given the
// conditioning set: no m-connecting path survives.
func MSeparated(g *core.Graph, x, y string, conditioned ...string) bool {
	return len(MConnectingPaths(g, x, y, conditioned...)) == 0
}

// Containment tests between graphs.

package admg

import "github.com/ghosthamlet/ananke/core"

// IsSubgraph reports whether sub's vertices and edges are all present in
// super.
func IsSubgraph(sub, super *core.Graph) bool {
	for _, v := range sub.VertexNames() {
		if !super.HasVertex(v) {
			return false
		}
	}
	for _, e := range sub.DiEdges() {
		if !super.HasDiEdge(e.From, e.To) {
			return false
		}
	}
	for _, e := range sub.BiEdges() {
		if !super.HasBiEdge(e.From, e.To) {
			return false
		}
	}
	for _, e := range sub.UdEdges() {
		if !super.HasUdEdge(e.From, e.To) {
			return false
		}
	}

	return true
}

// IsAncestralSubgraph reports whether sub is an ancestral subgraph of
// super: a subgraph whose non-fixed vertices bring every one of their
// super-parents along. Experimental distributions handed to the gID/AID
// procedures must satisfy this.
func IsAncestralSubgraph(sub, super *core.Graph) bool {
	if !IsSubgraph(sub, super) {
		return false
	}

	for v := range sub.UnfixedVertices() {
		for p := range super.Parents(v) {
			if !sub.HasVertex(p) {
				return false
			}
		}
	}

	return true
}

// VertexSet: the set-of-names currency every algorithm in this module
// trades in. Key() gives a canonical string form usable as a map key by
// layers whose vertices are themselves sets (the intrinsic graph).

package core

import (
	"sort"
	"strings"
)

// VertexSet is an unordered collection of vertex names.
type VertexSet map[string]struct{}

// NewVertexSet builds a set from the given names.
func NewVertexSet(names ...string) VertexSet {
	s := make(VertexSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Add inserts names and returns the receiver for chaining.
func (s VertexSet) Add(names ...string) VertexSet {
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Remove deletes names and returns the receiver for chaining.
func (s VertexSet) Remove(names ...string) VertexSet {
	for _, n := range names {
		delete(s, n)
	}

	return s
}

// Has reports membership of a single name.
func (s VertexSet) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Clone returns an independent copy of s.
func (s VertexSet) Clone() VertexSet {
	out := make(VertexSet, len(s))
	for n := range s {
		out[n] = struct{}{}
	}

	return out
}

// Union returns a new set with every member of s and other.
func (s VertexSet) Union(other VertexSet) VertexSet {
	out := s.Clone()
	for n := range other {
		out[n] = struct{}{}
	}

	return out
}

// Intersect returns a new set with the members common to s and other.
func (s VertexSet) Intersect(other VertexSet) VertexSet {
	out := make(VertexSet)
	for n := range s {
		if other.Has(n) {
			out[n] = struct{}{}
		}
	}

	return out
}

// Diff returns a new set with the members of s absent from other.
func (s VertexSet) Diff(other VertexSet) VertexSet {
	out := make(VertexSet)
	for n := range s {
		if !other.Has(n) {
			out[n] = struct{}{}
		}
	}

	return out
}

// ContainsAll reports whether s is a superset of other.
func (s VertexSet) ContainsAll(other VertexSet) bool {
	for n := range other {
		if !s.Has(n) {
			return false
		}
	}

	return true
}

// Equal reports whether s and other hold exactly the same names.
func (s VertexSet) Equal(other VertexSet) bool {
	return len(s) == len(other) && s.ContainsAll(other)
}

// Sorted returns the member names in ascending lexicographic order.
func (s VertexSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Key returns the canonical comma-joined sorted form of s, stable across
// runs and usable as a map key. Vertex names must not contain commas for
// keys to stay unambiguous.
func (s VertexSet) Key() string {
	return strings.Join(s.Sorted(), ",")
}

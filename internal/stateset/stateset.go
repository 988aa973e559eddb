// Package stateset provides two interchangeable representations of a set of
// state identifiers — a sorted-vector set ("ordered") and a dense bit-vector
// set ("bit") — used by the determinizer as a macrostate.
//
// Both representations satisfy the Set interface so that the determinizer's
// subset-construction loop is representation-agnostic: it is parameterized
// once by which constructor it calls, and the rest of the algorithm never
// branches on the concrete type.
package stateset

// Set is the common contract both StateSet representations satisfy.
//
// Union, Intersect and Diff never mutate the receiver or the argument; they
// return a freshly allocated Set of the receiver's concrete type. Out-of-range
// membership queries (an id beyond anything ever inserted) return false
// rather than panicking.
type Set interface {
	// Add inserts v into the set. A no-op if v is already present.
	Add(v uint32)

	// Contains reports whether v is a member of the set.
	Contains(v uint32) bool

	// Union returns a new set containing every element of the receiver or other.
	Union(other Set) Set

	// Intersect returns a new set containing every element present in both the receiver and other.
	Intersect(other Set) Set

	// Diff returns a new set containing every element of the receiver not present in other.
	Diff(other Set) Set

	// Elements returns the members of the set in ascending order.
	// The returned slice must not be mutated by the caller.
	Elements() []uint32

	// IsSubsetOf reports whether every element of the receiver is in other.
	IsSubsetOf(other Set) bool

	// IsDisjoint reports whether the receiver and other share no elements.
	IsDisjoint(other Set) bool

	// Len returns the number of elements in the set.
	Len() int

	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool

	// Hash returns a hash of the set's contents, consistent across calls for
	// equal sets of the receiver's concrete representation.
	Hash() uint64

	// Equal reports whether the receiver and other contain the same elements,
	// regardless of which concrete representation either uses.
	Equal(other Set) bool
}

// equalElements compares two ascending element slices for equality.
func equalElements(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

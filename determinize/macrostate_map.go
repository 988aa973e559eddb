package determinize

import "github.com/coregx/automaton/internal/stateset"

type macroEntry struct {
	set stateset.Set
	id  State
}

// MacrostateMap is the StateSet -> State assignment a Determinize run
// populates, exposed so callers can inspect or seed the subset-construction
// mapping (spec.md §4.2's "M"). It hash-buckets on stateset.Set.Hash, with
// Equal used to disambiguate hash collisions — bucketing alone would let a
// 64-bit hash collision silently merge two distinct macrostates.
type MacrostateMap struct {
	buckets map[uint64][]macroEntry
}

// NewMacrostateMap returns an empty map.
func NewMacrostateMap() *MacrostateMap {
	return &MacrostateMap{buckets: make(map[uint64][]macroEntry)}
}

// Get returns the state assigned to set, if any.
func (m *MacrostateMap) Get(set stateset.Set) (State, bool) {
	for _, e := range m.buckets[set.Hash()] {
		if e.set.Equal(set) {
			return e.id, true
		}
	}
	return 0, false
}

// Put records the assignment of set to id.
func (m *MacrostateMap) Put(set stateset.Set, id State) {
	h := set.Hash()
	m.buckets[h] = append(m.buckets[h], macroEntry{set: set, id: id})
}

// Len returns the number of distinct macrostates recorded.
func (m *MacrostateMap) Len() int {
	n := 0
	for _, b := range m.buckets {
		n += len(b)
	}
	return n
}

// Package determinize implements subset-construction determinization over
// either macrostate representation the stateset package provides, with an
// optional discover callback a caller can use to prune exploration.
//
// The algorithm and its worklist/macrostate-map shape follow
// mata::nfa::determinize / determinize_boost (original_source
// src/nfa/determinize.cc): a LIFO worklist of (state, macrostate) pairs,
// insert-into-map-before-discover-callback ordering, and early return on a
// callback veto.
package determinize

import (
	"github.com/coregx/automaton/internal/stateset"
	"github.com/coregx/automaton/nfa"
)

// Repr selects which StateSet implementation backs macrostates.
type Repr int

const (
	// ReprOrd uses the sorted-vector macrostate representation.
	ReprOrd Repr = iota
	// ReprBit uses the dense bit-vector macrostate representation.
	ReprBit
)

// Discover is invoked exactly once per newly allocated result state,
// immediately after the state is created and before any of its outgoing
// moves are added. Returning false halts construction; the partial result
// (possibly with dangling transitions into the just-discovered state, but
// with no outgoing moves from it) is then returned by Determinize.
type Discover func(result *nfa.NFA, newState nfa.State, macrostate stateset.Set) bool

func newSet(repr Repr) stateset.Set {
	if repr == ReprBit {
		return stateset.NewBit()
	}
	return stateset.NewOrd()
}

func toSet(repr Repr, elems []uint32) stateset.Set {
	s := newSet(repr)
	for _, v := range elems {
		s.Add(v)
	}
	return s
}

// Determinize runs subset construction over a, producing an equivalent DFA.
// Determinization ignores no symbol specially except that it rejects ε moves
// outright: a is expected to already be ε-free (per §4.2, callers must
// ε-eliminate first); an ε-symbol encountered during subset construction is
// reported as ErrEpsilonInDeterminize.
//
// subsetMap, if non-nil, is populated with the macrostate-to-state
// assignment as construction proceeds (it may also be pre-populated by the
// caller to seed known macrostates). discover, if non-nil, is consulted once
// per newly discovered macrostate.
func Determinize(a *nfa.NFA, repr Repr, subsetMap *MacrostateMap, discover Discover) (*nfa.NFA, *MacrostateMap, error) {
	if subsetMap == nil {
		subsetMap = NewMacrostateMap()
	}
	result := nfa.New()

	type workItem struct {
		id State
		set stateset.Set
	}
	var worklist []workItem

	s0 := toSet(repr, a.Initial.Elements())
	s0id := result.AddState()
	result.Initial.Add(uint32(s0id))
	if !a.Final.IsDisjoint(s0) {
		result.Final.Add(uint32(s0id))
	}
	subsetMap.Put(s0, s0id)
	worklist = append(worklist, workItem{id: s0id, set: s0})

	if discover != nil && !discover(result, s0id, s0) {
		return result, subsetMap, nil
	}
	if isDeltaEmpty(a) {
		return result, subsetMap, nil
	}

	for len(worklist) > 0 {
		top := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if top.set.IsEmpty() {
			// Unreachable per the Delta invariant (target sets are never
			// empty); terminate cleanly rather than continue on corrupt state.
			break
		}

		it := nfa.NewSyncIterator(nfa.Existential)
		for _, q := range top.set.Elements() {
			it.Push(a.Delta.StatePostOf(nfa.State(q)))
		}

		for it.Advance() {
			symbol := it.CurrentSymbol()
			if symbol >= nfa.EPSILON {
				return nil, nil, ErrEpsilonInDeterminize
			}

			targetSet := newSet(repr)
			for _, idx := range it.Current() {
				for _, t := range it.Targets(idx) {
					targetSet.Add(uint32(t))
				}
			}

			tid, existed := subsetMap.Get(targetSet)
			if !existed {
				tid = result.AddState()
				subsetMap.Put(targetSet, tid)
				if !a.Final.IsDisjoint(targetSet) {
					result.Final.Add(uint32(tid))
				}
				worklist = append(worklist, workItem{id: tid, set: targetSet})
			}

			post := result.Delta.MutableStatePost(top.id)
			post.InsertOrMergeOrdered(nfa.SymbolPost{Symbol: symbol, Targets: []nfa.State{tid}})

			if !existed && discover != nil && !discover(result, tid, targetSet) {
				return result, subsetMap, nil
			}
		}
	}
	return result, subsetMap, nil
}

// State is an alias kept local to this package's worklist entries for
// readability; it is identical to nfa.State.
type State = nfa.State

func isDeltaEmpty(a *nfa.NFA) bool {
	for q := nfa.State(0); q < a.NumStates(); q++ {
		if len(a.Delta.StatePostOf(q)) > 0 {
			return false
		}
	}
	return true
}

// Package product builds the synchronized product of two NFAs: the
// automaton accepting the intersection of their languages.
//
// The worklist shape, the dense/sparse pair-index switchover, and the
// separate ε-tail handling after the main synchronized-symbol pass all
// follow mata::nfa::algorithms::intersection_eps (original_source
// src/nfa/intersection.cc).
package product

import (
	"sort"

	"github.com/coregx/automaton/nfa"
)

// Pair identifies one state from each source automaton.
type Pair struct {
	L, R nfa.State
}

// PairMap records which product state realizes each reachable (L, R) pair
// discovered during construction.
type PairMap map[Pair]nfa.State

// Intersection computes the product NFA accepting L(lhs) ∩ L(rhs), treating
// nfa.EPSILON as the ε boundary.
func Intersection(lhs, rhs *nfa.NFA) (*nfa.NFA, PairMap) {
	return IntersectionEps(lhs, rhs, nfa.EPSILON)
}

// IntersectionEps is Intersection with an explicit ε boundary: any symbol
// at or above firstEpsilon is treated as silent rather than a real move.
//
// For every state pair (l, r) it creates, l is reachable in lhs from an
// initial state by the same prefix that makes r reachable in rhs; no
// product state is created for an unreachable pair.
func IntersectionEps(lhs, rhs *nfa.NFA, firstEpsilon nfa.Symbol) (*nfa.NFA, PairMap) {
	result := nfa.New()
	idx := newPairIndex(int(lhs.NumStates()), int(rhs.NumStates()))
	out := make(PairMap)

	type workItem struct{ l, r nfa.State }
	var worklist []workItem

	markFinal := func(l, r, id nfa.State) {
		if lhs.Final.Contains(uint32(l)) && rhs.Final.Contains(uint32(r)) {
			result.Final.Add(uint32(id))
		}
	}

	// ensure returns the product state for (l, r), creating it (and queuing
	// it for exploration) on first encounter.
	ensure := func(l, r nfa.State) nfa.State {
		if idx.contains(l, r) {
			return idx.get(l, r)
		}
		id := result.AddState()
		idx.insert(l, r, id)
		out[Pair{l, r}] = id
		worklist = append(worklist, workItem{l, r})
		markFinal(l, r, id)
		return id
	}

	for _, lRaw := range lhs.Initial.Elements() {
		for _, rRaw := range rhs.Initial.Elements() {
			l, r := nfa.State(lRaw), nfa.State(rRaw)
			id := result.AddState()
			idx.insert(l, r, id)
			out[Pair{l, r}] = id
			worklist = append(worklist, workItem{l, r})
			result.Initial.Add(uint32(id))
			markFinal(l, r, id)
		}
	}

	for len(worklist) > 0 {
		top := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		l, r := top.l, top.r

		lPost := lhs.Delta.StatePostOf(l)
		rPost := rhs.Delta.StatePostOf(r)
		prodID := idx.get(l, r)
		prodPost := result.Delta.MutableStatePost(prodID)

		it := nfa.NewSyncIterator(nfa.Universal)
		it.Push(lPost)
		it.Push(rPost)

		for it.Advance() {
			symbol := it.CurrentSymbol()
			if symbol >= firstEpsilon {
				break
			}
			var targets []nfa.State
			for _, lt := range it.Targets(0) {
				for _, rt := range it.Targets(1) {
					targets = append(targets, ensure(lt, rt))
				}
			}
			prodPost.InsertOrMergeOrdered(nfa.SymbolPost{Symbol: symbol, Targets: sortStates(targets)})
		}

		// ε-moves from lhs: (l, r) -ε-> (lt, r) for every lt lhs reaches by ε.
		if eps := lPost.FirstEpsilonIt(firstEpsilon); eps < len(lPost) {
			for _, sp := range lPost[eps:] {
				var targets []nfa.State
				for _, lt := range sp.Targets {
					targets = append(targets, ensure(lt, r))
				}
				prodPost.InsertOrMergeOrdered(nfa.SymbolPost{Symbol: sp.Symbol, Targets: sortStates(targets)})
			}
		}

		// ε-moves from rhs: (l, r) -ε-> (l, rt) for every rt rhs reaches by ε.
		if eps := rPost.FirstEpsilonIt(firstEpsilon); eps < len(rPost) {
			for _, sp := range rPost[eps:] {
				var targets []nfa.State
				for _, rt := range sp.Targets {
					targets = append(targets, ensure(l, rt))
				}
				prodPost.InsertOrMergeOrdered(nfa.SymbolPost{Symbol: sp.Symbol, Targets: sortStates(targets)})
			}
		}
	}

	return result, out
}

func sortStates(s []nfa.State) []nfa.State {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

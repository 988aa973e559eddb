package nfa

import (
	"sort"

	"github.com/coregx/automaton/internal/conv"
)

// SymbolPost pairs a symbol with its ordered, deduplicated target-state set.
// SymbolPost values within a StatePost are ordered by Symbol.
type SymbolPost struct {
	Symbol  Symbol
	Targets []State
}

// insertTarget inserts t into Targets, keeping it sorted and unique.
func (sp *SymbolPost) insertTarget(t State) {
	i := sort.Search(len(sp.Targets), func(i int) bool { return sp.Targets[i] >= t })
	if i < len(sp.Targets) && sp.Targets[i] == t {
		return
	}
	sp.Targets = append(sp.Targets, 0)
	copy(sp.Targets[i+1:], sp.Targets[i:])
	sp.Targets[i] = t
}

// mergeTargets folds other's targets into sp, preserving order and uniqueness.
func (sp *SymbolPost) mergeTargets(other []State) {
	for _, t := range other {
		sp.insertTarget(t)
	}
}

// StatePost is the sorted sequence of SymbolPost entries for one source
// state; at most one entry exists per symbol.
type StatePost []SymbolPost

// indexOf returns the index of the entry for the given symbol and whether one exists.
func (p StatePost) indexOf(sym Symbol) (int, bool) {
	i := sort.Search(len(p), func(i int) bool { return p[i].Symbol >= sym })
	if i < len(p) && p[i].Symbol == sym {
		return i, true
	}
	return i, false
}

// Find returns the SymbolPost entry for sym, if one exists.
func (p StatePost) Find(sym Symbol) (SymbolPost, bool) {
	i, ok := p.indexOf(sym)
	if !ok {
		return SymbolPost{}, false
	}
	return p[i], true
}

// FirstEpsilonIt returns the index of the first entry whose symbol is >=
// boundary (conventionally EPSILON), or len(p) if none exists. Entries from
// that index onward are treated as silent moves by the intersector.
func (p StatePost) FirstEpsilonIt(boundary Symbol) int {
	return sort.Search(len(p), func(i int) bool { return p[i].Symbol >= boundary })
}

// Delta maps source state to StatePost. delta[q] for an unknown q behaves as
// empty. Target sets are never empty once an Add has been performed for a
// given (source, symbol) pair.
type Delta []StatePost

// grow extends d so that index q is addressable.
func (d *Delta) grow(q State) {
	for State(conv.IntToUint32(len(*d))) <= q {
		*d = append(*d, nil)
	}
}

// Add inserts target r into the target-set at symbol a of state q, growing
// the per-state entry list as needed and preserving symbol order.
func (d *Delta) Add(q State, a Symbol, r State) {
	d.grow(q)
	post := (*d)[q]
	i, ok := post.indexOf(a)
	if ok {
		post[i].insertTarget(r)
		return
	}
	post = append(post, SymbolPost{})
	copy(post[i+1:], post[i:])
	post[i] = SymbolPost{Symbol: a, Targets: []State{r}}
	(*d)[q] = post
}

// StatePostOf returns the transition list for q; unknown q behaves as empty.
func (d Delta) StatePostOf(q State) StatePost {
	if int(q) >= len(d) {
		return nil
	}
	return d[q]
}

// MutableStatePost returns a pointer to q's StatePost slot for direct
// construction (used by the determinizer and intersector to append moves in
// a single pass rather than one Add call per move).
func (d *Delta) MutableStatePost(q State) *StatePost {
	d.grow(q)
	return &(*d)[q]
}

// InsertOrMergeOrdered appends sp to the StatePost, or merges its targets
// into an existing entry for the same symbol if the caller is inserting out
// of the normal ascending-symbol order (this happens when the intersector
// appends ε-moves after the main symbol loop has already advanced past
// them). It always leaves the StatePost sorted by symbol.
func (p *StatePost) InsertOrMergeOrdered(sp SymbolPost) {
	if len(*p) == 0 || sp.Symbol > (*p)[len(*p)-1].Symbol {
		*p = append(*p, sp)
		return
	}
	i, ok := p.indexOf(sp.Symbol)
	if ok {
		(*p)[i].mergeTargets(sp.Targets)
		return
	}
	*p = append(*p, SymbolPost{})
	copy((*p)[i+1:], (*p)[i:])
	(*p)[i] = sp
}

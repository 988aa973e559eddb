package learn

import "github.com/coregx/automaton/nfa"

// stateEntry pairs a table row promoted to a hypothesis state with the
// state ID it was assigned.
type stateEntry struct {
	row   *Row
	index nfa.State
}

// constructConjecture builds the hypothesis automaton from a closed and
// consistent table: one state per S row, then trimmed of any unreachable or
// dead states. For LStar the ε row is initial and a move on a goes to the S
// row whose T-vector equals that of the a-extension; for NLStar every S row
// covering the ε row is initial and a move on a goes to every S row covering
// the a-extension.
func constructConjecture(t *Table, alg Algorithm) *nfa.NFA {
	h := nfa.New()
	states := make([]stateEntry, 0, len(t.S))

	if alg == NLStar {
		epsT := t.S[0].T
		for _, row := range t.S {
			id := h.AddState()
			if covers(row.T, epsT) {
				h.Initial.Add(uint32(id))
			}
			if row.T[0] {
				h.Final.Add(uint32(id))
			}
			states = append(states, stateEntry{row, id})
		}
		for _, st := range states {
			for _, sym := range t.alphabet {
				target, ok := t.AllMap[wordKey(appendSymbol(st.row.Value, sym))]
				if !ok {
					continue
				}
				for _, st2 := range states {
					if covers(st2.row.T, target.T) {
						h.Delta.Add(st.index, sym, st2.index)
					}
				}
			}
		}
	} else {
		for _, row := range t.S {
			id := h.AddState()
			if len(row.Value) == 0 {
				h.Initial.Add(uint32(id))
			}
			if row.T[0] {
				h.Final.Add(uint32(id))
			}
			states = append(states, stateEntry{row, id})
		}
		for _, st := range states {
			for _, sym := range t.alphabet {
				target, ok := t.AllMap[wordKey(appendSymbol(st.row.Value, sym))]
				if !ok {
					continue
				}
				for _, st2 := range states {
					if boolVectorEqual(st2.row.T, target.T) {
						h.Delta.Add(st.index, sym, st2.index)
					}
				}
			}
		}
	}

	return h.Trim()
}

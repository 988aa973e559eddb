package learn

import (
	"sort"

	"github.com/coregx/automaton/nfa"
)

// ErrEmptyTeacher is returned when Learn is given a teacher automaton with
// no states.
var ErrEmptyTeacher = &nfa.Error{
	Kind:    nfa.InvalidInput,
	Message: "learn requires a non-empty teacher automaton",
}

// alphabetOf collects the sorted set of real (non-ε) symbols teacher's
// transitions use.
func alphabetOf(teacher *nfa.NFA) []nfa.Symbol {
	seen := make(map[nfa.Symbol]bool)
	for q := nfa.State(0); q < teacher.NumStates(); q++ {
		for _, sp := range teacher.Delta.StatePostOf(q) {
			if sp.Symbol >= nfa.EPSILON {
				continue
			}
			seen[sp.Symbol] = true
		}
	}
	out := make([]nfa.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Learn runs the observation-table driver loop against teacher as an
// oracle, producing a hypothesis equivalent to it: a DFA for LStar, an
// RFSA for NLStar. Each iteration either fixes a closure violation (row
// promotion), a consistency violation (new experiment column), or — once
// the table is closed and consistent — tests the resulting hypothesis
// against the teacher and either returns it or folds a counter-example
// back into the table.
func Learn(teacher *nfa.NFA, alg Algorithm) (*nfa.NFA, error) {
	if teacher.NumStates() == 0 {
		return nil, ErrEmptyTeacher
	}
	alphabet := alphabetOf(teacher)
	table := NewTable(teacher, alphabet, alg)

	for {
		res := table.canBeConstructed()
		if res.consistent && res.closed {
			hypothesis := constructConjecture(table, alg)
			equivalent, cex, err := EquivalenceQuery(teacher, hypothesis, alphabet)
			if err != nil {
				return nil, err
			}
			if equivalent {
				return hypothesis, nil
			}
			table.updateAfterCex(cex)
			continue
		}
		if !res.consistent {
			table.updateConsistency(res.c)
		}
		if !res.closed {
			table.stateNotClosed(res.unclosedWord)
		}
	}
}

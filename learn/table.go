package learn

import "github.com/coregx/automaton/nfa"

// Algorithm selects which property set the table enforces: L* (DFA
// closure/consistency) or NL* (RFSA closure/consistency, with covering
// relations maintained alongside).
type Algorithm int

const (
	// LStar produces a DFA hypothesis.
	LStar Algorithm = iota
	// NLStar produces an RFSA hypothesis, generally smaller than the
	// minimal DFA when states share future sets.
	NLStar
)

// checkResult reports whether the table is ready for hypothesis
// construction, and if not, the evidence needed to fix the failing
// property: a new experiment word c for a consistency violation, or the
// access word of the row that was just promoted for a closure violation.
type checkResult struct {
	consistent   bool
	closed       bool
	c            nfa.Word
	unclosedWord nfa.Word
}

// Table is an observation table under construction: access-word rows
// ("S", upper/prefix part, and "Splus", lower/one-symbol-extension part),
// the experiment suffixes ("E") that label its columns, and a lookup by
// access word over every row ever created.
type Table struct {
	S      []*Row
	Splus  []*Row
	All    []*Row
	E      []nfa.Word
	AllMap map[string]*Row

	alg      Algorithm
	alphabet []nfa.Symbol
	teacher  *nfa.NFA
}

// NewTable builds the initial table: one row for the empty access word and
// one for every single-symbol word, with E = [ε]. NL* additionally seeds
// the ε-row's covering relation.
func NewTable(teacher *nfa.NFA, alphabet []nfa.Symbol, alg Algorithm) *Table {
	t := &Table{
		AllMap:   make(map[string]*Row),
		alg:      alg,
		alphabet: alphabet,
		teacher:  teacher,
	}
	t.E = append(t.E, nfa.Word{})

	epsRow := &Row{T: []bool{MembershipQuery(teacher, nfa.Word{})}, Value: nfa.Word{}, idx: len(t.All)}
	t.All = append(t.All, epsRow)
	t.S = append(t.S, epsRow)
	t.AllMap[wordKey(nfa.Word{})] = epsRow

	for _, sym := range alphabet {
		w := nfa.Word{sym}
		row := &Row{T: []bool{MembershipQuery(teacher, w)}, Value: w, idx: len(t.All)}
		t.All = append(t.All, row)
		t.Splus = append(t.Splus, row)
		t.AllMap[wordKey(w)] = row
	}

	if alg == NLStar {
		t.getCovering(epsRow)
	}
	return t
}

// getT returns the membership query for value concatenated with e.
func (t *Table) getT(e, value nfa.Word) bool {
	return MembershipQuery(t.teacher, appendWord(value, e))
}

// rfsaClosure checks that every Splus row's T-vector equals the join of
// all S rows that cover it. On the first violation it promotes the
// offending row to S, rebuilds its own covering list, refreshes the
// covering lists of S rows that may now cover it, and reports the failure.
func (t *Table) rfsaClosure() (bool, nfa.Word) {
	for i, row := range t.Splus {
		var j []bool
		for _, prime := range t.S {
			if covers(prime.T, row.T) {
				j = join(j, prime.T)
			}
		}
		if !boolVectorEqual(j, row.T) {
			t.S = append(t.S, row)
			t.getCovering(row)
			t.updateCoveringNewRow(row)
			t.Splus = append(t.Splus[:i], t.Splus[i+1:]...)
			return false, row.Value
		}
	}
	return true, nil
}

// dfaClosure checks that every Splus row's T-vector also appears among S
// rows. On the first violation it promotes the offending row to S.
func (t *Table) dfaClosure() (bool, nfa.Word) {
	seen := make(map[string]bool, len(t.S))
	for _, row := range t.S {
		seen[boolKey(row.T)] = true
	}
	for i, row := range t.Splus {
		if !seen[boolKey(row.T)] {
			t.S = append(t.S, row)
			t.Splus = append(t.Splus[:i], t.Splus[i+1:]...)
			return false, row.Value
		}
	}
	return true, nil
}

// rfsaConsistency checks that whenever S-row x covers S-row y, the
// a-extension of x still covers the a-extension of y for every symbol a.
// A witness c = a·E[i] is returned at the first violating column.
func (t *Table) rfsaConsistency() (bool, nfa.Word) {
	for _, row := range t.S {
		for _, covIdx := range row.Covering {
			cov := t.All[covIdx]
			for _, sym := range t.alphabet {
				r1, ok1 := t.AllMap[wordKey(appendSymbol(row.Value, sym))]
				r2, ok2 := t.AllMap[wordKey(appendSymbol(cov.Value, sym))]
				if !ok1 || !ok2 {
					continue
				}
				for i := range r1.T {
					if r1.T[i] && !r2.T[i] {
						return false, appendWord(nfa.Word{sym}, t.E[i])
					}
				}
			}
		}
	}
	return true, nil
}

// dfaConsistency checks that S-rows sharing a T-vector still share a
// T-vector once extended by any symbol. A witness c = a·E[i] is returned
// at the first violating column.
func (t *Table) dfaConsistency() (bool, nfa.Word) {
	groups := make(map[string][]*Row)
	for _, row := range t.S {
		k := boolKey(row.T)
		groups[k] = append(groups[k], row)
	}
	for _, rows := range groups {
		if len(rows) < 2 {
			continue
		}
		for _, sym := range t.alphabet {
			var exts []*Row
			for _, row := range rows {
				if r, ok := t.AllMap[wordKey(appendSymbol(row.Value, sym))]; ok {
					exts = append(exts, r)
				}
			}
			if len(exts) < 2 {
				continue
			}
			for e := range t.E {
				want := exts[0].T[e]
				for _, r := range exts[1:] {
					if r.T[e] != want {
						return false, appendWord(nfa.Word{sym}, t.E[e])
					}
				}
			}
		}
	}
	return true, nil
}

// getCovering populates row.Covering with every other S-row r that row
// covers (row.T implies r.T).
func (t *Table) getCovering(row *Row) {
	for _, r := range t.S {
		if r == row {
			continue
		}
		if covers(row.T, r.T) {
			row.Covering = append(row.Covering, r.idx)
		}
	}
}

// updateCoveringNewE drops covering entries invalidated by the column just
// appended: if row's new column is true but a row it covers has it false,
// the covering relation no longer holds.
func (t *Table) updateCoveringNewE() {
	for _, row := range t.S {
		if !row.T[len(row.T)-1] {
			continue
		}
		kept := row.Covering[:0]
		for _, idx := range row.Covering {
			cov := t.All[idx]
			if cov.T[len(cov.T)-1] {
				kept = append(kept, idx)
			}
		}
		row.Covering = kept
	}
}

// updateCoveringNewRow checks whether any existing S-row now covers the
// row just promoted, and if so records the relation.
func (t *Table) updateCoveringNewRow(row *Row) {
	for _, r := range t.S {
		if r == row {
			continue
		}
		if covers(r.T, row.T) {
			r.Covering = append(r.Covering, row.idx)
		}
	}
}

func (t *Table) addToSplus(row *Row) {
	row.idx = len(t.All)
	t.Splus = append(t.Splus, row)
	t.All = append(t.All, row)
	t.AllMap[wordKey(row.Value)] = row
}

// stateNotClosed adds a fresh Splus row for every one-symbol extension of
// word (the access word of a row just promoted to S), filled in via
// membership queries against every current experiment.
func (t *Table) stateNotClosed(word nfa.Word) {
	for _, sym := range t.alphabet {
		val := appendSymbol(word, sym)
		row := &Row{Value: val}
		for _, e := range t.E {
			row.T = append(row.T, t.getT(e, val))
		}
		t.addToSplus(row)
	}
}

// updateConsistency appends c as a new experiment column and fills it in
// for every row ever created via fresh membership queries.
func (t *Table) updateConsistency(c nfa.Word) {
	t.E = append(t.E, c)
	for _, row := range t.All {
		row.T = append(row.T, t.getT(c, row.Value))
	}
	if t.alg == NLStar {
		t.updateCoveringNewE()
	}
}

// allSuffixes returns every non-empty suffix of cex, deduplicated.
func allSuffixes(cex nfa.Word) []nfa.Word {
	seen := make(map[string]bool, len(cex))
	var out []nfa.Word
	for i := range cex {
		suf := append(nfa.Word(nil), cex[i:]...)
		k := wordKey(suf)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, suf)
	}
	return out
}

// updateAfterCex adds every suffix of cex not already in E as a new
// experiment column.
func (t *Table) updateAfterCex(cex nfa.Word) {
	known := make(map[string]bool, len(t.E))
	for _, e := range t.E {
		known[wordKey(e)] = true
	}
	for _, suf := range allSuffixes(cex) {
		k := wordKey(suf)
		if known[k] {
			continue
		}
		known[k] = true
		t.updateConsistency(suf)
	}
}

// canBeConstructed runs the algorithm-appropriate closure and consistency
// checks. Closure failures are fixed as a side effect (the offending row
// is promoted); the caller still must call stateNotClosed with the
// returned word to add its one-symbol extensions, and updateConsistency
// with c on a consistency failure.
func (t *Table) canBeConstructed() checkResult {
	var res checkResult
	if t.alg == NLStar {
		res.consistent, res.c = t.rfsaConsistency()
		res.closed, res.unclosedWord = t.rfsaClosure()
	} else {
		res.consistent, res.c = t.dfaConsistency()
		res.closed, res.unclosedWord = t.dfaClosure()
	}
	return res
}

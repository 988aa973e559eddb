// Package learn implements active automata learning via an observation
// table: L* (produces a DFA) and NL* (produces an RFSA, a residual
// finite-state automaton with fewer states than the minimal DFA for
// languages where states share future sets).
//
// The table shape (S/Splus/all/all_map/E), the join/covers operators, the
// closure/consistency checks and the driver loop all follow OT and
// learning() in original_source's include/mata/nfa/learning.hh and
// src/nfa/learning.cc.
package learn

import "github.com/coregx/automaton/nfa"

// Row is one entry of the observation table: the membership-query results
// for Value concatenated with every current experiment suffix, plus (NL*
// only) the set of S-rows this row covers. Covering holds indices into
// Table.All rather than row pointers, per the table's no-ownership-graph
// convention — a row never needs to outlive its slot in All.
type Row struct {
	T        []bool
	Value    nfa.Word
	Covering []int
	idx      int
}

// wordKey encodes a Word as a comparable map key; nfa.Word's backing slice
// can't be used as a Go map key directly.
func wordKey(w nfa.Word) string {
	b := make([]byte, 4*len(w))
	for i, s := range w {
		b[4*i] = byte(s >> 24)
		b[4*i+1] = byte(s >> 16)
		b[4*i+2] = byte(s >> 8)
		b[4*i+3] = byte(s)
	}
	return string(b)
}

// boolKey encodes a T-vector as a comparable map key.
func boolKey(t []bool) string {
	b := make([]byte, len(t))
	for i, v := range t {
		if v {
			b[i] = 1
		}
	}
	return string(b)
}

func boolVectorEqual(a, b []bool) bool {
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

func appendSymbol(w nfa.Word, s nfa.Symbol) nfa.Word {
	out := make(nfa.Word, len(w)+1)
	copy(out, w)
	out[len(w)] = s
	return out
}

func appendWord(a, b nfa.Word) nfa.Word {
	out := make(nfa.Word, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// join is the component-wise OR of two T-vectors; an empty r1 acts as the
// join identity (matches a not-yet-started accumulation).
func join(r1, r2 []bool) []bool {
	if len(r1) == 0 {
		out := make([]bool, len(r2))
		copy(out, r2)
		return out
	}
	out := make([]bool, len(r1))
	for i := range r1 {
		out[i] = r1[i] || r2[i]
	}
	return out
}

// covers reports whether r1 implies r2 column-wise: wherever r1 is true, r2
// must also be true.
func covers(r1, r2 []bool) bool {
	for i := range r1 {
		if r1[i] && !r2[i] {
			return false
		}
	}
	return true
}

package determinize

import (
	"errors"
	"testing"

	"github.com/coregx/automaton/internal/stateset"
	"github.com/coregx/automaton/nfa"
)

// buildD1 constructs the D1 scenario from spec.md §8:
// states {0,1,2}, initial={0}, final={2}, δ(0,a)=2, δ(0,a)=1, δ(1,b)=2.
func buildD1() *nfa.NFA {
	a := nfa.New()
	a.AddState()
	a.AddState()
	a.AddState()
	a.Initial.Add(0)
	a.Final.Add(2)
	a.Delta.Add(0, 'a', 2)
	a.Delta.Add(0, 'a', 1)
	a.Delta.Add(1, 'b', 2)
	return a
}

func acceptsSameLanguage(t *testing.T, d *nfa.NFA, words []nfa.Word, orig *nfa.NFA) {
	t.Helper()
	for _, w := range words {
		got := d.IsInLanguage(w)
		want := orig.IsInLanguage(w)
		if got != want {
			t.Errorf("IsInLanguage(%v) on determinized = %v, want %v (orig)", w, got, want)
		}
	}
}

func testWords() []nfa.Word {
	return []nfa.Word{
		{},
		{'a'},
		{'b'},
		{'a', 'b'},
		{'a', 'a'},
		{'a', 'b', 'b'},
	}
}

func TestDeterminizeD1(t *testing.T) {
	for _, repr := range []Repr{ReprOrd, ReprBit} {
		a := buildD1()
		d, _, err := Determinize(a, repr, nil, nil)
		if err != nil {
			t.Fatalf("repr=%v: Determinize returned error: %v", repr, err)
		}
		acceptsSameLanguage(t, d, testWords(), a)
		assertDeterministic(t, d)
	}
}

func TestDeterminizeD2EmptyDelta(t *testing.T) {
	a := nfa.New()
	a.AddState()
	a.AddState()
	a.Initial.Add(0)
	a.Initial.Add(1)
	a.Final.Add(1)

	d, _, err := Determinize(a, ReprOrd, nil, nil)
	if err != nil {
		t.Fatalf("Determinize returned error: %v", err)
	}
	if d.NumStates() != 1 {
		t.Fatalf("NumStates() = %d, want 1 (single merged initial macrostate)", d.NumStates())
	}
	acceptsSameLanguage(t, d, testWords(), a)
}

func TestDeterminizeReprAgreement(t *testing.T) {
	a := buildD1()
	dOrd, _, errOrd := Determinize(a, ReprOrd, nil, nil)
	dBit, _, errBit := Determinize(a, ReprBit, nil, nil)
	if errOrd != nil || errBit != nil {
		t.Fatalf("unexpected errors: ord=%v bit=%v", errOrd, errBit)
	}
	if dOrd.NumStates() != dBit.NumStates() {
		t.Fatalf("state counts differ: ord=%d bit=%d", dOrd.NumStates(), dBit.NumStates())
	}
	for _, w := range testWords() {
		if dOrd.IsInLanguage(w) != dBit.IsInLanguage(w) {
			t.Errorf("representations disagree on word %v", w)
		}
	}
}

func TestDeterminizeRejectsEpsilon(t *testing.T) {
	a := nfa.New()
	a.AddState()
	a.AddState()
	a.Initial.Add(0)
	a.Final.Add(1)
	a.Delta.Add(0, nfa.EPSILON, 1)

	_, _, err := Determinize(a, ReprOrd, nil, nil)
	if err == nil {
		t.Fatal("expected ErrEpsilonInDeterminize, got nil")
	}
	if !errors.Is(err, ErrEpsilonInDeterminize) {
		t.Errorf("error = %v, want ErrEpsilonInDeterminize", err)
	}
}

func TestDeterminizeDiscoverHaltsEarly(t *testing.T) {
	a := buildD1()
	seen := 0
	d, _, err := Determinize(a, ReprOrd, nil, func(result *nfa.NFA, newState nfa.State, macrostate stateset.Set) bool {
		seen++
		return seen < 2
	})
	if err != nil {
		t.Fatalf("Determinize returned error: %v", err)
	}
	if seen != 2 {
		t.Fatalf("discover called %d times, want exactly 2 (halts on the second)", seen)
	}
	if d.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2 (construction halted after discovering 2nd state)", d.NumStates())
	}
}

func TestDeterminizeSubsetMapSuppliedByCaller(t *testing.T) {
	a := buildD1()
	m := NewMacrostateMap()
	d, outMap, err := Determinize(a, ReprOrd, m, nil)
	if err != nil {
		t.Fatalf("Determinize returned error: %v", err)
	}
	if outMap != m {
		t.Fatal("Determinize should return the same map instance passed in")
	}
	if outMap.Len() != int(d.NumStates()) {
		t.Errorf("subsetMap.Len() = %d, want %d (one entry per result state)", outMap.Len(), d.NumStates())
	}
}

func assertDeterministic(t *testing.T, a *nfa.NFA) {
	t.Helper()
	for q := nfa.State(0); q < a.NumStates(); q++ {
		seen := map[nfa.Symbol]bool{}
		for _, sp := range a.Delta.StatePostOf(q) {
			if seen[sp.Symbol] {
				t.Errorf("state %d has duplicate SymbolPost entries for symbol %d", q, sp.Symbol)
			}
			seen[sp.Symbol] = true
			if len(sp.Targets) != 1 {
				t.Errorf("state %d symbol %d has %d targets, want exactly 1 for a deterministic result", q, sp.Symbol, len(sp.Targets))
			}
		}
	}
}

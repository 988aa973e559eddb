package automaton

import (
	"errors"
	"strings"
	"testing"
)

// buildAStar returns an NFA over {'a'} accepting a*.
func buildAStar() *NFA {
	a := New()
	s0 := a.AddState()
	a.Initial.Add(uint32(s0))
	a.Final.Add(uint32(s0))
	a.Delta.Add(s0, 'a', s0)
	return a
}

// buildThirdFromLastA returns an NFA over {'a','b'} accepting words whose
// third-to-last symbol is 'a'.
func buildThirdFromLastA() *NFA {
	a := New()
	q0, q1, q2, q3 := a.AddState(), a.AddState(), a.AddState(), a.AddState()
	a.Initial.Add(uint32(q0))
	a.Final.Add(uint32(q3))
	for _, s := range []Symbol{'a', 'b'} {
		a.Delta.Add(q0, s, q0)
	}
	a.Delta.Add(q0, 'a', q1)
	a.Delta.Add(q1, 'a', q2)
	a.Delta.Add(q1, 'b', q2)
	a.Delta.Add(q2, 'a', q3)
	a.Delta.Add(q2, 'b', q3)
	return a
}

func TestDeterminizeMissingAlgorithm(t *testing.T) {
	a := buildAStar()
	_, _, err := Determinize(a, ParamMap{}, nil, nil)
	if !errors.Is(err, ErrMissingAlgorithm) {
		t.Fatalf("got %v, want ErrMissingAlgorithm", err)
	}
}

func TestDeterminizeUnknownAlgorithm(t *testing.T) {
	a := buildAStar()
	_, _, err := Determinize(a, ParamMap{"algorithm": "bogus"}, nil, nil)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("got %v, want ErrUnknownAlgorithm", err)
	}
}

func TestDeterminizeClassicAndBoostAgree(t *testing.T) {
	a := buildThirdFromLastA()
	dClassic, _, err := Determinize(a, ParamMap{"algorithm": "classic"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	dBoost, _, err := Determinize(a, ParamMap{"algorithm": "boost"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range allWordsUpTo(3) {
		if MembershipQuery(dClassic, w) != MembershipQuery(dBoost, w) {
			t.Fatalf("representations disagree on %v", w)
		}
	}
}

func TestIntersectionOfAStarWithItself(t *testing.T) {
	a := buildAStar()
	prod, pairs := Intersection(a, a)
	if !MembershipQuery(prod, Word{'a', 'a', 'a'}) {
		t.Fatal("expected aaa in the intersection of a* with itself")
	}
	if len(pairs) == 0 {
		t.Fatal("expected at least one reachable pair recorded")
	}
}

func TestIntersectionEpsBoundary(t *testing.T) {
	a := buildAStar()
	prod, _ := IntersectionEps(a, a, EPSILON)
	if !MembershipQuery(prod, Word{}) {
		t.Fatal("expected empty word in the intersection")
	}
}

func TestLearnRejectsEmptyTeacher(t *testing.T) {
	_, err := Learn(New(), ParamMap{"algorithm": "lstar"})
	if !errors.Is(err, ErrEmptyTeacher) {
		t.Fatalf("got %v, want ErrEmptyTeacher", err)
	}
}

func TestLearnMissingAlgorithm(t *testing.T) {
	_, err := Learn(buildAStar(), ParamMap{})
	if !errors.Is(err, ErrMissingAlgorithm) {
		t.Fatalf("got %v, want ErrMissingAlgorithm", err)
	}
}

func TestLearnLStarEquivalentToTeacher(t *testing.T) {
	teacher := buildThirdFromLastA()
	h, err := Learn(teacher, ParamMap{"algorithm": "lstar"})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range allWordsUpTo(6) {
		if MembershipQuery(teacher, w) != MembershipQuery(h, w) {
			t.Fatalf("hypothesis disagrees with teacher on %v", w)
		}
	}
}

func TestEquivalenceQueryNaive(t *testing.T) {
	a := buildAStar()
	equivalent, _, err := EquivalenceQuery(a, a, []Symbol{'a'}, ParamMap{"algorithm": "naive"})
	if err != nil {
		t.Fatal(err)
	}
	if !equivalent {
		t.Fatal("expected a* equivalent to itself")
	}
}

func TestEquivalenceQueryUnknownAlgorithm(t *testing.T) {
	a := buildAStar()
	_, _, err := EquivalenceQuery(a, a, []Symbol{'a'}, ParamMap{"algorithm": "antichains"})
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("got %v, want ErrUnknownAlgorithm", err)
	}
}

func TestDumpFormat(t *testing.T) {
	a := buildAStar()
	dump := a.String()
	if !strings.HasPrefix(dump, "@NFA-explicit\n%Alphabet-auto\n%Initial 0\n%Final   0\n") {
		t.Fatalf("unexpected dump header: %q", dump)
	}
	if !strings.Contains(dump, "0 97 0\n") {
		t.Fatalf("expected a self-loop line, got: %q", dump)
	}
}

// allWordsUpTo enumerates every word over {'a','b'} of length at most n.
func allWordsUpTo(n int) []Word {
	var out []Word
	out = append(out, Word{})
	frontier := []Word{{}}
	for i := 0; i < n; i++ {
		var next []Word
		for _, w := range frontier {
			for _, s := range []Symbol{'a', 'b'} {
				nw := append(append(Word{}, w...), s)
				next = append(next, nw)
				out = append(out, nw)
			}
		}
		frontier = next
	}
	return out
}

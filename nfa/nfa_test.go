package nfa

import "testing"

// buildD1 constructs the D1 scenario from spec.md §8:
// states {0,1,2}, initial={0}, final={2}, δ(0,a)=2, δ(0,a)=1, δ(1,b)=2.
func buildD1() *NFA {
	a := New()
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

func TestIsInLanguage(t *testing.T) {
	a := buildD1()
	tests := []struct {
		word Word
		want bool
	}{
		{Word{'a'}, true},          // 0 -a-> 2 (final)
		{Word{'a', 'b'}, true},     // 0 -a-> 1 -b-> 2
		{Word{'b'}, false},
		{Word{}, false},
		{Word{'a', 'a'}, false},
	}
	for _, tt := range tests {
		if got := a.IsInLanguage(tt.word); got != tt.want {
			t.Errorf("IsInLanguage(%v) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestIsInLanguageWithEpsilon(t *testing.T) {
	a := New()
	a.AddState()
	a.AddState()
	a.Initial.Add(0)
	a.Final.Add(1)
	a.Delta.Add(0, EPSILON, 1)
	if !a.IsInLanguage(Word{}) {
		t.Error("epsilon-only path to a final state should accept the empty word")
	}
}

func TestEmptyDeltaNFA(t *testing.T) {
	// D2 scenario: empty-delta NFA with initial={0,1}, final={1}.
	a := New()
	a.AddState()
	a.AddState()
	a.Initial.Add(0)
	a.Initial.Add(1)
	a.Final.Add(1)
	if !a.IsInLanguage(Word{}) {
		t.Error("initial states intersecting final should accept empty word")
	}
	if a.IsInLanguage(Word{'a'}) {
		t.Error("no transitions: any non-empty word should be rejected")
	}
}

func TestTrimRemovesUnreachableAndDeadStates(t *testing.T) {
	a := New()
	s0 := a.AddState() // reachable, leads to final
	s1 := a.AddState() // final
	s2 := a.AddState() // unreachable from initial
	s3 := a.AddState() // reachable from initial but dead (no path to final)
	a.Initial.Add(uint32(s0))
	a.Final.Add(uint32(s1))
	a.Delta.Add(s0, 'a', s1)
	a.Delta.Add(s0, 'b', s3)
	_ = s2

	trimmed := a.Trim()
	if trimmed.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2", trimmed.NumStates())
	}
	if !trimmed.IsInLanguage(Word{'a'}) {
		t.Error("trimmed automaton should still accept 'a'")
	}
}

func TestStringDumpFormat(t *testing.T) {
	a := buildD1()
	got := a.String()
	want := "@NFA-explicit\n%Alphabet-auto\n%Initial 0\n%Final   2\n0 97 1\n0 97 2\n1 98 2\n"
	if got != want {
		t.Fatalf("dump =\n%s\nwant\n%s", got, want)
	}
}

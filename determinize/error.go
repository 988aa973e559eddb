package determinize

import "github.com/coregx/automaton/nfa"

// ErrEpsilonInDeterminize is returned when an ε-symbol appears during subset
// construction. Determinize expects its input to already be ε-free; callers
// must ε-eliminate first (§4.2, §7).
var ErrEpsilonInDeterminize = &nfa.Error{
	Kind:    nfa.Unsupported,
	Message: "epsilon transition encountered by a pure determinizer; eliminate epsilons first",
}

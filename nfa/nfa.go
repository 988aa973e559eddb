// Package nfa defines the core data model shared by the determinizer, the
// intersector and the learner: states, symbols, words, transition storage
// (Delta/StatePost/SymbolPost) and the NFA type itself.
//
// A State is a dense, non-negative identifier in [0, NumStates()). A Symbol
// is a non-negative integer; the reserved value EPSILON denotes the silent
// (ε) move. States are never removed from an NFA — Trim renumbers the live
// ones into a fresh automaton instead.
//
// Basic usage:
//
//	a := nfa.New()
//	s0 := a.AddState()
//	s1 := a.AddState()
//	a.Initial.Add(uint32(s0))
//	a.Final.Add(uint32(s1))
//	a.Delta.Add(s0, 'a', s1)
//	a.IsInLanguage(nfa.Word{'a'}) // true
package nfa

import (
	"fmt"
	"math"
	"strings"

	"github.com/coregx/automaton/internal/stateset"
)

// State uniquely identifies an NFA state. States are dense in [0, N).
type State uint32

// Symbol is a single input symbol. EPSILON is the reserved silent move,
// conventionally the maximum representable symbol value.
type Symbol uint32

// EPSILON denotes the silent (ε) transition. Any symbol >= a caller-supplied
// boundary is also treated as ε by the intersector (see IntersectionEps).
const EPSILON Symbol = math.MaxUint32

// Word is a finite ordered sequence of symbols. The empty word is valid.
type Word []Symbol

// NFA is a tuple (Delta, Initial, Final): a nondeterministic finite
// automaton. Every state referenced by Initial, Final or Delta is less than
// NumStates(). NFA values are not safe for concurrent mutation.
type NFA struct {
	Delta     Delta
	Initial   *stateset.Ord
	Final     *stateset.Ord
	numStates State
}

// New returns an empty NFA with no states.
func New() *NFA {
	return &NFA{
		Delta:   Delta{},
		Initial: stateset.NewOrd(),
		Final:   stateset.NewOrd(),
	}
}

// AddState allocates and returns a fresh state, advancing the state counter.
func (a *NFA) AddState() State {
	id := a.numStates
	a.numStates++
	return id
}

// NumStates returns the number of states allocated by AddState. It is not
// recomputed from Initial, Final or Delta: a state that is allocated but never
// referenced still counts, and a state referenced in Delta without a matching
// AddState call is not counted.
func (a *NFA) NumStates() State {
	return a.numStates
}

// ensureState grows the state counter so that s is a valid state, without
// allocating states in between a caller-visible way (mirrors Delta's
// grow-on-add behavior for out-of-order construction).
func (a *NFA) ensureState(s State) {
	if s >= a.numStates {
		a.numStates = s + 1
	}
}

// IsInLanguage runs the NFA on w via epsilon-closure simulation, independent
// of determinization. It is the direct implementation of the
// membership_query(A, w) operation.
func (a *NFA) IsInLanguage(w Word) bool {
	current := epsilonClosure(a.Delta, initialSet(a))
	for _, sym := range w {
		if sym == EPSILON {
			continue
		}
		next := stateset.NewBit()
		for _, q := range current.Elements() {
			post := a.Delta.StatePostOf(State(q))
			if sp, ok := post.Find(sym); ok {
				for _, t := range sp.Targets {
					next.Add(uint32(t))
				}
			}
		}
		current = epsilonClosure(a.Delta, next)
		if current.IsEmpty() {
			return false
		}
	}
	return !current.IsDisjoint(finalSet(a))
}

func initialSet(a *NFA) stateset.Set {
	return a.Initial
}

func finalSet(a *NFA) stateset.Set {
	return a.Final
}

// epsilonClosure returns every state reachable from states via zero or more
// EPSILON transitions, via an explicit worklist (LIFO, per the determinism
// requirements of §5).
func epsilonClosure(d Delta, states stateset.Set) stateset.Set {
	closure := stateset.NewBit()
	stack := make([]State, 0, states.Len())
	for _, v := range states.Elements() {
		closure.Add(v)
		stack = append(stack, State(v))
	}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		post := d.StatePostOf(q)
		if sp, ok := post.Find(EPSILON); ok {
			for _, t := range sp.Targets {
				if !closure.Contains(uint32(t)) {
					closure.Add(uint32(t))
					stack = append(stack, t)
				}
			}
		}
	}
	return closure
}

// Trim renumbers live states into a fresh NFA, dropping states that are
// either unreachable from Initial or from which no Final state is
// reachable. State IDs are reassigned in ascending order of the original ID.
func (a *NFA) Trim() *NFA {
	reachable := a.reachableFromInitial()
	coreachable := a.reachableToFinal()

	live := make([]State, 0)
	for s := State(0); s < a.numStates; s++ {
		if reachable.Contains(uint32(s)) && coreachable.Contains(uint32(s)) {
			live = append(live, s)
		}
	}

	remap := make(map[State]State, len(live))
	out := New()
	for _, s := range live {
		remap[s] = out.AddState()
	}
	for _, s := range a.Initial.Elements() {
		if ns, ok := remap[State(s)]; ok {
			out.Initial.Add(uint32(ns))
		}
	}
	for _, s := range a.Final.Elements() {
		if ns, ok := remap[State(s)]; ok {
			out.Final.Add(uint32(ns))
		}
	}
	for _, s := range live {
		post := a.Delta.StatePostOf(s)
		for _, sp := range post {
			var targets []State
			for _, t := range sp.Targets {
				if nt, ok := remap[t]; ok {
					targets = append(targets, nt)
				}
			}
			for _, t := range targets {
				out.Delta.Add(remap[s], sp.Symbol, t)
			}
		}
	}
	return out
}

func (a *NFA) reachableFromInitial() stateset.Set {
	seen := stateset.NewBit()
	stack := make([]State, 0)
	for _, v := range a.Initial.Elements() {
		seen.Add(v)
		stack = append(stack, State(v))
	}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, sp := range a.Delta.StatePostOf(q) {
			for _, t := range sp.Targets {
				if !seen.Contains(uint32(t)) {
					seen.Add(uint32(t))
					stack = append(stack, t)
				}
			}
		}
	}
	return seen
}

func (a *NFA) reachableToFinal() stateset.Set {
	// Build the reverse adjacency and flood from Final.
	rev := make(map[State][]State)
	for q := State(0); q < a.numStates; q++ {
		for _, sp := range a.Delta.StatePostOf(q) {
			for _, t := range sp.Targets {
				rev[t] = append(rev[t], q)
			}
		}
	}
	seen := stateset.NewBit()
	stack := make([]State, 0)
	for _, v := range a.Final.Elements() {
		seen.Add(v)
		stack = append(stack, State(v))
	}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[q] {
			if !seen.Contains(uint32(p)) {
				seen.Add(uint32(p))
				stack = append(stack, p)
			}
		}
	}
	return seen
}

// String implements the textual dump format of §6: deterministic in source
// state, then symbol, then target order.
func (a *NFA) String() string {
	var b strings.Builder
	b.WriteString("@NFA-explicit\n%Alphabet-auto\n%Initial ")
	writeSpaceSeparated(&b, a.Initial.Elements())
	b.WriteString("\n%Final   ")
	writeSpaceSeparated(&b, a.Final.Elements())
	b.WriteString("\n")
	for q := State(0); q < a.numStates; q++ {
		for _, sp := range a.Delta.StatePostOf(q) {
			for _, t := range sp.Targets {
				fmt.Fprintf(&b, "%d %d %d\n", q, sp.Symbol, t)
			}
		}
	}
	return b.String()
}

func writeSpaceSeparated(b *strings.Builder, vals []uint32) {
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%d", v)
	}
}

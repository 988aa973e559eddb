package automaton

import (
	"github.com/coregx/automaton/determinize"
	"github.com/coregx/automaton/learn"
	"github.com/coregx/automaton/nfa"
)

// Error is the error type returned by every exported operation in this
// package; it is an alias for nfa.Error so callers never need to import
// the nfa package just to inspect a Kind.
type Error = nfa.Error

// Kind classifies an Error; see nfa.Kind.
type Kind = nfa.Kind

const (
	InvalidInput = nfa.InvalidInput
	Unsupported  = nfa.Unsupported
	Internal     = nfa.Internal
)

var (
	// ErrMissingAlgorithm is returned when a ParamMap lacks the required
	// "algorithm" key.
	ErrMissingAlgorithm = &Error{
		Kind:    InvalidInput,
		Message: `params requires setting the "algorithm" key`,
	}

	// ErrUnknownAlgorithm is returned when the "algorithm" key's value is
	// not recognized for the operation being configured.
	ErrUnknownAlgorithm = &Error{
		Kind:    InvalidInput,
		Message: `params has an unknown value for the "algorithm" key`,
	}

	// ErrEmptyTeacher is returned by Learn when given a teacher automaton
	// with no states.
	ErrEmptyTeacher = learn.ErrEmptyTeacher

	// ErrEpsilonInDeterminize is returned by Determinize when an
	// ε-transition is encountered; Determinize expects its input already
	// ε-free.
	ErrEpsilonInDeterminize = determinize.ErrEpsilonInDeterminize
)

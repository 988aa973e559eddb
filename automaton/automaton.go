// Package automaton is the façade over the core packages: it exposes the
// six operations of the external-interfaces surface as free functions,
// wiring ParamMap-selected algorithms into determinize, product and learn.
package automaton

import (
	"github.com/coregx/automaton/determinize"
	"github.com/coregx/automaton/learn"
	"github.com/coregx/automaton/nfa"
	"github.com/coregx/automaton/product"
)

// Re-exported types so callers of this package never need to import the
// sub-packages directly for everyday use.
type (
	NFA    = nfa.NFA
	Word   = nfa.Word
	Symbol = nfa.Symbol
	State  = nfa.State
)

// New returns an empty NFA with no states.
func New() *NFA {
	return nfa.New()
}

// EPSILON is the reserved silent-move symbol; it equals the maximum
// representable symbol value.
const EPSILON = nfa.EPSILON

// MacrostateMap records the macrostate-to-state assignment a Determinize
// call discovers (or was seeded with).
type MacrostateMap = determinize.MacrostateMap

// Discover is consulted once per newly allocated result state during
// Determinize; see determinize.Discover for the exact contract.
type Discover = determinize.Discover

// PairMap records which product state realizes each reachable state pair
// an Intersection or IntersectionEps call discovers.
type PairMap = product.PairMap

// Pair identifies one state from each source automaton of a product.
type Pair = product.Pair

// NewMacrostateMap returns an empty MacrostateMap, suitable for passing to
// Determinize either to collect its assignment or to pre-seed known
// macrostates.
func NewMacrostateMap() *MacrostateMap {
	return determinize.NewMacrostateMap()
}

// Determinize runs subset construction over a, producing an equivalent DFA.
// params selects the macrostate representation via its "algorithm" key
// ("classic" for the sorted-vector representation, "boost" for the dense
// bit-vector one). subsetMap and discover behave as documented on
// determinize.Determinize.
func Determinize(a *NFA, params ParamMap, subsetMap *MacrostateMap, discover Discover) (*NFA, *MacrostateMap, error) {
	repr, err := params.determinizeRepr()
	if err != nil {
		return nil, nil, err
	}
	return determinize.Determinize(a, repr, subsetMap, discover)
}

// Intersection computes the product NFA accepting L(lhs) ∩ L(rhs).
func Intersection(lhs, rhs *NFA) (*NFA, PairMap) {
	return product.Intersection(lhs, rhs)
}

// IntersectionEps is Intersection with an explicit ε boundary: any symbol
// at or above firstEpsilon is treated as silent rather than a real move.
func IntersectionEps(lhs, rhs *NFA, firstEpsilon Symbol) (*NFA, PairMap) {
	return product.IntersectionEps(lhs, rhs, firstEpsilon)
}

// Learn runs active automata learning against teacher as an oracle. params
// selects the algorithm via its "algorithm" key ("lstar" for a DFA
// hypothesis, "nlstar" for an RFSA hypothesis).
func Learn(teacher *NFA, params ParamMap) (*NFA, error) {
	alg, err := params.learnAlgorithm()
	if err != nil {
		return nil, err
	}
	return learn.Learn(teacher, alg)
}

// MembershipQuery answers whether a accepts w.
func MembershipQuery(a *NFA, w Word) bool {
	return learn.MembershipQuery(a, w)
}

// EquivalenceQuery decides L(a) = L(b) over alphabet, returning a witness
// word in the symmetric difference when they differ. params selects the
// equivalence algorithm via its "algorithm" key; only "naive" is
// implemented (see DESIGN.md).
func EquivalenceQuery(a, b *NFA, alphabet []Symbol, params ParamMap) (bool, Word, error) {
	algo, err := params.algorithm()
	if err != nil {
		return false, nil, err
	}
	if algo != "naive" {
		return false, nil, ErrUnknownAlgorithm
	}
	return learn.EquivalenceQuery(a, b, alphabet)
}

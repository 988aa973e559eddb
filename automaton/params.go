package automaton

import (
	"github.com/coregx/automaton/determinize"
	"github.com/coregx/automaton/learn"
)

// ParamMap is the string-keyed configuration accepted by Learn,
// Determinize's representation selection, and EquivalenceQuery. Unknown
// keys are ignored; a missing required key is reported as an Error.
//
// Recognized "algorithm" values:
//   - "lstar", "nlstar" for Learn
//   - "classic", "boost" for Determinize's macrostate representation
//   - "naive", "antichains" for EquivalenceQuery (only "naive" is
//     implemented; see DESIGN.md)
type ParamMap map[string]string

const algorithmKey = "algorithm"

func (p ParamMap) algorithm() (string, error) {
	algo, ok := p[algorithmKey]
	if !ok {
		return "", ErrMissingAlgorithm
	}
	return algo, nil
}

// learnAlgorithm validates and extracts the learn.Algorithm a ParamMap
// selects.
func (p ParamMap) learnAlgorithm() (learn.Algorithm, error) {
	algo, err := p.algorithm()
	if err != nil {
		return 0, err
	}
	switch algo {
	case "lstar":
		return learn.LStar, nil
	case "nlstar":
		return learn.NLStar, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// determinizeRepr validates and extracts the determinize.Repr a ParamMap
// selects.
func (p ParamMap) determinizeRepr() (determinize.Repr, error) {
	algo, err := p.algorithm()
	if err != nil {
		return 0, err
	}
	switch algo {
	case "classic":
		return determinize.ReprOrd, nil
	case "boost":
		return determinize.ReprBit, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

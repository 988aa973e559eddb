package product

import "github.com/coregx/automaton/nfa"

// denseProductThreshold is the |L|*|R| cell count above which pairIndex
// switches from a dense matrix to a per-row hash map with range bounds.
const denseProductThreshold = 100_000_000

// noProduct marks an unoccupied matrix cell; no real product state uses it.
const noProduct = ^nfa.State(0)

// pairIndex is the (lhs state, rhs state) -> product state lookup the
// intersector drives internally. Below the size threshold it is a dense
// matrix; above it, a per-row hash map guarded by min/max range bounds so a
// miss can often be rejected without a hash lookup.
type pairIndex struct {
	large bool

	matrix [][]nfa.State // dense: matrix[l][r]

	rows         []map[nfa.State]nfa.State // sparse: rows[l][r]
	minRhsForLhs []nfa.State
	maxRhsForLhs []nfa.State
	minLhsForRhs []nfa.State
	maxLhsForRhs []nfa.State
}

func newPairIndex(numLeft, numRight int) *pairIndex {
	large := int64(numLeft)*int64(numRight) > denseProductThreshold
	pi := &pairIndex{large: large}
	if !large {
		pi.matrix = make([][]nfa.State, numLeft)
		for i := range pi.matrix {
			row := make([]nfa.State, numRight)
			for j := range row {
				row[j] = noProduct
			}
			pi.matrix[i] = row
		}
		return pi
	}
	pi.rows = make([]map[nfa.State]nfa.State, numLeft)
	pi.minRhsForLhs = make([]nfa.State, numLeft)
	pi.maxRhsForLhs = make([]nfa.State, numLeft)
	for i := range pi.minRhsForLhs {
		pi.minRhsForLhs[i] = noProduct
		pi.maxRhsForLhs[i] = noProduct
	}
	pi.minLhsForRhs = make([]nfa.State, numRight)
	pi.maxLhsForRhs = make([]nfa.State, numRight)
	return pi
}

func (pi *pairIndex) inRange(l, r nfa.State) bool {
	return r <= pi.maxRhsForLhs[l] && r >= pi.minRhsForLhs[l] &&
		l <= pi.maxLhsForRhs[r] && l >= pi.minLhsForRhs[r]
}

func (pi *pairIndex) contains(l, r nfa.State) bool {
	if !pi.large {
		return pi.matrix[l][r] != noProduct
	}
	if !pi.inRange(l, r) {
		return false
	}
	_, ok := pi.rows[l][r]
	return ok
}

func (pi *pairIndex) get(l, r nfa.State) nfa.State {
	if !pi.large {
		return pi.matrix[l][r]
	}
	return pi.rows[l][r]
}

func (pi *pairIndex) updateRanges(l, r nfa.State) {
	if pi.minRhsForLhs[l] > r {
		pi.minRhsForLhs[l] = r
	}
	if pi.maxRhsForLhs[l] < r {
		pi.maxRhsForLhs[l] = r
	}
	if pi.minLhsForRhs[r] > l {
		pi.minLhsForRhs[r] = l
	}
	if pi.maxLhsForRhs[r] < l {
		pi.maxLhsForRhs[r] = l
	}
}

func (pi *pairIndex) insert(l, r, id nfa.State) {
	if !pi.large {
		pi.matrix[l][r] = id
		return
	}
	pi.updateRanges(l, r)
	if pi.rows[l] == nil {
		pi.rows[l] = make(map[nfa.State]nfa.State)
	}
	pi.rows[l][r] = id
}

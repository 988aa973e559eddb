package nfa

// SyncMode selects how a SyncIterator advances across its inputs.
type SyncMode int

const (
	// Existential advances to the next symbol present in at least one
	// input (used by the determinizer).
	Existential SyncMode = iota
	// Universal advances only to a symbol present in every input (used by
	// the intersector).
	Universal
)

// SyncIterator walks several StatePost lists in lockstep over increasing
// symbols, synchronizing either existentially or universally depending on
// Mode. It is the shared collaborator Delta feeds and both the determinizer
// and the intersector consume.
type SyncIterator struct {
	mode    SyncMode
	posts   []StatePost
	idx     []int
	current []int // indices into posts that matched the current symbol
	symbol  Symbol
}

// NewSyncIterator creates an empty iterator in the given mode.
func NewSyncIterator(mode SyncMode) *SyncIterator {
	return &SyncIterator{mode: mode}
}

// Push adds one more StatePost as an input to synchronize over.
func (it *SyncIterator) Push(post StatePost) {
	it.posts = append(it.posts, post)
	it.idx = append(it.idx, 0)
}

// Reset clears all inputs but preserves the underlying slice allocations.
func (it *SyncIterator) Reset() {
	it.posts = it.posts[:0]
	it.idx = it.idx[:0]
	it.current = it.current[:0]
}

// Advance steps to the next matching symbol. It returns false once no next
// symbol exists in any input (existential) or once any input is exhausted
// before the others align (universal).
func (it *SyncIterator) Advance() bool {
	switch it.mode {
	case Existential:
		return it.advanceExistential()
	default:
		return it.advanceUniversal()
	}
}

func (it *SyncIterator) advanceExistential() bool {
	min, found := Symbol(0), false
	for i := range it.posts {
		if it.idx[i] >= len(it.posts[i]) {
			continue
		}
		sym := it.posts[i][it.idx[i]].Symbol
		if !found || sym < min {
			min = sym
			found = true
		}
	}
	if !found {
		return false
	}
	it.current = it.current[:0]
	for i := range it.posts {
		if it.idx[i] < len(it.posts[i]) && it.posts[i][it.idx[i]].Symbol == min {
			it.current = append(it.current, i)
			it.idx[i]++
		}
	}
	it.symbol = min
	return true
}

// advanceUniversal aligns every input on a common symbol via a merge-join:
// repeatedly advance whichever inputs sit behind the current maximum symbol
// until either all agree or one input is exhausted.
func (it *SyncIterator) advanceUniversal() bool {
	if len(it.posts) == 0 {
		return false
	}
	for {
		var max Symbol
		for i := range it.posts {
			if it.idx[i] >= len(it.posts[i]) {
				return false
			}
			sym := it.posts[i][it.idx[i]].Symbol
			if i == 0 || sym > max {
				max = sym
			}
		}
		aligned := true
		for i := range it.posts {
			sym := it.posts[i][it.idx[i]].Symbol
			if sym != max {
				aligned = false
				for it.idx[i] < len(it.posts[i]) && it.posts[i][it.idx[i]].Symbol < max {
					it.idx[i]++
				}
				if it.idx[i] >= len(it.posts[i]) {
					return false
				}
			}
		}
		if aligned {
			it.current = it.current[:0]
			for i := range it.posts {
				it.current = append(it.current, i)
				it.idx[i]++
			}
			it.symbol = max
			return true
		}
	}
}

// CurrentSymbol returns the symbol matched by the most recent Advance.
func (it *SyncIterator) CurrentSymbol() Symbol {
	return it.symbol
}

// Current returns the indices (into the pushed inputs, in push order) that
// matched the current symbol.
func (it *SyncIterator) Current() []int {
	return it.current
}

// Targets returns the target-state slice of input i's current SymbolPost
// entry (the entry just consumed by the most recent Advance).
func (it *SyncIterator) Targets(i int) []State {
	consumed := it.idx[i] - 1
	if consumed < 0 || consumed >= len(it.posts[i]) {
		return nil
	}
	return it.posts[i][consumed].Targets
}

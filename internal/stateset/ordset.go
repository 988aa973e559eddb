package stateset

import (
	"hash/fnv"
	"sort"
)

// Ord is a sorted-vector StateSet: a deduplicated, ascending slice of state
// identifiers. Two Ord sets are equal iff their sequences are equal; this is
// also how Hash is computed.
type Ord struct {
	elems []uint32
}

// NewOrd builds an Ord set from the given elements, which may be unsorted
// and contain duplicates.
func NewOrd(elems ...uint32) *Ord {
	o := &Ord{elems: append([]uint32(nil), elems...)}
	o.normalize()
	return o
}

func (o *Ord) normalize() {
	sort.Slice(o.elems, func(i, j int) bool { return o.elems[i] < o.elems[j] })
	o.elems = dedupSorted(o.elems)
}

func dedupSorted(s []uint32) []uint32 {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Add inserts v, keeping elems sorted and unique.
func (o *Ord) Add(v uint32) {
	i := sort.Search(len(o.elems), func(i int) bool { return o.elems[i] >= v })
	if i < len(o.elems) && o.elems[i] == v {
		return
	}
	o.elems = append(o.elems, 0)
	copy(o.elems[i+1:], o.elems[i:])
	o.elems[i] = v
}

// Contains reports whether v is a member via binary search.
func (o *Ord) Contains(v uint32) bool {
	i := sort.Search(len(o.elems), func(i int) bool { return o.elems[i] >= v })
	return i < len(o.elems) && o.elems[i] == v
}

// Elements returns the sorted, deduplicated backing slice. Do not mutate.
func (o *Ord) Elements() []uint32 { return o.elems }

// Len returns the number of elements.
func (o *Ord) Len() int { return len(o.elems) }

// IsEmpty reports whether the set has no elements.
func (o *Ord) IsEmpty() bool { return len(o.elems) == 0 }

// Union merges the receiver and other (any Set) into a new Ord.
func (o *Ord) Union(other Set) Set {
	b := other.Elements()
	out := make([]uint32, 0, len(o.elems)+len(b))
	i, j := 0, 0
	for i < len(o.elems) && j < len(b) {
		switch {
		case o.elems[i] < b[j]:
			out = append(out, o.elems[i])
			i++
		case o.elems[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, o.elems[i])
			i++
			j++
		}
	}
	out = append(out, o.elems[i:]...)
	out = append(out, b[j:]...)
	return &Ord{elems: out}
}

// Intersect returns the elements present in both the receiver and other.
func (o *Ord) Intersect(other Set) Set {
	b := other.Elements()
	out := make([]uint32, 0)
	i, j := 0, 0
	for i < len(o.elems) && j < len(b) {
		switch {
		case o.elems[i] < b[j]:
			i++
		case o.elems[i] > b[j]:
			j++
		default:
			out = append(out, o.elems[i])
			i++
			j++
		}
	}
	return &Ord{elems: out}
}

// Diff returns the elements of the receiver not present in other.
func (o *Ord) Diff(other Set) Set {
	b := other.Elements()
	out := make([]uint32, 0, len(o.elems))
	i, j := 0, 0
	for i < len(o.elems) {
		if j >= len(b) || o.elems[i] < b[j] {
			out = append(out, o.elems[i])
			i++
		} else if o.elems[i] > b[j] {
			j++
		} else {
			i++
			j++
		}
	}
	return &Ord{elems: out}
}

// IsSubsetOf reports whether every element of the receiver is in other.
func (o *Ord) IsSubsetOf(other Set) bool {
	for _, v := range o.elems {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether the receiver and other share no elements.
func (o *Ord) IsDisjoint(other Set) bool {
	for _, v := range o.elems {
		if other.Contains(v) {
			return false
		}
	}
	return true
}

// Equal compares element sequences, independent of the other set's
// concrete representation.
func (o *Ord) Equal(other Set) bool {
	return equalElements(o.elems, other.Elements())
}

// Hash hashes the ascending element sequence with FNV-1a.
func (o *Ord) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, v := range o.elems {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

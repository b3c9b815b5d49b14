package automaton

import (
	"iter"
)

const subsetMapLoadFactor = 0.75

// subsetMap Assigns DFA state numbers to frozen NFA subsets during subset
// construction. Buckets are chained by siphash of the members; a hash match is
// confirmed by comparing members.
type subsetMap struct {
	buckets []*subsetEntry
	size    int
	mask    uint64
}

type subsetEntry struct {
	key   *FrozenStateSet
	state int
	next  *subsetEntry
}

// newSubsetMap Returns a map with room for at least capacity buckets, rounded up to
// a power of two.
func newSubsetMap(capacity int) *subsetMap {
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &subsetMap{
		buckets: make([]*subsetEntry, n),
		mask:    uint64(n - 1),
	}
}

// put Records that key is DFA state, replacing an earlier assignment.
func (m *subsetMap) put(key *FrozenStateSet, state int) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.state = state
			return
		}
	}

	m.buckets[index] = &subsetEntry{key: key, state: state, next: m.buckets[index]}
	m.size++
	if float64(m.size)/float64(len(m.buckets)) > subsetMapLoadFactor {
		m.grow()
	}
}

// get Returns the DFA state assigned to a subset with the same members as key.
func (m *subsetMap) get(key *FrozenStateSet) (int, bool) {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.state, true
		}
	}
	return -1, false
}

func (m *subsetMap) grow() {
	buckets := make([]*subsetEntry, len(m.buckets)<<1)
	mask := uint64(len(buckets) - 1)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & mask
			e.next = buckets[index]
			buckets[index] = e
			e = next
		}
	}
	m.buckets = buckets
	m.mask = mask
}

func (m *subsetMap) len() int {
	return m.size
}

// all Yields every subset with its DFA state, in no particular order.
func (m *subsetMap) all() iter.Seq2[*FrozenStateSet, int] {
	return func(yield func(*FrozenStateSet, int) bool) {
		for _, head := range m.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.state) {
					return
				}
			}
		}
	}
}

package automaton

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/dchest/siphash"
)

// Fixed keys: equal sets must hash equally across calls and processes.
const (
	hashKey0 = uint64(0x9e3779b97f4a7c15)
	hashKey1 = uint64(0x85ebca6bc2b2ae35)
)

// hashBitSet Hashes the indices of the set bits, so bitsets of different
// capacity holding the same members hash alike.
func hashBitSet(b *bitset.BitSet) uint64 {
	buf := make([]byte, 0, 8*b.Count())
	var word [8]byte
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		binary.LittleEndian.PutUint64(word[:], uint64(i))
		buf = append(buf, word[:]...)
	}
	return siphash.Hash(hashKey0, hashKey1, buf)
}


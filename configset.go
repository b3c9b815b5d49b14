package automaton

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Configuration The instantaneous description of a nondeterministic run. Two
// configurations are equal iff their keys are equal.
type Configuration interface {
	Key() string
}

// StateConfig A finite automaton configuration: the number of the current state.
type StateConfig int

func (c StateConfig) Key() string {
	return strconv.Itoa(int(c))
}

// PushdownConfig A PDA configuration. The top of the stack is the last element.
// Stack slices are never modified in place once the configuration is built.
type PushdownConfig struct {
	State int
	Stack []Symbol
}

// Key Writes the state then every stack symbol prefixed by its byte length, so no
// symbol content can make two different stacks share a key.
func (c PushdownConfig) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(c.State))
	sb.WriteByte('|')
	for _, s := range c.Stack {
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(string(s))
	}
	return sb.String()
}

// Top Returns the stack top, or false when the stack is empty.
func (c PushdownConfig) Top() (Symbol, bool) {
	if len(c.Stack) == 0 {
		return "", false
	}
	return c.Stack[len(c.Stack)-1], true
}

// ConfigSet A set of configurations compared by full value.
type ConfigSet[C Configuration] struct {
	items map[string]C
}

func NewConfigSet[C Configuration](configs ...C) *ConfigSet[C] {
	s := &ConfigSet[C]{items: make(map[string]C, len(configs))}
	for _, c := range configs {
		s.Add(c)
	}
	return s
}

// Add Inserts c, returns false if an equal configuration was already present.
func (s *ConfigSet[C]) Add(c C) bool {
	k := c.Key()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = c
	return true
}

func (s *ConfigSet[C]) Contains(c C) bool {
	_, ok := s.items[c.Key()]
	return ok
}

func (s *ConfigSet[C]) Size() int {
	return len(s.items)
}

func (s *ConfigSet[C]) IsEmpty() bool {
	return len(s.items) == 0
}

// Keys Returns the canonical keys in sorted order.
func (s *ConfigSet[C]) Keys() []string {
	keys := maps.Keys(s.items)
	slices.Sort(keys)
	return keys
}

// Sorted Returns the configurations ordered by key, the same order for equal sets.
func (s *ConfigSet[C]) Sorted() []C {
	keys := s.Keys()
	out := make([]C, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.items[k])
	}
	return out
}

// Equals Returns true if both sets hold the same configurations.
func (s *ConfigSet[C]) Equals(other *ConfigSet[C]) bool {
	if s.Size() != other.Size() {
		return false
	}
	for k := range s.items {
		if _, ok := other.items[k]; !ok {
			return false
		}
	}
	return true
}

// FrozenStateSet An immutable set of finite automaton states, the key of a DFA state
// during subset construction. state is the number of the DFA state it was assigned,
// -1 until assigned.
type FrozenStateSet struct {
	bits     *bitset.BitSet
	state    int
	hashCode uint64
}

// FreezeStates Builds the frozen form of a finite configuration set over an
// automaton with numStates states.
func FreezeStates(set *ConfigSet[StateConfig], numStates int) *FrozenStateSet {
	bits := bitset.New(uint(numStates))
	for _, c := range set.items {
		bits.Set(uint(c))
	}
	return &FrozenStateSet{
		bits:     bits,
		state:    -1,
		hashCode: hashBitSet(bits),
	}
}

func (f *FrozenStateSet) Hash() uint64 {
	return f.hashCode
}

// Equals Compares members only; the capacity a set was frozen with does not count.
func (f *FrozenStateSet) Equals(o *FrozenStateSet) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && f.bits.SymmetricDifferenceCardinality(o.bits) == 0
}

// GetArray Returns the state numbers in ascending order.
func (f *FrozenStateSet) GetArray() []int {
	values := make([]int, 0, f.bits.Count())
	for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

func (f *FrozenStateSet) Size() int {
	return int(f.bits.Count())
}

// Intersects Returns true if any state of f is set in other.
func (f *FrozenStateSet) Intersects(other *bitset.BitSet) bool {
	return f.bits.IntersectionCardinality(other) > 0
}

// Thaw Returns the configuration set represented by f.
func (f *FrozenStateSet) Thaw() *ConfigSet[StateConfig] {
	s := NewConfigSet[StateConfig]()
	for _, v := range f.GetArray() {
		s.Add(StateConfig(v))
	}
	return s
}

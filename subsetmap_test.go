package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func subset(t *testing.T, numStates int, states ...StateConfig) *FrozenStateSet {
	t.Helper()
	return FreezeStates(NewConfigSet(states...), numStates)
}

func TestSubsetMap(t *testing.T) {
	m := newSubsetMap(8)
	m.put(subset(t, 4, 0, 2), 0)
	m.put(subset(t, 4, 1), 1)

	tests := []struct {
		name  string
		key   *FrozenStateSet
		state int
		ok    bool
	}{
		{"same members", subset(t, 4, 2, 0), 0, true},
		{"other capacity", subset(t, 64, 0, 2), 0, true},
		{"single state", subset(t, 4, 1), 1, true},
		{"subset of a key", subset(t, 4, 0), -1, false},
		{"empty", subset(t, 4), -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := m.get(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.state, state)
		})
	}

	m.put(subset(t, 4, 0, 2), 5)
	state, _ := m.get(subset(t, 4, 0, 2))
	assert.Equal(t, 5, state)
	assert.Equal(t, 2, m.len())
}

func TestSubsetMapCollision(t *testing.T) {
	m := newSubsetMap(4)
	a := subset(t, 4, 0)
	b := subset(t, 4, 1)
	// force both into one chain
	b.hashCode = a.hashCode

	m.put(a, 0)
	m.put(b, 1)
	assert.Equal(t, 2, m.len())

	state, ok := m.get(a)
	assert.True(t, ok)
	assert.Equal(t, 0, state)
	state, ok = m.get(b)
	assert.True(t, ok)
	assert.Equal(t, 1, state)
}

func TestSubsetMapGrow(t *testing.T) {
	m := newSubsetMap(4)
	for i := 0; i < 40; i++ {
		m.put(subset(t, 40, StateConfig(i)), i)
	}
	assert.Greater(t, len(m.buckets), 40)
	assert.Equal(t, 40, m.len())

	for i := 0; i < 40; i++ {
		state, ok := m.get(subset(t, 40, StateConfig(i)))
		assert.True(t, ok)
		assert.Equal(t, i, state)
	}

	seen := make(map[int]bool)
	for key, state := range m.all() {
		assert.Equal(t, []int{state}, key.GetArray())
		seen[state] = true
	}
	assert.Len(t, seen, 40)

	n := 0
	for range m.all() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestNewSubsetMapCapacity(t *testing.T) {
	assert.Len(t, newSubsetMap(0).buckets, 1)
	assert.Len(t, newSubsetMap(5).buckets, 8)
}

package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomNFA Builds an NFA over {a, b} with n states and random moves, epsilon
// moves included. State n-1 always accepts.
func randomNFA(t *testing.T, rnd *rand.Rand, n int) *Definition {
	names := make([]State, n)
	for i := range names {
		names[i] = State(string(rune('A' + i)))
	}
	b := NewBuilder(KindNFA).AddSymbols("a", "b").SetInitial(names[0])
	for _, s := range names {
		b.CreateState(s)
		if rnd.Intn(3) == 0 {
			b.SetAccept(s, true)
		}
	}
	b.SetAccept(names[n-1], true)

	symbols := []Symbol{"a", "b", Epsilon}
	moves := rnd.Intn(3*n) + 1
	for i := 0; i < moves; i++ {
		b.AddTransition(names[rnd.Intn(n)], symbols[rnd.Intn(len(symbols))], names[rnd.Intn(n)])
	}
	def, err := b.Finish()
	require.NoError(t, err)
	return def
}

func TestClosure(t *testing.T) {
	a, err := Compile(exampleNFA(t))
	require.NoError(t, err)

	c, err := a.Closure(NewConfigSet[StateConfig](1))
	require.NoError(t, err)
	assert.Equal(t, []StateConfig{0, 1}, c.Sorted())

	c, err = a.Closure(NewConfigSet[StateConfig](0))
	require.NoError(t, err)
	assert.Equal(t, []StateConfig{0}, c.Sorted())

	c, err = a.Closure(NewConfigSet[StateConfig]())
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestClosureCycle(t *testing.T) {
	def, err := NewBuilder(KindNFA).
		AddSymbols("x").
		SetInitial("p").
		CreateState("q").
		SetAccept("r", true).
		AddTransition("p", Epsilon, "q").
		AddTransition("q", Epsilon, "r").
		AddTransition("r", Epsilon, "p").
		Finish()
	require.NoError(t, err)
	a, err := Compile(def)
	require.NoError(t, err)

	c, err := a.Closure(NewConfigSet[StateConfig](1))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size())

	_, err = a.Closure(NewConfigSet[StateConfig](1), WithClosureLimit(2))
	assert.ErrorIs(t, err, ErrUnboundedClosure)
}

func TestClosureIdempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		n := rnd.Intn(5) + 1
		a, err := Compile(randomNFA(t, rnd, n))
		require.NoError(t, err)

		for mask := 0; mask < 1<<n; mask++ {
			start := NewConfigSet[StateConfig]()
			for s := 0; s < n; s++ {
				if mask&(1<<s) != 0 {
					start.Add(StateConfig(s))
				}
			}
			once, err := a.Closure(start)
			require.NoError(t, err)
			twice, err := a.Closure(once)
			require.NoError(t, err)

			assert.True(t, once.Equals(twice))
			for _, c := range start.Sorted() {
				assert.True(t, once.Contains(c))
			}
		}
	}
}

func TestStep(t *testing.T) {
	a, err := Compile(exampleNFA(t))
	require.NoError(t, err)

	next, err := a.Step(NewConfigSet[StateConfig](0), "a")
	require.NoError(t, err)
	assert.Equal(t, []StateConfig{0, 1}, next.Sorted())

	next, err = a.Step(NewConfigSet[StateConfig](0), "b")
	require.NoError(t, err)
	assert.True(t, next.IsEmpty())

	next, err = a.Step(NewConfigSet[StateConfig](0, 1), "b")
	require.NoError(t, err)
	assert.Equal(t, []StateConfig{2}, next.Sorted())

	_, err = a.Step(NewConfigSet[StateConfig](0), Epsilon)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = a.Step(NewConfigSet[StateConfig](0), "c")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestClosureWrongKind(t *testing.T) {
	a, err := Compile(bracketsPDA(t))
	require.NoError(t, err)
	_, err = a.Closure(NewConfigSet[StateConfig](0))
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = a.Step(NewConfigSet[StateConfig](0), "(")
	assert.ErrorIs(t, err, ErrWrongKind)

	n, err := Compile(exampleNFA(t))
	require.NoError(t, err)
	_, err = n.PushdownClosure(NewConfigSet(PushdownConfig{}))
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = n.PushdownStep(NewConfigSet(PushdownConfig{}), "a")
	assert.ErrorIs(t, err, ErrWrongKind)
}

package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bracketsPDA s0 pushes Z on "(" from an empty stack and pops it on ")".
func bracketsPDA(t *testing.T) *Definition {
	def, err := NewBuilder(KindPDA).
		AddSymbols("(", ")").
		AddStackSymbols("Z").
		SetInitial("s0").
		SetAccept("s0", true).
		AddPushdownTransition("s0", Epsilon, "(", "s0", "Z").
		AddPushdownTransition("s0", "Z", ")", "s0", Epsilon).
		Finish()
	require.NoError(t, err)
	return def
}

// anbnPDA Accepts a^n b^n, n >= 1, with a bottom marker Z.
func anbnPDA(t *testing.T) *Definition {
	def, err := NewBuilder(KindPDA).
		AddSymbols("a", "b").
		AddStackSymbols("Z", "A").
		SetInitial("p").
		CreateState("q").
		CreateState("s").
		SetAccept("r", true).
		AddPushdownTransition("p", Epsilon, Epsilon, "q", "Z").
		AddPushdownTransition("q", "Z", "a", "q", "Z", "A").
		AddPushdownTransition("q", "A", "a", "q", "A", "A").
		AddPushdownTransition("q", "A", "b", "s").
		AddPushdownTransition("s", "A", "b", "s").
		AddPushdownTransition("s", "Z", Epsilon, "r").
		Finish()
	require.NoError(t, err)
	return def
}

func TestRunPushdownBrackets(t *testing.T) {
	a, err := Compile(bracketsPDA(t))
	require.NoError(t, err)

	res, err := a.RunPushdown(Word("( )"))
	require.NoError(t, err)
	assert.Equal(t, Accepted, res.Verdict)
	assert.Equal(t, []string{"s0 []"}, res.Final)

	res, err = a.RunPushdown(Word("( ) )"))
	require.NoError(t, err)
	assert.Equal(t, Rejected, res.Verdict)
	assert.Equal(t, 2, res.Consumed)

	// acceptance is by final state, the leftover Z does not matter
	res, err = a.RunPushdown(Word("("))
	require.NoError(t, err)
	assert.Equal(t, Accepted, res.Verdict)
	assert.Equal(t, []string{"s0 [Z]"}, res.Final)
}

func TestRunPushdownStackMatch(t *testing.T) {
	a, err := Compile(bracketsPDA(t))
	require.NoError(t, err)

	// "(" requires an empty stack by default
	res, err := a.Run(Word("( ( ) )"))
	require.NoError(t, err)
	assert.Equal(t, Rejected, res.Verdict)
	assert.Equal(t, 1, res.Consumed)

	res, err = a.Run(Word("( ( ) )"), WithStackMatch(StackMatchWildcard))
	require.NoError(t, err)
	assert.Equal(t, Accepted, res.Verdict)
	assert.Equal(t, []string{"s0 []"}, res.Final)
}

func TestRunPushdownAnBn(t *testing.T) {
	a, err := Compile(anbnPDA(t))
	require.NoError(t, err)

	tests := []struct {
		word     string
		verdict  Verdict
		consumed int
	}{
		{"a b", Accepted, 2},
		{"a a b b", Accepted, 4},
		{"a a a b b b", Accepted, 6},
		{"a a b", Rejected, 3},
		{"a b b", Rejected, 2},
		{"b", Rejected, 0},
		{"", Rejected, 0},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			res, err := a.Run(Word(tt.word))
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, res.Verdict)
			assert.Equal(t, tt.consumed, res.Consumed)
		})
	}
}

func TestPushdownPushOrder(t *testing.T) {
	a, err := Compile(anbnPDA(t))
	require.NoError(t, err)

	start, err := a.PushdownClosure(NewConfigSet(PushdownConfig{State: 0}))
	require.NoError(t, err)
	assert.Equal(t, 2, start.Size())
	assert.True(t, start.Contains(PushdownConfig{State: 1, Stack: []Symbol{"Z"}}))

	next, err := a.PushdownStep(start, "a")
	require.NoError(t, err)
	// the last pushed symbol is the new top
	assert.Equal(t, []PushdownConfig{{State: 1, Stack: []Symbol{"Z", "A"}}}, next.Sorted())
}

func TestPushdownClosureIdempotent(t *testing.T) {
	a, err := Compile(anbnPDA(t))
	require.NoError(t, err)

	start := NewConfigSet(
		PushdownConfig{State: 0},
		PushdownConfig{State: 2, Stack: []Symbol{"Z"}},
	)
	once, err := a.PushdownClosure(start)
	require.NoError(t, err)
	twice, err := a.PushdownClosure(once)
	require.NoError(t, err)
	assert.True(t, once.Equals(twice))
	assert.True(t, once.Contains(PushdownConfig{State: 3}))
}

func TestPushdownUnboundedClosure(t *testing.T) {
	def, err := NewBuilder(KindPDA).
		AddSymbols("x").
		AddStackSymbols("Z").
		SetInitial("p").
		SetAccept("p", true).
		AddPushdownTransition("p", Epsilon, Epsilon, "p", "Z").
		Finish()
	require.NoError(t, err)
	a, err := Compile(def)
	require.NoError(t, err)

	// only the empty stack matches, the loop runs once
	res, err := a.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p []", "p [Z]"}, res.Final)

	_, err = a.Run(nil, WithStackMatch(StackMatchWildcard), WithClosureLimit(100))
	assert.ErrorIs(t, err, ErrUnboundedClosure)
}

func TestRunPushdownTrace(t *testing.T) {
	a, err := Compile(bracketsPDA(t))
	require.NoError(t, err)

	var steps []Step
	_, err = a.Run(Word("( )"), WithTrace(func(s Step) { steps = append(steps, s) }))
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, []string{"s0 [Z]"}, steps[1].Configurations)
	assert.Equal(t, Symbol(")"), steps[2].Symbol)
}

func TestRunPushdownErrors(t *testing.T) {
	a, err := Compile(bracketsPDA(t))
	require.NoError(t, err)
	_, err = a.RunPushdown(Word("( ["))
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	n, err := Compile(exampleNFA(t))
	require.NoError(t, err)
	_, err = n.RunPushdown(Word("a"))
	assert.ErrorIs(t, err, ErrWrongKind)
}

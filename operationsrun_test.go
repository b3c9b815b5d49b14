package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	endsInAB := exampleNFA(t)
	evenOnes, err := NewBuilder(KindDFA).
		AddSymbols("0", "1").
		SetInitial("even").
		SetAccept("even", true).
		CreateState("odd").
		AddTransition("even", "0", "even").
		AddTransition("even", "1", "odd").
		AddTransition("odd", "0", "odd").
		AddTransition("odd", "1", "even").
		Finish()
	require.NoError(t, err)

	tests := []struct {
		name string
		def  *Definition
		s    string
		want bool
	}{
		{"nfa accepts", endsInAB, "a b", true},
		{"nfa loops back through epsilon", endsInAB, "a a b", true},
		{"nfa dead symbol", endsInAB, "b", false},
		{"nfa empty word", endsInAB, "", false},
		{"dfa even", evenOnes, "1 0 1", true},
		{"dfa odd", evenOnes, "1 0 0", false},
		{"dfa empty word", evenOnes, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(tt.def, tt.s)
			require.NoError(t, err)
			assert.Equalf(t, tt.want, got, "Run(%v, %v)", tt.def.Kind, tt.s)
		})
	}
}

func TestRunResult(t *testing.T) {
	a, err := Compile(exampleNFA(t))
	require.NoError(t, err)

	res, err := a.Run(Word("a b"))
	require.NoError(t, err)
	assert.Equal(t, Accepted, res.Verdict)
	assert.Equal(t, 2, res.Consumed)
	assert.Equal(t, []string{"q2"}, res.Final)

	res, err = a.Run(Word("b a"))
	require.NoError(t, err)
	assert.Equal(t, Rejected, res.Verdict)
	assert.Equal(t, 0, res.Consumed)
	assert.Empty(t, res.Final)

	res, err = a.Run(Word("a"))
	require.NoError(t, err)
	assert.Equal(t, Rejected, res.Verdict)
	assert.Equal(t, 1, res.Consumed)
	assert.Equal(t, []string{"q0", "q1"}, res.Final)
}

func TestRunUnknownSymbol(t *testing.T) {
	a, err := Compile(exampleNFA(t))
	require.NoError(t, err)

	_, err = a.Run(Word("a c"))
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	_, err = a.Run(Word("a epsilon"))
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	_, err = Run(&Definition{Kind: KindNFA}, "a")
	assert.ErrorIs(t, err, ErrMalformedDefinition)
}

func TestRunTrace(t *testing.T) {
	a, err := Compile(exampleNFA(t))
	require.NoError(t, err)

	var steps []Step
	_, err = a.Run(Word("a a b"), WithTrace(func(s Step) {
		steps = append(steps, s)
	}))
	require.NoError(t, err)

	require.Len(t, steps, 4)
	assert.Equal(t, Step{Index: 0, Symbol: Epsilon, Configurations: []string{"q0"}}, steps[0])
	assert.Equal(t, Step{Index: 1, Symbol: "a", Configurations: []string{"q0", "q1"}}, steps[1])
	assert.Equal(t, Step{Index: 3, Symbol: "b", Configurations: []string{"q2"}}, steps[3])
}

func TestWord(t *testing.T) {
	assert.Equal(t, []Symbol{"a", "b", "c"}, Word("  a b\tc "))
	assert.Empty(t, Word(""))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "ACCEPTED", Accepted.String())
	assert.Equal(t, "REJECTED", Rejected.String())
	assert.Equal(t, "TIMEOUT", TimedOut.String())
}

package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Automaton A validated Definition indexed for simulation. States are numbered in
// declaration order; transitions are grouped by source state and keep their declared
// order within a group. An Automaton is read-only once compiled, so concurrent runs
// against the same value need no locking.
type Automaton struct {
	def *Definition

	// State names by number, and the reverse lookup.
	states   []State
	stateIDs map[State]int

	initial  int
	isAccept *bitset.BitSet

	symbols map[Symbol]struct{}

	// Outgoing moves per source state, for the kind being simulated.
	finite   [][]finiteEdge
	pushdown [][]pushdownEdge
	tape     [][]tapeEdge
}

type finiteEdge struct {
	symbol Symbol
	dest   int
}

type pushdownEdge struct {
	stackTop Symbol
	symbol   Symbol
	dest     int
	push     []Symbol
}

type tapeEdge struct {
	read  Symbol
	dest  int
	write Symbol
	move  Move
}

// Compile Validates def and builds the simulation index. The definition is copied,
// later changes to def are not observed.
func Compile(def *Definition) (*Automaton, error) {
	return compile(def, true)
}

func compile(def *Definition, requireAccepting bool) (*Automaton, error) {
	if def == nil {
		return nil, malformed("States", "", "nil definition")
	}
	if err := def.validate(requireAccepting); err != nil {
		return nil, err
	}
	def = def.Clone()

	numStates := len(def.States)
	a := &Automaton{
		def:      def,
		states:   def.States,
		stateIDs: make(map[State]int, numStates),
		isAccept: bitset.New(uint(numStates)),
		symbols:  make(map[Symbol]struct{}, len(def.Alphabet)),
	}
	for i, s := range def.States {
		a.stateIDs[s] = i
	}
	for _, s := range def.Alphabet {
		a.symbols[s] = struct{}{}
	}
	a.initial = a.stateIDs[def.Initial]
	for _, s := range def.Accepting {
		a.isAccept.Set(uint(a.stateIDs[s]))
	}

	switch def.Kind {
	case KindDFA, KindNFA:
		a.finite = make([][]finiteEdge, numStates)
		for _, t := range def.Transitions {
			from := a.stateIDs[t.From]
			a.finite[from] = append(a.finite[from], finiteEdge{
				symbol: NormalizeSymbol(string(t.Symbol)),
				dest:   a.stateIDs[t.To],
			})
		}
	case KindPDA:
		a.pushdown = make([][]pushdownEdge, numStates)
		for _, t := range def.PushdownTransitions {
			from := a.stateIDs[t.From]
			push := make([]Symbol, 0, len(t.Push))
			for _, s := range t.Push {
				if !IsEpsilon(s) {
					push = append(push, s)
				}
			}
			a.pushdown[from] = append(a.pushdown[from], pushdownEdge{
				stackTop: NormalizeSymbol(string(t.StackTop)),
				symbol:   NormalizeSymbol(string(t.Symbol)),
				dest:     a.stateIDs[t.To],
				push:     push,
			})
		}
	case KindTM:
		a.tape = make([][]tapeEdge, numStates)
		for _, t := range def.TapeTransitions {
			from := a.stateIDs[t.From]
			a.tape[from] = append(a.tape[from], tapeEdge{
				read:  t.Read,
				dest:  a.stateIDs[t.To],
				write: t.Write,
				move:  t.Move,
			})
		}
	}

	return a, nil
}

// Definition Returns a copy of the compiled definition.
func (a *Automaton) Definition() *Definition {
	return a.def.Clone()
}

func (a *Automaton) Kind() Kind {
	return a.def.Kind
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// Initial Returns the number of the initial state.
func (a *Automaton) Initial() int {
	return a.initial
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// StateName Returns the declared label of a state number.
func (a *Automaton) StateName(state int) State {
	return a.states[state]
}

// StateID Returns the number of a declared state.
func (a *Automaton) StateID(s State) (int, bool) {
	id, ok := a.stateIDs[s]
	return id, ok
}

// checkInput Rejects words that use symbols outside the alphabet before any
// simulation starts.
func (a *Automaton) checkInput(input []Symbol) error {
	for i, s := range input {
		if _, ok := a.symbols[s]; !ok {
			return fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, s, i)
		}
	}
	return nil
}

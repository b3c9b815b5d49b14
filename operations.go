package automaton

import (
	"fmt"
	"strconv"

	u "github.com/araddon/gou"
)

// Determinized The result of a subset construction. StateMap records, for every
// synthesized DFA state, the NFA states it stands for in declaration order.
type Determinized struct {
	DFA      *Definition
	StateMap map[State][]State
}

// Compile Compiles the DFA. Unlike Compile it accepts a DFA without accepting
// states, which is what an NFA that can never accept determinizes to.
func (d *Determinized) Compile() (*Automaton, error) {
	return compile(d.DFA, false)
}

// Determinize Validates an NFA (or DFA) definition and determinizes it, see
// DeterminizeAutomaton.
func Determinize(nfa *Definition, opts ...DeterminizeOption) (*Determinized, error) {
	a, err := Compile(nfa)
	if err != nil {
		return nil, err
	}
	return DeterminizeAutomaton(a, opts...)
}

// DeterminizeAutomaton Determinizes the given automaton by subset construction.
// Worst case complexity: exponential in number of states.
//
// DFA states are named prefix+n in discovery order, starting with the epsilon
// closure of the initial state as q0. Alphabet symbols are tried in declaration
// order, so the same NFA always yields the same DFA. Symbols that lead nowhere emit
// no transition; the DFA may be partial.
//
// Fails with ErrTooComplexToDeterminize once more than the state limit of DFA
// states would be created.
func DeterminizeAutomaton(a *Automaton, opts ...DeterminizeOption) (*Determinized, error) {
	if err := a.requireFinite(); err != nil {
		return nil, err
	}
	options := newDeterminizeOptions(opts...)
	sys := finiteMoves{a}
	numStates := a.GetNumStates()
	alphabet := append([]Symbol(nil), a.def.Alphabet...)

	start, err := epsilonClosure[StateConfig](sys, NewConfigSet(StateConfig(a.initial)), options.closureLimit)
	if err != nil {
		return nil, err
	}

	dfa := &Definition{
		Kind:     KindDFA,
		Alphabet: alphabet,
	}

	// Same subset, same hash: lookups compare full bitsets on hash collision.
	newState := newSubsetMap(16)
	worklist := make([]*FrozenStateSet, 0)

	addState := func(set *FrozenStateSet) (int, error) {
		id := len(dfa.States)
		if id >= options.stateLimit {
			return -1, fmt.Errorf("%w: more than %d states", ErrTooComplexToDeterminize, options.stateLimit)
		}
		name := State(options.prefix + strconv.Itoa(id))
		set.state = id
		dfa.States = append(dfa.States, name)
		if set.Intersects(a.isAccept) {
			dfa.Accepting = append(dfa.Accepting, name)
		}
		newState.put(set, id)
		worklist = append(worklist, set)
		u.Debugf("determinize: %s = %v", name, a.stateNames(set.GetArray()))
		return id, nil
	}

	initialSet := FreezeStates(start, numStates)
	if _, err := addState(initialSet); err != nil {
		return nil, err
	}
	dfa.Initial = dfa.States[0]

	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		current := s.Thaw()

		for _, symbol := range alphabet {
			next := stepSet[StateConfig](sys, current, symbol)
			if next.IsEmpty() {
				continue
			}
			closed, err := epsilonClosure[StateConfig](sys, next, options.closureLimit)
			if err != nil {
				return nil, err
			}

			frozen := FreezeStates(closed, numStates)
			dest, ok := newState.get(frozen)
			if !ok {
				if dest, err = addState(frozen); err != nil {
					return nil, err
				}
			}

			dfa.Transitions = append(dfa.Transitions, Transition{
				From:   dfa.States[s.state],
				Symbol: symbol,
				To:     dfa.States[dest],
			})
		}
	}

	stateMap := make(map[State][]State, newState.len())
	for set, id := range newState.all() {
		stateMap[dfa.States[id]] = a.stateNames(set.GetArray())
	}

	return &Determinized{DFA: dfa, StateMap: stateMap}, nil
}

func (a *Automaton) stateNames(ids []int) []State {
	names := make([]State, 0, len(ids))
	for _, id := range ids {
		names = append(names, a.states[id])
	}
	return names
}

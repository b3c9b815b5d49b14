package automaton

import (
	"golang.org/x/exp/slices"
)

// Validate Checks that every state and symbol referenced by the definition is
// declared. The first problem found is returned as a *DefinitionError.
func (d *Definition) Validate() error {
	return d.validate(true)
}

func (d *Definition) validate(requireAccepting bool) error {
	states := make(map[State]struct{}, len(d.States))
	for _, s := range d.States {
		if s == "" {
			return malformed("States", "", "empty state name")
		}
		if _, ok := states[s]; ok {
			return malformed("States", string(s), "duplicate state")
		}
		states[s] = struct{}{}
	}
	if len(states) == 0 {
		return malformed("States", "", "no states declared")
	}

	symbols, err := symbolSet("Symbols", d.Alphabet)
	if err != nil {
		return err
	}

	if d.Initial == "" {
		return malformed("States", "", "initial state is not defined")
	}
	if _, ok := states[d.Initial]; !ok {
		return malformed("States", string(d.Initial), "initial state is not a declared state")
	}
	if requireAccepting && len(d.Accepting) == 0 {
		return malformed("States", "", "no accepting states defined")
	}
	for _, s := range d.Accepting {
		if _, ok := states[s]; !ok {
			return malformed("States", string(s), "accepting state is not a declared state")
		}
	}

	switch d.Kind {
	case KindDFA, KindNFA:
		return d.validateFinite(states, symbols)
	case KindPDA:
		return d.validatePushdown(states, symbols)
	case KindTM:
		return d.validateTape(states, symbols)
	}
	return malformed("Transitions", "", "unknown automaton kind %d", int(d.Kind))
}

func symbolSet(section string, list []Symbol) (map[Symbol]struct{}, error) {
	set := make(map[Symbol]struct{}, len(list))
	for _, s := range list {
		if s == "" {
			return nil, malformed(section, "", "empty symbol")
		}
		if IsEpsilon(s) {
			return nil, malformed(section, string(s), "epsilon is reserved and cannot be declared")
		}
		if _, ok := set[s]; ok {
			return nil, malformed(section, string(s), "duplicate symbol")
		}
		set[s] = struct{}{}
	}
	return set, nil
}

func (d *Definition) validateFinite(states map[State]struct{}, symbols map[Symbol]struct{}) error {
	type key struct {
		from   State
		symbol Symbol
	}
	seen := make(map[key]struct{}, len(d.Transitions))

	for _, t := range d.Transitions {
		decl := t.String()
		if _, ok := states[t.From]; !ok {
			return malformed("Transitions", decl, "transition from undefined state %s", t.From)
		}
		if _, ok := states[t.To]; !ok {
			return malformed("Transitions", decl, "transition to undefined state %s", t.To)
		}
		if IsEpsilon(t.Symbol) {
			if d.Kind == KindDFA {
				return malformed("Transitions", decl, "epsilon transition in a DFA")
			}
			continue
		}
		if _, ok := symbols[t.Symbol]; !ok {
			return malformed("Transitions", decl, "undefined symbol %s", t.Symbol)
		}
		if d.Kind == KindDFA {
			k := key{t.From, t.Symbol}
			if _, ok := seen[k]; ok {
				return malformed("Transitions", decl, "DFA already has a transition from %s on %s", t.From, t.Symbol)
			}
			seen[k] = struct{}{}
		}
	}
	return nil
}

func (d *Definition) validatePushdown(states map[State]struct{}, symbols map[Symbol]struct{}) error {
	stack, err := symbolSet("Stack", d.StackAlphabet)
	if err != nil {
		return err
	}

	for _, t := range d.PushdownTransitions {
		decl := t.String()
		if _, ok := states[t.From]; !ok {
			return malformed("Transitions", decl, "transition from undefined state %s", t.From)
		}
		if _, ok := states[t.To]; !ok {
			return malformed("Transitions", decl, "transition to undefined state %s", t.To)
		}
		if !IsEpsilon(t.StackTop) {
			if _, ok := stack[t.StackTop]; !ok {
				return malformed("Transitions", decl, "undefined stack top %s", t.StackTop)
			}
		}
		if !IsEpsilon(t.Symbol) {
			if _, ok := symbols[t.Symbol]; !ok {
				return malformed("Transitions", decl, "undefined symbol %s", t.Symbol)
			}
		}
		for _, s := range t.Push {
			if IsEpsilon(s) {
				continue
			}
			if _, ok := stack[s]; !ok {
				return malformed("Transitions", decl, "undefined stack push %s", s)
			}
		}
	}
	return nil
}

func (d *Definition) validateTape(states map[State]struct{}, symbols map[Symbol]struct{}) error {
	if len(d.Tape) == 0 {
		return malformed("Band", "", "band cannot be empty")
	}
	for _, s := range d.Tape {
		if _, ok := symbols[s]; !ok {
			return malformed("Band", string(s), "band symbol not in alphabet")
		}
	}

	for _, t := range d.TapeTransitions {
		decl := t.String()
		if _, ok := states[t.From]; !ok {
			return malformed("Transitions", decl, "transition from undefined state %s", t.From)
		}
		if _, ok := states[t.To]; !ok {
			return malformed("Transitions", decl, "transition to undefined state %s", t.To)
		}
		if _, ok := symbols[t.Read]; !ok {
			return malformed("Transitions", decl, "undefined read symbol %s", t.Read)
		}
		if _, ok := symbols[t.Write]; !ok {
			return malformed("Transitions", decl, "undefined write symbol %s", t.Write)
		}
		if !slices.Contains([]Move{MoveLeft, MoveStay, MoveRight}, t.Move) {
			return malformed("Transitions", decl, "invalid direction %d", int(t.Move))
		}
	}
	return nil
}

// IsDeterministic Returns true if no state has two transitions on the same input
// (for a TM: on the same read symbol) and, for finite automata, no epsilon moves.
// The TM engine relies on this but does not enforce it; the first matching
// transition in declaration order wins.
func (d *Definition) IsDeterministic() bool {
	type key struct {
		from   State
		symbol Symbol
	}
	seen := make(map[key]struct{})
	switch d.Kind {
	case KindDFA, KindNFA:
		for _, t := range d.Transitions {
			if IsEpsilon(t.Symbol) {
				return false
			}
			k := key{t.From, t.Symbol}
			if _, ok := seen[k]; ok {
				return false
			}
			seen[k] = struct{}{}
		}
	case KindTM:
		for _, t := range d.TapeTransitions {
			k := key{t.From, t.Read}
			if _, ok := seen[k]; ok {
				return false
			}
			seen[k] = struct{}{}
		}
	default:
		return false
	}
	return true
}

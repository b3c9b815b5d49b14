package automaton

import (
	"fmt"
	"strings"
)

// Symbol An opaque token of an alphabet. Epsilon is reserved for silent moves.
type Symbol string

// State An opaque state label, unique within a Definition.
type State string

const (
	// Epsilon marks a move that consumes no input. As a PDA stack requirement it
	// matches the empty stack (or any stack, see StackMatch); in a push sequence it
	// pushes nothing.
	Epsilon Symbol = "epsilon"

	// EpsilonRune is accepted as an alias of Epsilon wherever a symbol is read.
	EpsilonRune Symbol = "ε"
)

// IsEpsilon Returns true if s denotes the silent move.
func IsEpsilon(s Symbol) bool {
	return s == Epsilon || s == EpsilonRune
}

// NormalizeSymbol maps the epsilon aliases onto Epsilon and trims blanks.
func NormalizeSymbol(s string) Symbol {
	sym := Symbol(strings.TrimSpace(s))
	if IsEpsilon(sym) {
		return Epsilon
	}
	return sym
}

type Kind int

const (
	KindDFA = Kind(iota) // Deterministic finite automaton
	KindNFA              // Nondeterministic finite automaton with epsilon moves
	KindPDA              // Pushdown automaton, acceptance by final state
	KindTM               // Single tape Turing machine
)

func (k Kind) String() string {
	switch k {
	case KindDFA:
		return "dfa"
	case KindNFA:
		return "nfa"
	case KindPDA:
		return "pda"
	case KindTM:
		return "tm"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind Parses the textual name of an automaton kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfa":
		return KindDFA, nil
	case "nfa":
		return KindNFA, nil
	case "pda":
		return KindPDA, nil
	case "tm", "turing":
		return KindTM, nil
	}
	return 0, fmt.Errorf("unknown automaton kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Move Head movement of a tape transition.
type Move int8

const (
	MoveLeft  Move = -1
	MoveStay  Move = 0
	MoveRight Move = +1
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "L"
	case MoveRight:
		return "R"
	default:
		return "S"
	}
}

// ParseMove Parses L, R or S.
func ParseMove(s string) (Move, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return MoveLeft, nil
	case "R":
		return MoveRight, nil
	case "S":
		return MoveStay, nil
	}
	return MoveStay, fmt.Errorf("invalid direction %q", s)
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(b []byte) error {
	v, err := ParseMove(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Transition A DFA/NFA move. Symbol may be Epsilon for NFAs.
type Transition struct {
	From   State  `json:"from"`
	Symbol Symbol `json:"symbol"`
	To     State  `json:"to"`
}

func (t Transition) String() string {
	return fmt.Sprintf("%s + %s > %s", t.From, t.Symbol, t.To)
}

// PushdownTransition A PDA move. StackTop is the symbol that must be on top of the
// stack (Epsilon for no requirement); it is popped when it is not Epsilon. Push is
// appended in order, so its last symbol ends up on top.
type PushdownTransition struct {
	From     State    `json:"from"`
	StackTop Symbol   `json:"stackTop"`
	Symbol   Symbol   `json:"symbol"`
	To       State    `json:"to"`
	Push     []Symbol `json:"push,omitempty"`
}

func (t PushdownTransition) String() string {
	push := make([]string, 0, len(t.Push))
	for _, s := range t.Push {
		push = append(push, string(s))
	}
	if len(push) == 0 {
		push = append(push, string(Epsilon))
	}
	return fmt.Sprintf("%s & %s + %s > %s, %s", t.From, t.StackTop, t.Symbol, t.To, strings.Join(push, " "))
}

// TapeTransition A Turing machine move.
type TapeTransition struct {
	From  State  `json:"from"`
	Read  Symbol `json:"read"`
	To    State  `json:"to"`
	Write Symbol `json:"write"`
	Move  Move   `json:"move"`
}

func (t TapeTransition) String() string {
	return fmt.Sprintf("%s & %s > %s, %s, %s", t.From, t.Read, t.To, t.Write, t.Move)
}

// Definition Immutable description of an automaton. The common fields are shared by
// every kind; the transition list that is read depends on Kind:
//
//	KindDFA, KindNFA: Transitions
//	KindPDA:         PushdownTransitions, StackAlphabet
//	KindTM:          TapeTransitions, Tape
//
// States keeps declaration order for display. Transition order is preserved for
// reproducible output only.
type Definition struct {
	Kind      Kind     `json:"kind"`
	States    []State  `json:"states"`
	Alphabet  []Symbol `json:"alphabet"`
	Initial   State    `json:"initial"`
	Accepting []State  `json:"accepting"`

	Transitions []Transition `json:"transitions,omitempty"`

	StackAlphabet       []Symbol             `json:"stackAlphabet,omitempty"`
	PushdownTransitions []PushdownTransition `json:"pushdownTransitions,omitempty"`

	Tape            []Symbol         `json:"tape,omitempty"`
	TapeTransitions []TapeTransition `json:"tapeTransitions,omitempty"`
}

// NumTransitions How many transitions of the definition's kind are declared.
func (d *Definition) NumTransitions() int {
	switch d.Kind {
	case KindPDA:
		return len(d.PushdownTransitions)
	case KindTM:
		return len(d.TapeTransitions)
	default:
		return len(d.Transitions)
	}
}

// IsAccept Returns true if state is declared accepting.
func (d *Definition) IsAccept(state State) bool {
	for _, s := range d.Accepting {
		if s == state {
			return true
		}
	}
	return false
}

// Clone Returns a deep copy, so callers can derive a new definition without sharing
// slices with d.
func (d *Definition) Clone() *Definition {
	c := *d
	c.States = append([]State(nil), d.States...)
	c.Alphabet = append([]Symbol(nil), d.Alphabet...)
	c.Accepting = append([]State(nil), d.Accepting...)
	c.Transitions = append([]Transition(nil), d.Transitions...)
	c.StackAlphabet = append([]Symbol(nil), d.StackAlphabet...)
	c.PushdownTransitions = make([]PushdownTransition, len(d.PushdownTransitions))
	for i, t := range d.PushdownTransitions {
		t.Push = append([]Symbol(nil), t.Push...)
		c.PushdownTransitions[i] = t
	}
	if d.PushdownTransitions == nil {
		c.PushdownTransitions = nil
	}
	c.Tape = append([]Symbol(nil), d.Tape...)
	c.TapeTransitions = append([]TapeTransition(nil), d.TapeTransitions...)
	return &c
}

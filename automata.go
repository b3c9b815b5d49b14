package automaton

// Builder Assembles a Definition declaration by declaration. States and symbols are
// kept in first-declaration order and repeated declarations are ignored, so a state
// may be declared once per role. Finish validates the result.
type Builder struct {
	def      Definition
	states   map[State]struct{}
	symbols  map[Symbol]struct{}
	stack    map[Symbol]struct{}
	accepts  map[State]struct{}
	initials []State
}

func NewBuilder(kind Kind) *Builder {
	return &Builder{
		def:     Definition{Kind: kind},
		states:  make(map[State]struct{}),
		symbols: make(map[Symbol]struct{}),
		stack:   make(map[Symbol]struct{}),
		accepts: make(map[State]struct{}),
	}
}

// CreateState Declares a state.
func (b *Builder) CreateState(s State) *Builder {
	if _, ok := b.states[s]; !ok {
		b.states[s] = struct{}{}
		b.def.States = append(b.def.States, s)
	}
	return b
}

// SetInitial Declares s and marks it initial. Marking two different states initial
// makes Finish fail.
func (b *Builder) SetInitial(s State) *Builder {
	b.CreateState(s)
	for _, i := range b.initials {
		if i == s {
			return b
		}
	}
	b.initials = append(b.initials, s)
	return b
}

// SetAccept Declares s and sets or clears it as an accept state.
func (b *Builder) SetAccept(s State, accept bool) *Builder {
	b.CreateState(s)
	_, ok := b.accepts[s]
	switch {
	case accept && !ok:
		b.accepts[s] = struct{}{}
		b.def.Accepting = append(b.def.Accepting, s)
	case !accept && ok:
		delete(b.accepts, s)
		kept := b.def.Accepting[:0]
		for _, a := range b.def.Accepting {
			if a != s {
				kept = append(kept, a)
			}
		}
		b.def.Accepting = kept
	}
	return b
}

// AddSymbols Declares input symbols. Epsilon aliases are skipped, they are never
// part of an alphabet.
func (b *Builder) AddSymbols(symbols ...Symbol) *Builder {
	for _, s := range symbols {
		if IsEpsilon(s) {
			continue
		}
		if _, ok := b.symbols[s]; !ok {
			b.symbols[s] = struct{}{}
			b.def.Alphabet = append(b.def.Alphabet, s)
		}
	}
	return b
}

// AddStackSymbols Declares PDA stack symbols.
func (b *Builder) AddStackSymbols(symbols ...Symbol) *Builder {
	for _, s := range symbols {
		if IsEpsilon(s) {
			continue
		}
		if _, ok := b.stack[s]; !ok {
			b.stack[s] = struct{}{}
			b.def.StackAlphabet = append(b.def.StackAlphabet, s)
		}
	}
	return b
}

// AddTransition Adds a DFA/NFA move; symbol may be Epsilon.
func (b *Builder) AddTransition(from State, symbol Symbol, to State) *Builder {
	b.def.Transitions = append(b.def.Transitions, Transition{
		From:   from,
		Symbol: NormalizeSymbol(string(symbol)),
		To:     to,
	})
	return b
}

// AddPushdownTransition Adds a PDA move. push is appended in order, the last symbol
// ends on top.
func (b *Builder) AddPushdownTransition(from State, stackTop, symbol Symbol, to State, push ...Symbol) *Builder {
	seq := make([]Symbol, 0, len(push))
	for _, s := range push {
		if !IsEpsilon(s) {
			seq = append(seq, s)
		}
	}
	b.def.PushdownTransitions = append(b.def.PushdownTransitions, PushdownTransition{
		From:     from,
		StackTop: NormalizeSymbol(string(stackTop)),
		Symbol:   NormalizeSymbol(string(symbol)),
		To:       to,
		Push:     seq,
	})
	return b
}

// AddTapeTransition Adds a Turing machine move.
func (b *Builder) AddTapeTransition(from State, read Symbol, to State, write Symbol, move Move) *Builder {
	b.def.TapeTransitions = append(b.def.TapeTransitions, TapeTransition{
		From:  from,
		Read:  read,
		To:    to,
		Write: write,
		Move:  move,
	})
	return b
}

// AppendTape Appends cells to the initial band of a Turing machine.
func (b *Builder) AppendTape(cells ...Symbol) *Builder {
	b.def.Tape = append(b.def.Tape, cells...)
	return b
}

// Finish Returns a validated copy of the definition built so far.
func (b *Builder) Finish() (*Definition, error) {
	switch len(b.initials) {
	case 0:
		return nil, malformed("States", "", "initial state is not defined")
	case 1:
		b.def.Initial = b.initials[0]
	default:
		return nil, malformed("States", string(b.initials[1]),
			"multiple initial states found: %s and %s", b.initials[0], b.initials[1])
	}

	def := b.def.Clone()
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

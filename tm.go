package automaton

import (
	"fmt"
	"strings"
)

// TapeResult The final configuration of a Turing machine run.
type TapeResult struct {
	Verdict Verdict
	State   State
	Tape    []Symbol
	Head    int
	Steps   int
}

func (r *TapeResult) Accepted() bool {
	return r.Verdict == Accepted
}

// String Renders the configuration as "state: a b [c] d" with the head cell in
// brackets. A head outside the tape is shown after the cells.
func (r *TapeResult) String() string {
	return renderTape(r.State, r.Tape, r.Head)
}

func renderTape(state State, tape []Symbol, head int) string {
	var sb strings.Builder
	sb.WriteString(string(state))
	sb.WriteString(":")
	for i, s := range tape {
		sb.WriteByte(' ')
		if i == head {
			sb.WriteString("[" + string(s) + "]")
		} else {
			sb.WriteString(string(s))
		}
	}
	if head < 0 || head >= len(tape) {
		fmt.Fprintf(&sb, " @%d", head)
	}
	return sb.String()
}

// Execute Runs a Turing machine deterministically from its initial state with the
// head on cell 0. The band is input, or the definition's band when input is empty;
// the definition itself is never modified.
//
// The run accepts when an accepting state is entered, rejects when no transition
// matches the current state and read symbol, and times out once the step budget
// (WithStepLimit) is spent. Reading outside the tape fails with
// ErrHeadOutOfBounds; the tape is not extended.
func (a *Automaton) Execute(input []Symbol, opts ...RunOption) (*TapeResult, error) {
	if a.Kind() != KindTM {
		return nil, fmt.Errorf("%w: execute needs a tm, have %s", ErrWrongKind, a.Kind())
	}
	options := newRunOptions(opts...)

	var tape []Symbol
	if len(input) > 0 {
		if err := a.checkInput(input); err != nil {
			return nil, err
		}
		tape = append(tape, input...)
	} else {
		tape = append(tape, a.def.Tape...)
	}

	res := &TapeResult{Tape: tape}
	state := a.initial
	head := 0
	options.emit(0, Epsilon, []string{renderTape(a.states[state], tape, head)})

	for !a.IsAccept(state) && res.Steps < options.stepLimit {
		if head < 0 || head >= len(tape) {
			res.State, res.Head, res.Verdict = a.states[state], head, Rejected
			return res, fmt.Errorf("%w: position %d of %d cells in state %s after %d steps",
				ErrHeadOutOfBounds, head, len(tape), a.states[state], res.Steps)
		}

		read := tape[head]
		edge, ok := a.findTapeEdge(state, read)
		if !ok {
			res.State, res.Head, res.Verdict = a.states[state], head, Rejected
			return res, nil
		}

		tape[head] = edge.write
		head += int(edge.move)
		state = edge.dest
		res.Steps++
		options.emit(res.Steps, read, []string{renderTape(a.states[state], tape, head)})
	}

	res.State, res.Head = a.states[state], head
	if a.IsAccept(state) {
		res.Verdict = Accepted
	} else {
		res.Verdict = TimedOut
	}
	return res, nil
}

// findTapeEdge Returns the first declared transition for (state, read).
func (a *Automaton) findTapeEdge(state int, read Symbol) (tapeEdge, bool) {
	for _, e := range a.tape[state] {
		if e.read == read {
			return e, true
		}
	}
	return tapeEdge{}, false
}

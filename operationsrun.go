package automaton

import (
	"fmt"
	"strings"
)

// Verdict The outcome of a run.
type Verdict int

const (
	Accepted = Verdict(iota)
	Rejected // input consumed but no accepting configuration, or no move possible
	TimedOut // Turing machine step budget exhausted
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "ACCEPTED"
	case Rejected:
		return "REJECTED"
	case TimedOut:
		return "TIMEOUT"
	}
	return fmt.Sprintf("verdict(%d)", int(v))
}

// Result The outcome of running a finite or pushdown automaton on a word.
type Result struct {
	Verdict Verdict
	// Consumed How many input symbols were read before the run ended. It is less
	// than the input length when the configuration set became empty.
	Consumed int
	// Final The rendered configurations left after the last step, empty on a
	// rejection by an empty configuration set.
	Final []string
}

func (r *Result) Accepted() bool {
	return r.Verdict == Accepted
}

// Run Decides whether a finite automaton accepts the word, simulating all
// configurations at once. A Turing machine is executed on the word as its band
// (its own band when input is empty) and a pushdown automaton is delegated to
// RunPushdown.
func (a *Automaton) Run(input []Symbol, opts ...RunOption) (*Result, error) {
	switch a.Kind() {
	case KindPDA:
		return a.RunPushdown(input, opts...)
	case KindTM:
		res, err := a.Execute(input, opts...)
		if err != nil {
			return nil, err
		}
		return &Result{Verdict: res.Verdict, Consumed: res.Steps, Final: []string{res.String()}}, nil
	}

	if err := a.checkInput(input); err != nil {
		return nil, err
	}
	options := newRunOptions(opts...)
	sys := finiteMoves{a}

	current, err := epsilonClosure[StateConfig](sys, NewConfigSet(StateConfig(a.initial)), options.closureLimit)
	if err != nil {
		return nil, err
	}
	options.emit(0, Epsilon, a.renderStates(current))

	for i, symbol := range input {
		next := stepSet[StateConfig](sys, current, symbol)
		if next.IsEmpty() {
			options.emit(i+1, symbol, nil)
			return &Result{Verdict: Rejected, Consumed: i}, nil
		}
		if current, err = epsilonClosure[StateConfig](sys, next, options.closureLimit); err != nil {
			return nil, err
		}
		options.emit(i+1, symbol, a.renderStates(current))
	}

	res := &Result{Verdict: Rejected, Consumed: len(input), Final: a.renderStates(current)}
	for _, c := range current.Sorted() {
		if a.IsAccept(int(c)) {
			res.Verdict = Accepted
			break
		}
	}
	return res, nil
}

// Accepts Reports whether the automaton accepts the word.
func (a *Automaton) Accepts(input []Symbol, opts ...RunOption) (bool, error) {
	res, err := a.Run(input, opts...)
	if err != nil {
		return false, err
	}
	return res.Accepted(), nil
}

// Run Compiles def and runs it on the space separated word s.
func Run(def *Definition, s string, opts ...RunOption) (bool, error) {
	a, err := Compile(def)
	if err != nil {
		return false, err
	}
	return a.Accepts(Word(s), opts...)
}

// Word Splits a space separated word into symbols.
func Word(s string) []Symbol {
	fields := strings.Fields(s)
	word := make([]Symbol, 0, len(fields))
	for _, f := range fields {
		word = append(word, Symbol(f))
	}
	return word
}

// renderStates Renders a finite configuration set as state names in declaration
// order.
func (a *Automaton) renderStates(set *ConfigSet[StateConfig]) []string {
	ids := FreezeStates(set, a.GetNumStates()).GetArray()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(a.states[id]))
	}
	return out
}

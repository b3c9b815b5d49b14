package automaton

import (
	"fmt"
	"strings"
)

// RunPushdown Simulates a pushdown automaton on the word as a sequence of
// configuration sets. The run rejects as soon as a symbol leaves no configuration;
// otherwise it accepts iff a final configuration is in an accepting state, whatever
// its stack holds.
func (a *Automaton) RunPushdown(input []Symbol, opts ...RunOption) (*Result, error) {
	if a.Kind() != KindPDA {
		return nil, fmt.Errorf("%w: pushdown run needs a pda, have %s", ErrWrongKind, a.Kind())
	}
	if err := a.checkInput(input); err != nil {
		return nil, err
	}
	options := newRunOptions(opts...)
	sys := pushdownMoves{a: a, mode: options.stackMatch}

	start := NewConfigSet(PushdownConfig{State: a.initial})
	current, err := epsilonClosure[PushdownConfig](sys, start, options.closureLimit)
	if err != nil {
		return nil, err
	}
	options.emit(0, Epsilon, a.renderPushdown(current))

	for i, symbol := range input {
		next := stepSet[PushdownConfig](sys, current, symbol)
		if next.IsEmpty() {
			options.emit(i+1, symbol, nil)
			return &Result{Verdict: Rejected, Consumed: i}, nil
		}
		if current, err = epsilonClosure[PushdownConfig](sys, next, options.closureLimit); err != nil {
			return nil, err
		}
		options.emit(i+1, symbol, a.renderPushdown(current))
	}

	res := &Result{Verdict: Rejected, Consumed: len(input), Final: a.renderPushdown(current)}
	for _, c := range current.Sorted() {
		if a.IsAccept(c.State) {
			res.Verdict = Accepted
			break
		}
	}
	return res, nil
}

// renderPushdown Renders configurations as "state [bottom ... top]".
func (a *Automaton) renderPushdown(set *ConfigSet[PushdownConfig]) []string {
	configs := set.Sorted()
	out := make([]string, 0, len(configs))
	for _, c := range configs {
		stack := make([]string, 0, len(c.Stack))
		for _, s := range c.Stack {
			stack = append(stack, string(s))
		}
		out = append(out, fmt.Sprintf("%s [%s]", a.states[c.State], strings.Join(stack, " ")))
	}
	return out
}

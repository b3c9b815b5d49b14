package automaton

import (
	"fmt"

	u "github.com/araddon/gou"
)

// moveSystem The transition relation of a nondeterministic automaton over its
// configurations. The closure and the stepper are written once against it.
type moveSystem[C Configuration] interface {
	// epsilonMoves Configurations reachable from c without consuming input.
	epsilonMoves(c C) []C
	// symbolMoves Configurations reachable from c by consuming symbol.
	symbolMoves(c C, symbol Symbol) []C
}

// epsilonClosure Returns the smallest superset of start closed under epsilon moves.
// Configurations are marked before expansion; a closure that grows past limit
// configurations fails with ErrUnboundedClosure.
func epsilonClosure[C Configuration](sys moveSystem[C], start *ConfigSet[C], limit int) (*ConfigSet[C], error) {
	closure := NewConfigSet[C]()
	work := start.Sorted()

	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]

		if !closure.Add(c) {
			continue
		}
		if closure.Size() > limit {
			u.Debugf("closure stopped at %d configurations, last %s", closure.Size(), c.Key())
			return nil, fmt.Errorf("%w: more than %d configurations", ErrUnboundedClosure, limit)
		}

		for _, next := range sys.epsilonMoves(c) {
			if !closure.Contains(next) {
				work = append(work, next)
			}
		}
	}
	return closure, nil
}

// stepSet Returns every configuration reachable from set by consuming exactly
// symbol once. An empty result means the symbol is rejected from set.
func stepSet[C Configuration](sys moveSystem[C], set *ConfigSet[C], symbol Symbol) *ConfigSet[C] {
	next := NewConfigSet[C]()
	for _, c := range set.Sorted() {
		for _, n := range sys.symbolMoves(c, symbol) {
			next.Add(n)
		}
	}
	return next
}

type finiteMoves struct {
	a *Automaton
}

func (m finiteMoves) epsilonMoves(c StateConfig) []StateConfig {
	return m.symbolMoves(c, Epsilon)
}

func (m finiteMoves) symbolMoves(c StateConfig, symbol Symbol) []StateConfig {
	var out []StateConfig
	for _, e := range m.a.finite[c] {
		if e.symbol == symbol {
			out = append(out, StateConfig(e.dest))
		}
	}
	return out
}

type pushdownMoves struct {
	a    *Automaton
	mode StackMatch
}

func (m pushdownMoves) epsilonMoves(c PushdownConfig) []PushdownConfig {
	return m.symbolMoves(c, Epsilon)
}

func (m pushdownMoves) symbolMoves(c PushdownConfig, symbol Symbol) []PushdownConfig {
	var out []PushdownConfig
	for _, e := range m.a.pushdown[c.State] {
		if e.symbol != symbol {
			continue
		}
		if next, ok := m.apply(c, e); ok {
			out = append(out, next)
		}
	}
	return out
}

// apply Checks the stack requirement of e against c and performs the pop and push.
func (m pushdownMoves) apply(c PushdownConfig, e pushdownEdge) (PushdownConfig, bool) {
	top, nonEmpty := c.Top()
	keep := len(c.Stack)

	if e.stackTop == Epsilon {
		if m.mode == StackMatchEmpty && nonEmpty {
			return PushdownConfig{}, false
		}
	} else {
		if !nonEmpty || top != e.stackTop {
			return PushdownConfig{}, false
		}
		keep--
	}

	stack := make([]Symbol, 0, keep+len(e.push))
	stack = append(stack, c.Stack[:keep]...)
	stack = append(stack, e.push...)
	return PushdownConfig{State: e.dest, Stack: stack}, true
}

// Closure Returns the epsilon closure of a set of finite automaton configurations.
func (a *Automaton) Closure(set *ConfigSet[StateConfig], opts ...RunOption) (*ConfigSet[StateConfig], error) {
	if err := a.requireFinite(); err != nil {
		return nil, err
	}
	options := newRunOptions(opts...)
	return epsilonClosure[StateConfig](finiteMoves{a}, set, options.closureLimit)
}

// Step Returns the configurations reachable from set by consuming symbol once. The
// result is not closed under epsilon moves.
func (a *Automaton) Step(set *ConfigSet[StateConfig], symbol Symbol) (*ConfigSet[StateConfig], error) {
	if err := a.requireFinite(); err != nil {
		return nil, err
	}
	if err := a.checkInput([]Symbol{symbol}); err != nil {
		return nil, err
	}
	return stepSet[StateConfig](finiteMoves{a}, set, symbol), nil
}

// PushdownClosure Returns the epsilon closure of a set of PDA configurations.
func (a *Automaton) PushdownClosure(set *ConfigSet[PushdownConfig], opts ...RunOption) (*ConfigSet[PushdownConfig], error) {
	if a.Kind() != KindPDA {
		return nil, fmt.Errorf("%w: closure over stacks needs a pda, have %s", ErrWrongKind, a.Kind())
	}
	options := newRunOptions(opts...)
	return epsilonClosure[PushdownConfig](pushdownMoves{a, options.stackMatch}, set, options.closureLimit)
}

// PushdownStep Returns the PDA configurations reachable from set by consuming
// symbol once, before closure.
func (a *Automaton) PushdownStep(set *ConfigSet[PushdownConfig], symbol Symbol, opts ...RunOption) (*ConfigSet[PushdownConfig], error) {
	if a.Kind() != KindPDA {
		return nil, fmt.Errorf("%w: stepping stacks needs a pda, have %s", ErrWrongKind, a.Kind())
	}
	if err := a.checkInput([]Symbol{symbol}); err != nil {
		return nil, err
	}
	options := newRunOptions(opts...)
	return stepSet[PushdownConfig](pushdownMoves{a, options.stackMatch}, set, symbol), nil
}

func (a *Automaton) requireFinite() error {
	if a.Kind() != KindDFA && a.Kind() != KindNFA {
		return fmt.Errorf("%w: need a dfa or nfa, have %s", ErrWrongKind, a.Kind())
	}
	return nil
}

package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/geange/automaton/v2"
)

var errFormat = errors.New("invalid transition format")

func parseTransition(b *automaton.Builder, kind automaton.Kind, line string) error {
	switch kind {
	case automaton.KindPDA:
		return parsePushdown(b, line)
	case automaton.KindTM:
		return parseTape(b, line)
	default:
		return parseFinite(b, line)
	}
}

// cut Splits s around the only occurrence of sep.
func cut(s, sep string) (string, string, error) {
	if strings.Count(s, sep) != 1 {
		return "", "", fmt.Errorf("%w: expected exactly one %q", errFormat, sep)
	}
	before, after, _ := strings.Cut(s, sep)
	return strings.TrimSpace(before), strings.TrimSpace(after), nil
}

func nonEmpty(fields ...string) error {
	for _, f := range fields {
		if f == "" {
			return fmt.Errorf("%w: empty field", errFormat)
		}
	}
	return nil
}

// parseFinite FROM + SYMBOL > TO
func parseFinite(b *automaton.Builder, line string) error {
	lhs, to, err := cut(line, ">")
	if err != nil {
		return err
	}
	from, symbol, err := cut(lhs, "+")
	if err != nil {
		return err
	}
	if err := nonEmpty(from, symbol, to); err != nil {
		return err
	}
	b.AddTransition(automaton.State(from), automaton.NormalizeSymbol(symbol), automaton.State(to))
	return nil
}

// parsePushdown FROM & STACKTOP + SYMBOL > TO, PUSH1 PUSH2 ...
func parsePushdown(b *automaton.Builder, line string) error {
	lhs, rhs, err := cut(line, ">")
	if err != nil {
		return err
	}
	cond, symbol, err := cut(lhs, "+")
	if err != nil {
		return err
	}
	from, top, err := cut(cond, "&")
	if err != nil {
		return err
	}
	to, pushList, ok := strings.Cut(rhs, ",")
	if !ok {
		return fmt.Errorf("%w: expected TO, PUSH after %q", errFormat, ">")
	}
	to = strings.TrimSpace(to)
	if err := nonEmpty(from, top, symbol, to); err != nil {
		return err
	}

	var push []automaton.Symbol
	for _, f := range strings.Fields(pushList) {
		push = append(push, automaton.NormalizeSymbol(f))
	}
	b.AddPushdownTransition(automaton.State(from), automaton.NormalizeSymbol(top),
		automaton.NormalizeSymbol(symbol), automaton.State(to), push...)
	return nil
}

// parseTape FROM & SYMBOL > TO, WRITE, DIRECTION
func parseTape(b *automaton.Builder, line string) error {
	lhs, rhs, err := cut(line, ">")
	if err != nil {
		return err
	}
	from, read, err := cut(lhs, "&")
	if err != nil {
		return err
	}
	parts := strings.Split(rhs, ",")
	if len(parts) != 3 {
		return fmt.Errorf("%w: expected state & symbol > next_state, write, direction", errFormat)
	}
	to, write, dir := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
	if err := nonEmpty(from, read, to, write, dir); err != nil {
		return err
	}
	move, err := automaton.ParseMove(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", errFormat, err)
	}
	b.AddTapeTransition(automaton.State(from), automaton.Symbol(read), automaton.State(to),
		automaton.Symbol(write), move)
	return nil
}

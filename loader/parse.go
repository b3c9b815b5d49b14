package loader

import (
	"io"
	"strings"

	u "github.com/araddon/gou"

	"github.com/geange/automaton/v2"
)

const (
	roleInitial = "initial"
	roleAccept  = "accept"
)

// Parse Reads a definition of the given kind in the section format:
//
//	[Symbols]     comma separated symbols
//	[States]      one state per line, optionally suffixed -initial or -accept
//	[Transitions] DFA/NFA: FROM + SYMBOL > TO
//	              PDA:     FROM & STACKTOP + SYMBOL > TO, PUSH1 PUSH2 ...
//	              TM:      FROM & SYMBOL > TO, WRITE, L|R|S
//	[Stack]       comma separated stack symbols (PDA)
//	[Band]        whitespace separated initial tape (TM)
//
// every section closed by a DONE line. The result is validated; the first malformed
// declaration is reported with its line number.
func Parse(kind automaton.Kind, r io.Reader) (*automaton.Definition, error) {
	sections, err := ReadSections(r)
	if err != nil {
		return nil, err
	}
	return Build(kind, sections)
}

// Build Assembles a validated definition from already split sections.
func Build(kind automaton.Kind, sections *Sections) (*automaton.Definition, error) {
	b := automaton.NewBuilder(kind)

	for _, name := range sections.Names() {
		switch strings.ToUpper(name) {
		case "SYMBOLS", "STATES", "TRANSITIONS":
		case "STACK":
			if kind != automaton.KindPDA {
				u.Warnf("section [%s] is only used by a pda, ignoring it for a %s", name, kind)
			}
		case "BAND":
			if kind != automaton.KindTM {
				u.Warnf("section [%s] is only used by a tm, ignoring it for a %s", name, kind)
			}
		default:
			u.Warnf("unrecognized section [%s] in %s file", name, kind)
		}
	}

	if sec, ok := sections.Get("Symbols"); ok {
		b.AddSymbols(splitList(sec.Lines)...)
	}
	if sec, ok := sections.Get("States"); ok {
		if err := parseStates(b, sec); err != nil {
			return nil, err
		}
	}
	if kind == automaton.KindPDA {
		if sec, ok := sections.Get("Stack"); ok {
			b.AddStackSymbols(splitList(sec.Lines)...)
		}
	}
	if kind == automaton.KindTM {
		if sec, ok := sections.Get("Band"); ok {
			for _, line := range sec.Lines {
				for _, f := range strings.Fields(line) {
					b.AppendTape(automaton.Symbol(f))
				}
			}
		}
	}
	if sec, ok := sections.Get("Transitions"); ok {
		for i, line := range sec.Lines {
			if err := parseTransition(b, kind, line); err != nil {
				return nil, sectionError(sec.Name, line, sec.LineNumbers[i], err.Error())
			}
		}
	}

	return b.Finish()
}

// splitList Splits comma separated lines into symbols, dropping blanks. Epsilon
// aliases are normalized here and later skipped by the builder.
func splitList(lines []string) []automaton.Symbol {
	var out []automaton.Symbol
	for _, line := range lines {
		for _, f := range strings.Split(line, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			sym := automaton.NormalizeSymbol(f)
			if sym == automaton.Epsilon {
				u.Debugf("dropping %q from declared symbols", f)
			}
			out = append(out, sym)
		}
	}
	return out
}

// parseStates Reads "name", "name-initial", "name-accept" or both roles chained.
// Roles are taken off the end of the line, so a name may itself contain '-'.
func parseStates(b *automaton.Builder, sec *Section) error {
	for i, line := range sec.Lines {
		name, roles := splitRoles(line)
		if name == "" {
			return sectionError(sec.Name, line, sec.LineNumbers[i], "empty state name")
		}
		state := automaton.State(name)
		b.CreateState(state)
		for _, role := range roles {
			switch role {
			case roleInitial:
				b.SetInitial(state)
			case roleAccept:
				b.SetAccept(state, true)
			}
		}
	}
	return nil
}

// splitRoles Strips trailing -initial and -accept suffixes, in any order.
func splitRoles(line string) (string, []string) {
	name := strings.TrimSpace(line)
	var roles []string
	for {
		i := strings.LastIndex(name, "-")
		if i < 0 {
			break
		}
		role := strings.ToLower(strings.TrimSpace(name[i+1:]))
		if role != roleInitial && role != roleAccept {
			break
		}
		roles = append(roles, role)
		name = strings.TrimSpace(name[:i])
	}
	return name, roles
}

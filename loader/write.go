package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geange/automaton/v2"
)

// WriteText Writes def in the section format read by Parse. A state that is both
// initial and accepting is declared on two lines, one per role.
func WriteText(w io.Writer, def *automaton.Definition) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "[States]")
	for _, s := range def.States {
		initial := s == def.Initial
		accept := def.IsAccept(s)
		switch {
		case initial && accept:
			fmt.Fprintf(bw, "%s-%s\n%s-%s\n", s, roleInitial, s, roleAccept)
		case initial:
			fmt.Fprintf(bw, "%s-%s\n", s, roleInitial)
		case accept:
			fmt.Fprintf(bw, "%s-%s\n", s, roleAccept)
		default:
			fmt.Fprintf(bw, "%s\n", s)
		}
	}
	fmt.Fprint(bw, "DONE\n\n")

	fmt.Fprintln(bw, "[Symbols]")
	fmt.Fprintln(bw, joinSymbols(def.Alphabet, ", "))
	fmt.Fprint(bw, "DONE\n\n")

	switch def.Kind {
	case automaton.KindPDA:
		fmt.Fprintln(bw, "[Stack]")
		fmt.Fprintln(bw, joinSymbols(def.StackAlphabet, ", "))
		fmt.Fprint(bw, "DONE\n\n")
	case automaton.KindTM:
		fmt.Fprintln(bw, "[Band]")
		fmt.Fprintln(bw, joinSymbols(def.Tape, " "))
		fmt.Fprint(bw, "DONE\n\n")
	}

	fmt.Fprintln(bw, "[Transitions]")
	switch def.Kind {
	case automaton.KindPDA:
		for _, t := range def.PushdownTransitions {
			fmt.Fprintln(bw, t.String())
		}
	case automaton.KindTM:
		for _, t := range def.TapeTransitions {
			fmt.Fprintln(bw, t.String())
		}
	default:
		for _, t := range def.Transitions {
			fmt.Fprintln(bw, t.String())
		}
	}
	fmt.Fprintln(bw, "DONE")

	return bw.Flush()
}

func joinSymbols(symbols []automaton.Symbol, sep string) string {
	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, sep)
}

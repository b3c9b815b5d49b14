package main

import (
	"fmt"
	"io"
	"strings"

	u "github.com/araddon/gou"
	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/olekukonko/tablewriter"

	"github.com/geange/automaton/v2"
	"github.com/geange/automaton/v2/loader"
)

func parseStackMatch(s string) (automaton.StackMatch, error) {
	switch strings.ToLower(s) {
	case "empty":
		return automaton.StackMatchEmpty, nil
	case "wildcard":
		return automaton.StackMatchWildcard, nil
	}
	return automaton.StackMatchEmpty, fmt.Errorf("unknown stack match %q", s)
}

// promptWord Asks for the input word on the terminal.
func promptWord() (string, error) {
	prompt := promptui.Prompt{
		Label: "Input (space separated symbols)",
	}
	return prompt.Run()
}

// runCommand Runs def on word, printing every step and then the verdict. An empty
// word is prompted for, except for a turing machine which then uses its own band.
func runCommand(w io.Writer, def *automaton.Definition, word string, opts ...automaton.RunOption) error {
	a, err := automaton.Compile(def)
	if err != nil {
		return err
	}
	if word == "" && def.Kind != automaton.KindTM {
		if word, err = promptWord(); err != nil {
			return err
		}
	}

	runID := uuid.New().String()
	u.Infof("run %s: %s on %q", runID, def.Kind, word)

	opts = append(opts, automaton.WithTrace(func(step automaton.Step) {
		if len(step.Configurations) == 0 {
			fmt.Fprintf(w, "%3d %-8s (none)\n", step.Index, step.Symbol)
			return
		}
		fmt.Fprintf(w, "%3d %-8s %s\n", step.Index, step.Symbol, strings.Join(step.Configurations, " | "))
	}))
	res, err := a.Run(automaton.Word(word), opts...)
	if err != nil {
		return err
	}

	u.Infof("run %s: %s after %d", runID, res.Verdict, res.Consumed)
	fmt.Fprintln(w, res.Verdict)
	return nil
}

// determinizeCommand Converts an NFA and writes the DFA to out, or to w in format
// when out is empty. The subset behind every DFA state is printed to w as well. An
// NFA whose accepting states are unreachable is refused, nothing is written.
func determinizeCommand(w io.Writer, def *automaton.Definition, out, format string) error {
	det, err := automaton.Determinize(def)
	if err != nil {
		return err
	}
	u.Infof("determinized %d states into %d", len(def.States), len(det.DFA.States))
	if len(det.DFA.Accepting) == 0 {
		return fmt.Errorf("no accepting state is reachable from %s, the dfa accepts no word and could not be loaded again",
			def.Initial)
	}

	if out != "" {
		if err := loader.Save(out, det.DFA); err != nil {
			return err
		}
	} else if err := writeFormat(w, det.DFA, format); err != nil {
		return err
	}

	for _, s := range det.DFA.States {
		subset := make([]string, 0, len(det.StateMap[s]))
		for _, q := range det.StateMap[s] {
			subset = append(subset, string(q))
		}
		fmt.Fprintf(w, "# %s = {%s}\n", s, strings.Join(subset, ", "))
	}
	return nil
}

func writeFormat(w io.Writer, def *automaton.Definition, format string) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(format) {
	case "text":
		return loader.WriteText(w, def)
	case "yaml":
		b, err = loader.MarshalYAML(def)
	case "json":
		b, err = loader.MarshalJSON(def)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// showCommand Prints a summary of def followed by its transition table.
func showCommand(w io.Writer, def *automaton.Definition) error {
	fmt.Fprintf(w, "kind: %s\n", def.Kind)
	fmt.Fprintf(w, "initial: %s\n", def.Initial)
	fmt.Fprintf(w, "accepting: %s\n", joinStates(def.Accepting))
	fmt.Fprintf(w, "alphabet: %s\n", joinSymbols(def.Alphabet))
	switch def.Kind {
	case automaton.KindPDA:
		fmt.Fprintf(w, "stack: %s\n", joinSymbols(def.StackAlphabet))
	case automaton.KindTM:
		fmt.Fprintf(w, "band: %s\n", joinSymbols(def.Tape))
	}

	table := tablewriter.NewWriter(w)
	switch def.Kind {
	case automaton.KindPDA:
		table.Header([]string{"From", "Top", "Symbol", "To", "Push"})
		for _, t := range def.PushdownTransitions {
			push := joinSymbols(t.Push)
			if push == "" {
				push = string(automaton.Epsilon)
			}
			if err := table.Append([]string{string(t.From), string(t.StackTop), string(t.Symbol), string(t.To), push}); err != nil {
				return err
			}
		}
	case automaton.KindTM:
		table.Header([]string{"From", "Read", "To", "Write", "Move"})
		for _, t := range def.TapeTransitions {
			if err := table.Append([]string{string(t.From), string(t.Read), string(t.To), string(t.Write), t.Move.String()}); err != nil {
				return err
			}
		}
	default:
		table.Header([]string{"From", "Symbol", "To"})
		for _, t := range def.Transitions {
			if err := table.Append([]string{string(t.From), string(t.Symbol), string(t.To)}); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

func joinStates(states []automaton.State) string {
	parts := make([]string, 0, len(states))
	for _, s := range states {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

func joinSymbols(symbols []automaton.Symbol) string {
	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, " ")
}

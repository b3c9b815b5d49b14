// Command automaton loads automaton definitions and runs, determinizes or prints them.
//
//	automaton -kind nfa run machine.nfa
//	automaton -kind nfa -out machine.dfa determinize machine.nfa
//	automaton -kind pda show brackets.pda
package main

import (
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"

	"github.com/geange/automaton/v2"
	"github.com/geange/automaton/v2/loader"
)

var (
	kindName *string = flag.String("kind", "nfa", "automaton kind [dfa|nfa|pda|tm], ignored for yaml/json files")
	input    *string = flag.String("input", "", "space separated input word, prompted for when empty")
	outFile  *string = flag.String("out", "", "determinize output file, stdout when empty")
	format   *string = flag.String("format", "text", "determinize stdout format [text|yaml|json]")
	steps    *int    = flag.Int("steps", automaton.DefaultStepLimit, "turing machine step budget")
	stack    *string = flag.String("stack", "empty", "what an epsilon stack top matches [empty|wildcard]")
	logLevel *string = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] run|determinize|show <file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	command, path := flag.Arg(0), flag.Arg(1)

	kind, err := automaton.ParseKind(*kindName)
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(2)
	}
	def, err := loader.Load(path, kind)
	if err != nil {
		u.Errorf("could not load %s: %v", path, err)
		os.Exit(1)
	}

	switch command {
	case "run":
		var mode automaton.StackMatch
		if mode, err = parseStackMatch(*stack); err == nil {
			err = runCommand(os.Stdout, def, *input, automaton.WithStepLimit(*steps), automaton.WithStackMatch(mode))
		}
	case "determinize":
		err = determinizeCommand(os.Stdout, def, *outFile, *format)
	case "show":
		err = showCommand(os.Stdout, def)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		u.Errorf("%s %s: %v", command, path, err)
		os.Exit(1)
	}
}

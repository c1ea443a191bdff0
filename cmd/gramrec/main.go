/*
Gramrec loads a context-free grammar from a TOML file and either recognizes a
single token sequence given on the command line, or starts an interactive
session reading one token sequence per line.

Usage:

	gramrec [flags] GRAMMAR_FILE [tokens...]

The flags are:

	-s, --scheme NAME
		Which construction builds the parsing table: one of ll1, lr0, slr1,
		lr1, lalr1. Defaults to lalr1.

	-t, --dump-table
		Print the constructed table and exit without recognizing anything.

	-i, --interactive
		Force an interactive readline session even if tokens were also given
		on the command line.

If no tokens are given on the command line and --interactive isn't forced,
gramrec still starts an interactive session: each line of input is split on
whitespace into a token sequence and recognized, with the result printed.
Type an empty line or send EOF (ctrl-D) to exit.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/arashi/tablegram"
	"github.com/arashi/tablegram/internal/gramfile"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitGrammarError
	ExitRejected
)

var (
	schemeName  = pflag.StringP("scheme", "s", "lalr1", "parsing scheme: ll1, lr0, slr1, lr1, or lalr1")
	dumpTable   = pflag.BoolP("dump-table", "t", false, "print the constructed table and exit")
	interactive = pflag.BoolP("interactive", "i", false, "force an interactive session")
)

func schemeByName(name string) (tablegram.Scheme, error) {
	switch strings.ToLower(name) {
	case "ll1", "ll(1)":
		return tablegram.LL1, nil
	case "lr0", "lr(0)":
		return tablegram.LR0, nil
	case "slr1", "slr(1)":
		return tablegram.SLR1, nil
	case "lr1", "lr(1)":
		return tablegram.LR1, nil
	case "lalr1", "lalr(1)":
		return tablegram.LALR1, nil
	default:
		return 0, fmt.Errorf("unknown scheme %q", name)
	}
}

func main() {
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: gramrec [flags] GRAMMAR_FILE [tokens...]")
		os.Exit(ExitUsageError)
	}

	scheme, err := schemeByName(*schemeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsageError)
	}

	g, err := gramfile.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading grammar: %v\n", err)
		os.Exit(ExitGrammarError)
	}

	if *dumpTable {
		table, err := tablegram.DumpTable(g, scheme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "building %s table: %v\n", scheme, err)
			os.Exit(ExitGrammarError)
		}
		fmt.Println(table)
		return
	}

	rec, err := tablegram.NewRecognizer(g, scheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building %s table: %v\n", scheme, err)
		os.Exit(ExitGrammarError)
	}

	tokens := args[1:]
	if len(tokens) > 0 && !*interactive {
		if err := rec.Recognize(tokens); err != nil {
			fmt.Fprintf(os.Stderr, "rejected: %v\n", err)
			os.Exit(ExitRejected)
		}
		fmt.Println("accepted")
		return
	}

	runInteractive(rec)
}

func runInteractive(rec tablegram.Recognizer) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "tokens> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "starting interactive session: %v\n", err)
		os.Exit(ExitUsageError)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		tokens := strings.Fields(line)
		if err := rec.Recognize(tokens); err != nil {
			fmt.Printf("rejected: %v\n", err)
			continue
		}
		fmt.Println("accepted")
	}
}

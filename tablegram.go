// Package tablegram builds parsing tables for context-free grammars under
// five classical schemes, and uses them to recognize whether a token stream
// belongs to the grammar's language. It stops at recognition: there is no
// lexer, no parse tree, and no semantic actions here, only accept or a
// descriptive rejection.
package tablegram

import (
	"fmt"

	"github.com/arashi/tablegram/internal/grammar"
	"github.com/arashi/tablegram/internal/parse"
)

// Production is a single grammar rule A -> X1 X2 ... Xn. An empty or nil Rhs,
// and a Rhs of exactly [grammar.EpsilonSymbol], are equivalent ways to write
// a rule that derives the empty string.
type Production = grammar.Production

// NewProduction builds a Production, normalizing a nil, empty, or
// [grammar.EpsilonSymbol] rhs to the same empty right-hand side.
func NewProduction(nonTerminal string, rhs []string) Production {
	return grammar.NewProduction(nonTerminal, rhs)
}

// Grammar is an immutable context-free grammar built by NewGrammar.
type Grammar = grammar.Grammar

// Scheme selects which construction builds the parsing table.
type Scheme int

const (
	// LR0 builds a table with no lookahead: a state with both a shift item
	// and a reduce item, or two reduce items, is always a conflict.
	LR0 Scheme = iota
	// SLR1 refines LR0 by restricting each reduce to the FOLLOW set of its
	// non-terminal.
	SLR1
	// LR1 builds the full canonical collection of LR(1) item sets, carrying
	// a distinct lookahead per item.
	LR1
	// LALR1 builds the canonical LR(1) automaton and merges states sharing
	// an LR(0) core, unioning their lookaheads.
	LALR1
	// LL1 builds a top-down predictive table instead of a shift-reduce one.
	LL1
)

func (s Scheme) String() string {
	switch s {
	case LR0:
		return "LR(0)"
	case SLR1:
		return "SLR(1)"
	case LR1:
		return "LR(1)"
	case LALR1:
		return "LALR(1)"
	case LL1:
		return "LL(1)"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// NewGrammar builds a Grammar from an ordered list of productions and a
// start symbol, inferring the terminal and non-terminal alphabets from the
// productions themselves.
func NewGrammar(productions []Production, start string) (Grammar, error) {
	return grammar.New(productions, start)
}

// Recognizer accepts or rejects a token stream against the grammar and
// scheme it was built for. An implicit end-of-input marker follows the last
// token; callers never append one themselves.
type Recognizer interface {
	// Recognize returns nil if tokens is in the grammar's language, or a
	// descriptive error (see the parseerr package) identifying where
	// recognition failed otherwise.
	Recognize(tokens []string) error
}

// NewRecognizer builds the parsing table for g under scheme and returns a
// Recognizer driving it. Table construction can fail if g is not in the
// class scheme requires: a shift/reduce or reduce/reduce conflict for the
// four LR family schemes, or a FIRST/FIRST or FIRST/FOLLOW collision for
// LL1.
func NewRecognizer(g Grammar, scheme Scheme) (Recognizer, error) {
	switch scheme {
	case LR0:
		t, err := parse.BuildLR0Table(g)
		if err != nil {
			return nil, err
		}
		return parse.NewLRRecognizer(t), nil

	case SLR1:
		t, err := parse.BuildSLR1Table(g)
		if err != nil {
			return nil, err
		}
		return parse.NewLRRecognizer(t), nil

	case LR1:
		t, err := parse.BuildLR1Table(g)
		if err != nil {
			return nil, err
		}
		return parse.NewLRRecognizer(t), nil

	case LALR1:
		t, err := parse.BuildLALR1Table(g)
		if err != nil {
			return nil, err
		}
		return parse.NewLRRecognizer(t), nil

	case LL1:
		t, err := parse.BuildLL1Table(g)
		if err != nil {
			return nil, err
		}
		return parse.NewLLRecognizer(g, t), nil

	default:
		return nil, fmt.Errorf("unknown scheme %v", scheme)
	}
}

// DumpTable builds the parsing table for g under scheme, as NewRecognizer
// does, and renders it as an ASCII grid instead of wrapping it in a
// Recognizer. Useful for inspecting a grammar's table, or for diagnosing why
// a conflict was reported.
func DumpTable(g Grammar, scheme Scheme) (string, error) {
	var table fmt.Stringer
	var err error

	switch scheme {
	case LR0:
		table, err = parse.BuildLR0Table(g)
	case SLR1:
		table, err = parse.BuildSLR1Table(g)
	case LR1:
		table, err = parse.BuildLR1Table(g)
	case LALR1:
		table, err = parse.BuildLALR1Table(g)
	case LL1:
		table, err = parse.BuildLL1Table(g)
	default:
		return "", fmt.Errorf("unknown scheme %v", scheme)
	}
	if err != nil {
		return "", err
	}
	return table.String(), nil
}

// Package grammar holds the immutable Grammar container and the
// nullable/FIRST/FOLLOW fixed-point engine used by every table construction
// in this module.
package grammar

import (
	"fmt"
	"strings"

	"github.com/arashi/tablegram/internal/parseerr"
)

// Grammar is an immutable context-free grammar: an ordered list of
// productions, the terminal and non-terminal alphabets inferred from them,
// and a start symbol. A Grammar is built once by New and never mutated
// afterward; every derived structure (FIRST/FOLLOW sets, item sets, parse
// tables) is computed fresh from its read-only fields.
type Grammar struct {
	productions []Production
	terminals   []string
	nonTerms    []string
	isTerm      map[string]bool
	isNonTerm   map[string]bool
	start       string
}

// New builds a Grammar from an ordered list of productions and a start
// symbol name. Terminals are inferred as every rhs symbol that is not a
// non-terminal (i.e. not the lhs of some production) and not EpsilonSymbol;
// non-terminals are every production's lhs. Productions keep their given
// order, which determines ProductionsFor's order and therefore LL(1)
// construction tie-breaks.
//
// Returns a *parseerr.GrammarError if the grammar is empty, the start symbol
// is not the lhs of any production, or a production is malformed.
func New(productions []Production, start string) (Grammar, error) {
	if len(productions) == 0 {
		return Grammar{}, parseerr.Grammarf("grammar has no productions")
	}
	if start == "" {
		return Grammar{}, parseerr.Grammarf("no start symbol given")
	}

	g := Grammar{
		isTerm:    map[string]bool{},
		isNonTerm: map[string]bool{},
		start:     start,
	}

	for _, p := range productions {
		if p.NonTerminal == "" {
			return Grammar{}, parseerr.Grammarf("production has empty non-terminal lhs: %s", p)
		}
		if !g.isNonTerm[p.NonTerminal] {
			g.isNonTerm[p.NonTerminal] = true
			g.nonTerms = append(g.nonTerms, p.NonTerminal)
		}
		g.productions = append(g.productions, NewProduction(p.NonTerminal, p.Rhs))
	}

	if !g.isNonTerm[start] {
		return Grammar{}, parseerr.Grammarf("start symbol %q is not the left-hand side of any production", start)
	}

	// second pass: now that every lhs is known, anything on a rhs that isn't
	// a non-terminal and isn't epsilon is a terminal.
	for _, p := range g.productions {
		for _, sym := range p.Rhs {
			if sym == EpsilonSymbol {
				return Grammar{}, parseerr.Grammarf("epsilon may only appear as a singleton right-hand side, not within %s", p)
			}
			if sym == EndOfInput {
				return Grammar{}, parseerr.Grammarf("%q is the reserved end-of-input marker and may not appear in a grammar", EndOfInput)
			}
			if g.isNonTerm[sym] {
				continue
			}
			if !g.isTerm[sym] {
				g.isTerm[sym] = true
				g.terminals = append(g.terminals, sym)
			}
		}
	}

	for _, nt := range g.nonTerms {
		if len(g.ProductionsFor(nt)) == 0 {
			return Grammar{}, parseerr.Grammarf("non-terminal %q has no productions", nt)
		}
	}

	return g, nil
}

// Productions returns every production in the grammar, in declaration order.
func (g Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// ProductionsFor returns the productions with nonTerminal as their
// left-hand side, in the order they were declared.
func (g Grammar) ProductionsFor(nonTerminal string) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.NonTerminal == nonTerminal {
			out = append(out, p)
		}
	}
	return out
}

// Terminals returns the grammar's terminal alphabet, in first-seen order.
func (g Grammar) Terminals() []string {
	out := make([]string, len(g.terminals))
	copy(out, g.terminals)
	return out
}

// NonTerminals returns the grammar's non-terminal alphabet, in first-seen
// (declaration) order.
func (g Grammar) NonTerminals() []string {
	out := make([]string, len(g.nonTerms))
	copy(out, g.nonTerms)
	return out
}

// StartSymbol returns the grammar's designated start non-terminal.
func (g Grammar) StartSymbol() string {
	return g.start
}

// IsTerminal reports whether sym is in the grammar's terminal alphabet, or
// is the reserved end-of-input marker.
func (g Grammar) IsTerminal(sym string) bool {
	return sym == EndOfInput || g.isTerm[sym]
}

// IsNonTerminal reports whether sym is one of the grammar's non-terminals.
func (g Grammar) IsNonTerminal(sym string) bool {
	return g.isNonTerm[sym]
}

// Augment returns a new grammar with a fresh start production S' -> S added,
// where S' is a non-terminal name not already used by g. This gives every LR
// scheme a single canonical item to recognize acceptance on.
func (g Grammar) Augment() Grammar {
	newStart := g.start
	for {
		newStart += augmentMark
		if !g.isNonTerm[newStart] && !g.isTerm[newStart] {
			break
		}
	}

	augmented := []Production{NewProduction(newStart, []string{g.start})}
	augmented = append(augmented, g.productions...)

	// construction cannot fail: the only new non-terminal is guaranteed
	// fresh, and it has exactly one production.
	ng, err := New(augmented, newStart)
	if err != nil {
		panic(fmt.Sprintf("augmenting a valid grammar should never fail: %v", err))
	}
	return ng
}

func (g Grammar) String() string {
	var sb strings.Builder
	for i, p := range g.productions {
		sb.WriteString(p.String())
		if i+1 < len(g.productions) {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

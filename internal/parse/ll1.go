package parse

import (
	"github.com/dekarrin/rosed"

	"github.com/arashi/tablegram/internal/grammar"
	"github.com/arashi/tablegram/internal/parseerr"
)

const schemeLL1 = "LL(1)"

// LLTable is a predictive parse table: for each (non-terminal, terminal)
// pair, the production to expand with, if any.
type LLTable interface {
	Production(nonTerminal, terminal string) (grammar.Production, bool)
	String() string
}

type llTable struct {
	cells        map[string]map[string]grammar.Production
	terminals    []string
	nonTerminals []string
}

func (t *llTable) Production(nonTerminal, terminal string) (grammar.Production, bool) {
	p, ok := t.cells[nonTerminal][terminal]
	return p, ok
}

// String renders the table as an ASCII grid: one row per non-terminal, one
// column per terminal (including end-of-input).
func (t *llTable) String() string {
	header := []string{"nonterm", "|"}
	header = append(header, t.terminals...)
	data := [][]string{header}

	for _, nt := range t.nonTerminals {
		row := []string{nt, "|"}
		for _, term := range t.terminals {
			cell := ""
			if p, ok := t.cells[nt][term]; ok {
				cell = p.String()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// BuildLL1Table constructs the LL(1) predictive parse table for g: for each
// production A -> alpha, an entry (A, a) -> (A -> alpha) for every terminal
// a in FIRST(alpha), and additionally, if alpha is nullable, an entry
// (A, b) -> (A -> alpha) for every b in FOLLOW(A) (including end-of-input).
// A second production wanting the same cell is a FIRST/FIRST or
// FIRST/FOLLOW collision and is reported rather than silently dropped; a
// left-recursive grammar always produces one of these, since both the
// recursive and the base alternative share a FIRST symbol.
func BuildLL1Table(g grammar.Grammar) (LLTable, error) {
	nullable := g.Nullable()
	first := g.FIRST()
	follow := g.FOLLOW()

	table := &llTable{
		cells:        map[string]map[string]grammar.Production{},
		terminals:    append(g.Terminals(), grammar.EndOfInput),
		nonTerminals: g.NonTerminals(),
	}
	for _, nt := range g.NonTerminals() {
		table.cells[nt] = map[string]grammar.Production{}
	}

	for _, p := range g.Productions() {
		rhsFirst := grammar.FirstOfSequence(p.Rhs, first, nullable, g)

		for a := range rhsFirst {
			if a == grammar.EpsilonSymbol {
				continue
			}
			if err := setLL1Cell(table, p.NonTerminal, a, p); err != nil {
				return nil, err
			}
		}

		if rhsFirst[grammar.EpsilonSymbol] {
			for b := range follow[p.NonTerminal] {
				if err := setLL1Cell(table, p.NonTerminal, b, p); err != nil {
					return nil, err
				}
			}
		}
	}

	return table, nil
}

func setLL1Cell(table *llTable, nonTerminal, terminal string, p grammar.Production) error {
	if existing, ok := table.cells[nonTerminal][terminal]; ok {
		if existing.Equal(p) {
			return nil
		}
		return parseerr.Conflict(schemeLL1, nonTerminal, terminal, "predict "+existing.String(), "predict "+p.String())
	}
	table.cells[nonTerminal][terminal] = p
	return nil
}

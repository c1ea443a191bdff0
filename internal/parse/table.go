package parse

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// LRTable is what the LR driver needs from any of the four shift-reduce
// schemes (LR(0), SLR(1), canonical LR(1), LALR(1)): an action per
// (state, terminal), a goto per (state, non-terminal), and the automaton's
// start state.
type LRTable interface {
	Action(state int, terminal string) (Action, bool)
	Goto(state int, nonTerminal string) (int, bool)
	Start() int
	NumStates() int
	String() string
}

// lrTable is the concrete representation every LR scheme builder produces;
// only the construction differs between schemes; the shape and the driver
// that walks it are shared. terminals and nonTerminals fix a column order
// for String so the rendered table is reproducible.
type lrTable struct {
	action      actionTable
	goTo        gotoTable
	start       int
	terminals   []string
	nonTerminals []string
}

func (t *lrTable) Action(state int, terminal string) (Action, bool) {
	a, ok := t.action[state][terminal]
	return a, ok
}

func (t *lrTable) Goto(state int, nonTerminal string) (int, bool) {
	s, ok := t.goTo[state][nonTerminal]
	return s, ok
}

func (t *lrTable) Start() int { return t.start }

func (t *lrTable) NumStates() int { return len(t.action) }

// String renders the table as an ASCII grid: one row per state, one column
// per terminal (action) and non-terminal (goto).
func (t *lrTable) String() string {
	header := []string{"state", "|"}
	header = append(header, t.terminals...)
	header = append(header, "|")
	header = append(header, t.nonTerminals...)

	data := [][]string{header}

	for state := 0; state < len(t.action); state++ {
		row := []string{fmt.Sprintf("%d", state), "|"}

		for _, term := range t.terminals {
			cell := ""
			if act, ok := t.action[state][term]; ok {
				switch act.Type {
				case Shift:
					cell = fmt.Sprintf("s%d", act.State)
				case Reduce:
					cell = fmt.Sprintf("r(%s)", act.Production)
				case Accept:
					cell = "acc"
				}
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range t.nonTerminals {
			cell := ""
			if target, ok := t.goTo[state][nt]; ok {
				cell = fmt.Sprintf("%d", target)
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

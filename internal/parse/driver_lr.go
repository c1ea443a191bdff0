package parse

import (
	"fmt"

	"github.com/arashi/tablegram/internal/grammar"
	"github.com/arashi/tablegram/internal/parseerr"
	"github.com/arashi/tablegram/internal/util"
)

// LRRecognizer drives any of the four shift-reduce tables (LR(0), SLR(1),
// canonical LR(1), LALR(1)) as a stack machine over automaton state indices.
// It is recognizer-only: it reports whether tokens is accepted, and where it
// failed if not, but never builds a parse tree.
type LRRecognizer struct {
	table LRTable
}

func NewLRRecognizer(table LRTable) *LRRecognizer {
	return &LRRecognizer{table: table}
}

// Recognize reports whether tokens, with an implicit end-of-input marker
// appended, is accepted by the table's grammar.
func (r *LRRecognizer) Recognize(tokens []string) error {
	var states util.Stack[int]
	states.Push(r.table.Start())

	input := make([]string, 0, len(tokens)+1)
	input = append(input, tokens...)
	input = append(input, grammar.EndOfInput)

	pos := 0
	for {
		state := states.Peek()
		tok := input[pos]

		act, ok := r.table.Action(state, tok)
		if !ok {
			return parseerr.Syntax(fmt.Sprintf("state %d", state), tok, pos, "no shift, reduce, or accept action")
		}

		switch act.Type {
		case Shift:
			states.Push(act.State)
			pos++

		case Reduce:
			n := len(act.Production.Rhs)
			for i := 0; i < n; i++ {
				states.Pop()
			}
			below := states.Peek()
			next, ok := r.table.Goto(below, act.Production.NonTerminal)
			if !ok {
				return parseerr.Internalf("no goto from state %d on %q after reducing by %s", below, act.Production.NonTerminal, act.Production)
			}
			states.Push(next)

		case Accept:
			return nil

		default:
			return parseerr.Internalf("unknown action type %v", act.Type)
		}
	}
}

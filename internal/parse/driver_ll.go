package parse

import (
	"fmt"

	"github.com/arashi/tablegram/internal/grammar"
	"github.com/arashi/tablegram/internal/parseerr"
	"github.com/arashi/tablegram/internal/util"
)

// LLRecognizer drives an LL(1) table as a predictive stack machine: the
// stack holds grammar symbols (not automaton states), and at each step
// either a terminal on top is matched directly against the input, or a
// non-terminal on top is expanded by consulting the table on the current
// lookahead.
type LLRecognizer struct {
	g     grammar.Grammar
	table LLTable
}

func NewLLRecognizer(g grammar.Grammar, table LLTable) *LLRecognizer {
	return &LLRecognizer{g: g, table: table}
}

// Recognize reports whether tokens, with an implicit end-of-input marker
// appended, is accepted by the table's grammar.
func (r *LLRecognizer) Recognize(tokens []string) error {
	var stack util.Stack[string]
	stack.Push(grammar.EndOfInput)
	stack.Push(r.g.StartSymbol())

	input := make([]string, 0, len(tokens)+1)
	input = append(input, tokens...)
	input = append(input, grammar.EndOfInput)

	pos := 0
	for !stack.Empty() {
		top := stack.Peek()
		tok := input[pos]

		if top == grammar.EndOfInput {
			if tok != grammar.EndOfInput {
				return parseerr.Syntax(top, tok, pos, "expected end of input")
			}
			stack.Pop()
			pos++
			continue
		}

		if r.g.IsTerminal(top) {
			if top != tok {
				return parseerr.Syntax(top, tok, pos, fmt.Sprintf("expected %q", top))
			}
			stack.Pop()
			pos++
			continue
		}

		p, ok := r.table.Production(top, tok)
		if !ok {
			return parseerr.Syntax(top, tok, pos, "no production to expand this non-terminal on this lookahead")
		}
		stack.Pop()
		for i := len(p.Rhs) - 1; i >= 0; i-- {
			stack.Push(p.Rhs[i])
		}
	}

	if pos != len(input) {
		return parseerr.Internalf("stack emptied before consuming all input")
	}
	return nil
}

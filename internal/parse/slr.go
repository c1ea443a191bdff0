package parse

import (
	"fmt"

	"github.com/arashi/tablegram/internal/automaton"
	"github.com/arashi/tablegram/internal/grammar"
)

const schemeSLR1 = "SLR(1)"

// BuildSLR1Table constructs the SLR(1) action/goto table for g (Algorithm
// 4.46 of the dragon book, with the simple-LR lookahead refinement): a
// completed item [A -> alpha .] calls for reduce by that production only on
// terminals in FOLLOW(A), rather than on every terminal, so fewer grammars
// hit a conflict than under plain LR(0).
func BuildSLR1Table(g grammar.Grammar) (LRTable, error) {
	lr0 := automaton.BuildLR0(g)
	ag := lr0.Grammar
	follow := ag.FOLLOW()
	acceptNonTerminal := ag.StartSymbol()

	action := newActionTable(lr0.Len())
	goTo := newGotoTable(lr0.Len())

	for state := 0; state < lr0.Len(); state++ {
		for _, it := range lr0.States[state] {
			sym, ok := it.NextSymbol()
			if !ok {
				if it.Production.NonTerminal == acceptNonTerminal {
					if err := action.set(schemeSLR1, state, grammar.EndOfInput, Action{Type: Accept}); err != nil {
						return nil, err
					}
					continue
				}
				for t := range follow[it.Production.NonTerminal] {
					act := Action{Type: Reduce, Production: it.Production}
					if err := action.set(schemeSLR1, state, t, act); err != nil {
						return nil, err
					}
				}
				continue
			}

			target, hasGoto := lr0.Goto(state, sym)
			if !hasGoto {
				return nil, fmt.Errorf("internal error: no goto from state %d on %q despite item calling for it", state, sym)
			}

			if ag.IsTerminal(sym) {
				if err := action.set(schemeSLR1, state, sym, Action{Type: Shift, State: target}); err != nil {
					return nil, err
				}
			} else {
				goTo[state][sym] = target
			}
		}
	}

	terminals := append(ag.Terminals(), grammar.EndOfInput)
	return &lrTable{action: action, goTo: goTo, start: lr0.Start, terminals: terminals, nonTerminals: ag.NonTerminals()}, nil
}

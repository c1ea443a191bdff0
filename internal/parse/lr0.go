package parse

import (
	"fmt"

	"github.com/arashi/tablegram/internal/automaton"
	"github.com/arashi/tablegram/internal/grammar"
)

const schemeLR0 = "LR(0)"

// BuildLR0Table constructs the LR(0) action/goto table for g (Algorithm 4.46
// of the dragon book, without the SLR refinement). An LR(0) reducer has no
// lookahead at all: every item [A -> alpha .] calls for reduce by that
// production on every terminal (and end-of-input), so a state containing
// both a shift item and a reduce item, or two reduce items, is a hard
// conflict rather than something resolved by favoring one action. Unlike a
// naive LR(0) builder that lets a later reduce silently overwrite an
// earlier shift, every write here goes through actionTable.set, which
// reports the collision instead.
func BuildLR0Table(g grammar.Grammar) (LRTable, error) {
	lr0 := automaton.BuildLR0(g)
	ag := lr0.Grammar
	acceptNonTerminal := ag.StartSymbol()

	terminals := append(ag.Terminals(), grammar.EndOfInput)

	action := newActionTable(lr0.Len())
	goTo := newGotoTable(lr0.Len())

	for state := 0; state < lr0.Len(); state++ {
		for _, it := range lr0.States[state] {
			sym, ok := it.NextSymbol()
			if !ok {
				if it.Production.NonTerminal == acceptNonTerminal {
					if err := action.set(schemeLR0, state, grammar.EndOfInput, Action{Type: Accept}); err != nil {
						return nil, err
					}
					continue
				}
				for _, t := range terminals {
					act := Action{Type: Reduce, Production: it.Production}
					if err := action.set(schemeLR0, state, t, act); err != nil {
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
				if err := action.set(schemeLR0, state, sym, Action{Type: Shift, State: target}); err != nil {
					return nil, err
				}
			} else {
				goTo[state][sym] = target
			}
		}
	}

	return &lrTable{action: action, goTo: goTo, start: lr0.Start, terminals: terminals, nonTerminals: ag.NonTerminals()}, nil
}

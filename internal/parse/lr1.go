package parse

import (
	"fmt"

	"github.com/arashi/tablegram/internal/automaton"
	"github.com/arashi/tablegram/internal/grammar"
)

const schemeCLR1 = "LR(1)"
const schemeLALR1 = "LALR(1)"

// buildFromLR1 assembles an action/goto table from an already-built LR(1)
// automaton (canonical or merged-to-LALR): a completed item [A -> alpha ., a]
// calls for reduce by that production only on its own carried lookahead a,
// which is what lets LR(1)-family schemes resolve conflicts LR(0)/SLR(1)
// cannot.
func buildFromLR1(scheme string, lr1 automaton.LR1) (LRTable, error) {
	ag := lr1.Grammar
	acceptNonTerminal := ag.StartSymbol()

	action := newActionTable(lr1.Len())
	goTo := newGotoTable(lr1.Len())

	for state := 0; state < lr1.Len(); state++ {
		for _, it := range lr1.States[state] {
			sym, ok := it.NextSymbol()
			if !ok {
				if it.Production.NonTerminal == acceptNonTerminal && it.Lookahead == grammar.EndOfInput {
					if err := action.set(scheme, state, grammar.EndOfInput, Action{Type: Accept}); err != nil {
						return nil, err
					}
					continue
				}
				act := Action{Type: Reduce, Production: it.Production}
				if err := action.set(scheme, state, it.Lookahead, act); err != nil {
					return nil, err
				}
				continue
			}

			target, hasGoto := lr1.Goto(state, sym)
			if !hasGoto {
				return nil, fmt.Errorf("internal error: no goto from state %d on %q despite item calling for it", state, sym)
			}

			if ag.IsTerminal(sym) {
				if err := action.set(scheme, state, sym, Action{Type: Shift, State: target}); err != nil {
					return nil, err
				}
			} else {
				goTo[state][sym] = target
			}
		}
	}

	terminals := append(ag.Terminals(), grammar.EndOfInput)
	return &lrTable{action: action, goTo: goTo, start: lr1.Start, terminals: terminals, nonTerminals: ag.NonTerminals()}, nil
}

// BuildLR1Table constructs the canonical LR(1) action/goto table for g
// (Algorithm 4.56 of the dragon book): the full canonical collection of
// LR(1) item sets, one automaton state per distinct (core, lookahead set)
// pair.
func BuildLR1Table(g grammar.Grammar) (LRTable, error) {
	return buildFromLR1(schemeCLR1, automaton.BuildLR1(g))
}

// BuildLALR1Table constructs the LALR(1) action/goto table for g: the
// canonical LR(1) automaton with states sharing an LR(0) core merged and
// their lookaheads unioned (automaton.MergeLALR), giving an automaton the
// same size as the LR(0)/SLR(1) one but with LR(1)-quality lookaheads.
func BuildLALR1Table(g grammar.Grammar) (LRTable, error) {
	lr1 := automaton.BuildLR1(g)
	merged, err := automaton.MergeLALR(lr1)
	if err != nil {
		return nil, err
	}
	return buildFromLR1(schemeLALR1, merged)
}

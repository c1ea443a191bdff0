package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arashi/tablegram/internal/grammar"
)

func Test_MergeLALR_sameStateCountAsLR0(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	lr0 := BuildLR0(g)
	lr1 := BuildLR1(g)

	lalr, err := MergeLALR(lr1)
	assert.NoError(err)

	// merging by LR(0) core is supposed to collapse canonical LR(1) back
	// down to exactly the LR(0)/SLR(1) automaton's state count for a
	// grammar with no LALR conflicts.
	assert.Equal(lr0.Len(), lalr.Len())
}

func Test_MergeLALR_unionsLookaheadsAcrossMergedStates(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	lr1 := BuildLR1(g)
	lalr, err := MergeLALR(lr1)
	assert.NoError(err)

	// every merged state's item set should be a superset, in lookahead
	// terms, of what any single pre-merge state contributed: check that no
	// merged state ends up empty.
	for _, set := range lalr.States {
		assert.NotEmpty(set)
	}

	// canonical LR(1) reaches F -> id . in two states, with lookaheads
	// {$, +, *} at the top level and {), +, *} inside parentheses; merging
	// leaves one state carrying the union of both.
	var lookaheads []string
	for _, set := range lalr.States {
		for _, it := range set {
			if it.LR0Item.String() == "F -> id ." {
				lookaheads = append(lookaheads, it.Lookahead)
			}
		}
	}
	assert.ElementsMatch([]string{grammar.EndOfInput, ")", "+", "*"}, lookaheads)
}

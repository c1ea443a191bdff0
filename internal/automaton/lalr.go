package automaton

import (
	"github.com/arashi/tablegram/internal/grammar"
	"github.com/arashi/tablegram/internal/parseerr"
)

// MergeLALR builds the LALR(1) automaton from a canonical LR(1) automaton:
// group states that share the same LR(0) core (ignoring lookaheads), union
// each group's items under its canonical keys (which merges identical
// cores with different lookaheads and keeps distinct lookaheads side by
// side), and rewrite every transition to point at the merged group.
//
// If merging collapses two states whose outgoing gotos on the same symbol
// disagree about which group to land in, an error is returned. That can
// only happen when the underlying LR(1) automaton itself was already
// inconsistent in a way canonical LR(1) construction wouldn't produce, so it
// is reported as an internal error rather than a grammar error.
func MergeLALR(lr1 LR1) (LR1, error) {
	n := lr1.Len()

	coreKeys := make([]string, n)
	for i := 0; i < n; i++ {
		coreKeys[i] = canonicalSetKey(grammar.CoreSet(lr1.States[i]))
	}

	groupOf := make([]int, n)
	firstSeen := map[string]int{}
	groupCount := 0
	for i := 0; i < n; i++ {
		k := coreKeys[i]
		g, ok := firstSeen[k]
		if !ok {
			g = groupCount
			firstSeen[k] = g
			groupCount++
		}
		groupOf[i] = g
	}

	merged := make([]map[string]grammar.LR1Item, groupCount)
	for i := range merged {
		merged[i] = map[string]grammar.LR1Item{}
	}
	for i, set := range lr1.States {
		g := groupOf[i]
		for k, it := range set {
			merged[g][k] = it
		}
	}

	transitions := make([]map[string]int, groupCount)
	for i := range transitions {
		transitions[i] = map[string]int{}
	}
	for i, trans := range lr1.Transitions {
		g := groupOf[i]
		for sym, target := range trans {
			gt := groupOf[target]
			if existing, ok := transitions[g][sym]; ok && existing != gt {
				return LR1{}, parseerr.Internalf(
					"merging LALR(1) states produced inconsistent goto on %q: group %d already goes to %d, also wants %d",
					sym, g, existing, gt)
			}
			transitions[g][sym] = gt
		}
	}

	return LR1{
		Grammar: lr1.Grammar,
		Automaton: &Automaton[grammar.LR1Item]{
			States:      merged,
			Transitions: transitions,
			Start:       groupOf[lr1.Start],
		},
	}, nil
}

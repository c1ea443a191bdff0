package automaton

import "github.com/arashi/tablegram/internal/grammar"

// LR1 holds the canonical collection of LR(1) item sets for an augmented
// grammar. Canonical LR(1) construction uses it directly; LALR(1)
// construction builds one and then merges states sharing an LR(0) core, see
// MergeLALR.
type LR1 struct {
	Grammar grammar.Grammar
	*Automaton[grammar.LR1Item]
}

func nextSymbolsLR1(set map[string]grammar.LR1Item) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range set {
		s, ok := it.NextSymbol()
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// BuildLR1 constructs the canonical LR(1) automaton for g, augmenting g
// internally as BuildLR0 does. The initial item carries EndOfInput as its
// lookahead.
func BuildLR1(g grammar.Grammar) LR1 {
	ag := g.Augment()
	startProd := ag.ProductionsFor(ag.StartSymbol())[0]
	startItem := grammar.NewLR1Item(startProd, grammar.EndOfInput)
	startSet := ag.Closure1(map[string]grammar.LR1Item{startItem.String(): startItem})

	automaton := build(startSet, nextSymbolsLR1, ag.Goto1)
	return LR1{Grammar: ag, Automaton: automaton}
}

package automaton

import "github.com/arashi/tablegram/internal/grammar"

// LR0 holds the canonical collection of LR(0) item sets for an augmented
// grammar, along with the grammar itself (so callers can recover the
// augmented start production without threading it through separately).
type LR0 struct {
	Grammar grammar.Grammar
	*Automaton[grammar.LR0Item]
}

func nextSymbolsLR0(set map[string]grammar.LR0Item) []string {
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

// BuildLR0 constructs the LR(0) automaton for g. g is augmented internally
// (a fresh start production S' -> S is added) so the resulting automaton has
// a single unambiguous accepting item, [S' -> S ., $-free].
func BuildLR0(g grammar.Grammar) LR0 {
	ag := g.Augment()
	startProd := ag.ProductionsFor(ag.StartSymbol())[0]
	startItem := grammar.NewLR0Item(startProd)
	startSet := ag.Closure0(map[string]grammar.LR0Item{startItem.String(): startItem})

	automaton := build(startSet, nextSymbolsLR0, ag.Goto0)
	return LR0{Grammar: ag, Automaton: automaton}
}

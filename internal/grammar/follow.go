package grammar

import "github.com/arashi/tablegram/internal/util"

// FOLLOW computes the FOLLOW set of every non-terminal, needed by the
// SLR(1) and LL(1) table builders. The start symbol's FOLLOW set always
// contains EndOfInput. For A -> alpha B beta, FOLLOW(B) gains FIRST(beta)
// minus epsilon; if beta is nullable (or empty), FOLLOW(B) also gains
// FOLLOW(A). Iterates to a fixed point since FOLLOW(A) can depend on
// FOLLOW(B) for some other non-terminal B appearing after A.
func (g Grammar) FOLLOW() map[string]util.StringSet {
	nullable := g.Nullable()
	first := g.FIRST()

	follow := map[string]util.StringSet{}
	for _, nt := range g.nonTerms {
		follow[nt] = util.NewStringSet()
	}
	follow[g.start][EndOfInput] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			for i, sym := range p.Rhs {
				if !g.IsNonTerminal(sym) {
					continue
				}
				dest := follow[sym]
				before := len(dest)

				beta := p.Rhs[i+1:]
				betaFirst := FirstOfSequence(beta, first, nullable, g)
				for s := range betaFirst {
					if s != EpsilonSymbol {
						dest[s] = true
					}
				}
				if betaFirst[EpsilonSymbol] {
					for s := range follow[p.NonTerminal] {
						dest[s] = true
					}
				}

				if len(dest) != before {
					changed = true
				}
			}
		}
	}

	return follow
}

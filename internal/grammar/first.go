package grammar

import "github.com/arashi/tablegram/internal/util"

// Nullable computes the set of non-terminals that can derive the empty
// string, via the standard fixed-point iteration: a non-terminal is nullable
// if it has an epsilon production, or a production all of whose symbols are
// themselves nullable.
func (g Grammar) Nullable() util.StringSet {
	nullable := util.NewStringSet()

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			if nullable[p.NonTerminal] {
				continue
			}
			if p.IsEpsilon() {
				nullable[p.NonTerminal] = true
				changed = true
				continue
			}
			allNullable := true
			for _, sym := range p.Rhs {
				if g.IsTerminal(sym) || !nullable[sym] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.NonTerminal] = true
				changed = true
			}
		}
	}

	return nullable
}

// FIRST computes the FIRST set of every grammar symbol (terminal and
// non-terminal) via fixed-point iteration over the productions, using
// nullable to decide whether a production's tail can still contribute to a
// prefix's FIRST set. FIRST of a terminal is itself; FIRST of a non-terminal
// starts empty and grows until no production adds anything new, and also
// contains EpsilonSymbol when the non-terminal is nullable.
func (g Grammar) FIRST() map[string]util.StringSet {
	nullable := g.Nullable()
	first := map[string]util.StringSet{}

	for _, t := range g.terminals {
		first[t] = util.StringSet{t: true}
	}
	for _, nt := range g.nonTerms {
		first[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			dest := first[p.NonTerminal]
			before := len(dest)

			allNullableSoFar := true
			for _, sym := range p.Rhs {
				if !allNullableSoFar {
					break
				}
				for s := range first[sym] {
					if s != EpsilonSymbol && !dest[s] {
						dest[s] = true
					}
				}
				if g.IsTerminal(sym) || !nullable[sym] {
					allNullableSoFar = false
				}
			}
			if allNullableSoFar {
				dest[EpsilonSymbol] = true
			}

			if len(dest) != before {
				changed = true
			}
		}
	}

	return first
}

// FirstOfSequence computes FIRST(X1 X2 ... Xn) for an arbitrary symbol
// sequence: the union of FIRST(X1), and FIRST(X2) if X1 is nullable, and so
// on, each without epsilon, plus epsilon itself if every Xi is nullable (or
// the sequence is empty). first and nullable should come from FIRST and Nullable on the same
// grammar. seq may contain EndOfInput (e.g. the trailing lookahead symbol an
// LR(1) closure step appends); EndOfInput never has an entry in first since
// it is never a grammar terminal, but it still behaves like one here:
// FIRST($) = {$}.
func FirstOfSequence(seq []string, first map[string]util.StringSet, nullable util.StringSet, g Grammar) util.StringSet {
	out := util.NewStringSet()

	allNullable := true
	for _, sym := range seq {
		if sym == EndOfInput {
			out.Add(EndOfInput)
		} else {
			out.AddAll(first[sym])
		}
		if g.IsTerminal(sym) || !nullable[sym] {
			allNullable = false
			break
		}
	}

	delete(out, EpsilonSymbol)
	if allNullable {
		out.Add(EpsilonSymbol)
	}

	return out
}

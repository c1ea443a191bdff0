package grammar

// Closure0 computes the LR(0) closure of items: repeatedly, for every item
// A -> alpha . B beta in the set where B is a non-terminal, add the item
// B -> . gamma for every production of B, until nothing new is added. The
// input and output are keyed by each item's canonical String form so the
// result can be used directly as a state's item set.
func (g Grammar) Closure0(items map[string]LR0Item) map[string]LR0Item {
	closure := make(map[string]LR0Item, len(items))
	for k, it := range items {
		closure[k] = it
	}

	changed := true
	for changed {
		changed = false
		for _, it := range closure {
			sym, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}
			for _, p := range g.ProductionsFor(sym) {
				ni := NewLR0Item(p)
				key := ni.String()
				if _, exists := closure[key]; !exists {
					closure[key] = ni
					changed = true
				}
			}
		}
	}

	return closure
}

// Goto0 computes the LR(0) goto of items on sym: advance the dot past sym in
// every item that calls for it, then take the closure of the result. An
// empty result means sym never follows a dot in items, i.e. there is no
// transition on sym from this state.
func (g Grammar) Goto0(items map[string]LR0Item, sym string) map[string]LR0Item {
	moved := map[string]LR0Item{}
	for _, it := range items {
		s, ok := it.NextSymbol()
		if ok && s == sym {
			ni := it.Advance()
			moved[ni.String()] = ni
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return g.Closure0(moved)
}

// Closure1 computes the LR(1) closure of items: like Closure0, but each
// added item also carries a lookahead, computed as FIRST(beta a) for every
// item [A -> alpha . B beta, a] already in the set.
func (g Grammar) Closure1(items map[string]LR1Item) map[string]LR1Item {
	first := g.FIRST()
	nullable := g.Nullable()

	closure := make(map[string]LR1Item, len(items))
	for k, it := range items {
		closure[k] = it
	}

	changed := true
	for changed {
		changed = false
		for _, it := range closure {
			sym, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}

			beta := it.Production.Rhs[it.Dot+1:]
			seq := make([]string, 0, len(beta)+1)
			seq = append(seq, beta...)
			seq = append(seq, it.Lookahead)
			lookaheads := FirstOfSequence(seq, first, nullable, g)

			for _, p := range g.ProductionsFor(sym) {
				for la := range lookaheads {
					if la == EpsilonSymbol {
						continue
					}
					ni := NewLR1Item(p, la)
					key := ni.String()
					if _, exists := closure[key]; !exists {
						closure[key] = ni
						changed = true
					}
				}
			}
		}
	}

	return closure
}

// Goto1 computes the LR(1) goto of items on sym, mirroring Goto0 but
// carrying lookaheads through Advance and Closure1.
func (g Grammar) Goto1(items map[string]LR1Item, sym string) map[string]LR1Item {
	moved := map[string]LR1Item{}
	for _, it := range items {
		s, ok := it.NextSymbol()
		if ok && s == sym {
			ni := it.Advance()
			moved[ni.String()] = ni
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return g.Closure1(moved)
}

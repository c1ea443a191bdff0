package grammar

import "strings"

// Production is a single rule A -> X1 X2 ... Xn. It is value-typed: two
// Productions are equal iff their non-terminal and right-hand side are equal
// element-wise, which lets Production be used directly as a map key and as
// an element of a canonical item set.
type Production struct {
	NonTerminal string
	Rhs         []string
}

// NewProduction builds a Production, normalizing an empty or nil rhs and the
// singleton-epsilon rhs to the same canonical empty-slice representation so
// that the two notations the grammar accepts for "derives nothing" compare
// equal.
func NewProduction(nonTerminal string, rhs []string) Production {
	if isEpsilonRHS(rhs) {
		return Production{NonTerminal: nonTerminal}
	}
	cp := make([]string, len(rhs))
	copy(cp, rhs)
	return Production{NonTerminal: nonTerminal, Rhs: cp}
}

// IsEpsilon reports whether this production derives the empty string.
func (p Production) IsEpsilon() bool {
	return len(p.Rhs) == 0
}

func (p Production) Equal(o Production) bool {
	if p.NonTerminal != o.NonTerminal {
		return false
	}
	if len(p.Rhs) != len(o.Rhs) {
		return false
	}
	for i := range p.Rhs {
		if p.Rhs[i] != o.Rhs[i] {
			return false
		}
	}
	return true
}

// String renders the production in "A -> X1 X2" form, using EpsilonSymbol for
// an empty right-hand side.
func (p Production) String() string {
	rhs := strings.Join(p.Rhs, " ")
	if rhs == "" {
		rhs = EpsilonSymbol
	}
	return p.NonTerminal + " -> " + rhs
}

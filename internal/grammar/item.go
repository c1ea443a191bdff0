package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is a production together with a dot position marking how much of
// the right-hand side has been matched so far: 0 <= Dot <= len(Production.Rhs).
// Items are value types so they can be stored directly in a map keyed by
// their canonical String form and compared with Equal, never by pointer
// identity.
type LR0Item struct {
	Production Production
	Dot        int
}

// NewLR0Item builds the initial item for p, dot at the far left.
func NewLR0Item(p Production) LR0Item {
	return LR0Item{Production: p, Dot: 0}
}

// AtEnd reports whether the dot has reached the end of the right-hand side,
// i.e. this item calls for a reduction.
func (it LR0Item) AtEnd() bool {
	return it.Dot >= len(it.Production.Rhs)
}

// NextSymbol returns the grammar symbol immediately after the dot and true,
// or ("", false) if the dot is already at the end.
func (it LR0Item) NextSymbol() (string, bool) {
	if it.AtEnd() {
		return "", false
	}
	return it.Production.Rhs[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
// Callers must only call Advance when AtEnd is false.
func (it LR0Item) Advance() LR0Item {
	return LR0Item{Production: it.Production, Dot: it.Dot + 1}
}

func (it LR0Item) Equal(o any) bool {
	other, ok := o.(LR0Item)
	if !ok {
		otherPtr, ok := o.(*LR0Item)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}
	return it.Dot == other.Dot && it.Production.Equal(other.Production)
}

func (it LR0Item) String() string {
	var sb strings.Builder
	sb.WriteString(it.Production.NonTerminal)
	sb.WriteString(" -> ")
	for i, sym := range it.Production.Rhs {
		if i == it.Dot {
			sb.WriteString(". ")
		}
		sb.WriteString(sym)
		sb.WriteRune(' ')
	}
	out := sb.String()
	if it.AtEnd() {
		out += "."
	} else {
		out = strings.TrimRight(out, " ")
	}
	return out
}

// LR1Item is an LR0Item with a single lookahead terminal. Canonical LR(1)
// and LALR(1) construction both build sets of these; two LR1Items with the
// same core but different lookaheads are distinct items in canonical LR(1),
// but get merged (lookaheads unioned) under the same core in LALR(1).
type LR1Item struct {
	LR0Item
	Lookahead string
}

// NewLR1Item builds the initial item for p with dot at the far left and the
// given lookahead.
func NewLR1Item(p Production, lookahead string) LR1Item {
	return LR1Item{LR0Item: NewLR0Item(p), Lookahead: lookahead}
}

// Advance returns the item with the dot moved one position to the right,
// keeping the same lookahead.
func (it LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: it.LR0Item.Advance(), Lookahead: it.Lookahead}
}

func (it LR1Item) Equal(o any) bool {
	other, ok := o.(LR1Item)
	if !ok {
		otherPtr, ok := o.(*LR1Item)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}
	return it.Lookahead == other.Lookahead && it.LR0Item.Equal(other.LR0Item)
}

func (it LR1Item) Copy() LR1Item {
	cp := it.Production
	cp.Rhs = append([]string(nil), it.Production.Rhs...)
	return LR1Item{
		LR0Item:   LR0Item{Production: cp, Dot: it.Dot},
		Lookahead: it.Lookahead,
	}
}

func (it LR1Item) String() string {
	return fmt.Sprintf("%s, %s", it.LR0Item.String(), it.Lookahead)
}

// CoreSet reduces a set of LR1Items, keyed by their canonical string form, to
// the set of distinct LR0 cores they carry. Two LR1 state bodies have the
// same core iff CoreSet produces equal sets for both, which is the grouping
// criterion the LALR(1) automaton merge uses.
func CoreSet(items map[string]LR1Item) map[string]LR0Item {
	cores := make(map[string]LR0Item, len(items))
	for _, it := range items {
		cores[it.LR0Item.String()] = it.LR0Item
	}
	return cores
}

// Package parse assembles action/goto (and LL(1) predictive) tables from a
// grammar's automaton, and drives them against a token stream to recognize
// (accept or reject) it. None of the five schemes here build a parse tree;
// recognition is their only job.
package parse

import (
	"fmt"

	"github.com/arashi/tablegram/internal/grammar"
	"github.com/arashi/tablegram/internal/parseerr"
)

// ActionType distinguishes the three things an LR table cell can tell the
// driver to do.
type ActionType int

const (
	Shift ActionType = iota
	Reduce
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is a single LR table cell: shift to State, reduce by Production, or
// accept.
type Action struct {
	Type       ActionType
	State      int
	Production grammar.Production
}

func (a Action) Equal(o Action) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.State == o.State
	case Reduce:
		return a.Production.Equal(o.Production)
	default:
		return true
	}
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("shift to state %d", a.State)
	case Reduce:
		return fmt.Sprintf("reduce by %s", a.Production)
	case Accept:
		return "accept"
	default:
		return "?"
	}
}

// actionTable is the (state, terminal) -> Action map shared by every LR
// scheme's table builder. set is the single place conflicts are
// detected: an attempt to write a second, different action into an
// already-occupied cell is reported rather than silently overwriting it.
type actionTable []map[string]Action

func newActionTable(n int) actionTable {
	t := make(actionTable, n)
	for i := range t {
		t[i] = map[string]Action{}
	}
	return t
}

func (t actionTable) set(scheme string, state int, terminal string, act Action) error {
	if existing, ok := t[state][terminal]; ok {
		if existing.Equal(act) {
			return nil
		}
		return conflictError(scheme, state, terminal, existing, act)
	}
	t[state][terminal] = act
	return nil
}

// gotoTable is the (state, non-terminal) -> state map shared by every LR
// scheme. Unlike actionTable, a collision here signals a bug in the
// automaton builder, not an ambiguous grammar: the automaton's own goto
// function is already deterministic by construction.
type gotoTable []map[string]int

func newGotoTable(n int) gotoTable {
	t := make(gotoTable, n)
	for i := range t {
		t[i] = map[string]int{}
	}
	return t
}

func conflictError(scheme string, state int, terminal string, existing, new Action) error {
	return parseerr.Conflict(scheme, fmt.Sprintf("state %d", state), terminal, existing.String(), new.String())
}

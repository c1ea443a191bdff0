// Package automaton builds the viable-prefix automata that back every
// table-driven parsing scheme in this module: a worklist over canonical
// item sets, discovered breadth-first and numbered in discovery order, with
// a transition table recording the goto function between them.
package automaton

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Automaton is a deterministic finite automaton over item sets of type I
// (grammar.LR0Item or grammar.LR1Item). States are indexed by discovery
// order, starting from Start; Transitions[i][sym] gives the state reached by
// the goto function on sym from state i, when such a transition exists.
type Automaton[I any] struct {
	States      []map[string]I
	Transitions []map[string]int
	Start       int
}

// Goto returns the state reached from state on sym, if any.
func (a *Automaton[I]) Goto(state int, sym string) (int, bool) {
	next, ok := a.Transitions[state][sym]
	return next, ok
}

// Len returns the number of states in the automaton.
func (a *Automaton[I]) Len() int {
	return len(a.States)
}

// canonicalSetKey is the sorted join of an item set's per-item canonical
// keys. Two item sets are the same automaton state iff this key matches,
// which is what lets the worklist below dedup newly-computed goto targets
// against states already discovered.
func canonicalSetKey[I any](set map[string]I) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}

// build runs the generic worklist construction shared by LR(0) and LR(1)
// automata: starting from startSet, repeatedly compute goto(state, sym) for
// every symbol that follows a dot in some item of state, adding newly-seen
// item sets as new states in the order they are first reached.
func build[I any](startSet map[string]I, nextSymbols func(map[string]I) []string, move func(map[string]I, string) map[string]I) *Automaton[I] {
	var states []map[string]I
	var transitions []map[string]int
	keyToIndex := map[string]int{}

	addState := func(set map[string]I) (int, bool) {
		k := canonicalSetKey(set)
		if idx, ok := keyToIndex[k]; ok {
			return idx, false
		}
		idx := len(states)
		keyToIndex[k] = idx
		states = append(states, set)
		transitions = append(transitions, map[string]int{})
		return idx, true
	}

	startIdx, _ := addState(startSet)

	// the discovery order of states is an observable part of this package's
	// contract (state 0 is always the start state, and test grammars are
	// checked against exact state counts), so the pending worklist is a
	// plain FIFO: queue.Get(0) / queue.Remove(0) rather than a set, and each
	// state's next symbols are visited in sorted order.
	queue := arraylist.New()
	queue.Add(startIdx)
	for queue.Size() > 0 {
		front, _ := queue.Get(0)
		queue.Remove(0)
		cur := front.(int)

		syms := nextSymbols(states[cur])
		sort.Strings(syms)
		for _, sym := range syms {
			if _, already := transitions[cur][sym]; already {
				continue
			}
			target := move(states[cur], sym)
			if len(target) == 0 {
				continue
			}
			idx, isNew := addState(target)
			transitions[cur][sym] = idx
			if isNew {
				queue.Add(idx)
			}
		}
	}

	return &Automaton[I]{States: states, Transitions: transitions, Start: startIdx}
}

// Package parseerr defines the distinct, distinguishable error kinds raised
// while building or driving a table-driven parser: a malformed grammar, a
// construction-time conflict, a parse-time syntax error, and an internal
// invariant violation. Keeping these as separate types (rather than one
// generic error) lets callers use errors.As to tell "your grammar is
// ambiguous" apart from "this input doesn't parse".
package parseerr

import "fmt"

// GrammarError reports a problem with the shape of a grammar itself: a
// missing start symbol or one that is no production's left-hand side, a
// malformed production (an empty left-hand side, or epsilon or the
// end-of-input marker inside a right-hand side), or an empty grammar. Raised
// at Grammar construction, before any table is built.
type GrammarError struct {
	msg string
}

func (e *GrammarError) Error() string { return e.msg }

// Grammarf builds a GrammarError from a format string.
func Grammarf(format string, a ...interface{}) error {
	return &GrammarError{msg: fmt.Sprintf(format, a...)}
}

// ConflictError reports a shift/reduce, reduce/reduce, or LL(1) cell
// collision found while assembling a parse table. It names the scheme so
// the caller knows which construction rejected the grammar.
type ConflictError struct {
	Scheme   string
	State    string // state index (LR) or non-terminal name (LL)
	Symbol   string // offending terminal
	Existing string // description of the entry already present
	New      string // description of the entry that would overwrite it
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar is not %s: at %s on %q, %s conflicts with %s",
		e.Scheme, e.State, e.Symbol, e.Existing, e.New)
}

// Conflict builds a ConflictError.
func Conflict(scheme, state, symbol, existing, new string) error {
	return &ConflictError{Scheme: scheme, State: state, Symbol: symbol, Existing: existing, New: new}
}

// SyntaxError reports that a token stream was rejected: either no action or
// table entry exists for the current (state, token) / (non-terminal, token)
// pair, or (LL only) the stack's terminal didn't match the input.
type SyntaxError struct {
	State   string // LR state index, or LL top-of-stack symbol
	Token   string
	Pos     int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at token %d (%q): %s (at %s)", e.Pos, e.Token, e.Reason, e.State)
}

// Syntax builds a SyntaxError.
func Syntax(state, token string, pos int, reason string) error {
	return &SyntaxError{State: state, Token: token, Pos: pos, Reason: reason}
}

// InternalError indicates that the implementation violated one of its own
// invariants, e.g. a well-formed table has no GOTO entry after a reduce.
// It signals a bug in the table builder, not a problem with the input
// grammar or token stream.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string { return "internal invariant violation: " + e.msg }

// Internalf builds an InternalError from a format string.
func Internalf(format string, a ...interface{}) error {
	return &InternalError{msg: fmt.Sprintf(format, a...)}
}

package grammar

// EpsilonSymbol is the reserved name for the empty string. It is only
// meaningful as a singleton right-hand side; NewProduction turns a rhs of
// [EpsilonSymbol] into the empty rhs, so every consumer, the LL(1) driver
// included, only ever sees the empty form.
const EpsilonSymbol = "ε"

// EndOfInput is the reserved end-of-input marker, implicitly appended to
// every token stream and never present in a grammar's terminal alphabet.
const EndOfInput = "$"

// augmentMark is appended to a grammar's start symbol to produce the fresh
// augmented start non-terminal S'. If that collides with an existing symbol,
// Augment keeps appending marks until it finds a name that doesn't.
const augmentMark = "'"

// isEpsilonRHS reports whether rhs is one of the two equivalent
// representations of "derives nothing": the empty sequence, or the singleton
// sequence containing EpsilonSymbol.
func isEpsilonRHS(rhs []string) bool {
	return len(rhs) == 0 || (len(rhs) == 1 && rhs[0] == EpsilonSymbol)
}

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arashi/tablegram/internal/grammar"
)

// exprGrammar is the classic left-recursive arithmetic expression grammar:
// E -> E + T | T, T -> T * F | F, F -> ( E ) | id.
func exprGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.New([]grammar.Production{
		grammar.NewProduction("E", []string{"E", "+", "T"}),
		grammar.NewProduction("E", []string{"T"}),
		grammar.NewProduction("T", []string{"T", "*", "F"}),
		grammar.NewProduction("T", []string{"F"}),
		grammar.NewProduction("F", []string{"(", "E", ")"}),
		grammar.NewProduction("F", []string{"id"}),
	}, "E")
	assert.NoError(t, err)
	return g
}

// ll1ExprGrammar is the same language as exprGrammar, left-factored and
// left-recursion-eliminated so it is actually LL(1):
//
//	E  -> T E'
//	E' -> + T E' | eps
//	T  -> F T'
//	T' -> * F T' | eps
//	F  -> ( E ) | id
func ll1ExprGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.New([]grammar.Production{
		grammar.NewProduction("E", []string{"T", "E'"}),
		grammar.NewProduction("E'", []string{"+", "T", "E'"}),
		grammar.NewProduction("E'", nil),
		grammar.NewProduction("T", []string{"F", "T'"}),
		grammar.NewProduction("T'", []string{"*", "F", "T'"}),
		grammar.NewProduction("T'", nil),
		grammar.NewProduction("F", []string{"(", "E", ")"}),
		grammar.NewProduction("F", []string{"id"}),
	}, "E")
	assert.NoError(t, err)
	return g
}

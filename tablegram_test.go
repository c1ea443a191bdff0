package tablegram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arashi/tablegram"
)

// exprGrammar is the classic left-recursive arithmetic expression grammar
// from the dragon book: E -> E + T | T, T -> T * F | F, F -> ( E ) | id.
func exprGrammar(t *testing.T) tablegram.Grammar {
	t.Helper()
	g, err := tablegram.NewGrammar([]tablegram.Production{
		tablegram.NewProduction("E", []string{"E", "+", "T"}),
		tablegram.NewProduction("E", []string{"T"}),
		tablegram.NewProduction("T", []string{"T", "*", "F"}),
		tablegram.NewProduction("T", []string{"F"}),
		tablegram.NewProduction("F", []string{"(", "E", ")"}),
		tablegram.NewProduction("F", []string{"id"}),
	}, "E")
	assert.NoError(t, err)
	return g
}

func Test_Scheme_String(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		scheme tablegram.Scheme
		expect string
	}{
		{tablegram.LR0, "LR(0)"},
		{tablegram.SLR1, "SLR(1)"},
		{tablegram.LR1, "LR(1)"},
		{tablegram.LALR1, "LALR(1)"},
		{tablegram.LL1, "LL(1)"},
	}
	for _, c := range cases {
		assert.Equal(c.expect, c.scheme.String())
	}
}

func Test_NewRecognizer_everySchemeAgreesOnExprGrammarLanguage(t *testing.T) {
	g := exprGrammar(t)

	schemes := []tablegram.Scheme{tablegram.SLR1, tablegram.LR1, tablegram.LALR1}

	accept := [][]string{
		{"id"},
		{"id", "+", "id", "*", "id"},
		{"(", "id", "+", "id", ")", "*", "id"},
	}
	reject := [][]string{
		{},
		{"id", "id"},
		{"+", "id"},
	}

	for _, scheme := range schemes {
		t.Run(scheme.String(), func(t *testing.T) {
			assert := assert.New(t)

			rec, err := tablegram.NewRecognizer(g, scheme)
			assert.NoError(err)

			for _, tokens := range accept {
				assert.NoError(rec.Recognize(tokens), "expected %v to be accepted", tokens)
			}
			for _, tokens := range reject {
				assert.Error(rec.Recognize(tokens), "expected %v to be rejected", tokens)
			}
		})
	}
}

func Test_NewRecognizer_LR0RejectsExprGrammarWithConflict(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	_, err := tablegram.NewRecognizer(g, tablegram.LR0)
	assert.Error(err, "the expression grammar needs at least one token of lookahead")
}

func Test_NewRecognizer_LL1RejectsLeftRecursiveGrammar(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	_, err := tablegram.NewRecognizer(g, tablegram.LL1)
	assert.Error(err)
}

func Test_DumpTable_rendersNonEmptyGridForEveryScheme(t *testing.T) {
	g := exprGrammar(t)

	for _, scheme := range []tablegram.Scheme{tablegram.SLR1, tablegram.LR1, tablegram.LALR1} {
		t.Run(scheme.String(), func(t *testing.T) {
			assert := assert.New(t)

			out, err := tablegram.DumpTable(g, scheme)
			assert.NoError(err)
			assert.NotEmpty(out)
		})
	}
}

func Test_DumpTable_unknownSchemeIsError(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	_, err := tablegram.DumpTable(g, tablegram.Scheme(99))
	assert.Error(err)
}

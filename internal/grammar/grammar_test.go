package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exprGrammar(t *testing.T) Grammar {
	t.Helper()
	g, err := New([]Production{
		NewProduction("E", []string{"E", "+", "T"}),
		NewProduction("E", []string{"T"}),
		NewProduction("T", []string{"T", "*", "F"}),
		NewProduction("T", []string{"F"}),
		NewProduction("F", []string{"(", "E", ")"}),
		NewProduction("F", []string{"id"}),
	}, "E")
	assert.NoError(t, err)
	return g
}

func Test_New(t *testing.T) {
	testCases := []struct {
		name        string
		productions []Production
		start       string
		expectErr   bool
	}{
		{
			name:      "empty grammar",
			expectErr: true,
		},
		{
			name: "no start symbol",
			productions: []Production{
				NewProduction("S", []string{"a"}),
			},
			expectErr: true,
		},
		{
			name: "start symbol not a lhs",
			productions: []Production{
				NewProduction("S", []string{"a"}),
			},
			start:     "T",
			expectErr: true,
		},
		{
			name: "epsilon in the middle of a rhs is rejected",
			productions: []Production{
				NewProduction("S", []string{"a", EpsilonSymbol, "b"}),
			},
			start:     "S",
			expectErr: true,
		},
		{
			name: "reserved end-of-input marker rejected",
			productions: []Production{
				NewProduction("S", []string{EndOfInput}),
			},
			start:     "S",
			expectErr: true,
		},
		{
			name: "single rule grammar",
			productions: []Production{
				NewProduction("S", []string{"a"}),
			},
			start: "S",
		},
		{
			name:  "classic expression grammar",
			start: "E",
			productions: []Production{
				NewProduction("E", []string{"E", "+", "T"}),
				NewProduction("E", []string{"T"}),
				NewProduction("T", []string{"T", "*", "F"}),
				NewProduction("T", []string{"F"}),
				NewProduction("F", []string{"(", "E", ")"}),
				NewProduction("F", []string{"id"}),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.productions, tc.start)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Grammar_TerminalsAndNonTerminals(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)

	assert.ElementsMatch([]string{"E", "T", "F"}, g.NonTerminals())
	assert.ElementsMatch([]string{"+", "*", "(", ")", "id"}, g.Terminals())

	assert.True(g.IsNonTerminal("E"))
	assert.False(g.IsNonTerminal("id"))
	assert.True(g.IsTerminal("id"))
	assert.True(g.IsTerminal(EndOfInput))
	assert.False(g.IsTerminal("E"))
}

func Test_Grammar_Augment(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	ag := g.Augment()

	assert.NotEqual(g.StartSymbol(), ag.StartSymbol())
	assert.True(ag.IsNonTerminal(ag.StartSymbol()))

	prods := ag.ProductionsFor(ag.StartSymbol())
	if assert.Len(prods, 1) {
		assert.Equal([]string{g.StartSymbol()}, prods[0].Rhs)
	}
}

func Test_Grammar_Augment_avoidsNameCollision(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]Production{
		NewProduction("S", []string{"a"}),
		NewProduction("S'", []string{"b"}),
	}, "S")
	assert.NoError(err)

	ag := g.Augment()
	assert.NotEqual("S'", ag.StartSymbol())
	assert.True(ag.IsNonTerminal(ag.StartSymbol()))
}

func Test_Grammar_ProductionsFor_preservesDeclarationOrder(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	eProds := g.ProductionsFor("E")

	if assert.Len(eProds, 2) {
		assert.Equal([]string{"E", "+", "T"}, eProds[0].Rhs)
		assert.Equal([]string{"T"}, eProds[1].Rhs)
	}
}

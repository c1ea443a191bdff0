package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arashi/tablegram/internal/util"
)

func Test_Grammar_FOLLOW_exprGrammar(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	follow := g.FOLLOW()

	assert.Equal(util.StringSet{EndOfInput: true, ")": true, "+": true}, follow["E"])
	assert.Equal(util.StringSet{EndOfInput: true, ")": true, "+": true, "*": true}, follow["T"])
	assert.Equal(util.StringSet{EndOfInput: true, ")": true, "+": true, "*": true}, follow["F"])
}

func Test_Grammar_FOLLOW_startSymbolAlwaysHasEndOfInput(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]Production{
		NewProduction("S", []string{"a"}),
	}, "S")
	assert.NoError(err)

	follow := g.FOLLOW()
	assert.True(follow["S"][EndOfInput])
}

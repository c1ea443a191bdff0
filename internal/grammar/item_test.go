package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LR0Item_Advance(t *testing.T) {
	assert := assert.New(t)

	p := NewProduction("E", []string{"E", "+", "T"})
	it := NewLR0Item(p)

	assert.Equal(0, it.Dot)
	sym, ok := it.NextSymbol()
	assert.True(ok)
	assert.Equal("E", sym)

	it = it.Advance()
	assert.Equal(1, it.Dot)
	sym, ok = it.NextSymbol()
	assert.True(ok)
	assert.Equal("+", sym)

	it = it.Advance().Advance()
	assert.True(it.AtEnd())
	_, ok = it.NextSymbol()
	assert.False(ok)
}

func Test_LR0Item_Equal(t *testing.T) {
	assert := assert.New(t)

	p := NewProduction("E", []string{"E", "+", "T"})
	a := LR0Item{Production: p, Dot: 1}
	b := LR0Item{Production: p, Dot: 1}
	c := LR0Item{Production: p, Dot: 2}

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
	assert.False(a.Equal("not an item"))
}

func Test_LR1Item_Equal(t *testing.T) {
	assert := assert.New(t)

	p := NewProduction("E", []string{"T"})
	a := NewLR1Item(p, "+")
	b := NewLR1Item(p, "+")
	c := NewLR1Item(p, "$")

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}

func Test_CoreSet_mergesAcrossLookaheads(t *testing.T) {
	assert := assert.New(t)

	p := NewProduction("E", []string{"T"})
	a := NewLR1Item(p, "+")
	b := NewLR1Item(p, "$")

	items := map[string]LR1Item{
		a.String(): a,
		b.String(): b,
	}

	cores := CoreSet(items)
	assert.Len(cores, 1)
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringSet_AddAndHas(t *testing.T) {
	assert := assert.New(t)

	s := NewStringSet()
	assert.False(s.Has("a"))

	s.Add("a")
	assert.True(s.Has("a"))
	assert.Equal(1, s.Len())

	s.Add("a")
	assert.Equal(1, s.Len(), "adding an already-present value has no effect")
}

func Test_StringSet_AddAll(t *testing.T) {
	assert := assert.New(t)

	s := NewStringSet()
	s.Add("a")

	other := StringSet{"b": true, "c": true}
	s.AddAll(other)

	assert.True(s.Has("a"))
	assert.True(s.Has("b"))
	assert.True(s.Has("c"))
	assert.Equal(3, s.Len())
}

package parseerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Grammarf_isGrammarError(t *testing.T) {
	assert := assert.New(t)

	err := Grammarf("grammar has no productions")
	var ge *GrammarError
	assert.True(errors.As(err, &ge))
	assert.Contains(err.Error(), "no productions")
}

func Test_Conflict_isConflictError(t *testing.T) {
	assert := assert.New(t)

	err := Conflict("LR(0)", "state 3", "*", "shift to state 7", "reduce by T -> F")
	var ce *ConflictError
	assert.True(errors.As(err, &ce))
	assert.Equal("LR(0)", ce.Scheme)
	assert.Contains(err.Error(), "shift to state 7")
	assert.Contains(err.Error(), "reduce by T -> F")
}

func Test_Syntax_isSyntaxError(t *testing.T) {
	assert := assert.New(t)

	err := Syntax("state 2", "+", 3, "no action for this token in this state")
	var se *SyntaxError
	assert.True(errors.As(err, &se))
	assert.Equal(3, se.Pos)
	assert.Equal("+", se.Token)
}

func Test_Internalf_isInternalError(t *testing.T) {
	assert := assert.New(t)

	err := Internalf("no goto entry for state %d on %q", 4, "E")
	var ie *InternalError
	assert.True(errors.As(err, &ie))
	assert.Contains(err.Error(), "internal invariant violation")
}

func Test_errorKinds_areDistinguishable(t *testing.T) {
	assert := assert.New(t)

	var ge *GrammarError
	err := Conflict("LL(1)", "E", "id", "predict E -> a", "predict E -> b")
	assert.False(errors.As(err, &ge))
}

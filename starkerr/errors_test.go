package starkerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	e1 := New(CodeZeroInverse, "first")
	e2 := New(CodeZeroInverse, "second")
	e3 := New(CodeNonPowerOfTwo, "third")
	assert.True(t, errors.Is(e1, e2))
	assert.False(t, errors.Is(e1, e3))
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := errors.New("underlying")
	wrapped := Wrap(CodeLengthMismatch, "outer", cause)
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrorMessageIncludesCode(t *testing.T) {
	e := New(CodeDomainNotCanonic, "bad domain")
	assert.Contains(t, e.Error(), "domain_not_canonic")
	assert.Contains(t, e.Error(), "bad domain")
}

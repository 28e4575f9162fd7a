package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType_FindsWrappedError(t *testing.T) {
	base := &codedError{code: "ZONE_MISSING"}
	wrapped := Wrapf(base, "load zone %d", 1)

	got, ok := AsType[*codedError](wrapped)

	assert.True(t, ok)
	assert.Equal(t, "ZONE_MISSING", got.code)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "load zone 1: ZONE_MISSING", wrapped.Error())
}

func TestAsType_NoMatch(t *testing.T) {
	_, ok := AsType[*codedError](New("plain"))

	assert.False(t, ok)
}

func TestWithStack_KeepsMessage(t *testing.T) {
	err := WithStack(New("redis down"))

	assert.Equal(t, "redis down", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStack_KeepsMessage")
}

package strict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackLIFO(t *testing.T) {
	s, err := NewStack(nil)
	assert.NoError(t, err)

	assert.NoError(t, s.Push("a"))
	assert.NoError(t, s.Push("b"))
	assert.NoError(t, s.Push("c"))

	v, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, "c", v)

	v, err = s.Top()
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, s.Len())
}

func TestStackAliases(t *testing.T) {
	s, err := NewStack(mustTypeSet(t, "int"))
	assert.NoError(t, err)

	assert.NoError(t, s.Stack(1))
	assert.NoError(t, s.Stack(2))

	v, err := s.Unstack()
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	// Alias failure semantics match the aliased method.
	err = s.Stack("x")
	assert.ErrorIs(t, err, ErrTypeRejected)

	_, err = s.Unstack()
	assert.NoError(t, err)
	_, err = s.Unstack()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestStackFixedDirection(t *testing.T) {
	s, err := NewStack(mustTypeSet(t, "string"))
	assert.NoError(t, err)

	err = s.SetIterationMode(IterationMode{Direction: DirectionForward})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, ErrProhibited, "changing a fixed direction is a prohibited operation")
	assert.Equal(t, DirectionBackward, s.IterationMode().Direction)

	// The delete flag may still be chosen.
	assert.NoError(t, s.SetIterationMode(IterationMode{Direction: DirectionBackward, Delete: true}))
	assert.True(t, s.IterationMode().Delete)
}

func TestStackStaysLIFOAfterRejectedModeChange(t *testing.T) {
	s, err := NewStack(nil, 1, 2, 3)
	assert.NoError(t, err)

	err = s.SetIterationMode(IterationMode{Direction: DirectionForward})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	var got []any
	for s.Rewind(); s.Valid(); s.Next() {
		got = append(got, s.Current())
	}
	assert.Equal(t, []any{3, 2, 1}, got, "a rejected mode change must not alter traversal order")
}

func TestStackTraversalTopDown(t *testing.T) {
	s, err := NewStack(nil, 1, 2, 3)
	assert.NoError(t, err)

	var got []any
	for s.Rewind(); s.Valid(); s.Next() {
		got = append(got, s.Current())
	}
	assert.Equal(t, []any{3, 2, 1}, got)
}

func TestStackTypeEnforcement(t *testing.T) {
	s, err := NewStack(mustTypeSet(t, "int"), 1, 2)
	assert.NoError(t, err)

	assert.ErrorIs(t, s.Push(1.5), ErrTypeRejected)
	assert.Equal(t, []any{1, 2}, s.ToSlice())
}

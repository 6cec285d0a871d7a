package strict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributesDeclaredMode(t *testing.T) {
	a := NewAttributes("name", "size")

	assert.NoError(t, a.Set("name", "widget"))
	assert.NoError(t, a.Set("size", 3))

	err := a.Set("color", "red")
	assert.ErrorIs(t, err, ErrKeyNotFound, "undeclared keys are rejected")

	v, err := a.Get("name")
	assert.NoError(t, err)
	assert.Equal(t, "widget", v)

	_, err = a.Get("color")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestAttributesOpenMode(t *testing.T) {
	a := NewOpenAttributes()

	assert.NoError(t, a.Set("anything", 1))
	assert.NoError(t, a.Set("else", "two"))
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []string{"anything", "else"}, a.Keys())
}

func TestAttributesHasNeverFails(t *testing.T) {
	a := NewAttributes("declared")

	assert.False(t, a.Has("declared"), "declared but unset reports false")
	assert.False(t, a.Has("missing"), "missing key downgrades to false, not an error")

	assert.NoError(t, a.Set("declared", nil))
	assert.True(t, a.Has("declared"), "a present nil value counts as set")
}

func TestAttributesUnset(t *testing.T) {
	a := NewOpenAttributes()
	assert.NoError(t, a.Set("a", 1))
	assert.NoError(t, a.Set("b", 2))

	a.Unset("a")
	assert.False(t, a.Has("a"))
	assert.Equal(t, []string{"b"}, a.Keys())

	a.Unset("a") // idempotent
	assert.Equal(t, 1, a.Len())
}

func TestAttributesDeclaredEmptyRejectsAll(t *testing.T) {
	a := NewAttributes()
	assert.ErrorIs(t, a.Set("any", 1), ErrKeyNotFound)
}

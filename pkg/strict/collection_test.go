package strict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionSetGetRemove(t *testing.T) {
	c := NewCollection(mustTypeSet(t, "string"))

	assert.NoError(t, c.Set(StringKey("greeting"), "hello"))
	assert.NoError(t, c.Set(IntKey(0), "zero"))

	v, err := c.Get(StringKey("greeting"))
	assert.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = c.Get(StringKey("absent"))
	assert.ErrorIs(t, err, ErrKeyNotFound)

	v, err = c.Remove(IntKey(0))
	assert.NoError(t, err)
	assert.Equal(t, "zero", v)

	_, err = c.Remove(IntKey(0))
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionTypeEnforcement(t *testing.T) {
	c := NewCollection(mustTypeSet(t, "int"))

	assert.NoError(t, c.Set(StringKey("n"), 1))

	err := c.Set(StringKey("s"), "x")
	assert.ErrorIs(t, err, ErrTypeRejected)

	var te *TypeError
	assert.ErrorAs(t, err, &te)
	assert.Equal(t, "string", te.Type)

	assert.Equal(t, 1, c.Len(), "rejected set must not mutate")
	assert.ErrorIs(t, c.Add(StringKey("s"), "x"), ErrTypeRejected)
}

func TestCollectionOverwriteKeepsOrder(t *testing.T) {
	c := NewCollection(nil)

	assert.NoError(t, c.Set(StringKey("a"), 1))
	assert.NoError(t, c.Set(StringKey("b"), 2))
	assert.NoError(t, c.Set(StringKey("a"), 10))

	assert.Equal(t, []Key{StringKey("a"), StringKey("b")}, c.Keys())
	assert.Equal(t, []any{10, 2}, c.Values())
}

func TestCollectionNilValueIsPresent(t *testing.T) {
	c := NewCollection(nil)

	assert.NoError(t, c.Set(StringKey("nothing"), nil))
	assert.True(t, c.Has(StringKey("nothing")))

	v, err := c.Get(StringKey("nothing"))
	assert.NoError(t, err, "a present nil value is found, not an error")
	assert.Nil(t, v)
}

func TestCollectionIntAndStringKeysAreDistinct(t *testing.T) {
	c := NewCollection(nil)

	assert.NoError(t, c.Set(IntKey(1), "int one"))
	assert.NoError(t, c.Set(StringKey("1"), "string one"))
	assert.Equal(t, 2, c.Len())

	v, err := c.Get(IntKey(1))
	assert.NoError(t, err)
	assert.Equal(t, "int one", v)

	v, err = c.Get(StringKey("1"))
	assert.NoError(t, err)
	assert.Equal(t, "string one", v)
}

func TestCollectionIsList(t *testing.T) {
	c := NewCollection(nil)
	assert.True(t, c.IsList(), "empty collection is list-shaped")

	assert.NoError(t, c.Set(IntKey(0), "a"))
	assert.NoError(t, c.Set(IntKey(1), "b"))
	assert.NoError(t, c.Set(IntKey(2), "c"))
	assert.True(t, c.IsList())

	_, err := c.Remove(IntKey(1))
	assert.NoError(t, err)
	assert.False(t, c.IsList(), "a key gap breaks list shape")
}

func TestCollectionIsListRejectsStringAndOutOfOrderKeys(t *testing.T) {
	c := NewCollection(nil)
	assert.NoError(t, c.Set(IntKey(1), "b"))
	assert.NoError(t, c.Set(IntKey(0), "a"))
	assert.False(t, c.IsList(), "keys must appear in ascending order from 0")

	d := NewCollection(nil)
	assert.NoError(t, d.Set(IntKey(0), "a"))
	assert.NoError(t, d.Set(StringKey("x"), "b"))
	assert.False(t, d.IsList())
}

func TestCollectionToList(t *testing.T) {
	c := NewCollection(mustTypeSet(t, "string"))
	assert.NoError(t, c.Set(IntKey(0), "a"))
	assert.NoError(t, c.Set(IntKey(1), "b"))

	l, err := c.ToList()
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, l.ToSlice())
	assert.Equal(t, []string{"string"}, l.AllowedTypes())

	assert.NoError(t, c.Set(StringKey("x"), "c"))
	_, err = c.ToList()
	assert.ErrorIs(t, err, ErrNotAList)
}

func TestCollectionClear(t *testing.T) {
	c := NewCollection(nil)
	assert.NoError(t, c.Set(StringKey("a"), 1))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.False(t, c.Has(StringKey("a")))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "7", IntKey(7).String())
	assert.Equal(t, "name", StringKey("name").String())

	i, ok := IntKey(7).Int()
	assert.True(t, ok)
	assert.Equal(t, 7, i)

	_, ok = StringKey("7").Int()
	assert.False(t, ok)
}

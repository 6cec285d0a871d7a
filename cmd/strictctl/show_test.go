package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/strictly/pkg/strict"
)

func keyRef(s string) *string { return &s }

func TestDescribeOrdered(t *testing.T) {
	ts, err := strict.NewTypeSet("int")
	assert.NoError(t, err)

	q, err := strict.NewQueue(ts, 1, 2)
	assert.NoError(t, err)

	res := describe(q)
	assert.Equal(t, strict.ContainerQueue, res.Kind)
	assert.Equal(t, []string{"int"}, res.AllowedTypes)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []showEntry{{Value: 1}, {Value: 2}}, res.Entries)
}

func TestDescribeKeyed(t *testing.T) {
	c := strict.NewCollection(nil)
	assert.NoError(t, c.Set(strict.StringKey("a"), "first"))
	assert.NoError(t, c.Set(strict.IntKey(3), "second"))

	res := describe(c)
	assert.Equal(t, strict.ContainerCollection, res.Kind)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []showEntry{
		{Key: keyRef("a"), Value: "first"},
		{Key: keyRef("3"), Value: "second"},
	}, res.Entries)
}

func TestDescribeKeyedEmptyStringKey(t *testing.T) {
	c := strict.NewCollection(nil)
	assert.NoError(t, c.Set(strict.StringKey(""), "anonymous"))

	res := describe(c)
	assert.Equal(t, []showEntry{{Key: keyRef(""), Value: "anonymous"}}, res.Entries)

	l, err := strict.NewList(nil, "anonymous")
	assert.NoError(t, err)
	assert.Nil(t, describe(l).Entries[0].Key, "ordered entries carry no key at all")
}

func TestConvertContainer(t *testing.T) {
	l, err := strict.NewList(nil, "a", "b")
	assert.NoError(t, err)

	converted, err := convertContainer(l)
	assert.NoError(t, err)

	c, ok := converted.(*strict.Collection)
	assert.True(t, ok)
	assert.True(t, c.IsList())

	back, err := convertContainer(c)
	assert.NoError(t, err)
	assert.Equal(t, l.ToSlice(), back.(*strict.List).ToSlice())
}

func TestConvertContainerNotListShaped(t *testing.T) {
	c := strict.NewCollection(nil)
	assert.NoError(t, c.Set(strict.StringKey("k"), 1))

	_, err := convertContainer(c)
	assert.ErrorIs(t, err, strict.ErrNotAList)
}

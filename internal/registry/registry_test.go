package registry

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct{ N int }

func TestRegisterAndLookupType(t *testing.T) {
	defer Reset()

	assert.NoError(t, RegisterTypeOf("sample", sample{}))

	got, ok := LookupType("sample")
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeOf(sample{}), got)

	_, ok = LookupType("missing")
	assert.False(t, ok)
}

func TestRegisterTypeValidation(t *testing.T) {
	defer Reset()

	assert.ErrorIs(t, RegisterType("", reflect.TypeOf(sample{})), ErrEmptyName)
	assert.ErrorIs(t, RegisterType("x", nil), ErrNilType)
}

func TestRegisterTypeDuplicate(t *testing.T) {
	defer Reset()

	assert.NoError(t, RegisterTypeOf("sample", sample{}))
	assert.NoError(t, RegisterTypeOf("sample", sample{}), "identical re-registration is a no-op")
	assert.ErrorIs(t, RegisterTypeOf("sample", 1), ErrDuplicate)
}

func TestTypeNames(t *testing.T) {
	defer Reset()

	assert.NoError(t, RegisterTypeOf("a", sample{}))
	assert.NoError(t, RegisterTypeOf("b", 1))
	assert.ElementsMatch(t, []string{"a", "b"}, TypeNames())
}

func TestInstanceInitOnce(t *testing.T) {
	defer Reset()

	calls := 0
	init := func() any {
		calls++
		return &sample{N: calls}
	}

	first := Instance("counter", init)
	second := Instance("counter", init)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls, "init runs once per key")
	assert.True(t, HasInstance("counter"))
	assert.False(t, HasInstance("other"))
}

func TestInstanceConcurrent(t *testing.T) {
	defer Reset()

	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Instance("shared", func() any { return new(sample) })
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		assert.Same(t, results[0], r)
	}
}

func TestReset(t *testing.T) {
	assert.NoError(t, RegisterTypeOf("tmp", sample{}))
	Instance("tmp", func() any { return 1 })

	Reset()
	_, ok := LookupType("tmp")
	assert.False(t, ok)
	assert.False(t, HasInstance("tmp"))
}

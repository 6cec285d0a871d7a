package strict

// Array is a Collection that additionally behaves as an ordered
// sequence: ends-based access over the entries in insertion order,
// with integer keys reassigned on front mutations, plus forward cursor
// traversal.
type Array struct {
	Collection
	pos int
}

// NewArray creates an Array restricted to the given TypeSet. A nil
// TypeSet means unrestricted.
func NewArray(types *TypeSet) *Array {
	return &Array{Collection: *newCollection(ensureTypes(types))}
}

// nextIndex returns the integer key a pushed value receives: one past
// the highest non-negative integer key, or 0 when none exists.
func (a *Array) nextIndex() int {
	next := 0
	for _, k := range a.keys {
		if i, ok := k.Int(); ok && i >= next {
			next = i + 1
		}
	}
	return next
}

// renumber reassigns integer keys sequentially from 0 in insertion
// order. String keys keep their position and name.
func (a *Array) renumber() {
	counter := 0
	keys := make([]Key, 0, len(a.keys))
	items := make(map[Key]any, len(a.items))
	for _, k := range a.keys {
		nk := k
		if k.IsInt() {
			nk = IntKey(counter)
			counter++
		}
		keys = append(keys, nk)
		items[nk] = a.items[k]
	}
	a.keys = keys
	a.items = items
}

// Push appends v under the next free integer key.
// Returns ErrTypeRejected if v fails the TypeSet.
func (a *Array) Push(v any) error {
	return a.Set(IntKey(a.nextIndex()), v)
}

// Pop removes and returns the last entry's value.
// Returns ErrEmptyContainer if the array is empty.
func (a *Array) Pop() (any, error) {
	if len(a.keys) == 0 {
		return nil, ErrEmptyContainer
	}
	return a.Remove(a.keys[len(a.keys)-1])
}

// Shift removes and returns the first entry's value. Remaining integer
// keys are renumbered from 0.
// Returns ErrEmptyContainer if the array is empty.
func (a *Array) Shift() (any, error) {
	if len(a.keys) == 0 {
		return nil, ErrEmptyContainer
	}
	v, err := a.Remove(a.keys[0])
	if err != nil {
		return nil, err
	}
	a.renumber()
	return v, nil
}

// Unshift inserts v at the front under integer key 0; existing integer
// keys are renumbered to follow it.
// Returns ErrTypeRejected if v fails the TypeSet.
func (a *Array) Unshift(v any) error {
	if !a.types.Matches(v) {
		return rejectErr(1, v)
	}
	// Place the new value first, then renumber so it becomes key 0.
	keys := make([]Key, 0, len(a.keys)+1)
	items := make(map[Key]any, len(a.items)+1)
	placeholder := IntKey(a.nextIndex())
	keys = append(keys, placeholder)
	items[placeholder] = v
	for _, k := range a.keys {
		keys = append(keys, k)
		items[k] = a.items[k]
	}
	a.keys = keys
	a.items = items
	a.renumber()
	return nil
}

// Bottom returns the first entry's value without removing it.
// Returns ErrEmptyContainer if the array is empty.
func (a *Array) Bottom() (any, error) {
	if len(a.keys) == 0 {
		return nil, ErrEmptyContainer
	}
	return a.items[a.keys[0]], nil
}

// Top returns the last entry's value without removing it.
// Returns ErrEmptyContainer if the array is empty.
func (a *Array) Top() (any, error) {
	if len(a.keys) == 0 {
		return nil, ErrEmptyContainer
	}
	return a.items[a.keys[len(a.keys)-1]], nil
}

// Rewind moves the cursor to the first entry.
func (a *Array) Rewind() {
	a.pos = 0
}

// Valid reports whether the cursor is on a stored entry.
func (a *Array) Valid() bool {
	return a.pos >= 0 && a.pos < len(a.keys)
}

// Current returns the value under the cursor, or nil if the cursor is
// not on a valid entry.
func (a *Array) Current() any {
	if !a.Valid() {
		return nil
	}
	return a.items[a.keys[a.pos]]
}

// Key returns the key under the cursor and whether the cursor is
// valid.
func (a *Array) Key() (Key, bool) {
	if !a.Valid() {
		return Key{}, false
	}
	return a.keys[a.pos], true
}

// Next advances the cursor to the following entry.
func (a *Array) Next() {
	a.pos++
}

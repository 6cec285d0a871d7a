package strict

// Collection is an insertion-ordered mapping from integer or string
// keys to values, all satisfying one TypeSet.
type Collection struct {
	types *TypeSet
	keys  []Key
	items map[Key]any
}

// NewCollection creates a Collection restricted to the given TypeSet.
// A nil TypeSet means unrestricted.
func NewCollection(types *TypeSet) *Collection {
	return newCollection(ensureTypes(types))
}

func newCollection(types *TypeSet) *Collection {
	return &Collection{
		types: types,
		items: make(map[Key]any),
	}
}

// AllowedTypes returns the container's configured descriptors in order.
func (c *Collection) AllowedTypes() []string {
	return c.types.Descriptors()
}

// Len returns the number of stored entries.
func (c *Collection) Len() int {
	return len(c.keys)
}

// IsEmpty reports whether the collection holds no entries.
func (c *Collection) IsEmpty() bool {
	return len(c.keys) == 0
}

// Clear removes all entries.
func (c *Collection) Clear() {
	c.keys = nil
	c.items = make(map[Key]any)
}

// Has reports whether an entry exists under k. A present nil value
// counts as existing.
func (c *Collection) Has(k Key) bool {
	_, ok := c.items[k]
	return ok
}

// Set stores v under k, overwriting any existing entry. New keys are
// appended to the iteration order. Returns ErrTypeRejected if v fails
// the TypeSet.
func (c *Collection) Set(k Key, v any) error {
	if !c.types.Matches(v) {
		return rejectErr(1, v)
	}
	if _, ok := c.items[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.items[k] = v
	return nil
}

// Add stores v under k. It is an alias for Set with identical
// semantics: existing keys are overwritten.
func (c *Collection) Add(k Key, v any) error {
	return c.Set(k, v)
}

// Get returns the value stored under k.
// Returns ErrKeyNotFound if no entry exists; a present nil value is
// returned without error.
func (c *Collection) Get(k Key) (any, error) {
	v, ok := c.items[k]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// Remove deletes and returns the value stored under k.
// Returns ErrKeyNotFound if no entry exists.
func (c *Collection) Remove(k Key) (any, error) {
	v, ok := c.items[k]
	if !ok {
		return nil, ErrKeyNotFound
	}
	delete(c.items, k)
	for i, existing := range c.keys {
		if existing == k {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return v, nil
}

// Keys returns the keys in insertion order. The returned slice is a
// copy.
func (c *Collection) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values returns the values in key insertion order.
func (c *Collection) Values() []any {
	out := make([]any, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

// ToMap returns a copy of the entries as a plain map. Iteration order
// is lost; use Keys for order.
func (c *Collection) ToMap() map[Key]any {
	out := make(map[Key]any, len(c.items))
	for k, v := range c.items {
		out[k] = v
	}
	return out
}

// IsList reports whether the keys are exactly the integers 0..Len()-1
// in ascending order with no gaps. This is computed from the current
// key set, not stored.
func (c *Collection) IsList() bool {
	for i, k := range c.keys {
		if k != IntKey(i) {
			return false
		}
	}
	return true
}

// ToList returns an ordered container with a copy of the descriptor
// set and the values in key order. Returns ErrNotAList unless IsList
// is true.
func (c *Collection) ToList() (*List, error) {
	if !c.IsList() {
		return nil, ErrNotAList
	}
	l := &List{list{
		types: c.types.clone(),
		items: c.Values(),
		mode:  IterationMode{Direction: DirectionForward},
	}}
	return l, nil
}

package strict

// Attributes is an explicit key-value configuration object replacing
// dynamic property access. In declared mode only the keys named at
// construction may hold values; in open mode any key may.
type Attributes struct {
	declared map[string]bool // nil in open mode
	values   map[string]any
	order    []string
}

// NewAttributes creates a declared-mode bag: only the listed keys can
// be set or read. With no keys the bag rejects everything.
func NewAttributes(keys ...string) *Attributes {
	declared := make(map[string]bool, len(keys))
	for _, k := range keys {
		declared[k] = true
	}
	return &Attributes{
		declared: declared,
		values:   make(map[string]any),
	}
}

// NewOpenAttributes creates an open-mode bag accepting any key.
func NewOpenAttributes() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// Set stores v under key.
// Returns ErrKeyNotFound in declared mode when key was not declared.
func (a *Attributes) Set(key string, v any) error {
	if a.declared != nil && !a.declared[key] {
		return ErrKeyNotFound
	}
	if _, ok := a.values[key]; !ok {
		a.order = append(a.order, key)
	}
	a.values[key] = v
	return nil
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound when no value is present.
func (a *Attributes) Get(key string) (any, error) {
	v, ok := a.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// Has reports whether a value is present under key. A missing or
// undeclared key reports false; Has never fails.
func (a *Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Unset removes the value under key. Removing an absent key is a
// no-op.
func (a *Attributes) Unset(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Keys returns the keys holding values, in first-set order.
func (a *Attributes) Keys() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the number of stored values.
func (a *Attributes) Len() int {
	return len(a.values)
}

package strict

// Traversal directions for ordered containers.
const (
	DirectionForward  = "fifo"
	DirectionBackward = "lifo"
)

// validDirections is the set of recognized traversal directions.
var validDirections = map[string]bool{
	DirectionForward:  true,
	DirectionBackward: true,
}

// IterationMode governs cursor traversal over an ordered container:
// the direction the cursor moves on Next, and whether traversed items
// are removed as the cursor passes them.
type IterationMode struct {
	Direction string // DirectionForward or DirectionBackward.
	Delete    bool   // Remove each item as the cursor leaves it.
}

// list is the shared ordered-container implementation. List, Stack,
// and Queue embed it unexported so that mode changes can only go
// through each shape's own SetIterationMode gate; there is no promoted
// field through which a fixed direction could be reassigned.
type list struct {
	types *TypeSet
	items []any
	pos   int
	mode  IterationMode
}

// ensureTypes substitutes an empty (unrestricted) TypeSet for nil.
func ensureTypes(types *TypeSet) *TypeSet {
	if types == nil {
		return &TypeSet{}
	}
	return types
}

// AllowedTypes returns the container's configured descriptors in order.
func (l *list) AllowedTypes() []string {
	return l.types.Descriptors()
}

// Len returns the number of stored items.
func (l *list) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the container holds no items.
func (l *list) IsEmpty() bool {
	return len(l.items) == 0
}

// Clear removes all items and rewinds the cursor.
func (l *list) Clear() {
	l.items = nil
	l.Rewind()
}

// validateAll checks every value against the TypeSet before any mutation.
// Returns a TypeError carrying the 1-based position of the first value
// that fails, so a rejected call never leaves earlier values inserted.
func (l *list) validateAll(values []any) error {
	for i, v := range values {
		if !l.types.Matches(v) {
			return rejectErr(i+1, v)
		}
	}
	return nil
}

// Append adds values to the end of the container in call order. The
// whole call is validated first; on rejection nothing is inserted.
func (l *list) Append(values ...any) error {
	if err := l.validateAll(values); err != nil {
		return err
	}
	l.items = append(l.items, values...)
	return nil
}

// Prepend inserts values at the front in call order. The whole call is
// validated first; on rejection nothing is inserted.
func (l *list) Prepend(values ...any) error {
	if err := l.validateAll(values); err != nil {
		return err
	}
	l.items = append(append(make([]any, 0, len(values)+len(l.items)), values...), l.items...)
	return nil
}

// Push appends a single value to the end of the container.
func (l *list) Push(v any) error {
	return l.Append(v)
}

// Unshift inserts a single value at the front of the container.
func (l *list) Unshift(v any) error {
	return l.Prepend(v)
}

// Get returns the value at index i.
// Returns ErrIndexOutOfRange if i is not a valid position.
func (l *list) Get(i int) (any, error) {
	if i < 0 || i >= len(l.items) {
		return nil, ErrIndexOutOfRange
	}
	return l.items[i], nil
}

// Set replaces the value at index i.
// Returns ErrIndexOutOfRange if i is not a valid position and
// ErrTypeRejected if v fails the TypeSet.
func (l *list) Set(i int, v any) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	if !l.types.Matches(v) {
		return rejectErr(1, v)
	}
	l.items[i] = v
	return nil
}

// Add inserts v at index i, shifting later items right. i may equal
// Len, which appends. Returns ErrIndexOutOfRange or ErrTypeRejected.
func (l *list) Add(i int, v any) error {
	if i < 0 || i > len(l.items) {
		return ErrIndexOutOfRange
	}
	if !l.types.Matches(v) {
		return rejectErr(1, v)
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
	return nil
}

// Remove deletes and returns the value at index i.
// Returns ErrIndexOutOfRange if i is not a valid position.
func (l *list) Remove(i int) (any, error) {
	if i < 0 || i >= len(l.items) {
		return nil, ErrIndexOutOfRange
	}
	v := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return v, nil
}

// Pop removes and returns the last item.
// Returns ErrEmptyContainer if the container is empty.
func (l *list) Pop() (any, error) {
	if len(l.items) == 0 {
		return nil, ErrEmptyContainer
	}
	v := l.items[len(l.items)-1]
	l.items = l.items[:len(l.items)-1]
	return v, nil
}

// Shift removes and returns the first item.
// Returns ErrEmptyContainer if the container is empty.
func (l *list) Shift() (any, error) {
	if len(l.items) == 0 {
		return nil, ErrEmptyContainer
	}
	v := l.items[0]
	l.items = l.items[1:]
	return v, nil
}

// Top returns the last item without removing it.
// Returns ErrEmptyContainer if the container is empty.
func (l *list) Top() (any, error) {
	if len(l.items) == 0 {
		return nil, ErrEmptyContainer
	}
	return l.items[len(l.items)-1], nil
}

// Bottom returns the first item without removing it.
// Returns ErrEmptyContainer if the container is empty.
func (l *list) Bottom() (any, error) {
	if len(l.items) == 0 {
		return nil, ErrEmptyContainer
	}
	return l.items[0], nil
}

// ToSlice returns a copy of the stored items in order. The cursor is
// unaffected.
func (l *list) ToSlice() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// ToCollection returns a keyed view of the container: indices become
// integer keys and the descriptor set is copied. The container is
// unchanged.
func (l *list) ToCollection() *Collection {
	c := newCollection(l.types.clone())
	for i, v := range l.items {
		c.keys = append(c.keys, IntKey(i))
		c.items[IntKey(i)] = v
	}
	return c
}

// IterationMode returns the current cursor mode.
func (l *list) IterationMode() IterationMode {
	return l.mode
}

// setIterationMode installs a mode with a recognized direction. Shape
// rules (fixed directions) are enforced by the exported wrappers.
func (l *list) setIterationMode(mode IterationMode) error {
	if !validDirections[mode.Direction] {
		return ErrInvalidConfiguration
	}
	l.mode = mode
	return nil
}

// Rewind moves the cursor to the traversal start: the first item for
// forward mode, the last for backward mode.
func (l *list) Rewind() {
	if l.mode.Direction == DirectionBackward {
		l.pos = len(l.items) - 1
		return
	}
	l.pos = 0
}

// Valid reports whether the cursor is on a stored item.
func (l *list) Valid() bool {
	return l.pos >= 0 && l.pos < len(l.items)
}

// Current returns the item under the cursor, or nil if the cursor is
// not on a valid position.
func (l *list) Current() any {
	if !l.Valid() {
		return nil
	}
	return l.items[l.pos]
}

// Key returns the cursor position, or -1 if the cursor is invalid.
func (l *list) Key() int {
	if !l.Valid() {
		return -1
	}
	return l.pos
}

// Next advances the cursor one step in the configured direction. In
// delete mode the item under the cursor is removed as the cursor leaves
// it.
func (l *list) Next() {
	if !l.Valid() {
		return
	}
	if l.mode.Delete {
		l.items = append(l.items[:l.pos], l.items[l.pos+1:]...)
		if l.mode.Direction == DirectionBackward {
			l.pos--
		}
		return
	}
	if l.mode.Direction == DirectionBackward {
		l.pos--
		return
	}
	l.pos++
}

// Prev moves the cursor one step against the configured direction.
func (l *list) Prev() {
	if l.mode.Direction == DirectionBackward {
		l.pos++
		return
	}
	l.pos--
}

// List is an ordered sequence of values, all satisfying one TypeSet,
// with positional access and cursor-based traversal in either
// direction.
type List struct {
	list
}

// NewList creates a List restricted to the given TypeSet and seeds it
// with values. A nil TypeSet means unrestricted. Seed values are
// validated like an Append call.
func NewList(types *TypeSet, values ...any) (*List, error) {
	l := &List{list{
		types: ensureTypes(types),
		mode:  IterationMode{Direction: DirectionForward},
	}}
	if err := l.Append(values...); err != nil {
		return nil, err
	}
	return l, nil
}

// SetIterationMode reconfigures cursor traversal. Returns
// ErrInvalidConfiguration if the direction is not recognized.
func (l *List) SetIterationMode(mode IterationMode) error {
	return l.setIterationMode(mode)
}

package strict

// Queue is a FIFO ordered container. Its traversal direction is fixed
// to forward; only the delete-on-traverse flag can be changed.
type Queue struct {
	list
}

// NewQueue creates a Queue restricted to the given TypeSet and seeds it
// with values, first value at the front. A nil TypeSet means
// unrestricted.
func NewQueue(types *TypeSet, values ...any) (*Queue, error) {
	q := &Queue{list{
		types: ensureTypes(types),
		mode:  IterationMode{Direction: DirectionForward},
	}}
	if err := q.Append(values...); err != nil {
		return nil, err
	}
	return q, nil
}

// Enqueue adds a value to the back of the queue. It is an alias for
// Push with identical semantics.
func (q *Queue) Enqueue(v any) error {
	return q.Push(v)
}

// Dequeue removes and returns the front value. It is an alias for
// Shift with identical semantics.
func (q *Queue) Dequeue() (any, error) {
	return q.Shift()
}

// SetIterationMode reconfigures the delete-on-traverse flag. The
// direction is fixed to forward; any other direction fails with an
// error matching both ErrInvalidConfiguration and ErrProhibited.
func (q *Queue) SetIterationMode(mode IterationMode) error {
	if mode.Direction != DirectionForward {
		return &fixedDirectionError{want: DirectionForward}
	}
	return q.setIterationMode(mode)
}

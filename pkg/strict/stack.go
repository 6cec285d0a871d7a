package strict

// Stack is a LIFO ordered container. Its traversal direction is fixed
// to backward; only the delete-on-traverse flag can be changed.
type Stack struct {
	list
}

// NewStack creates a Stack restricted to the given TypeSet and seeds it
// with values, first value at the bottom. A nil TypeSet means
// unrestricted.
func NewStack(types *TypeSet, values ...any) (*Stack, error) {
	s := &Stack{list{
		types: ensureTypes(types),
		mode:  IterationMode{Direction: DirectionBackward},
	}}
	if err := s.Append(values...); err != nil {
		return nil, err
	}
	return s, nil
}

// Stack pushes a value onto the top of the stack. It is an alias for
// Push with identical semantics.
func (s *Stack) Stack(v any) error {
	return s.Push(v)
}

// Unstack removes and returns the top value. It is an alias for Pop
// with identical semantics.
func (s *Stack) Unstack() (any, error) {
	return s.Pop()
}

// SetIterationMode reconfigures the delete-on-traverse flag. The
// direction is fixed to backward; any other direction fails with an
// error matching both ErrInvalidConfiguration and ErrProhibited.
func (s *Stack) SetIterationMode(mode IterationMode) error {
	if mode.Direction != DirectionBackward {
		return &fixedDirectionError{want: DirectionBackward}
	}
	return s.setIterationMode(mode)
}

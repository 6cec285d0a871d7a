package strict

import (
	"errors"
	"fmt"
)

// Container operation errors. All container methods return one of these
// sentinels (possibly wrapped); compare with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrTypeRejected         = errors.New("value type not allowed")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrKeyNotFound          = errors.New("key not found")
	ErrEmptyContainer       = errors.New("container is empty")
	ErrNotAList             = errors.New("collection keys are not list-shaped")
	ErrProhibited           = errors.New("operation prohibited")
)

// TypeError reports a value rejected by a container's TypeSet. It carries
// the 1-based argument position within the failing call and the observed
// runtime type of the rejected value. errors.Is(err, ErrTypeRejected)
// holds for every TypeError.
type TypeError struct {
	Arg  int    // 1-based position of the offending argument.
	Type string // Runtime type name of the rejected value.
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value type not allowed: argument %d has type %s", e.Arg, e.Type)
}

// Is reports whether target is ErrTypeRejected, making TypeError values
// match the sentinel under errors.Is.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeRejected
}

// rejectErr builds the TypeError for a rejected value at the given
// 1-based argument position.
func rejectErr(arg int, v any) error {
	return &TypeError{Arg: arg, Type: typeName(v)}
}

// fixedDirectionError reports an attempt to reconfigure the traversal
// direction of a container whose direction is fixed by its shape. It
// matches both ErrInvalidConfiguration and ErrProhibited under
// errors.Is: the request is malformed for the shape, and changing the
// direction is a prohibited operation on it.
type fixedDirectionError struct {
	want string // The shape's fixed direction.
}

func (e *fixedDirectionError) Error() string {
	return fmt.Sprintf("operation prohibited: traversal direction is fixed to %s", e.want)
}

func (e *fixedDirectionError) Is(target error) bool {
	return target == ErrInvalidConfiguration || target == ErrProhibited
}

// Package registry holds process-wide state shared by all strict containers:
// a map from type names to reflect.Type values, consulted when a descriptor
// names a Go type rather than an atomic kind, and a map of lazily created
// singleton instances keyed by name.
//
// Both maps are guarded by a mutex so the package is safe for concurrent use.
package registry

import (
	"errors"
	"reflect"
	"sync"
)

// Registration errors.
var (
	ErrEmptyName = errors.New("type name must not be empty")
	ErrNilType   = errors.New("type must not be nil")
	ErrDuplicate = errors.New("type name already registered")
)

var (
	mu        sync.Mutex
	types     = make(map[string]reflect.Type)
	instances = make(map[string]any)
)

// RegisterType associates a name with a reflect.Type so that descriptor
// matching can resolve it. Registering an already registered name returns
// ErrDuplicate; re-registering the identical type is a no-op.
//
// To register an interface type, pass the result of
// reflect.TypeOf((*I)(nil)).Elem().
func RegisterType(name string, t reflect.Type) error {
	if name == "" {
		return ErrEmptyName
	}
	if t == nil {
		return ErrNilType
	}
	mu.Lock()
	defer mu.Unlock()
	if existing, ok := types[name]; ok {
		if existing == t {
			return nil
		}
		return ErrDuplicate
	}
	types[name] = t
	return nil
}

// RegisterTypeOf registers the dynamic type of v under the given name.
// It is a convenience wrapper around RegisterType for concrete values.
func RegisterTypeOf(name string, v any) error {
	return RegisterType(name, reflect.TypeOf(v))
}

// LookupType returns the type registered under name, if any.
func LookupType(name string) (reflect.Type, bool) {
	mu.Lock()
	defer mu.Unlock()
	t, ok := types[name]
	return t, ok
}

// TypeNames returns all registered type names in unspecified order.
func TypeNames() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	return names
}

// Instance returns the singleton value stored under key, creating it with
// init on first use. Subsequent calls for the same key return the stored
// value and never invoke init again. There is no way to replace or copy a
// stored instance; dropping it requires Reset.
func Instance(key string, init func() any) any {
	mu.Lock()
	defer mu.Unlock()
	if v, ok := instances[key]; ok {
		return v
	}
	v := init()
	instances[key] = v
	return v
}

// HasInstance reports whether a singleton exists under key.
func HasInstance(key string) bool {
	mu.Lock()
	defer mu.Unlock()
	_, ok := instances[key]
	return ok
}

// Reset clears all registered types and singleton instances.
// Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	types = make(map[string]reflect.Type)
	instances = make(map[string]any)
}

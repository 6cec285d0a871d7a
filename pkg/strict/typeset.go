package strict

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/strictly/internal/registry"
)

// Atomic type descriptors. Each names a fixed category of runtime values;
// any other descriptor is treated as a Go type name.
const (
	TypeArray     = "array"
	TypeBool      = "bool"
	TypeCallable  = "callable"
	TypeCountable = "countable"
	TypeFloat     = "float"
	TypeInt       = "int"
	TypeIterable  = "iterable"
	TypeNull      = "null"
	TypeNumeric   = "numeric"
	TypeObject    = "object"
	TypeResource  = "resource"
	TypeScalar    = "scalar"
	TypeString    = "string"
)

// atomicPredicates is the closed dispatch table from atomic descriptor to
// its predicate. Descriptors outside this table name Go types.
var atomicPredicates = map[string]func(any) bool{
	TypeArray:     isArray,
	TypeBool:      isBool,
	TypeCallable:  isCallable,
	TypeCountable: isCountable,
	TypeFloat:     isFloat,
	TypeInt:       isInt,
	TypeIterable:  isIterable,
	TypeNull:      isNull,
	TypeNumeric:   isNumeric,
	TypeObject:    isObject,
	TypeResource:  isResource,
	TypeScalar:    isScalar,
	TypeString:    isString,
}

// IsAtomicType reports whether descriptor names one of the built-in value
// categories rather than a Go type.
func IsAtomicType(descriptor string) bool {
	_, ok := atomicPredicates[descriptor]
	return ok
}

// TypeSet is an ordered allow-list of type descriptors. A value satisfies
// the set when at least one descriptor accepts it; an empty set accepts
// every value. TypeSet is immutable after construction.
type TypeSet struct {
	descriptors []string
}

// NewTypeSet builds a TypeSet from the given descriptors. An empty
// descriptor list is valid and means unrestricted. Empty-string
// descriptors are rejected with ErrInvalidConfiguration.
func NewTypeSet(descriptors ...string) (*TypeSet, error) {
	for _, d := range descriptors {
		if d == "" {
			return nil, ErrInvalidConfiguration
		}
	}
	ts := &TypeSet{descriptors: make([]string, len(descriptors))}
	copy(ts.descriptors, descriptors)
	return ts, nil
}

// Descriptors returns the configured descriptors in insertion order.
// The returned slice is a copy.
func (ts *TypeSet) Descriptors() []string {
	out := make([]string, len(ts.descriptors))
	copy(out, ts.descriptors)
	return out
}

// IsUnrestricted reports whether the set is empty and therefore accepts
// every value.
func (ts *TypeSet) IsUnrestricted() bool {
	return len(ts.descriptors) == 0
}

// Allows reports whether descriptor is itself a member of the configured
// set. This is exact string membership, not a value check.
func (ts *TypeSet) Allows(descriptor string) bool {
	for _, d := range ts.descriptors {
		if d == descriptor {
			return true
		}
	}
	return false
}

// Matches reports whether v satisfies at least one configured descriptor.
// An empty set matches any value. Descriptors are evaluated in order and
// the first match wins; order never changes the result, only how far the
// scan runs.
func (ts *TypeSet) Matches(v any) bool {
	if len(ts.descriptors) == 0 {
		return true
	}
	for _, d := range ts.descriptors {
		if pred, ok := atomicPredicates[d]; ok {
			if pred(v) {
				return true
			}
			continue
		}
		if matchesNamed(v, d) {
			return true
		}
	}
	return false
}

// clone returns an independent TypeSet with the same descriptors.
// Used by conversions so containers never share a set.
func (ts *TypeSet) clone() *TypeSet {
	c := &TypeSet{descriptors: make([]string, len(ts.descriptors))}
	copy(c.descriptors, ts.descriptors)
	return c
}

// matchesNamed reports whether v's dynamic type satisfies a named-type
// descriptor. A leading "*" on the descriptor is ignored. The descriptor
// matches when it equals the dynamic type's name (with or without one
// pointer indirection), or when it resolves through the type registry to
// a type that v's type equals, implements, or is assignable to.
func matchesNamed(v any, descriptor string) bool {
	descriptor = strings.TrimPrefix(descriptor, "*")
	rt := reflect.TypeOf(v)
	if rt == nil {
		return false
	}
	base := rt
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if rt.String() == descriptor || base.String() == descriptor {
		return true
	}
	reg, ok := registry.LookupType(descriptor)
	if !ok {
		return false
	}
	if rt == reg || base == reg {
		return true
	}
	if reg.Kind() == reflect.Interface {
		return rt.Implements(reg)
	}
	return rt.AssignableTo(reg)
}

// typeName returns the runtime type name of v for error reporting.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func isArray(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func isBool(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

func isCallable(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Func
}

func isCountable(v any) bool {
	if _, ok := v.(interface{ Len() int }); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return true
	}
	return false
}

func isFloat(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isInt(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isIterable(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return true
	}
	return false
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isNumeric(v any) bool {
	if isInt(v) || isFloat(v) {
		return true
	}
	if s, ok := v.(string); ok {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil
	}
	return false
}

func isObject(v any) bool {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return false
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt.Kind() == reflect.Struct
}

func isResource(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Chan, reflect.Uintptr, reflect.UnsafePointer:
		return true
	}
	return false
}

func isScalar(v any) bool {
	return isBool(v) || isInt(v) || isFloat(v) || isString(v)
}

func isString(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.String
}

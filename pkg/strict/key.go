package strict

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Key is a collection key: an integer or a string. The zero value is
// the empty string key. Key is comparable and usable as a map key.
type Key struct {
	name  string
	index int
	isInt bool
}

// IntKey returns the integer key i.
func IntKey(i int) Key {
	return Key{index: i, isInt: true}
}

// StringKey returns the string key s.
func StringKey(s string) Key {
	return Key{name: s}
}

// IsInt reports whether the key is an integer key.
func (k Key) IsInt() bool {
	return k.isInt
}

// Int returns the integer value of the key and whether it is an
// integer key.
func (k Key) Int() (int, bool) {
	return k.index, k.isInt
}

// String returns the key rendered as a string.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// MarshalJSON encodes integer keys as JSON numbers and string keys as
// JSON strings.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.isInt {
		return json.Marshal(k.index)
	}
	return json.Marshal(k.name)
}

// UnmarshalJSON decodes a JSON number into an integer key and a JSON
// string into a string key. Non-integral numbers are rejected.
func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = StringKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("key must be a string or number: %w", err)
	}
	i, err := strconv.Atoi(n.String())
	if err != nil {
		return fmt.Errorf("key must be an integral number: %w", err)
	}
	*k = IntKey(i)
	return nil
}

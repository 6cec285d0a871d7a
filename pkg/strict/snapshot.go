package strict

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Container kinds recorded in snapshots.
const (
	ContainerList       = "list"
	ContainerStack      = "stack"
	ContainerQueue      = "queue"
	ContainerCollection = "collection"
	ContainerArray      = "array"
)

// snapshotJSON is the wire record for a container snapshot.
type snapshotJSON struct {
	SnapshotID   string      `json:"snapshot_id"`
	Kind         string      `json:"kind"`
	AllowedTypes []string    `json:"allowed_types"`
	Items        []any       `json:"items,omitempty"`
	Entries      []entryJSON `json:"entries,omitempty"`
	Direction    string      `json:"direction,omitempty"`
	DeleteOnPass bool        `json:"delete_on_traverse,omitempty"`
}

// entryJSON is a keyed-container entry in canonical (insertion) order.
type entryJSON struct {
	Key   Key `json:"key"`
	Value any `json:"value"`
}

// Snapshot serializes a container to its JSON record: descriptor list,
// items in canonical order, and for ordered containers the iteration
// mode. Each call generates a fresh snapshot ID (UUID v7); the ID is
// not part of container equivalence.
// Returns ErrInvalidConfiguration if c is not a strict container.
func Snapshot(c any) ([]byte, error) {
	rec := snapshotJSON{SnapshotID: newSnapshotID()}

	switch v := c.(type) {
	case *Stack:
		rec.Kind = ContainerStack
		fillOrdered(&rec, &v.list)
	case *Queue:
		rec.Kind = ContainerQueue
		fillOrdered(&rec, &v.list)
	case *List:
		rec.Kind = ContainerList
		fillOrdered(&rec, &v.list)
	case *Array:
		rec.Kind = ContainerArray
		fillKeyed(&rec, &v.Collection)
	case *Collection:
		rec.Kind = ContainerCollection
		fillKeyed(&rec, v)
	default:
		return nil, fmt.Errorf("%w: cannot snapshot %s", ErrInvalidConfiguration, typeName(c))
	}

	return json.Marshal(rec)
}

func fillOrdered(rec *snapshotJSON, l *list) {
	rec.AllowedTypes = l.AllowedTypes()
	rec.Items = l.ToSlice()
	rec.Direction = l.mode.Direction
	rec.DeleteOnPass = l.mode.Delete
}

func fillKeyed(rec *snapshotJSON, c *Collection) {
	rec.AllowedTypes = c.AllowedTypes()
	for _, k := range c.keys {
		rec.Entries = append(rec.Entries, entryJSON{Key: k, Value: c.items[k]})
	}
}

// newSnapshotID generates a UUID v7 snapshot identifier, falling back
// to v4 if the monotonic source fails.
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Restore reconstructs a container of whatever kind the snapshot
// records. The concrete type is *List, *Stack, *Queue, *Collection, or
// *Array depending on the stored kind.
func Restore(data []byte) (any, error) {
	rec, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	switch rec.Kind {
	case ContainerList:
		return restoreList(rec)
	case ContainerStack:
		return RestoreStack(data)
	case ContainerQueue:
		return RestoreQueue(data)
	case ContainerCollection:
		return restoreCollection(rec)
	case ContainerArray:
		return RestoreArray(data)
	default:
		return nil, fmt.Errorf("%w: unknown container kind %q", ErrInvalidConfiguration, rec.Kind)
	}
}

// RestoreList reconstructs a List: the descriptor list is installed
// first, every stored item is re-validated and re-inserted in order,
// then the iteration mode is restored.
// Returns ErrTypeRejected if stored data violates the descriptors and
// ErrInvalidConfiguration for a malformed record or kind mismatch.
func RestoreList(data []byte) (*List, error) {
	rec, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	if rec.Kind != ContainerList {
		return nil, kindMismatch(ContainerList, rec.Kind)
	}
	return restoreList(rec)
}

// RestoreStack reconstructs a Stack from its snapshot. The recorded
// direction must be backward.
func RestoreStack(data []byte) (*Stack, error) {
	rec, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	if rec.Kind != ContainerStack {
		return nil, kindMismatch(ContainerStack, rec.Kind)
	}
	types, err := NewTypeSet(rec.AllowedTypes...)
	if err != nil {
		return nil, err
	}
	s, err := NewStack(types, rec.Items...)
	if err != nil {
		return nil, err
	}
	if err := s.SetIterationMode(recordedMode(rec)); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreQueue reconstructs a Queue from its snapshot. The recorded
// direction must be forward.
func RestoreQueue(data []byte) (*Queue, error) {
	rec, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	if rec.Kind != ContainerQueue {
		return nil, kindMismatch(ContainerQueue, rec.Kind)
	}
	types, err := NewTypeSet(rec.AllowedTypes...)
	if err != nil {
		return nil, err
	}
	q, err := NewQueue(types, rec.Items...)
	if err != nil {
		return nil, err
	}
	if err := q.SetIterationMode(recordedMode(rec)); err != nil {
		return nil, err
	}
	return q, nil
}

// RestoreCollection reconstructs a Collection from its snapshot.
func RestoreCollection(data []byte) (*Collection, error) {
	rec, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	if rec.Kind != ContainerCollection {
		return nil, kindMismatch(ContainerCollection, rec.Kind)
	}
	return restoreCollection(rec)
}

// RestoreArray reconstructs an Array from its snapshot.
func RestoreArray(data []byte) (*Array, error) {
	rec, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	if rec.Kind != ContainerArray {
		return nil, kindMismatch(ContainerArray, rec.Kind)
	}
	types, err := NewTypeSet(rec.AllowedTypes...)
	if err != nil {
		return nil, err
	}
	a := NewArray(types)
	for _, e := range rec.Entries {
		if err := a.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func restoreList(rec *snapshotJSON) (*List, error) {
	types, err := NewTypeSet(rec.AllowedTypes...)
	if err != nil {
		return nil, err
	}
	l, err := NewList(types, rec.Items...)
	if err != nil {
		return nil, err
	}
	if err := l.SetIterationMode(recordedMode(rec)); err != nil {
		return nil, err
	}
	return l, nil
}

func restoreCollection(rec *snapshotJSON) (*Collection, error) {
	types, err := NewTypeSet(rec.AllowedTypes...)
	if err != nil {
		return nil, err
	}
	c := NewCollection(types)
	for _, e := range rec.Entries {
		if err := c.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func recordedMode(rec *snapshotJSON) IterationMode {
	dir := rec.Direction
	if dir == "" {
		dir = DirectionForward
	}
	return IterationMode{Direction: dir, Delete: rec.DeleteOnPass}
}

func kindMismatch(want, got string) error {
	return fmt.Errorf("%w: snapshot kind is %q, want %q", ErrInvalidConfiguration, got, want)
}

// decodeSnapshot parses a snapshot record. Numbers are decoded through
// json.Number and normalized so integral values come back as int64,
// keeping int-restricted containers valid across a round trip.
func decodeSnapshot(data []byte) (*snapshotJSON, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec snapshotJSON
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	for i, v := range rec.Items {
		rec.Items[i] = normalizeValue(v)
	}
	for i := range rec.Entries {
		rec.Entries[i].Value = normalizeValue(rec.Entries[i].Value)
	}
	return &rec, nil
}

// normalizeValue rewrites decoded JSON values: json.Number becomes
// int64 when integral and float64 otherwise, recursing into arrays and
// objects.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		for i, e := range t {
			t[i] = normalizeValue(e)
		}
		return t
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeValue(e)
		}
		return t
	default:
		return v
	}
}

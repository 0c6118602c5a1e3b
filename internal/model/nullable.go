package model

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Nullable distinguishes a field missing from a payload from an explicit null.
// Set is true when the field was present, Null when it was present as null.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// NullableOf builds a set, non-null value
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Null builds a set null value
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// HasValue reports whether a non-null value was supplied
func (n Nullable[T]) HasValue() bool {
	return n.Set && !n.Null
}

// Ptr returns pointer to value or nil when value is null or absent
func (n Nullable[T]) Ptr() *T {
	if !n.HasValue() {
		return nil
	}
	v := n.Value
	return &v
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		n.Null = true
		var zero T
		n.Value = zero
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.HasValue() {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

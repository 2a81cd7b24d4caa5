package dto

import (
	"bytes"
	"encoding/json"
)

// Nullable is an optional JSON field that distinguishes "absent" from "null".
// Set is true when the key was present; Null is true when its value was null.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// NewNullable returns a Nullable holding v
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Null returns a Nullable that clears the field
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// UnmarshalJSON is only called when the key is present
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Null = true
		var zero T
		n.Value = zero
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

// MarshalJSON writes null for unset or null values
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Apply writes the change into dst: nil when null, the value when set, untouched when absent
func (n Nullable[T]) Apply(dst **T) {
	if !n.Set {
		return
	}
	if n.Null {
		*dst = nil
		return
	}
	v := n.Value
	*dst = &v
}

package generics

import (
	"bytes"

	"github.com/go-json-experiment/json"
)

// Nullable is a value that may be explicitly null.
//
// Unlike Optional, a Nullable is always "present" in its enclosing struct;
// null is one of its legal values. A struct whose fields are all Nullable is
// the Go counterpart of a nullable view of another struct.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// NullableOf returns a non-null Nullable holding v.
func NullableOf[T any](v T) Nullable[T] { return Nullable[T]{Value: v, Valid: true} }

// Null returns a null Nullable.
func Null[T any]() Nullable[T] { return Nullable[T]{} }

// IsNull reports whether n is null.
func (n Nullable[T]) IsNull() bool { return !n.Valid }

// Ptr returns a pointer to a copy of the value, or nil when null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// String renders null as "null"; other values use their JSON encoding.
func (n Nullable[T]) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}

// MarshalJSON encodes a null Nullable as null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON decodes null as a null Nullable.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = Nullable[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = NullableOf(v)
	return nil
}

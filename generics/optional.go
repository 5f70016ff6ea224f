package generics

import (
	"bytes"

	"github.com/go-json-experiment/json"
)

var jsonNull = []byte("null")

// Optional is a value that may be absent.
//
// A struct whose fields are all Optional is the Go counterpart of a "partial"
// view of another struct: a caller sets only the fields it cares about.
//
// The zero value is an unset Optional.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// None returns an unset Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// OrElse returns the value if present, or def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Apply calls fn with the value when one is present.
func (o Optional[T]) Apply(fn func(T)) {
	if o.set && fn != nil {
		fn(o.value)
	}
}

// MarshalJSON encodes an unset Optional as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as unset and anything else as a present value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

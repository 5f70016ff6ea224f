package generics

// Readonly exposes a value without a way to modify it in place.
//
// Get returns a copy, so callers cannot reach the stored value. Reference
// types inside T (maps, slices, pointers) are still shared.
type Readonly[T any] struct {
	value T
}

// Freeze wraps v in a Readonly.
func Freeze[T any](v T) Readonly[T] { return Readonly[T]{value: v} }

// Get returns a copy of the wrapped value.
func (r Readonly[T]) Get() T { return r.value }

package generics

// Identity returns v unchanged. The type argument is inferred from v.
func Identity[T any](v T) T { return v }

// WrapInArray returns a one-element slice holding v.
//
// Wrapping a slice produces a slice of slices:
//
//	WrapInArray([]int{1, 2}) // [][]int{{1, 2}}
func WrapInArray[T any](v T) []T { return []T{v} }

// Box holds a single value of any type.
type Box[T any] struct {
	Value T `json:"value"`
}

// NewBox returns a Box holding v.
func NewBox[T any](v T) Box[T] { return Box[T]{Value: v} }

// Pair holds two values of the same type.
type Pair[T any] struct {
	First  T `json:"first"`
	Second T `json:"second"`
}

// NewPair returns a Pair of first and second.
func NewPair[T any](first, second T) Pair[T] {
	return Pair[T]{First: first, Second: second}
}

// Swap returns the pair with its elements exchanged.
func (p Pair[T]) Swap() Pair[T] { return Pair[T]{First: p.Second, Second: p.First} }

// Values returns both elements in order.
func (p Pair[T]) Values() (T, T) { return p.First, p.Second }

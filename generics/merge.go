package generics

// Merge returns a new map holding the entries of a overlaid by the entries of b.
//
// Keys present in both take b's value. Neither input is modified, and nil
// inputs are treated as empty.
func Merge[K comparable, V any](a, b map[K]V) map[K]V {
	out := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merged is the combination of two values of different types.
//
// Go has no intersection types; Merged keeps both halves side by side and
// gives access to each of them by name.
type Merged[A, B any] struct {
	Left  A
	Right B
}

// MergeStructs combines a and b into a Merged value.
func MergeStructs[A, B any](a A, b B) Merged[A, B] {
	return Merged[A, B]{Left: a, Right: b}
}

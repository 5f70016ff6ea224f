package generics

import (
	"cmp"
	"slices"
)

// Record maps a set of keys to values of a single type.
type Record[K comparable, V any] map[K]V

// Keys returns the record's keys in unspecified order.
func (r Record[K, V]) Keys() []K {
	keys := make([]K, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of r in ascending order.
func SortedKeys[K cmp.Ordered, V any](r Record[K, V]) []K {
	keys := r.Keys()
	slices.Sort(keys)
	return keys
}

package store

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
)

// KV is the behaviour shared by the key-value stores in this package.
type KV[K comparable, V any] interface {
	Set(key K, val V)
	Get(key K) (V, bool)
	Delete(key K) bool
	Len() int
	Keys() []K
}

// MissingKeyError is the panic value of MustGet for an absent key.
type MissingKeyError struct{ Key string }

// Error implements the error interface.
func (e MissingKeyError) Error() string {
	// Example: store: missing key "age"
	return "store: missing key " + strconv.Quote(e.Key)
}

// KeyValueStore maps keys to values and remembers the order in which keys
// were first set.
type KeyValueStore[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
	order []K
}

var _ KV[string, int] = (*KeyValueStore[string, int])(nil)

// NewKeyValueStore returns an empty KeyValueStore.
func NewKeyValueStore[K comparable, V any]() *KeyValueStore[K, V] {
	return &KeyValueStore[K, V]{items: map[K]V{}}
}

// Set stores val under key. Overwriting a key keeps its original position.
func (s *KeyValueStore[K, V]) Set(key K, val V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; !exists {
		s.order = append(s.order, key)
	}
	s.items[key] = val
}

// With stores val under key and returns the store for chaining.
func (s *KeyValueStore[K, V]) With(key K, val V) *KeyValueStore[K, V] {
	s.Set(key, val)
	return s
}

// Get returns the value stored under key.
//
// ok is false when the key is absent.
func (s *KeyValueStore[K, V]) Get(key K) (val V, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok = s.items[key]
	return val, ok
}

// MustGet returns the value or panics with a MissingKeyError.
// Useful in examples/tests where a missing key should fail fast.
func (s *KeyValueStore[K, V]) MustGet(key K) V {
	v, ok := s.Get(key)
	if !ok {
		panic(MissingKeyError{Key: fmt.Sprint(key)})
	}
	return v
}

// Delete removes key and reports whether it was present.
func (s *KeyValueStore[K, V]) Delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return false
	}
	delete(s.items, key)
	if i := slices.Index(s.order, key); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// Len returns the number of keys.
func (s *KeyValueStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Keys returns the keys in the order they were first set.
func (s *KeyValueStore[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Values returns the values in key order.
func (s *KeyValueStore[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]V, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

package store

import "sync"

// DataStore keeps values in the order they were added.
type DataStore[T any] struct {
	mu   sync.RWMutex
	data []T
}

// NewDataStore returns an empty DataStore, optionally seeded with items.
func NewDataStore[T any](items ...T) *DataStore[T] {
	s := &DataStore[T]{}
	s.data = append(s.data, items...)
	return s
}

// Add appends item.
func (s *DataStore[T]) Add(item T) {
	s.mu.Lock()
	s.data = append(s.data, item)
	s.mu.Unlock()
}

// GetAll returns a copy of every stored item in insertion order.
//
// The result is never nil.
func (s *DataStore[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// Len returns the number of stored items.
func (s *DataStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

package store

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidSize is returned by NewLRU for a size below one.
var ErrInvalidSize = errors.New("store: lru size must be positive")

// LRU is a bounded key-value store. Once full, setting a new key evicts the
// least recently used one.
type LRU[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

var _ KV[string, int] = (*LRU[string, int])(nil)

// NewLRU returns an LRU holding at most size keys.
//
// onEvict, when non-nil, is called with each evicted entry.
func NewLRU[K comparable, V any](size int, onEvict func(K, V)) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	var (
		c   *lru.Cache[K, V]
		err error
	)
	if onEvict != nil {
		c, err = lru.NewWithEvict[K, V](size, onEvict)
	} else {
		c, err = lru.New[K, V](size)
	}
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{cache: c}, nil
}

// Set stores val under key and marks it most recently used.
func (s *LRU[K, V]) Set(key K, val V) { s.cache.Add(key, val) }

// Get returns the value under key and marks it most recently used.
func (s *LRU[K, V]) Get(key K) (V, bool) { return s.cache.Get(key) }

// Peek returns the value under key without touching its recency.
func (s *LRU[K, V]) Peek(key K) (V, bool) { return s.cache.Peek(key) }

// Delete removes key and reports whether it was present.
func (s *LRU[K, V]) Delete(key K) bool { return s.cache.Remove(key) }

// Len returns the number of keys.
func (s *LRU[K, V]) Len() int { return s.cache.Len() }

// Keys returns the keys from least to most recently used.
func (s *LRU[K, V]) Keys() []K { return s.cache.Keys() }

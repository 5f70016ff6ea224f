package entity

import (
	"sync"

	"github.com/google/uuid"
)

// Patch applies a partial change to a copy of an entity's data.
type Patch[T any] func(*T)

// Set returns a Patch that assigns v through the field accessor.
//
//	entity.Set(func(p *Player) *int { return &p.Health }, 80)
func Set[T, V any](field func(*T) *V, v V) Patch[T] {
	return func(t *T) { *field(t) = v }
}

// Entity is a piece of data with an id, partial updates and reset.
//
// Data is a value copy; reference types inside T are shared between the
// current and the original state.
type Entity[T any] struct {
	id string

	mu       sync.RWMutex
	data     T
	original T
}

// Option configures a new Entity.
type Option func(*config)

type config struct {
	id string
}

// WithID sets the entity id. An empty id is ignored.
func WithID(id string) Option {
	return func(c *config) {
		if id != "" {
			c.id = id
		}
	}
}

// New returns an Entity holding data. Without WithID the id is a random UUID.
func New[T any](data T, opts ...Option) *Entity[T] {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	return &Entity[T]{id: cfg.id, data: data, original: data}
}

// ID returns the entity id.
func (e *Entity[T]) ID() string { return e.id }

// Data returns a copy of the current data.
func (e *Entity[T]) Data() T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.data
}

// Original returns a copy of the data the entity was created with.
func (e *Entity[T]) Original() T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.original
}

// Update applies patches in order and stores the result. Nil patches are skipped.
func (e *Entity[T]) Update(patches ...Patch[T]) T {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.data
	for _, p := range patches {
		if p != nil {
			p(&next)
		}
	}
	e.data = next
	return next
}

// Reset restores the data the entity was created with.
func (e *Entity[T]) Reset() T {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.data = e.original
	return e.data
}

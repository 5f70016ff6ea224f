package entity

import (
	"strconv"

	"github.com/sghaida/genlab/eventbus"
	"github.com/sghaida/genlab/store"
)

// NotFoundError is returned for an id the Manager does not hold.
type NotFoundError struct{ ID string }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: entity: "sword_01" not found
	return "entity: " + strconv.Quote(e.ID) + " not found"
}

// Event describes a change to an entity held by a Manager.
type Event[T any] struct {
	ID   string
	Data T
}

// Topics are the events a Manager emits, all carrying Event[T].
type Topics[T any] struct {
	Spawned eventbus.Topic[Event[T]]
	Updated eventbus.Topic[Event[T]]
	Reset   eventbus.Topic[Event[T]]
	Removed eventbus.Topic[Event[T]]
}

// NewTopics returns the topics for prefix: "<prefix>.spawned" and so on.
//
// Managers of different T sharing one bus need different prefixes.
func NewTopics[T any](prefix string) Topics[T] {
	return Topics[T]{
		Spawned: eventbus.NewTopic[Event[T]](prefix + ".spawned"),
		Updated: eventbus.NewTopic[Event[T]](prefix + ".updated"),
		Reset:   eventbus.NewTopic[Event[T]](prefix + ".reset"),
		Removed: eventbus.NewTopic[Event[T]](prefix + ".removed"),
	}
}

// Manager keeps entities by id.
type Manager[T any] struct {
	items  *store.KeyValueStore[string, *Entity[T]]
	bus    *eventbus.Bus
	topics Topics[T]
}

// ManagerOption configures a Manager.
type ManagerOption[T any] func(*Manager[T])

// WithBus makes the Manager emit its Topics for prefix on bus.
func WithBus[T any](bus *eventbus.Bus, prefix string) ManagerOption[T] {
	return func(m *Manager[T]) {
		m.bus = bus
		m.topics = NewTopics[T](prefix)
	}
}

// NewManager returns an empty Manager.
func NewManager[T any](opts ...ManagerOption[T]) *Manager[T] {
	m := &Manager[T]{
		items:  store.NewKeyValueStore[string, *Entity[T]](),
		topics: NewTopics[T]("entity"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Topics returns the topics this Manager emits on.
func (m *Manager[T]) Topics() Topics[T] { return m.topics }

// Spawn creates an entity from data and stores it. An existing entity with
// the same id is replaced.
func (m *Manager[T]) Spawn(data T, opts ...Option) *Entity[T] {
	e := New(data, opts...)
	m.items.Set(e.ID(), e)
	m.emit(m.topics.Spawned, e.ID(), e.Data())
	return e
}

// Get returns the entity with id.
func (m *Manager[T]) Get(id string) (*Entity[T], error) {
	e, ok := m.items.Get(id)
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	return e, nil
}

// Update patches the entity with id and returns its new data.
func (m *Manager[T]) Update(id string, patches ...Patch[T]) (T, error) {
	e, err := m.Get(id)
	if err != nil {
		var zero T
		return zero, err
	}
	data := e.Update(patches...)
	m.emit(m.topics.Updated, id, data)
	return data, nil
}

// Reset restores the entity with id to its original data.
func (m *Manager[T]) Reset(id string) (T, error) {
	e, err := m.Get(id)
	if err != nil {
		var zero T
		return zero, err
	}
	data := e.Reset()
	m.emit(m.topics.Reset, id, data)
	return data, nil
}

// Remove deletes the entity with id and reports whether it existed.
func (m *Manager[T]) Remove(id string) bool {
	e, ok := m.items.Get(id)
	if !ok || !m.items.Delete(id) {
		return false
	}
	m.emit(m.topics.Removed, id, e.Data())
	return true
}

// All returns every entity in spawn order.
func (m *Manager[T]) All() []*Entity[T] { return m.items.Values() }

// Len returns the number of entities.
func (m *Manager[T]) Len() int { return m.items.Len() }

func (m *Manager[T]) emit(topic eventbus.Topic[Event[T]], id string, data T) {
	if m.bus == nil {
		return
	}
	eventbus.Emit(m.bus, topic, Event[T]{ID: id, Data: data})
}

package eventbus

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrNilRegisterer is returned by New when WithMetrics is given a nil registerer.
var ErrNilRegisterer = errors.New("eventbus: nil prometheus registerer")

// ListenerID identifies a registered listener.
type ListenerID uint64

// Topic is an event name bound to a payload type.
type Topic[T any] struct {
	name string
}

// NewTopic returns the topic called name carrying T payloads.
func NewTopic[T any](name string) Topic[T] { return Topic[T]{name: name} }

// Name returns the event name.
func (t Topic[T]) Name() string { return t.name }

type listener struct {
	id   ListenerID
	typ  reflect.Type
	fn   func(any)
	once bool
	used atomic.Bool
}

// Bus dispatches events to the listeners registered for them.
//
// The zero value is not usable; call New.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]*listener
	nextID    atomic.Uint64

	log     *slog.Logger
	metrics *metrics
}

// Option configures a Bus.
type Option func(*Bus) error

// WithLogger sets the logger used for listener panics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bus) error {
		if l != nil {
			b.log = l
		}
		return nil
	}
}

// WithMetrics registers the bus counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(b *Bus) error {
		if reg == nil {
			return ErrNilRegisterer
		}
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		b.metrics = m
		return nil
	}
}

// New returns an empty Bus.
func New(opts ...Option) (*Bus, error) {
	b := &Bus{
		listeners: map[string][]*listener{},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// On registers cb for topic and returns its id. Listeners run in
// registration order. A nil cb registers nothing.
func On[T any](b *Bus, topic Topic[T], cb func(T)) ListenerID {
	return b.add(topic.name, reflect.TypeFor[T](), wrap(cb), false)
}

// Once registers cb for topic; it is removed after its first call.
func Once[T any](b *Bus, topic Topic[T], cb func(T)) ListenerID {
	return b.add(topic.name, reflect.TypeFor[T](), wrap(cb), true)
}

// Emit delivers data to every listener registered for topic when Emit is
// called and returns how many listeners ran.
//
// Topics sharing a name but not a payload type do not see each other's
// events.
//
// Listeners added or removed while Emit runs take effect from the next call.
// A panicking listener is logged and skipped; the rest still run.
func Emit[T any](b *Bus, topic Topic[T], data T) int {
	return b.emit(topic.name, reflect.TypeFor[T](), data)
}

// Off removes the listener id from the event name and reports whether it was registered.
func Off(b *Bus, name string, id ListenerID) bool {
	return b.remove(name, id)
}

// ListenerCount returns the number of listeners registered for name, across
// all payload types.
func (b *Bus) ListenerCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[name])
}

// Events returns the names that currently have listeners, sorted.
func (b *Bus) Events() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.listeners))
	for name := range b.listeners {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func wrap[T any](cb func(T)) func(any) {
	if cb == nil {
		return nil
	}
	// emit only calls listeners registered with the payload type T.
	return func(v any) { cb(v.(T)) }
}

func (b *Bus) add(name string, typ reflect.Type, fn func(any), once bool) ListenerID {
	id := ListenerID(b.nextID.Add(1))
	if fn == nil {
		return id
	}

	b.mu.Lock()
	b.listeners[name] = append(b.listeners[name], &listener{id: id, typ: typ, fn: fn, once: once})
	b.mu.Unlock()
	return id
}

func (b *Bus) remove(name string, id ListenerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ls := b.listeners[name]
	i := slices.IndexFunc(ls, func(l *listener) bool { return l.id == id })
	if i < 0 {
		return false
	}
	// Replace rather than mutate so snapshots held by running emits stay intact.
	next := slices.Concat(ls[:i], ls[i+1:])
	if len(next) == 0 {
		delete(b.listeners, name)
	} else {
		b.listeners[name] = next
	}
	return true
}

func (b *Bus) emit(name string, typ reflect.Type, data any) int {
	b.mu.RLock()
	snapshot := b.listeners[name]
	b.mu.RUnlock()

	b.metrics.emitted(name)

	called := 0
	for _, l := range snapshot {
		if l.typ != typ {
			continue
		}
		if l.once {
			if !l.used.CompareAndSwap(false, true) {
				continue
			}
			b.remove(name, l.id)
		}
		b.call(name, l, data)
		called++
	}
	return called
}

func (b *Bus) call(name string, l *listener, data any) {
	defer func() {
		if rec := recover(); rec != nil {
			b.metrics.panicked(name)
			b.log.Error("event listener panicked", "event", name, "listener", uint64(l.id), "panic", rec)
		}
	}()
	l.fn(data)
}

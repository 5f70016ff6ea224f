package eventbus_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sghaida/genlab/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoreUpdated = eventbus.NewTopic[int]("scoreUpdated")

func newBus(t *testing.T, opts ...eventbus.Option) *eventbus.Bus {
	t.Helper()

	b, err := eventbus.New(opts...)
	require.NoError(t, err)
	return b
}

// On / Emit
func TestEmit_DeliversToAllListenersInOrder(t *testing.T) {
	t.Parallel()

	b := newBus(t)

	var got []string
	eventbus.On(b, scoreUpdated, func(s int) { got = append(got, "first") })
	eventbus.On(b, scoreUpdated, func(s int) { got = append(got, "second") })

	n := eventbus.Emit(b, scoreUpdated, 100)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestEmit_NoListenersIsNoop(t *testing.T) {
	t.Parallel()

	b := newBus(t)
	assert.Equal(t, 0, eventbus.Emit(b, eventbus.NewTopic[string]("nobody"), "x"))
}

func TestEmit_TopicsAreIndependent(t *testing.T) {
	t.Parallel()

	b := newBus(t)
	other := eventbus.NewTopic[string]("renamed")

	scores := 0
	eventbus.On(b, scoreUpdated, func(int) { scores++ })

	eventbus.Emit(b, other, "hero")
	assert.Equal(t, 0, scores)
}

func TestOn_NilCallbackRegistersNothing(t *testing.T) {
	t.Parallel()

	b := newBus(t)
	eventbus.On[int](b, scoreUpdated, nil)
	assert.Equal(t, 0, b.ListenerCount(scoreUpdated.Name()))
}

// Off
func TestOff_RemovesListener(t *testing.T) {
	t.Parallel()

	b := newBus(t)

	var got []int
	id := eventbus.On(b, scoreUpdated, func(s int) { got = append(got, s) })

	eventbus.Emit(b, scoreUpdated, 100)
	assert.True(t, eventbus.Off(b, scoreUpdated.Name(), id))
	assert.False(t, eventbus.Off(b, scoreUpdated.Name(), id))
	eventbus.Emit(b, scoreUpdated, 150)

	assert.Equal(t, []int{100}, got)
	assert.Equal(t, 0, b.ListenerCount(scoreUpdated.Name()))
	assert.Empty(t, b.Events())
}

func TestOff_DuringEmitTakesEffectNextTime(t *testing.T) {
	t.Parallel()

	b := newBus(t)

	var second eventbus.ListenerID
	calls := 0
	eventbus.On(b, scoreUpdated, func(int) {
		eventbus.Off(b, scoreUpdated.Name(), second)
	})
	second = eventbus.On(b, scoreUpdated, func(int) { calls++ })

	assert.Equal(t, 2, eventbus.Emit(b, scoreUpdated, 1))
	assert.Equal(t, 1, eventbus.Emit(b, scoreUpdated, 2))
	assert.Equal(t, 1, calls)
}

func TestOff_UnknownEvent(t *testing.T) {
	t.Parallel()

	b := newBus(t)
	assert.False(t, eventbus.Off(b, "missing", 1))
}

// Once
func TestOnce_RunsOnlyOnce(t *testing.T) {
	t.Parallel()

	b := newBus(t)

	calls := 0
	eventbus.Once(b, scoreUpdated, func(int) { calls++ })

	eventbus.Emit(b, scoreUpdated, 1)
	eventbus.Emit(b, scoreUpdated, 2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.ListenerCount(scoreUpdated.Name()))
}

// Panics
func TestEmit_ListenerPanicIsRecoveredLoggedAndCounted(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	b := newBus(t,
		eventbus.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		eventbus.WithMetrics(reg),
	)

	after := 0
	eventbus.On(b, scoreUpdated, func(int) { panic("bad listener") })
	eventbus.On(b, scoreUpdated, func(int) { after++ })

	assert.Equal(t, 2, eventbus.Emit(b, scoreUpdated, 1))
	assert.Equal(t, 1, after)
	assert.Contains(t, logs.String(), "event listener panicked")
	assert.Contains(t, logs.String(), "bad listener")

	expected := `
# HELP genlab_event_listener_panics_total Total number of listener panics recovered, by event name.
# TYPE genlab_event_listener_panics_total counter
genlab_event_listener_panics_total{event="scoreUpdated"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "genlab_event_listener_panics_total"))
}

// Same name, different payload types
func TestEmit_SameNameDifferentPayloadTypesAreIsolated(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	b := newBus(t,
		eventbus.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		eventbus.WithMetrics(reg),
	)

	asInt := eventbus.NewTopic[int]("x")
	asString := eventbus.NewTopic[string]("x")

	var ints []int
	var strs []string
	eventbus.On(b, asInt, func(v int) { ints = append(ints, v) })
	eventbus.On(b, asString, func(v string) { strs = append(strs, v) })

	assert.Equal(t, 1, eventbus.Emit(b, asString, "hello"))
	assert.Equal(t, 1, eventbus.Emit(b, asInt, 7))

	assert.Equal(t, []int{7}, ints)
	assert.Equal(t, []string{"hello"}, strs)
	assert.Equal(t, 2, b.ListenerCount("x"))
	assert.Empty(t, logs.String())

	n, err := testutil.GatherAndCount(reg, "genlab_event_listener_panics_total")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestOnce_OtherPayloadTypeDoesNotConsume(t *testing.T) {
	t.Parallel()

	b := newBus(t)

	calls := 0
	eventbus.Once(b, eventbus.NewTopic[int]("x"), func(int) { calls++ })

	assert.Equal(t, 0, eventbus.Emit(b, eventbus.NewTopic[string]("x"), "ignored"))
	assert.Equal(t, 1, eventbus.Emit(b, eventbus.NewTopic[int]("x"), 1))
	assert.Equal(t, 1, calls)
}

// Metrics
func TestWithMetrics_CountsEmits(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	b := newBus(t, eventbus.WithMetrics(reg))

	eventbus.Emit(b, scoreUpdated, 1)
	eventbus.Emit(b, scoreUpdated, 2)

	n, err := testutil.GatherAndCount(reg, "genlab_events_emitted_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expected := `
# HELP genlab_events_emitted_total Total number of events emitted, by event name.
# TYPE genlab_events_emitted_total counter
genlab_events_emitted_total{event="scoreUpdated"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "genlab_events_emitted_total"))
}

func TestWithMetrics_Errors(t *testing.T) {
	t.Parallel()

	_, err := eventbus.New(eventbus.WithMetrics(nil))
	assert.True(t, errors.Is(err, eventbus.ErrNilRegisterer))

	reg := prometheus.NewRegistry()
	_, err = eventbus.New(eventbus.WithMetrics(reg))
	require.NoError(t, err)

	// same collectors twice on one registry
	_, err = eventbus.New(eventbus.WithMetrics(reg))
	require.Error(t, err)
	var already prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &already))
}

// Concurrency
func TestBus_ConcurrentOnEmitOff(t *testing.T) {
	t.Parallel()

	b := newBus(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := eventbus.On(b, scoreUpdated, func(int) {})
			eventbus.Emit(b, scoreUpdated, 1)
			eventbus.Off(b, scoreUpdated.Name(), id)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, b.ListenerCount(scoreUpdated.Name()))
}

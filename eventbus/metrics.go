package eventbus

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	emittedTotal *prometheus.CounterVec
	panicsTotal  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		emittedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genlab_events_emitted_total",
				Help: "Total number of events emitted, by event name.",
			},
			[]string{"event"},
		),
		panicsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genlab_event_listener_panics_total",
				Help: "Total number of listener panics recovered, by event name.",
			},
			[]string{"event"},
		),
	}

	if err := reg.Register(m.emittedTotal); err != nil {
		return nil, err
	}
	if err := reg.Register(m.panicsTotal); err != nil {
		reg.Unregister(m.emittedTotal)
		return nil, err
	}
	return m, nil
}

// A nil *metrics is a no-op so the bus can run without a registry.

func (m *metrics) emitted(event string) {
	if m == nil {
		return
	}
	m.emittedTotal.WithLabelValues(event).Inc()
}

func (m *metrics) panicked(event string) {
	if m == nil {
		return
	}
	m.panicsTotal.WithLabelValues(event).Inc()
}

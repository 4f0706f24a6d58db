package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/framewise/reframe/crop"
)

// Metrics aggregates pipeline counters over a private Prometheus
// registry.
type Metrics struct {
	registry *prometheus.Registry

	streams        atomic.Int64
	framesIn       atomic.Int64
	framesRendered atomic.Int64
	pendingPeak    atomic.Int64

	decisionsSingle  atomic.Int64
	decisionsStacked atomic.Int64
	decisionsResize  atomic.Int64

	errors atomic.Int64
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Streams          int64
	FramesIn         int64
	FramesRendered   int64
	FramesPending    int64
	PendingPeak      int64
	DecisionsSingle  int64
	DecisionsStacked int64
	DecisionsResize  int64
	Errors           int64
}

// New builds an empty Metrics with all collectors registered.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	counters := []struct {
		name string
		help string
		read func() float64
	}{
		{"reframe_streams_total", "Streams opened.", m.counter(&m.streams)},
		{"reframe_frames_in_total", "Frames accepted for processing.", m.counter(&m.framesIn)},
		{"reframe_frames_rendered_total", "Frames written to output.", m.counter(&m.framesRendered)},
		{"reframe_decisions_single_total", "Single-region crop decisions.", m.counter(&m.decisionsSingle)},
		{"reframe_decisions_stacked_total", "Stacked crop decisions.", m.counter(&m.decisionsStacked)},
		{"reframe_decisions_resize_total", "Letterbox resize decisions.", m.counter(&m.decisionsResize)},
		{"reframe_errors_total", "Frames that failed processing.", m.counter(&m.errors)},
	}
	for _, c := range counters {
		m.registry.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: c.name,
			Help: c.help,
		}, c.read))
	}

	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "reframe_frames_pending",
		Help: "Frames accepted but not yet rendered.",
	}, func() float64 {
		return float64(m.framesIn.Load() - m.framesRendered.Load())
	}))
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "reframe_frames_pending_peak",
		Help: "Highest pending frame count observed.",
	}, func() float64 {
		return float64(m.pendingPeak.Load())
	}))

	return m
}

func (m *Metrics) counter(v *atomic.Int64) func() float64 {
	return func() float64 {
		return float64(v.Load())
	}
}

// StreamStarted counts one opened stream.
func (m *Metrics) StreamStarted() {
	m.streams.Add(1)
}

// FrameIn counts one accepted frame and tracks the pending peak.
func (m *Metrics) FrameIn() {
	depth := m.framesIn.Add(1) - m.framesRendered.Load()
	for {
		peak := m.pendingPeak.Load()
		if depth <= peak || m.pendingPeak.CompareAndSwap(peak, depth) {
			return
		}
	}
}

// FrameRendered counts one frame written to output.
func (m *Metrics) FrameRendered() {
	m.framesRendered.Add(1)
}

// Decision counts one crop decision by kind.
func (m *Metrics) Decision(kind crop.Kind) {
	switch kind {
	case crop.KindSingle:
		m.decisionsSingle.Add(1)
	case crop.KindStacked:
		m.decisionsStacked.Add(1)
	case crop.KindResize:
		m.decisionsResize.Add(1)
	}
}

// StreamError counts one failed frame.
func (m *Metrics) StreamError() {
	m.errors.Add(1)
}

// Snapshot copies all counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Streams:          m.streams.Load(),
		FramesIn:         m.framesIn.Load(),
		FramesRendered:   m.framesRendered.Load(),
		FramesPending:    m.framesIn.Load() - m.framesRendered.Load(),
		PendingPeak:      m.pendingPeak.Load(),
		DecisionsSingle:  m.decisionsSingle.Load(),
		DecisionsStacked: m.decisionsStacked.Load(),
		DecisionsResize:  m.decisionsResize.Load(),
		Errors:           m.errors.Load(),
	}
}

// Handler serves the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

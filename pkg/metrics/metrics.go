package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "tripagent"

// PlannerMetrics counts pipeline outcomes. A nil *PlannerMetrics is valid and
// records nothing.
type PlannerMetrics struct {
	Registry *prometheus.Registry

	runs        *prometheus.CounterVec
	extractions *prometheus.CounterVec
	duration    prometheus.Histogram
	bookings    prometheus.Counter
}

// New registers the planner collectors on a fresh registry, together with
// the Go runtime and process collectors.
func New() *PlannerMetrics {
	reg := prometheus.NewRegistry()
	m := &PlannerMetrics{
		Registry: reg,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_runs_total",
			Help:      "Planning runs by terminal step.",
		}, []string{"step"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Trip request extractions by source.",
		}, []string{"source"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_run_duration_seconds",
			Help:      "Wall time of a planning run.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 20, 30},
		}),
		bookings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Successful bookings.",
		}),
	}
	reg.MustRegister(
		m.runs,
		m.extractions,
		m.duration,
		m.bookings,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *PlannerMetrics) ObserveRun(step string, seconds float64) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(step).Inc()
	m.duration.Observe(seconds)
}

func (m *PlannerMetrics) ObserveExtraction(source string) {
	if m == nil {
		return
	}
	m.extractions.WithLabelValues(source).Inc()
}

func (m *PlannerMetrics) ObserveBooking() {
	if m == nil {
		return
	}
	m.bookings.Inc()
}

// RunCount is the number of runs that ended at step.
func (m *PlannerMetrics) RunCount(step string) prometheus.Counter {
	return m.runs.WithLabelValues(step)
}

func (m *PlannerMetrics) ExtractionCount(source string) prometheus.Counter {
	return m.extractions.WithLabelValues(source)
}

func (m *PlannerMetrics) BookingCount() prometheus.Counter {
	return m.bookings
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "pathwise"

// Metrics holds the collectors for outbound calls and parsing. Each instance
// owns its registry.
type Metrics struct {
	Registry *prometheus.Registry

	completionRequests *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
	locationLookups    *prometheus.CounterVec
	parsedDays         prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		completionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completion_requests_total",
			Help:      "Chat completion calls by prompt kind and outcome.",
		}, []string{"kind", "outcome"}),
		completionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of chat completion calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"kind"}),
		locationLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_lookups_total",
			Help:      "IP geolocation lookups by outcome.",
		}, []string{"outcome"}),
		parsedDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "itinerary_parsed_days",
			Help:      "Number of day sections recognised per parsed itinerary.",
			Buckets:   prometheus.LinearBuckets(0, 1, 15),
		}),
	}

	m.Registry.MustRegister(
		m.completionRequests,
		m.completionDuration,
		m.locationLookups,
		m.parsedDays,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m *Metrics) ObserveCompletion(kind string, started time.Time, err error) {
	m.completionRequests.WithLabelValues(kind, outcome(err)).Inc()
	m.completionDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveLocationLookup(err error) {
	m.locationLookups.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) ObserveParsedDays(n int) {
	m.parsedDays.Observe(float64(n))
}

// Package metrics instruments a bytellmap.Map with Prometheus counters and
// histograms: inserts, replaces, relocations, growths, and probe length,
// backed by a real metrics library instead of unexported counters nobody
// outside the package can read.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder receives instrumentation events from a Map. The zero value of
// NopRecorder satisfies it and does nothing, so instrumentation is always
// optional.
type Recorder interface {
	Insert()
	Replace()
	Relocate()
	Grow()
	ObserveProbeLength(n int)
}

// NopRecorder discards every event. It is the default Recorder for a Map
// constructed without WithMetricsRecorder.
type NopRecorder struct{}

func (NopRecorder) Insert()                  {}
func (NopRecorder) Replace()                 {}
func (NopRecorder) Relocate()                {}
func (NopRecorder) Grow()                    {}
func (NopRecorder) ObserveProbeLength(int)   {}

// PrometheusRecorder records bytellmap events as Prometheus metrics under
// the given namespace. Register it with a prometheus.Registerer before use.
type PrometheusRecorder struct {
	inserts      prometheus.Counter
	replaces     prometheus.Counter
	relocations  prometheus.Counter
	growths      prometheus.Counter
	probeLengths prometheus.Histogram
}

// NewPrometheusRecorder builds a PrometheusRecorder and registers its
// metrics with reg. namespace is used as the Prometheus metric namespace,
// e.g. "bytellmap".
func NewPrometheusRecorder(reg prometheus.Registerer, namespace string) *PrometheusRecorder {
	r := &PrometheusRecorder{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_total",
			Help:      "Number of Insert calls that created a new entry.",
		}),
		replaces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replaces_total",
			Help:      "Number of Insert calls that overwrote an existing entry.",
		}),
		relocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relocations_total",
			Help:      "Number of chain-tail relocations performed to free a direct-hit slot.",
		}),
		growths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "growths_total",
			Help:      "Number of times the table doubled its capacity.",
		}),
		probeLengths: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "get_probe_length",
			Help:      "Number of chain hops Get performed before resolving.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		}),
	}
	reg.MustRegister(r.inserts, r.replaces, r.relocations, r.growths, r.probeLengths)
	return r
}

func (r *PrometheusRecorder) Insert()                { r.inserts.Inc() }
func (r *PrometheusRecorder) Replace()               { r.replaces.Inc() }
func (r *PrometheusRecorder) Relocate()              { r.relocations.Inc() }
func (r *PrometheusRecorder) Grow()                  { r.growths.Inc() }
func (r *PrometheusRecorder) ObserveProbeLength(n int) {
	r.probeLengths.Observe(float64(n))
}

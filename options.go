package bytellmap

import (
	"github.com/wadelma/bytellmap/internal/metrics"
	"github.com/wadelma/bytellmap/internal/telemetry"
)

// defaultMaxLoadFactor is the empirical constant inherited from the
// original bytell design: load factor must stay at or below this value
// immediately before any insertion that would exceed it.
const defaultMaxLoadFactor = 0.872

// config collects the construction-time options shared by New and
// NewWithCapacity. The hasher factory itself is not an Option: it is a
// required constructor argument, threaded through New/NewWithCapacity
// directly instead.
type config struct {
	maxLoadFactor float64
	metrics       metrics.Recorder
	logger        telemetry.Logger
}

func defaultConfig() config {
	return config{
		maxLoadFactor: defaultMaxLoadFactor,
		metrics:       metrics.NopRecorder{},
		logger:        telemetry.Nop{},
	}
}

// Option configures a Map at construction time.
type Option func(*config)

// WithMaxLoadFactor overrides the 0.872 load-factor threshold. f must be
// in (0, 1].
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		if f <= 0 || f > 1 {
			panic("bytellmap: max load factor must be in (0, 1]")
		}
		c.maxLoadFactor = f
	}
}

// WithMetricsRecorder instruments the Map with r. See internal/metrics for
// a Prometheus-backed implementation.
func WithMetricsRecorder(r metrics.Recorder) Option {
	return func(c *config) { c.metrics = r }
}

// WithLogger attaches a structured logger for invariant-violation warnings
// and growth/relocation traces. See internal/telemetry for a zap-backed
// implementation.
func WithLogger(l telemetry.Logger) Option {
	return func(c *config) { c.logger = l }
}

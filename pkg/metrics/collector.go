package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Collector owns the validation metrics and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	recordsTotal    *prometheus.CounterVec
	violationsTotal *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	filesTotal      *prometheus.CounterVec
}

type options struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace overrides the metric namespace, "hydroini" by default.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithSubsystem overrides the metric subsystem, "validation" by default.
func WithSubsystem(subsystem string) Option {
	return func(o *options) { o.subsystem = subsystem }
}

// WithRegistry registers the metrics in reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithBuckets sets the duration histogram buckets in seconds.
func WithBuckets(buckets ...float64) Option {
	return func(o *options) { o.buckets = buckets }
}

// NewCollector creates a collector and registers its metrics.
// It panics when the metrics are already registered in the given registry.
func NewCollector(opts ...Option) *Collector {
	o := options{
		namespace: "hydroini",
		subsystem: "validation",
		// record validation runs in microseconds
		buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: o.registry,
		recordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Subsystem: o.subsystem,
				Name:      "records_total",
				Help:      "Total number of validated records",
			},
			[]string{"record_type", "outcome"},
		),
		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Subsystem: o.subsystem,
				Name:      "violations_total",
				Help:      "Total number of structural violations",
			},
			[]string{"record_type"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: o.namespace,
				Subsystem: o.subsystem,
				Name:      "duration_seconds",
				Help:      "Duration of record validation in seconds",
				Buckets:   o.buckets,
			},
			[]string{"record_type"},
		),
		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Subsystem: o.subsystem,
				Name:      "files_total",
				Help:      "Total number of processed files",
			},
			[]string{"outcome"},
		),
	}

	c.registry.MustRegister(c.recordsTotal, c.violationsTotal, c.duration, c.filesTotal)
	return c
}

// ObserveValidation records one record validation.
func (c *Collector) ObserveValidation(recordType string, violations int, elapsed time.Duration) {
	outcome := OutcomeValid
	if violations > 0 {
		outcome = OutcomeInvalid
		c.violationsTotal.WithLabelValues(recordType).Add(float64(violations))
	}
	c.recordsTotal.WithLabelValues(recordType, outcome).Inc()
	c.duration.WithLabelValues(recordType).Observe(elapsed.Seconds())
}

// ObserveFile records a processed file. Use the Outcome constants.
func (c *Collector) ObserveFile(outcome string) {
	c.filesTotal.WithLabelValues(outcome).Inc()
}

// Registry returns the registry holding the metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes every metric of the registry to path in the text
// exposition format. The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

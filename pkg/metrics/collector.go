package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Kind names the side of a call a check ran on.
type Kind string

const (
	KindArgument Kind = "argument"
	KindReturn   Kind = "return"
)

// Result is the verdict of one check.
type Result string

const (
	ResultPass    Result = "pass"
	ResultWarning Result = "warning"
	ResultFail    Result = "fail"
	// ResultError covers hard failures: missing arguments and schema key
	// mismatches.
	ResultError Result = "error"
)

// Collector counts contract checks and their latency per function. It
// implements prometheus.Collector.
type Collector struct {
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Option configures a Collector.
type Option func(*options)

type options struct {
	namespace string
	buckets   []float64
}

// WithNamespace prefixes metric names, e.g. "billing_contract_checks_total".
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithBuckets overrides the latency histogram buckets. Empty input is ignored.
func WithBuckets(buckets ...float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// NewCollector builds an unregistered collector.
func NewCollector(opts ...Option) *Collector {
	o := &options{buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01}}
	for _, opt := range opts {
		opt(o)
	}

	return &Collector{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "contract_checks_total",
				Help:      "Contract checks partitioned by function, kind and result.",
			},
			[]string{"function", "kind", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: o.namespace,
				Name:      "contract_check_duration_seconds",
				Help:      "Time spent checking arguments or results, in seconds.",
				Buckets:   o.buckets,
			},
			[]string{"function", "kind"},
		),
	}
}

// Observe records one check.
func (c *Collector) Observe(function string, kind Kind, result Result, d time.Duration) {
	c.checks.WithLabelValues(function, string(kind), string(result)).Inc()
	c.duration.WithLabelValues(function, string(kind)).Observe(d.Seconds())
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.checks.Describe(ch)
	c.duration.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.checks.Collect(ch)
	c.duration.Collect(ch)
}

// Register adds the collector to reg, or to prometheus.DefaultRegisterer
// when reg is nil.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return reg.Register(c)
}

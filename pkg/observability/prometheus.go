package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements every hook interface on Prometheus collectors.
type Metrics struct {
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	components    prometheus.Histogram
	warnings      prometheus.Counter
	outputBytes   *prometheus.CounterVec
	cacheOps      *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec
	requests      *prometheus.CounterVec
	reqDuration   *prometheus.HistogramVec
}

var (
	_ ConversionHooks = (*Metrics)(nil)
	_ CacheHooks      = (*Metrics)(nil)
	_ HTTPHooks       = (*Metrics)(nil)
)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "obo2owl",
			Name:      "stage_duration_seconds",
			Help:      "Duration of conversion stages.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		stageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obo2owl",
			Name:      "stage_errors_total",
			Help:      "Conversion stages that failed.",
		}, []string{"stage"}),
		components: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "obo2owl",
			Name:      "ontology_components",
			Help:      "Components per translated ontology.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "obo2owl",
			Name:      "translation_warnings_total",
			Help:      "Constructs approximated or dropped during translation.",
		}),
		outputBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obo2owl",
			Name:      "output_bytes_total",
			Help:      "Serialized output size by format.",
		}, []string{"format"}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obo2owl",
			Name:      "cache_operations_total",
			Help:      "Cache lookups and writes.",
		}, []string{"key_type", "result"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obo2owl",
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache.",
		}, []string{"key_type"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obo2owl",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "obo2owl",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.stageDuration, m.stageErrors, m.components, m.warnings, m.outputBytes,
		m.cacheOps, m.cacheBytes, m.requests, m.reqDuration,
	)
	return m
}

func (m *Metrics) stage(name string, d time.Duration, err error) {
	m.stageDuration.WithLabelValues(name).Observe(d.Seconds())
	if err != nil {
		m.stageErrors.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) OnParseStart(context.Context, string) {}

func (m *Metrics) OnParseComplete(_ context.Context, _ string, _ int, d time.Duration, err error) {
	m.stage("parse", d, err)
}

func (m *Metrics) OnTranslateStart(context.Context, string) {}

func (m *Metrics) OnTranslateComplete(_ context.Context, _ string, components, warnings int, d time.Duration, err error) {
	m.stage("translate", d, err)
	if err == nil {
		m.components.Observe(float64(components))
		m.warnings.Add(float64(warnings))
	}
}

func (m *Metrics) OnSerializeComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	m.stage("serialize", d, err)
	if err == nil {
		m.outputBytes.WithLabelValues(format).Add(float64(size))
	}
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheOps.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.reqDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

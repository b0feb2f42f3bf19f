package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns a private registry so each process exports only its own series.
// A one-shot process has no scrape endpoint; WriteTextfile hands the series to
// the node exporter textfile collector instead.
type Recorder struct {
	registry *prometheus.Registry

	runsTotal               *prometheus.CounterVec
	runDuration             prometheus.Histogram
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	itemsNotifiedTotal      *prometheus.CounterVec
	itemFailuresTotal       prometheus.Counter
	lastRunTimestamp        prometheus.Gauge
}

// NewRecorder creates a recorder with a fresh registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameRunsTotal,
				Help: HelpTextRunsTotal,
			},
			[]string{LabelOutcome},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricNameRunDuration,
				Help:    HelpTextRunDuration,
				Buckets: RunLatencyBuckets,
			},
		),
		upstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameUpstreamRequestsTotal,
				Help: HelpTextUpstreamRequestsTotal,
			},
			[]string{LabelEndpoint, LabelStatus},
		),
		upstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricNameUpstreamRequestDuration,
				Help:    HelpTextUpstreamRequestDuration,
				Buckets: UpstreamLatencyBuckets,
			},
			[]string{LabelEndpoint},
		),
		itemsNotifiedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameItemsNotifiedTotal,
				Help: HelpTextItemsNotifiedTotal,
			},
			[]string{LabelCategory},
		),
		itemFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricNameItemFailuresTotal,
				Help: HelpTextItemFailuresTotal,
			},
		),
		lastRunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricNameLastRunTimestamp,
				Help: HelpTextLastRunTimestamp,
			},
		),
	}
}

// Registry exposes the underlying registry (tests, custom exporters)
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveRequest records one upstream request
func (r *Recorder) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	label := StatusNoResponse
	if status > 0 {
		label = strconv.Itoa(status)
	}
	r.upstreamRequestsTotal.WithLabelValues(endpoint, label).Inc()
	r.upstreamRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RunFinished records the outcome of one run
func (r *Recorder) RunFinished(outcome string, elapsed time.Duration) {
	r.runsTotal.WithLabelValues(outcome).Inc()
	r.runDuration.Observe(elapsed.Seconds())
	r.lastRunTimestamp.SetToCurrentTime()
}

// ItemNotified records one item card sent
func (r *Recorder) ItemNotified(category string) {
	r.itemsNotifiedTotal.WithLabelValues(category).Inc()
}

// ItemFailed records one skipped item
func (r *Recorder) ItemFailed() {
	r.itemFailuresTotal.Inc()
}

// WriteTextfile atomically writes every series in the Prometheus text format
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

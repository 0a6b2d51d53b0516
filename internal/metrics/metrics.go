package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Sync Metrics
var (
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncRunsTotal,
			Help: HelpTextSyncRunsTotal,
		},
		[]string{LabelOutcome},
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSyncDuration,
			Help:    HelpTextSyncDuration,
			Buckets: SyncDurationBuckets,
		},
	)

	AttacksAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAttacksAddedTotal,
			Help: HelpTextAttacksAddedTotal,
		},
		[]string{LabelPhase},
	)
)

// Upstream Metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRequestsTotal,
			Help: HelpTextUpstreamRequestsTotal,
		},
		[]string{LabelOutcome},
	)

	UpstreamRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRetriesTotal,
			Help: HelpTextUpstreamRetriesTotal,
		},
	)
)

// Bot Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand},
	)

	NameCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNameCacheLookup,
			Help: HelpTextNameCacheLookup,
		},
		[]string{LabelResult},
	)
)

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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Forge Metrics
var (
	UpgradeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradeAttempts,
			Help: HelpTextUpgradeAttempts,
		},
		[]string{LabelResult},
	)

	SigilsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSigilsConsumed,
			Help: HelpTextSigilsConsumed,
		},
	)

	UpgradeWriteConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUpgradeWriteConflicts,
			Help: HelpTextUpgradeWriteConflicts,
		},
	)

	WeaponLevelAfterUpgrade = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameWeaponLevelAfterUpgrade,
			Help:    HelpTextWeaponLevelAfterUpgrade,
			Buckets: prometheus.LinearBuckets(0, 1, WeaponLevelBucketCount),
		},
	)

	PlayersRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlayersRegistered,
			Help: HelpTextPlayersRegistered,
		},
		[]string{LabelPlatform},
	)
)

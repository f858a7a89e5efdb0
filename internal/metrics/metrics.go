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

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	SessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsStarted,
			Help: HelpTextSessionsStarted,
		},
		[]string{LabelKind},
	)

	SessionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCompleted,
			Help: HelpTextSessionsCompleted,
		},
		[]string{LabelKind},
	)

	SessionsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCancelled,
			Help: HelpTextSessionsCancelled,
		},
		[]string{LabelKind},
	)

	CookiesGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCookiesGranted,
			Help: HelpTextCookiesGranted,
		},
		[]string{LabelRarity},
	)

	CurrencyGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyGranted,
			Help: HelpTextCurrencyGranted,
		},
	)

	CurrencySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
	)

	ItemsAcquired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAcquired,
			Help: HelpTextItemsAcquired,
		},
		[]string{LabelCategory, LabelTier},
	)

	ItemsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPlaced,
			Help: HelpTextItemsPlaced,
		},
		[]string{LabelCategory},
	)

	ItemsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
		[]string{LabelCategory},
	)

	ItemsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpgraded,
			Help: HelpTextItemsUpgraded,
		},
		[]string{LabelCategory, LabelTier},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelCategory},
	)

	ItemsReconciled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsReconciled,
			Help: HelpTextItemsReconciled,
		},
	)
)

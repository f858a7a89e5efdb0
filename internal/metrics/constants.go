package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSessionsStarted   = "sessions_started_total"
	MetricNameSessionsCompleted = "sessions_completed_total"
	MetricNameSessionsCancelled = "sessions_cancelled_total"
	MetricNameCookiesGranted    = "cookies_granted_total"
	MetricNameCurrencyGranted   = "garden_currency_granted_total"
	MetricNameCurrencySpent     = "garden_currency_spent_total"
	MetricNameItemsAcquired     = "garden_items_acquired_total"
	MetricNameItemsPlaced       = "garden_items_placed_total"
	MetricNameItemsRemoved      = "garden_items_removed_total"
	MetricNameItemsUpgraded     = "garden_items_upgraded_total"
	MetricNameItemsSold         = "garden_items_sold_total"
	MetricNameItemsReconciled   = "garden_items_reconciled_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSessionsStarted   = "Total number of timed sessions started"
	HelpTextSessionsCompleted = "Total number of timed sessions completed"
	HelpTextSessionsCancelled = "Total number of timed sessions cancelled"
	HelpTextCookiesGranted    = "Total number of cookies granted"
	HelpTextCurrencyGranted   = "Total garden currency granted"
	HelpTextCurrencySpent     = "Total garden currency spent on items"
	HelpTextItemsAcquired     = "Total number of garden items acquired"
	HelpTextItemsPlaced       = "Total number of garden items placed"
	HelpTextItemsRemoved      = "Total number of garden items removed"
	HelpTextItemsUpgraded     = "Total number of garden items upgraded"
	HelpTextItemsSold         = "Total number of garden items sold"
	HelpTextItemsReconciled   = "Total number of items auto-removed by reconciliation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelKind     = "kind"
	LabelRarity   = "rarity"
	LabelCategory = "category"
	LabelTier     = "tier"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)

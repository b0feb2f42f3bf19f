package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameRunsTotal               = "xurbot_runs_total"
	MetricNameRunDuration             = "xurbot_run_duration_seconds"
	MetricNameUpstreamRequestsTotal   = "xurbot_upstream_requests_total"
	MetricNameUpstreamRequestDuration = "xurbot_upstream_request_duration_seconds"
	MetricNameItemsNotifiedTotal      = "xurbot_items_notified_total"
	MetricNameItemFailuresTotal       = "xurbot_item_failures_total"
	MetricNameLastRunTimestamp        = "xurbot_last_run_timestamp_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextRunsTotal               = "Total number of pipeline runs by outcome"
	HelpTextRunDuration             = "Pipeline run duration in seconds"
	HelpTextUpstreamRequestsTotal   = "Total number of upstream HTTP requests"
	HelpTextUpstreamRequestDuration = "Upstream HTTP request latency in seconds"
	HelpTextItemsNotifiedTotal      = "Total number of item cards sent by category"
	HelpTextItemFailuresTotal       = "Total number of items skipped because lookup or formatting failed"
	HelpTextLastRunTimestamp        = "Unix time the last run finished"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelOutcome  = "outcome"
	LabelEndpoint = "endpoint"
	LabelStatus   = "status"
	LabelCategory = "category"
)

// Run outcomes
const (
	OutcomeNotified = "notified"
	OutcomeAbsent   = "absent"
	OutcomeFailed   = "failed"
)

// Buckets
var (
	UpstreamLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10}
	RunLatencyBuckets      = []float64{.5, 1, 2.5, 5, 10, 30, 60}
)

// StatusNoResponse labels requests that never got a response
const StatusNoResponse = "none"

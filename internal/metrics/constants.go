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

// Sync metric names
const (
	MetricNameSyncRunsTotal     = "faction_sync_runs_total"
	MetricNameSyncDuration      = "faction_sync_duration_seconds"
	MetricNameAttacksAddedTotal = "faction_attacks_added_total"
)

// Upstream metric names
const (
	MetricNameUpstreamRequestsTotal = "torn_upstream_requests_total"
	MetricNameUpstreamRetriesTotal  = "torn_upstream_retries_total"
)

// Bot metric names
const (
	MetricNameCommandsTotal   = "discord_commands_total"
	MetricNameNameCacheLookup = "name_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextSyncRunsTotal     = "Total number of faction attack sync runs"
	HelpTextSyncDuration      = "Faction attack sync duration in seconds"
	HelpTextAttacksAddedTotal = "Total number of new attacks stored by sync"

	HelpTextUpstreamRequestsTotal = "Total number of upstream API requests"
	HelpTextUpstreamRetriesTotal  = "Total number of upstream API retries"

	HelpTextCommandsTotal   = "Total number of chat commands handled"
	HelpTextNameCacheLookup = "Name cache lookups by result"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelPhase   = "phase"
	LabelCommand = "command"
	LabelResult  = "result"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"

	PhaseRecent   = "recent"
	PhaseBackfill = "backfill"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// HTTPLatencyBuckets are histogram buckets for HTTP latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// SyncDurationBuckets are histogram buckets for sync runs, which page the upstream API
var SyncDurationBuckets = []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 80}

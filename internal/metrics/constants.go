package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "sigilforge_http_requests_total"
	MetricNameHTTPRequestDuration  = "sigilforge_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "sigilforge_http_requests_in_flight"

	MetricNameEventsPublished = "sigilforge_events_published_total"

	MetricNameUpgradeAttempts         = "sigilforge_upgrade_attempts_total"
	MetricNameSigilsConsumed          = "sigilforge_sigils_consumed_total"
	MetricNameUpgradeWriteConflicts   = "sigilforge_upgrade_write_conflicts_total"
	MetricNameWeaponLevelAfterUpgrade = "sigilforge_weapon_level_after_upgrade"
	MetricNamePlayersRegistered       = "sigilforge_players_registered_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished = "Total number of events published"

	HelpTextUpgradeAttempts         = "Committed upgrade attempts by outcome"
	HelpTextSigilsConsumed          = "Sigil protection charges spent to avoid a downgrade"
	HelpTextUpgradeWriteConflicts   = "Optimistic write conflicts that forced an upgrade retry"
	HelpTextWeaponLevelAfterUpgrade = "Weapon level after each committed upgrade attempt"
	HelpTextPlayersRegistered       = "Players registered by platform"
)

// Labels
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelResult   = "result"
	LabelPlatform = "platform"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// WeaponLevelBucketCount covers levels 0..15
const WeaponLevelBucketCount = 16

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// Log messages
const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload for metrics"
)

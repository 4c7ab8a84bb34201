package observability

// Metric name prefixes
const (
	MetricPrefix = "stream_alerts"
)

// Metric names
const (
	// Store metrics
	StoreOperationsTotal      = MetricPrefix + ".store.operations_total"
	StoreOperationErrorsTotal = MetricPrefix + ".store.operation_errors_total"
	StoreOperationDuration    = MetricPrefix + ".store.operation_duration"

	// Tracker metrics
	TrackerNotificationsTotal = MetricPrefix + ".tracker.notifications_total"

	// Discord metrics
	GuildEventsTotal = MetricPrefix + ".discord.guild_events_total"
)

// Label keys
const (
	LabelOperation = "operation"
	LabelEventType = "event_type"
	LabelOutcome   = "outcome"
)

// Outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Tracker notification types
const (
	NotificationStreamerAdded   = "streamer_added"
	NotificationStreamerRemoved = "streamer_removed"
)

// Guild event types
const (
	GuildEventJoined  = "joined"
	GuildEventRemoved = "removed"
)

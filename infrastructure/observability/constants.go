package observability

// Metric name prefixes
const (
	MetricPrefix = "smanager"
)

// Metric names
const (
	// Event metrics
	EventsHandledTotal = MetricPrefix + ".events.handled_total"

	// NATS metrics
	NATSMessagesReceivedTotal = MetricPrefix + ".nats.messages_received_total"

	// Discord metrics
	MessagesSentTotal     = MetricPrefix + ".discord.messages_sent_total"
	SuppressedErrorsTotal = MetricPrefix + ".discord.suppressed_errors_total"

	// Reservation metrics
	ReservationsReleasedTotal = MetricPrefix + ".reservations.released_total"
)

// Label keys
const (
	LabelType      = "type"
	LabelEventType = "event_type"
	LabelOutcome   = "outcome"
	LabelErrorType = "error_type"
	LabelSubject   = "subject"
)

// Event handling outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomePanic   = "panic"
)

// Outgoing Discord message kinds
const (
	MessageTypeReply    = "reply"
	MessageTypeLog      = "log"
	MessageTypeSlotlist = "slotlist"
	MessageTypeReaction = "reaction"
)

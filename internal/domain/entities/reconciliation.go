package entities

// ObservationSource identifies which delivery channel produced a status
// observation. Poll and webhook race each other with no ordering guarantee.

type ObservationSource string

const (
	SourcePoll    ObservationSource = "poll"
	SourceWebhook ObservationSource = "webhook"
)

// Observation is a (session id, status) fact fed into the reconciliation
// engine from either channel.

type Observation struct {
	SessionID string            `json:"session_id"`
	Status    TransactionStatus `json:"status"`
	Source    ObservationSource `json:"source"`
}

// Outcome describes what a single Observe call actually did, so callers can
// decide whether to emit side effects (e.g. a confirmation notification)
// without duplicating them across channels.
//
//   - confirmed: this call won the paid transition.
//   - recorded:  this call recorded a terminal non-paid status.
//   - noop:      nothing changed (duplicate, stale, or lost race).

type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeRecorded  Outcome = "recorded"
	OutcomeNoOp      Outcome = "noop"
)

package core

// OutcomeKind tags the result of classifying an inbound webhook payload.
// Irrelevant and not-yet-ready events are valid outcomes, not errors; all
// three answer HTTP 200 at the wire level.
type OutcomeKind int

const (
	// Relevant means the payload is the terminal event this handler expects
	// and carries everything needed to proceed.
	Relevant OutcomeKind = iota
	// Ignored means the event is not for this handler (wrong type or stage).
	Ignored
	// Pending means the event is terminal but the transcript is not available
	// yet; the caller should try again later.
	Pending
)

// Outcome is the tagged result of the event classifier. Event is non-nil only
// when Kind is Relevant. Reason carries the diagnostic message returned to
// the caller for Ignored and Pending outcomes.
type Outcome struct {
	Kind   OutcomeKind
	Event  *CallEvent
	Reason string
}

// RelevantOutcome wraps a classified event.
func RelevantOutcome(ev *CallEvent) Outcome {
	return Outcome{Kind: Relevant, Event: ev}
}

// IgnoredOutcome records why the payload is not for this handler.
func IgnoredOutcome(reason string) Outcome {
	return Outcome{Kind: Ignored, Reason: reason}
}

// PendingOutcome records why the event cannot be processed yet. The partial
// event is kept so the response can echo identifiers and the recording URL.
func PendingOutcome(reason string, ev *CallEvent) Outcome {
	return Outcome{Kind: Pending, Reason: reason, Event: ev}
}

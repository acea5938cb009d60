package core

import "context"

// JobRunner starts asynchronous work on the external job-execution platform.
// The platform performs the actual CV parsing, dialing and email sending;
// once a run is accepted its lifecycle is independent of the caller.
type JobRunner interface {
	// Run starts the given actor with the supplied input and returns the
	// accepted run. A non-2xx platform response is returned as an error
	// carrying the upstream status and raw body.
	Run(ctx context.Context, actorID string, input any) (*RunInfo, error)
}

// TranscriptFetcher recovers a missing transcript from the originating
// provider by conversation or bot identifier. Exactly one recovery fetch is
// attempted per request; an empty result is not an error.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, id string) (transcript, recordingURL string, err error)
}

// ScoreRequest carries everything needed to grade one transcript.
type ScoreRequest struct {
	// Role is the evaluator persona embedded in the prompt.
	Role       string
	Scale      ScoreScale
	Job        *JobDetails
	Transcript string
}

// Scorer grades an interview transcript against a job using a language model.
// Score never fails on unparseable model output; it degrades to the scale's
// default and keeps the raw response as analysis.
type Scorer interface {
	Score(ctx context.Context, req *ScoreRequest) (*ScoreResult, error)
}

// CallSheet is the spreadsheet-backed datastore shared by all pipeline
// stages. The sheet API performs blind range overwrites with no concurrency
// control, so writes must target exactly the agent's configured range.
type CallSheet interface {
	// WriteResult overwrites the given A1 range on the "Call Queue" sheet at
	// the given row with an ordered tuple of values. Failure is fatal for the
	// request: a scored-but-unsaved result is a lost candidate.
	WriteResult(ctx context.Context, row int, a1Range string, values []any) error
	// FindRow scans a full column of the "Call Queue" sheet for a matching
	// correlation key and returns its 1-based row, or 0 when absent.
	FindRow(ctx context.Context, column, key string) (int, error)
	// AppendRow adds a new row at the bottom of the "Call Queue" sheet.
	AppendRow(ctx context.Context, values []any) error
	// JobByOrderID looks a position up in the "Job Orders" sheet.
	JobByOrderID(ctx context.Context, jobOrderID string) (*JobDetails, error)
}

// AuditStore records processed callbacks for operational history. Audit
// failures are logged, never propagated; the store may be a no-op when no
// database is configured.
type AuditStore interface {
	SaveCallback(ctx context.Context, rec *AuditRecord) error
}

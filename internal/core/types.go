// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the pipeline's logic.
package core

// CallEvent is the internal view of a terminal callback from a voice or video
// provider. It is built by an agent profile's classifier from the raw webhook
// payload and carries everything a processing run needs.
type CallEvent struct {
	Agent          string
	ConversationID string
	Transcript     string
	RecordingURL   string
	Duration       int

	CandidateName  string
	CandidateEmail string
	Phone          string

	// RowNumber is the 1-based row in the "Call Queue" sheet. It is the only
	// reliable correlation key back to a candidate; 0 means unknown.
	RowNumber  int
	JobOrderID string
	JobTitle   string
	Stage      string
}

// JobDetails describes a single open position, looked up from the
// "Job Orders" sheet by job order ID.
type JobDetails struct {
	JobOrderID         string
	JobTitle           string
	Location           string
	JobDescription     string
	PersonSpecs        string
	ScreeningQuestions string
	InterviewQuestions string
	FinalQuestions     string
}

// ScoreScale selects how a transcript evaluation is graded.
type ScoreScale int

const (
	// ScalePassFail grades screening calls as PASS, FAIL or REVIEW.
	ScalePassFail ScoreScale = iota
	// ScaleZeroToFive grades interviews as an integer in [0,5].
	ScaleZeroToFive
)

// ScoreResult is the outcome of grading a transcript. Score holds the
// stringified value on either scale ("PASS", "3", ...). Evaluation never
// fails outright: on an unparseable model response Score degrades to "0" or
// "REVIEW" and Analysis keeps the raw model output.
type ScoreResult struct {
	Score    string
	Numeric  int
	Analysis string
}

// RunInfo identifies a run accepted by the job-execution platform.
type RunInfo struct {
	ID     string
	Status string
}

// AuditRecord is one processed callback, kept for operational history.
type AuditRecord struct {
	Agent            string
	RowNumber        int
	CandidateName    string
	ConversationID   string
	Score            string
	TranscriptLength int
}

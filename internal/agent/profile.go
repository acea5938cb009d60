// Package agent defines the per-agent configuration records that drive the
// generic callback pipeline. Each interview stage (phone screening, technical
// phone interview, video interview) is described by a Profile: its terminal
// event shape, score scale, sheet column layout and result tuple. Behavior
// differences between agents live here as data, not as duplicated control flow.
package agent

import (
	"github.com/recruitflow/pipeline/internal/core"
)

// Classifier inspects a raw webhook payload and decides whether it is the
// terminal event this agent expects, extracting the call event when it is.
type Classifier func(payload []byte) core.Outcome

// SheetWrite is one range overwrite on the "Call Queue" sheet. Column
// semantics are agent-specific and must match exactly: the sheet API performs
// blind range overwrites, so a wrong range silently corrupts unrelated data.
type SheetWrite struct {
	// Range is the column span in A1 letters, e.g. "H:J". Layouts differ per
	// agent and are historical; do not assume any canonical layout.
	Range  string
	Values []any
}

// WriteBuilder produces the ordered range writes for a scored call.
type WriteBuilder func(ev *core.CallEvent, res *core.ScoreResult) []SheetWrite

// Profile is the full per-agent configuration consumed by the pipeline.
type Profile struct {
	// Name is the short agent identifier used in logs and audit records.
	Name string
	// Stage is the pipeline stage this agent's callbacks belong to.
	Stage string
	// Scale selects the grading scale for this agent's transcripts.
	Scale core.ScoreScale
	// FallbackColumn is scanned for FallbackKey(ev) when the event carries no
	// row number.
	FallbackColumn string
	// FallbackKey derives the correlation key used for the column scan.
	FallbackKey func(ev *core.CallEvent) string
	// AppendOnMissingRow appends a fresh row instead of failing when the row
	// cannot be resolved at all.
	AppendOnMissingRow bool
	// Classify decides event relevance and extracts fields.
	Classify Classifier
	// Writes builds the range overwrites for a scored call.
	Writes WriteBuilder
	// AppendRow builds the values for a brand-new row when AppendOnMissingRow
	// applies.
	AppendRow func(ev *core.CallEvent, res *core.ScoreResult) []any
	// PromptRole is the evaluator persona embedded in the scoring prompt.
	PromptRole string
}

package agent

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/recruitflow/pipeline/internal/core"
)

// Whale is the video-interview agent. Its callbacks arrive from the video
// platform with a flat payload: conversation_id, status, transcript and
// recording_url at the top level. Grading is on the 0-5 scale. The transcript
// lands in column Q, the score triple in U:W; row resolution falls back to
// scanning the conversation-id column, and a brand-new row is appended when
// the conversation cannot be correlated at all.
func Whale() *Profile {
	return &Profile{
		Name:               "whale",
		Stage:              "video",
		Scale:              core.ScaleZeroToFive,
		FallbackColumn:     "N",
		FallbackKey:        func(ev *core.CallEvent) string { return ev.ConversationID },
		AppendOnMissingRow: true,
		Classify:           classifyWhale,
		Writes: func(ev *core.CallEvent, res *core.ScoreResult) []SheetWrite {
			return []SheetWrite{
				{Range: "Q:Q", Values: []any{ev.Transcript}},
				{Range: "U:W", Values: []any{res.Score, res.Analysis, "Video Interview Complete"}},
			}
		},
		AppendRow: func(ev *core.CallEvent, res *core.ScoreResult) []any {
			return []any{
				ev.CandidateName,
				ev.ConversationID,
				ev.Transcript,
				res.Score,
				res.Analysis,
				"Video Interview Complete (unmatched)",
			}
		},
		PromptRole: "a hiring manager evaluating a recorded video interview",
	}
}

func classifyWhale(payload []byte) core.Outcome {
	status := gjson.GetBytes(payload, "status").String()
	ev := &core.CallEvent{
		Agent:          "whale",
		Stage:          "video",
		ConversationID: gjson.GetBytes(payload, "conversation_id").String(),
		Transcript:     gjson.GetBytes(payload, "transcript").String(),
		RecordingURL:   gjson.GetBytes(payload, "recording_url").String(),
		Duration:       int(gjson.GetBytes(payload, "duration").Int()),
		CandidateName:  stringOr(gjson.GetBytes(payload, "candidate_name"), "Unknown"),
		// Synthesized retry payloads carry the row directly; live platform
		// callbacks never do, so this stays zero and the column scan applies.
		RowNumber: int(gjson.GetBytes(payload, "rowNumber").Int()),
	}

	if status != "ended" {
		return core.IgnoredOutcome(fmt.Sprintf("Conversation status: %s", status))
	}
	if ev.Transcript == "" {
		return core.PendingOutcome("Video completed but no transcript available", ev)
	}
	return core.RelevantOutcome(ev)
}

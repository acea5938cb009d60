package agent

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/recruitflow/pipeline/internal/core"
)

// Lion is the technical phone-interview agent. It shares the voice platform's
// callback shape with Zebra but only owns calls tagged stage="technical" and
// grades on the 0-5 scale.
func Lion() *Profile {
	return &Profile{
		Name:           "lion",
		Stage:          "technical",
		Scale:          core.ScaleZeroToFive,
		FallbackColumn: "B",
		FallbackKey:    func(ev *core.CallEvent) string { return ev.Phone },
		Classify:       classifyLion,
		Writes: func(ev *core.CallEvent, res *core.ScoreResult) []SheetWrite {
			// Two columns only; score and analysis share the second cell.
			return []SheetWrite{
				{Range: "L:M", Values: []any{ev.Transcript, fmt.Sprintf("%s/5: %s", res.Score, res.Analysis)}},
			}
		},
		PromptRole: "a senior engineer evaluating a technical phone interview",
	}
}

func classifyLion(payload []byte) core.Outcome {
	msg := gjson.GetBytes(payload, "message")
	endOfCall := msg.Get("type").String() == "end-of-call-report" ||
		msg.Get("type").String() == "call-ended" ||
		msg.Get("call.status").String() == "ended"
	if !endOfCall {
		return core.IgnoredOutcome("Not end-of-call; ignoring.")
	}

	ev := eventFromVapiPayload(payload)
	ev.Agent = "lion"

	if ev.Stage != "technical" {
		return core.IgnoredOutcome("Not technical interview callback; ignoring.")
	}
	if ev.RowNumber == 0 && ev.Phone == "" {
		return core.IgnoredOutcome("Missing transcript or row data")
	}
	if ev.Transcript == "" {
		return core.PendingOutcome(fmt.Sprintf("Transcript not available for call %s", ev.ConversationID), ev)
	}
	return core.RelevantOutcome(ev)
}

package agent

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/recruitflow/pipeline/internal/core"
)

// Zebra is the phone-screening agent. Its callbacks arrive from the voice
// platform as end-of-call reports and are graded PASS/FAIL/REVIEW.
func Zebra() *Profile {
	return &Profile{
		Name:           "zebra",
		Stage:          "screening",
		Scale:          core.ScalePassFail,
		FallbackColumn: "B",
		FallbackKey:    func(ev *core.CallEvent) string { return ev.Phone },
		Classify:       classifyZebra,
		Writes: func(ev *core.CallEvent, res *core.ScoreResult) []SheetWrite {
			return []SheetWrite{
				{Range: "H:J", Values: []any{ev.Transcript, res.Score, res.Analysis}},
			}
		},
		PromptRole: "a recruitment screener evaluating an automated phone screening call",
	}
}

func classifyZebra(payload []byte) core.Outcome {
	if t := gjson.GetBytes(payload, "message.type").String(); t != "end-of-call-report" {
		return core.IgnoredOutcome("Not end-of-call-report; ignoring.")
	}

	ev := eventFromVapiPayload(payload)
	ev.Agent = "zebra"
	ev.Stage = "screening"

	if ev.RowNumber == 0 && ev.Phone == "" {
		return core.IgnoredOutcome("Missing transcript or row data")
	}
	if ev.Transcript == "" {
		return core.PendingOutcome(fmt.Sprintf("Transcript not available for call %s", ev.ConversationID), ev)
	}
	return core.RelevantOutcome(ev)
}

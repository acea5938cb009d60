package agent

import (
	"github.com/tidwall/gjson"

	"github.com/recruitflow/pipeline/internal/core"
)

// eventFromVapiPayload extracts the call event fields shared by the voice
// platform's end-of-call payloads. The payload nests everything under
// "message"; candidate metadata rides along in "message.call.metadata" and is
// set by the trigger side when the call is placed.
func eventFromVapiPayload(payload []byte) *core.CallEvent {
	msg := gjson.GetBytes(payload, "message")
	meta := msg.Get("call.metadata")

	return &core.CallEvent{
		ConversationID: msg.Get("call.id").String(),
		Transcript:     msg.Get("transcript").String(),
		RecordingURL:   msg.Get("recordingUrl").String(),
		CandidateName:  stringOr(meta.Get("candidateName"), "Unknown"),
		CandidateEmail: meta.Get("candidateEmail").String(),
		Phone:          meta.Get("phoneNumber").String(),
		RowNumber:      int(meta.Get("rowNumber").Int()),
		JobOrderID:     meta.Get("jobOrderId").String(),
		JobTitle:       meta.Get("jobTitle").String(),
		Stage:          meta.Get("stage").String(),
	}
}

func stringOr(r gjson.Result, fallback string) string {
	if s := r.String(); s != "" {
		return s
	}
	return fallback
}

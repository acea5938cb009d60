// Package pipeline implements the generic callback engine shared by all
// agent families: classify the inbound event, ensure a transcript, score it
// against the job, and persist the result to the call sheet. Agent-specific
// behavior comes in as an agent.Profile; the control flow here is the same
// for every interview stage.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/recruitflow/pipeline/internal/agent"
	"github.com/recruitflow/pipeline/internal/core"
)

// CallbackProcessor runs one agent family's callback pipeline.
type CallbackProcessor struct {
	profile *agent.Profile
	fetcher core.TranscriptFetcher
	scorer  core.Scorer
	sheet   core.CallSheet
	audit   core.AuditStore
	logger  *slog.Logger
}

// NewCallbackProcessor wires a processor for one agent profile. fetcher may
// be nil when the originating provider has no transcript recovery endpoint.
func NewCallbackProcessor(
	profile *agent.Profile,
	fetcher core.TranscriptFetcher,
	scorer core.Scorer,
	sheet core.CallSheet,
	audit core.AuditStore,
	logger *slog.Logger,
) *CallbackProcessor {
	if profile == nil {
		panic("profile cannot be nil")
	}
	if scorer == nil {
		panic("scorer cannot be nil")
	}
	if sheet == nil {
		panic("sheet cannot be nil")
	}
	return &CallbackProcessor{
		profile: profile,
		fetcher: fetcher,
		scorer:  scorer,
		sheet:   sheet,
		audit:   audit,
		logger:  logger,
	}
}

// Result is the terminal state of one callback run. Ignored and Pending are
// valid non-error outcomes answered with HTTP 200 and no side effects.
type Result struct {
	Kind    core.OutcomeKind
	Message string
	Event   *core.CallEvent
	Score   *core.ScoreResult
}

// Process classifies the payload and, for relevant terminal events, carries
// it through scoring and persistence. Errors are only returned for upstream
// or persistence failures; irrelevant and not-yet-ready events come back as
// Ignored/Pending results.
func (p *CallbackProcessor) Process(ctx context.Context, payload []byte) (*Result, error) {
	out := p.profile.Classify(payload)

	switch out.Kind {
	case core.Ignored:
		p.logger.Debug("callback ignored", "agent", p.profile.Name, "reason", out.Reason)
		return &Result{Kind: core.Ignored, Message: out.Reason}, nil

	case core.Pending:
		ev := out.Event
		// Exactly one recovery fetch before giving up on the transcript.
		if p.fetcher != nil && ev != nil && ev.ConversationID != "" {
			transcript, recording, err := p.fetcher.FetchTranscript(ctx, ev.ConversationID)
			if err != nil {
				return nil, fmt.Errorf("transcript recovery failed: %w", err)
			}
			if ev.RecordingURL == "" {
				ev.RecordingURL = recording
			}
			if strings.TrimSpace(transcript) != "" {
				ev.Transcript = transcript
				return p.processRelevant(ctx, ev)
			}
		}
		p.logger.Info("transcript still pending", "agent", p.profile.Name, "reason", out.Reason)
		return &Result{Kind: core.Pending, Message: out.Reason, Event: ev}, nil
	}

	return p.processRelevant(ctx, out.Event)
}

func (p *CallbackProcessor) processRelevant(ctx context.Context, ev *core.CallEvent) (*Result, error) {
	p.logger.Info("processing callback",
		"agent", p.profile.Name,
		"candidate", ev.CandidateName,
		"row", ev.RowNumber,
		"transcript_length", len(ev.Transcript),
	)

	job, err := p.sheet.JobByOrderID(ctx, ev.JobOrderID)
	if err != nil {
		return nil, err
	}
	if job == nil && ev.JobTitle != "" {
		// No job order row; grade against the title the trigger passed along.
		job = &core.JobDetails{JobOrderID: ev.JobOrderID, JobTitle: ev.JobTitle}
	}

	score, err := p.scorer.Score(ctx, &core.ScoreRequest{
		Role:       p.profile.PromptRole,
		Scale:      p.profile.Scale,
		Job:        job,
		Transcript: ev.Transcript,
	})
	if err != nil {
		return nil, err
	}

	if err := p.persist(ctx, ev, score); err != nil {
		// A scored-but-unsaved result is a lost candidate; this is the one
		// failure mode that must surface as a request error.
		return nil, err
	}

	p.saveAudit(ctx, ev, score)

	return &Result{
		Kind:    core.Relevant,
		Message: fmt.Sprintf("%s callback processed", p.profile.Name),
		Event:   ev,
		Score:   score,
	}, nil
}

// persist resolves the sheet row and overwrites the agent's column ranges.
func (p *CallbackProcessor) persist(ctx context.Context, ev *core.CallEvent, score *core.ScoreResult) error {
	row := ev.RowNumber
	if row == 0 && p.profile.FallbackKey != nil {
		key := p.profile.FallbackKey(ev)
		if key != "" {
			found, err := p.sheet.FindRow(ctx, p.profile.FallbackColumn, key)
			if err != nil {
				return err
			}
			row = found
		}
	}

	if row == 0 {
		if p.profile.AppendOnMissingRow && p.profile.AppendRow != nil {
			p.logger.Warn("row not resolved, appending new row",
				"agent", p.profile.Name, "conversation_id", ev.ConversationID)
			return p.sheet.AppendRow(ctx, p.profile.AppendRow(ev, score))
		}
		return fmt.Errorf("could not resolve sheet row for %s callback (conversation %s)",
			p.profile.Name, ev.ConversationID)
	}
	ev.RowNumber = row

	for _, w := range p.profile.Writes(ev, score) {
		if err := p.sheet.WriteResult(ctx, row, w.Range, w.Values); err != nil {
			return err
		}
	}
	return nil
}

// saveAudit records the processed callback; audit failures are logged only.
func (p *CallbackProcessor) saveAudit(ctx context.Context, ev *core.CallEvent, score *core.ScoreResult) {
	if p.audit == nil {
		return
	}
	err := p.audit.SaveCallback(ctx, &core.AuditRecord{
		Agent:            p.profile.Name,
		RowNumber:        ev.RowNumber,
		CandidateName:    ev.CandidateName,
		ConversationID:   ev.ConversationID,
		Score:            score.Score,
		TranscriptLength: len(ev.Transcript),
	})
	if err != nil {
		p.logger.Error("failed to save callback audit record", "agent", p.profile.Name, "error", err)
	}
}

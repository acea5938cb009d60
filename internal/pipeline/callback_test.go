package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/pipeline/internal/agent"
	"github.com/recruitflow/pipeline/internal/core"
)

type fakeScorer struct {
	calls  int
	result *core.ScoreResult
	err    error
}

func (f *fakeScorer) Score(_ context.Context, _ *core.ScoreRequest) (*core.ScoreResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeSheet struct {
	writes    int
	appends   int
	findRow   int
	jobs      map[string]*core.JobDetails
	writeErr  error
	lastRange string
	lastRow   int
}

func (f *fakeSheet) WriteResult(_ context.Context, row int, a1Range string, _ []any) error {
	f.writes++
	f.lastRow = row
	f.lastRange = a1Range
	return f.writeErr
}

func (f *fakeSheet) FindRow(_ context.Context, _, _ string) (int, error) {
	return f.findRow, nil
}

func (f *fakeSheet) AppendRow(_ context.Context, _ []any) error {
	f.appends++
	return nil
}

func (f *fakeSheet) JobByOrderID(_ context.Context, id string) (*core.JobDetails, error) {
	return f.jobs[id], nil
}

type fakeFetcher struct {
	calls      int
	transcript string
	recording  string
	err        error
}

func (f *fakeFetcher) FetchTranscript(_ context.Context, _ string) (string, string, error) {
	f.calls++
	return f.transcript, f.recording, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

const lionTerminal = `{"message":{"type":"end-of-call-report","transcript":"Q: reverse a list. A: iterate backwards.",
	"call":{"id":"c1","metadata":{"stage":"technical","rowNumber":7,"candidateName":"Jane Doe","jobOrderId":"JO-42"}}}}`

func TestProcessRelevantCallback(t *testing.T) {
	scorer := &fakeScorer{result: &core.ScoreResult{Score: "4", Numeric: 4, Analysis: "solid"}}
	sheet := &fakeSheet{jobs: map[string]*core.JobDetails{"JO-42": {JobOrderID: "JO-42", JobTitle: "Backend Engineer"}}}
	p := NewCallbackProcessor(agent.Lion(), nil, scorer, sheet, nil, testLogger())

	res, err := p.Process(context.Background(), []byte(lionTerminal))
	require.NoError(t, err)
	assert.Equal(t, core.Relevant, res.Kind)
	assert.Equal(t, 7, res.Event.RowNumber)
	assert.Equal(t, "4", res.Score.Score)
	assert.Equal(t, 1, scorer.calls)
	assert.Equal(t, 1, sheet.writes)
	assert.Equal(t, "L:M", sheet.lastRange)
	assert.Equal(t, 7, sheet.lastRow)
}

func TestProcessIgnoresWrongStage(t *testing.T) {
	payload := `{"message":{"type":"end-of-call-report","transcript":"hello",
		"call":{"id":"c2","metadata":{"stage":"screening","rowNumber":7}}}}`

	scorer := &fakeScorer{result: &core.ScoreResult{Score: "0"}}
	sheet := &fakeSheet{}
	p := NewCallbackProcessor(agent.Lion(), nil, scorer, sheet, nil, testLogger())

	res, err := p.Process(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, core.Ignored, res.Kind)
	assert.Equal(t, "Not technical interview callback; ignoring.", res.Message)
	// An irrelevant event triggers zero outbound calls and zero writes.
	assert.Zero(t, scorer.calls)
	assert.Zero(t, sheet.writes)
}

func TestProcessPendingAfterFailedRecovery(t *testing.T) {
	payload := `{"conversation_id":"conv-1","status":"ended","recording_url":"https://rec/1"}`

	scorer := &fakeScorer{result: &core.ScoreResult{Score: "0"}}
	sheet := &fakeSheet{}
	fetcher := &fakeFetcher{transcript: "", recording: "https://rec/1"}
	p := NewCallbackProcessor(agent.Whale(), fetcher, scorer, sheet, nil, testLogger())

	res, err := p.Process(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, core.Pending, res.Kind)
	assert.Equal(t, 1, fetcher.calls, "exactly one recovery fetch")
	assert.Zero(t, scorer.calls)
	assert.Zero(t, sheet.writes)
	assert.Equal(t, "https://rec/1", res.Event.RecordingURL)
}

func TestProcessRecoversTranscript(t *testing.T) {
	payload := `{"conversation_id":"conv-2","status":"ended"}`

	scorer := &fakeScorer{result: &core.ScoreResult{Score: "3", Numeric: 3, Analysis: "ok"}}
	sheet := &fakeSheet{findRow: 9}
	fetcher := &fakeFetcher{transcript: "Interviewer: welcome\n\nJane: thanks"}
	p := NewCallbackProcessor(agent.Whale(), fetcher, scorer, sheet, nil, testLogger())

	res, err := p.Process(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, core.Relevant, res.Kind)
	assert.Equal(t, 9, res.Event.RowNumber, "row resolved via fallback column scan")
	assert.Equal(t, 2, sheet.writes, "whale writes transcript and score ranges")
}

func TestProcessAppendsWhenRowUnresolved(t *testing.T) {
	payload := `{"conversation_id":"conv-3","status":"ended","transcript":"Interviewer: hi"}`

	scorer := &fakeScorer{result: &core.ScoreResult{Score: "2", Numeric: 2}}
	sheet := &fakeSheet{findRow: 0}
	p := NewCallbackProcessor(agent.Whale(), nil, scorer, sheet, nil, testLogger())

	res, err := p.Process(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, core.Relevant, res.Kind)
	assert.Equal(t, 1, sheet.appends)
	assert.Zero(t, sheet.writes)
}

func TestProcessPersistFailureIsFatal(t *testing.T) {
	scorer := &fakeScorer{result: &core.ScoreResult{Score: "4", Numeric: 4}}
	sheet := &fakeSheet{writeErr: fmt.Errorf("quota exceeded")}
	p := NewCallbackProcessor(agent.Lion(), nil, scorer, sheet, nil, testLogger())

	_, err := p.Process(context.Background(), []byte(lionTerminal))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestProcessRowUnresolvedForPhoneAgentIsFatal(t *testing.T) {
	payload := `{"message":{"type":"end-of-call-report","transcript":"hello",
		"call":{"id":"c4","metadata":{"stage":"technical","phoneNumber":"+440000000000"}}}}`

	scorer := &fakeScorer{result: &core.ScoreResult{Score: "1", Numeric: 1}}
	sheet := &fakeSheet{findRow: 0}
	p := NewCallbackProcessor(agent.Lion(), nil, scorer, sheet, nil, testLogger())

	_, err := p.Process(context.Background(), []byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not resolve sheet row")
}

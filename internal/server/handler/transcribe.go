package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"

	"github.com/recruitflow/pipeline/internal/core"
)

// maxAudioUpload bounds the multipart form parse for transcription requests.
const maxAudioUpload = 25 << 20

// Transcribe converts an uploaded audio file to text, and scores the
// transcript when the caller names a job order to grade it against.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		return badRequest("Invalid multipart form")
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		return badRequest("No audio file provided")
	}
	defer file.Close()

	candidateID := r.FormValue("candidateId")
	if candidateID == "" {
		return badRequest("Missing candidateId")
	}
	jobOrderID := r.FormValue("jobOrderId")

	// The speech client reads from a file path, so the upload is staged in a
	// temp file for the duration of the request.
	tmp, err := os.CreateTemp("", "audio-*"+filepath.Ext(header.Filename))
	if err != nil {
		return fmt.Errorf("failed to stage audio upload: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()
	if _, err := io.Copy(tmp, file); err != nil {
		return fmt.Errorf("failed to stage audio upload: %w", err)
	}

	h.logger.Info("transcribing audio",
		"candidate_id", candidateID,
		"file", header.Filename,
		"bytes", header.Size,
	)

	audio, err := h.transcriber.CreateTranscription(r.Context(), openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: tmp.Name(),
	})
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	resp := body{
		"success":          true,
		"message":          "Audio transcribed",
		"candidateId":      candidateID,
		"transcript":       audio.Text,
		"transcriptLength": len(audio.Text),
		"timestamp":        timestamp(),
	}

	if jobOrderID != "" {
		job, err := h.sheet.JobByOrderID(r.Context(), jobOrderID)
		if err != nil {
			return fmt.Errorf("failed to load job order %s: %w", jobOrderID, err)
		}
		score, err := h.scorer.Score(r.Context(), &core.ScoreRequest{
			Role:       "a recruiter evaluating an interview recording",
			Scale:      core.ScalePassFail,
			Job:        job,
			Transcript: audio.Text,
		})
		if err != nil {
			return fmt.Errorf("failed to score transcript: %w", err)
		}
		resp["jobOrderId"] = jobOrderID
		resp["score"] = score.Score
		resp["analysis"] = score.Analysis
	}

	writeJSON(w, http.StatusOK, resp)
	return nil
}

package sheets

import (
	"context"
	"fmt"

	"github.com/recruitflow/pipeline/internal/core"
)

// Job Orders column order: JOB_ORDER_ID, JOB_TITLE, LOCATION,
// JOB_DESCRIPTION, PERSON_SPECS, SCREENING_QUESTIONS, INTERVIEW_QUESTIONS,
// FINAL_QUESTIONS.
const jobOrdersRange = jobOrdersSheet + "!A2:H"

// JobByOrderID looks a position up in the "Job Orders" sheet. A missing job
// order is returned as (nil, nil): scoring falls back to a generic position
// rather than failing the callback.
func (s *Store) JobByOrderID(ctx context.Context, jobOrderID string) (*core.JobDetails, error) {
	if jobOrderID == "" {
		return nil, nil
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, jobOrdersRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read job orders: %w", err)
	}

	for _, row := range resp.Values {
		if len(row) == 0 || cellString(row, 0) != jobOrderID {
			continue
		}
		return &core.JobDetails{
			JobOrderID:         jobOrderID,
			JobTitle:           cellString(row, 1),
			Location:           cellString(row, 2),
			JobDescription:     cellString(row, 3),
			PersonSpecs:        cellString(row, 4),
			ScreeningQuestions: cellString(row, 5),
			InterviewQuestions: cellString(row, 6),
			FinalQuestions:     cellString(row, 7),
		}, nil
	}

	s.logger.Warn("job order not found", "job_order_id", jobOrderID)
	return nil, nil
}

func cellString(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return s
	}
	return fmt.Sprint(row[i])
}

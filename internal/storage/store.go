// Package storage persists the callback audit trail.
package storage

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/recruitflow/pipeline/internal/core"
)

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates an audit store backed by Postgres.
func NewStore(db *sqlx.DB) core.AuditStore {
	return &postgresStore{db: db}
}

// SaveCallback inserts one processed-callback record.
func (s *postgresStore) SaveCallback(ctx context.Context, rec *core.AuditRecord) error {
	query := `INSERT INTO callback_audit
		(agent, row_number, candidate_name, conversation_id, score, transcript_chars, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, query,
		rec.Agent, rec.RowNumber, rec.CandidateName, rec.ConversationID,
		rec.Score, rec.TranscriptLength, time.Now())
	return err
}

type nopStore struct{}

// NewNopStore returns an audit store that records nothing; used when no
// database is configured.
func NewNopStore() core.AuditStore {
	return nopStore{}
}

func (nopStore) SaveCallback(context.Context, *core.AuditRecord) error { return nil }

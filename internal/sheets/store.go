// Package sheets is the spreadsheet-backed datastore shared by all pipeline
// stages. The "Call Queue" sheet holds one row per candidate and is the only
// correlation point between stages; "Job Orders" holds the open positions and
// their question banks.
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	callQueueSheet = "Call Queue"
	jobOrdersSheet = "Job Orders"

	// cellLimit is the provider's cell-size cap. Transcripts are truncated to
	// fit; everything past the limit is lost, which beats a failed write.
	cellLimit = 30000
)

// Store reads and writes the recruitment spreadsheet.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
	logger        *slog.Logger
}

// NewStore creates a Store authenticated with a service-account key file.
func NewStore(ctx context.Context, credentialsFile, spreadsheetID string, logger *slog.Logger) (*Store, error) {
	key, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key: %w", err)
	}
	jwtConf, err := google.JWTConfigFromJSON(key, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithTokenSource(jwtConf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return NewStoreWithService(svc, spreadsheetID, logger), nil
}

// NewStoreWithService wraps an existing sheets service; used by tests.
func NewStoreWithService(svc *gsheets.Service, spreadsheetID string, logger *slog.Logger) *Store {
	return &Store{svc: svc, spreadsheetID: spreadsheetID, logger: logger}
}

// WriteResult overwrites the given column span at the given row of the
// "Call Queue" sheet. The sheet API performs blind range overwrites with no
// concurrency check, so the span must match the agent's layout exactly.
func (s *Store) WriteResult(ctx context.Context, row int, a1Range string, values []any) error {
	if row < 1 {
		return fmt.Errorf("invalid row number: %d", row)
	}

	truncated := make([]any, len(values))
	for i, v := range values {
		if str, ok := v.(string); ok {
			truncated[i] = truncateCell(str)
		} else {
			truncated[i] = v
		}
	}

	rng, err := rowRange(a1Range, row)
	if err != nil {
		return err
	}

	vr := &gsheets.ValueRange{Values: [][]any{truncated}}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", rng, err)
	}

	s.logger.Info("call result written", "range", rng)
	return nil
}

// FindRow scans a full column of the "Call Queue" sheet for a matching value
// and returns its 1-based row, or 0 when absent.
func (s *Store) FindRow(ctx context.Context, column, key string) (int, error) {
	rng := fmt.Sprintf("%s!%s:%s", callQueueSheet, column, column)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read column %s: %w", column, err)
	}

	for i, rowVals := range resp.Values {
		if len(rowVals) == 0 {
			continue
		}
		if cell, ok := rowVals[0].(string); ok && strings.TrimSpace(cell) == key {
			return i + 1, nil
		}
	}
	return 0, nil
}

// AppendRow adds a new row at the bottom of the "Call Queue" sheet.
func (s *Store) AppendRow(ctx context.Context, values []any) error {
	truncated := make([]any, len(values))
	for i, v := range values {
		if str, ok := v.(string); ok {
			truncated[i] = truncateCell(str)
		} else {
			truncated[i] = v
		}
	}

	vr := &gsheets.ValueRange{Values: [][]any{truncated}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, callQueueSheet+"!A:A", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}

// truncateCell caps a value at the provider's cell-size limit, backing off
// to a rune boundary so a multi-byte character is never split.
func truncateCell(s string) string {
	if len(s) <= cellLimit {
		return s
	}
	cut := cellLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// rowRange pins a column span like "H:J" to a single row, producing
// "Call Queue!H7:J7".
func rowRange(a1Range string, row int) (string, error) {
	parts := strings.Split(a1Range, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("invalid column range %q", a1Range)
	}
	return fmt.Sprintf("%s!%s%d:%s%d", callQueueSheet, parts[0], row, parts[1], row), nil
}

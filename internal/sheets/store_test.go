package sheets

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

func TestRowRange(t *testing.T) {
	tests := []struct {
		a1Range string
		row     int
		want    string
		wantErr bool
	}{
		{"H:J", 7, "Call Queue!H7:J7", false},
		{"Q:Q", 12, "Call Queue!Q12:Q12", false},
		{"L:M", 1, "Call Queue!L1:M1", false},
		{"H", 7, "", true},
		{":J", 7, "", true},
	}
	for _, tt := range tests {
		got, err := rowRange(tt.a1Range, tt.row)
		if (err != nil) != tt.wantErr {
			t.Errorf("rowRange(%q, %d) error = %v, wantErr %v", tt.a1Range, tt.row, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("rowRange(%q, %d) = %q, want %q", tt.a1Range, tt.row, got, tt.want)
		}
	}
}

func TestTruncateCell(t *testing.T) {
	short := "hello"
	if got := truncateCell(short); got != short {
		t.Errorf("short value changed: %q", got)
	}

	long := strings.Repeat("x", cellLimit+500)
	got := truncateCell(long)
	if len(got) != cellLimit {
		t.Errorf("len = %d, want %d", len(got), cellLimit)
	}
}

func TestTruncateCellKeepsRunesWhole(t *testing.T) {
	// A two-byte rune straddling the limit must be dropped entirely, not
	// split into a mangled trailing byte.
	long := strings.Repeat("x", cellLimit-1) + "é" + strings.Repeat("y", 100)
	got := truncateCell(long)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated value is not valid UTF-8")
	}
	if len(got) != cellLimit-1 {
		t.Errorf("len = %d, want %d", len(got), cellLimit-1)
	}
	if !strings.HasSuffix(got, "x") {
		t.Errorf("unexpected trailing byte %q", got[len(got)-1])
	}
}

// fakeSheetsServer is an in-memory Values API good enough for update/get.
func fakeSheetsServer(t *testing.T) (*httptest.Server, map[string][][]any) {
	t.Helper()
	cells := map[string][][]any{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Path shape: /v4/spreadsheets/{id}/values/{range}
		parts := strings.SplitN(r.URL.Path, "/values/", 2)
		if len(parts) != 2 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		rng := strings.TrimSuffix(parts[1], ":append")

		switch r.Method {
		case http.MethodPut, http.MethodPost:
			var vr gsheets.ValueRange
			if err := json.NewDecoder(r.Body).Decode(&vr); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			cells[rng] = vr.Values
			_ = json.NewEncoder(w).Encode(map[string]any{"updatedRange": rng})
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(gsheets.ValueRange{Values: cells[rng]})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, cells
}

func newTestStore(t *testing.T, srvURL string) *Store {
	t.Helper()
	svc, err := gsheets.NewService(context.Background(),
		option.WithEndpoint(srvURL),
		option.WithoutAuthentication(),
	)
	if err != nil {
		t.Fatalf("failed to create sheets service: %v", err)
	}
	return NewStoreWithService(svc, "sheet-1", slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func TestWriteResultRoundTrip(t *testing.T) {
	srv, cells := fakeSheetsServer(t)
	store := newTestStore(t, srv.URL)

	long := strings.Repeat("t", cellLimit+100)
	err := store.WriteResult(context.Background(), 7, "H:J", []any{long, "PASS", "strong call"})
	if err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	got, ok := cells["Call Queue!H7:J7"]
	if !ok || len(got) != 1 {
		t.Fatalf("no row written, cells = %v", keysOf(cells))
	}
	// Transcript over the cell limit is stored truncated, the rest unchanged.
	if len(got[0][0].(string)) != cellLimit {
		t.Errorf("transcript length = %d, want %d", len(got[0][0].(string)), cellLimit)
	}
	if got[0][1] != "PASS" || got[0][2] != "strong call" {
		t.Errorf("row = %v", got[0])
	}
}

func TestWriteResultRejectsBadRow(t *testing.T) {
	srv, _ := fakeSheetsServer(t)
	store := newTestStore(t, srv.URL)

	if err := store.WriteResult(context.Background(), 0, "H:J", []any{"x"}); err == nil {
		t.Error("expected error for row 0")
	}
}

func TestFindRow(t *testing.T) {
	srv, cells := fakeSheetsServer(t)
	cells["Call Queue!B:B"] = [][]any{
		{"PHONE"},
		{"+441110000000"},
		{"+447700900000"},
	}
	store := newTestStore(t, srv.URL)

	row, err := store.FindRow(context.Background(), "B", "+447700900000")
	if err != nil {
		t.Fatalf("FindRow() error = %v", err)
	}
	if row != 3 {
		t.Errorf("row = %d, want 3", row)
	}

	row, err = store.FindRow(context.Background(), "B", "+449999999999")
	if err != nil {
		t.Fatalf("FindRow() error = %v", err)
	}
	if row != 0 {
		t.Errorf("missing key: row = %d, want 0", row)
	}
}

func TestJobByOrderID(t *testing.T) {
	srv, cells := fakeSheetsServer(t)
	cells["Job Orders!A2:H"] = [][]any{
		{"JO-41", "Data Engineer", "Leeds", "ETL pipelines", "SQL, Python", "q1", "q2", "q3"},
		{"JO-42", "Backend Engineer", "London", "Build services", "Go, Postgres", "q1", "q2", "q3"},
	}
	store := newTestStore(t, srv.URL)

	job, err := store.JobByOrderID(context.Background(), "JO-42")
	if err != nil {
		t.Fatalf("JobByOrderID() error = %v", err)
	}
	if job == nil || job.JobTitle != "Backend Engineer" || job.PersonSpecs != "Go, Postgres" {
		t.Errorf("job = %+v", job)
	}

	job, err = store.JobByOrderID(context.Background(), "JO-99")
	if err != nil {
		t.Fatalf("JobByOrderID() error = %v", err)
	}
	if job != nil {
		t.Errorf("missing order should be nil, got %+v", job)
	}
}

func keysOf(m map[string][][]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

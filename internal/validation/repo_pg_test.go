package validation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func sampleRun() Run {
	res := emptyResult()
	res.Warnings = append(res.Warnings, Warning{Category: CategoryGeneral, Message: "no resume text provided, nothing to validate"})
	return Run{
		ID:           uuid.New(),
		TextHash:     "deadbeef",
		TextLength:   42,
		Result:       res,
		IsValid:      true,
		WarningCount: 1,
		CreatedAt:    time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestPGRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	run := sampleRun()
	payload, err := json.Marshal(run.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	mock.ExpectExec("INSERT INTO validation_runs").
		WithArgs(run.ID, run.TextHash, run.TextLength, payload, run.IsValid, run.IssueCount, run.WarningCount, run.SuggestionCount, run.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Insert(context.Background(), run); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	run := sampleRun()
	payload, err := json.Marshal(run.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "text_hash", "text_length", "result", "is_valid", "issue_count", "warning_count", "suggestion_count", "created_at",
	}).AddRow(run.ID, run.TextHash, run.TextLength, payload, run.IsValid, run.IssueCount, run.WarningCount, run.SuggestionCount, run.CreatedAt)
	mock.ExpectQuery("SELECT id, text_hash").WithArgs(run.ID).WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.Get(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TextHash != run.TextHash || len(got.Result.Warnings) != 1 {
		t.Fatalf("got = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, text_hash").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "text_hash", "text_length", "result", "is_valid", "issue_count", "warning_count", "suggestion_count", "created_at",
		}))

	repo := &PGRepo{DB: db}
	if _, err := repo.Get(context.Background(), uuid.New()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	run := sampleRun()
	payload, err := json.Marshal(run.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "text_hash", "text_length", "result", "is_valid", "issue_count", "warning_count", "suggestion_count", "created_at",
	}).AddRow(run.ID, run.TextHash, run.TextLength, payload, run.IsValid, run.IssueCount, run.WarningCount, run.SuggestionCount, run.CreatedAt)
	mock.ExpectQuery("SELECT id, text_hash").WithArgs(20).WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != run.ID {
		t.Fatalf("got = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

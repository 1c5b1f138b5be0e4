package validation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres. The full result is stored as a
// jsonb payload next to denormalized summary columns.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, run Run) error {
	const query = `
INSERT INTO validation_runs (
	id, text_hash, text_length, result, is_valid, issue_count, warning_count, suggestion_count, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	payload, err := json.Marshal(run.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		run.ID,
		run.TextHash,
		run.TextLength,
		payload,
		run.IsValid,
		run.IssueCount,
		run.WarningCount,
		run.SuggestionCount,
		run.CreatedAt,
	)
	return err
}

func (r *PGRepo) Get(ctx context.Context, id uuid.UUID) (Run, error) {
	const query = `
SELECT id, text_hash, text_length, result, is_valid, issue_count, warning_count, suggestion_count, created_at
FROM validation_runs
WHERE id = $1
LIMIT 1`
	var run Run
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.TextHash,
		&run.TextLength,
		&payload,
		&run.IsValid,
		&run.IssueCount,
		&run.WarningCount,
		&run.SuggestionCount,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, err
	}
	if err := json.Unmarshal(payload, &run.Result); err != nil {
		return Run{}, err
	}
	return run, nil
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT id, text_hash, text_length, result, is_valid, issue_count, warning_count, suggestion_count, created_at
FROM validation_runs
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var payload []byte
		if err := rows.Scan(
			&run.ID,
			&run.TextHash,
			&run.TextLength,
			&payload,
			&run.IsValid,
			&run.IssueCount,
			&run.WarningCount,
			&run.SuggestionCount,
			&run.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &run.Result); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

package settings

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo stores the single process-wide config row.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Load(ctx context.Context) (ValidationConfig, error) {
	const query = `
SELECT max_future_education_years, max_future_work_months, enable_typo_detection, confidence_threshold, strict_mode
FROM validation_settings
WHERE id = 1
LIMIT 1`
	var cfg ValidationConfig
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&cfg.MaxFutureEducationYears,
		&cfg.MaxFutureWorkMonths,
		&cfg.EnableTypoDetection,
		&cfg.ConfidenceThreshold,
		&cfg.StrictMode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ValidationConfig{}, ErrNotFound
		}
		return ValidationConfig{}, err
	}
	return cfg, nil
}

func (r *PGRepo) Save(ctx context.Context, cfg ValidationConfig) error {
	const query = `
INSERT INTO validation_settings (id, max_future_education_years, max_future_work_months, enable_typo_detection, confidence_threshold, strict_mode, updated_at)
VALUES (1, $1, $2, $3, $4, $5, now())
ON CONFLICT (id) DO UPDATE SET
  max_future_education_years = EXCLUDED.max_future_education_years,
  max_future_work_months = EXCLUDED.max_future_work_months,
  enable_typo_detection = EXCLUDED.enable_typo_detection,
  confidence_threshold = EXCLUDED.confidence_threshold,
  strict_mode = EXCLUDED.strict_mode,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		cfg.MaxFutureEducationYears,
		cfg.MaxFutureWorkMonths,
		cfg.EnableTypoDetection,
		cfg.ConfidenceThreshold,
		cfg.StrictMode,
	)
	return err
}

func (r *PGRepo) Delete(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM validation_settings WHERE id = 1`)
	return err
}

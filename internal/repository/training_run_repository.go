package repository

import (
	"database/sql"
	"fmt"

	"github.com/capitolstays/valuation-backend-go/internal/models"
)

// TrainingRunRepository handles database operations for training runs
type TrainingRunRepository struct {
	db *sql.DB
}

// NewTrainingRunRepository creates a new training run repository
func NewTrainingRunRepository(db *sql.DB) *TrainingRunRepository {
	return &TrainingRunRepository{db: db}
}

// Create records a completed training run.
func (r *TrainingRunRepository) Create(run *models.TrainingRun) error {
	query := `
		INSERT INTO training_runs (
			id, seed, tree_count, train_samples, test_samples,
			mae, rmse, r2, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.Seed,
		run.TreeCount,
		run.TrainSamples,
		run.TestSamples,
		run.MAE,
		run.RMSE,
		run.R2,
		run.DurationMs,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create training run: %w", err)
	}

	return nil
}

// List retrieves training runs, newest first.
func (r *TrainingRunRepository) List(limit int) ([]models.TrainingRun, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, seed, tree_count, train_samples, test_samples,
			   mae, rmse, r2, duration_ms, created_at
		FROM training_runs
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query training runs: %w", err)
	}
	defer rows.Close()

	var runs []models.TrainingRun
	for rows.Next() {
		var run models.TrainingRun
		if err := rows.Scan(
			&run.ID, &run.Seed, &run.TreeCount, &run.TrainSamples, &run.TestSamples,
			&run.MAE, &run.RMSE, &run.R2, &run.DurationMs, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan training run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

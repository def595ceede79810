// internal/training/runstore/store.go
package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TrainingRun is one recorded training execution.
type TrainingRun struct {
	ID              string    `json:"id"`
	Version         string    `json:"version"`
	TrainAccuracy   float64   `json:"train_accuracy"`
	TestAccuracy    float64   `json:"test_accuracy"`
	TrainingSamples int       `json:"training_samples"`
	CareerCount     int       `json:"career_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Store keeps a history of training runs in postgres so operators can track
// model lineage across retrains.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the training_runs table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS training_runs (
			id UUID PRIMARY KEY,
			version TEXT NOT NULL,
			train_accuracy DOUBLE PRECISION NOT NULL,
			test_accuracy DOUBLE PRECISION NOT NULL,
			training_samples INTEGER NOT NULL,
			career_count INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure training_runs schema: %w", err)
	}
	return nil
}

// Record inserts a run and returns it with its assigned id and timestamp.
func (s *Store) Record(ctx context.Context, run TrainingRun) (TrainingRun, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO training_runs (id, version, train_accuracy, test_accuracy, training_samples, career_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID, run.Version, run.TrainAccuracy, run.TestAccuracy, run.TrainingSamples, run.CareerCount, run.CreatedAt)
	if err != nil {
		return TrainingRun{}, fmt.Errorf("record training run: %w", err)
	}
	return run, nil
}

// Latest returns the most recent run, or sql.ErrNoRows if none exist.
func (s *Store) Latest(ctx context.Context) (TrainingRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, version, train_accuracy, test_accuracy, training_samples, career_count, created_at
		FROM training_runs
		ORDER BY created_at DESC
		LIMIT 1`)

	var run TrainingRun
	err := row.Scan(&run.ID, &run.Version, &run.TrainAccuracy, &run.TestAccuracy,
		&run.TrainingSamples, &run.CareerCount, &run.CreatedAt)
	if err != nil {
		return TrainingRun{}, err
	}
	return run, nil
}

package repository

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fraudapi/src/database"
	"fraudapi/src/faults"
	"fraudapi/src/model"
)

// PredictionLogRepository handles the append-only prediction audit log.
type PredictionLogRepository struct {
	db *gorm.DB
}

// NewPredictionLogRepository creates a repository bound to the main
// read/write database.
func NewPredictionLogRepository() *PredictionLogRepository {
	logger.WithField("component", "PredictionLogRepository").
		Info("Creating new PredictionLogRepository with MainDB")

	return &PredictionLogRepository{
		db: database.MainDB,
	}
}

// WithDB allows overriding the underlying *gorm.DB instance.
// Useful for tests or when using a specific session/transaction.
func (r *PredictionLogRepository) WithDB(db *gorm.DB) *PredictionLogRepository {
	return &PredictionLogRepository{db: db}
}

// Append persists one log entry inside a scoped transaction: commit on
// success, rollback on any failure. The entry comes back with the
// database-assigned identifier and timestamp populated. Identifier
// uniqueness and monotonicity come from the database sequence, so
// concurrent appends are safe.
func (r *PredictionLogRepository) Append(
	ctx context.Context,
	entry *model.PredictionLog,
) error {

	logger.WithFields(map[string]interface{}{
		"repo":       "PredictionLogRepository",
		"op":         "Append",
		"prediction": entry.Prediction,
	}).Debug("Appending prediction log entry")

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "PredictionLogRepository",
			"op":   "Append",
		}).WithError(err).Error("Failed to append prediction log entry")

		return faults.New(faults.Persistence, "repository.Append", err)
	}

	logger.WithFields(map[string]interface{}{
		"repo":   "PredictionLogRepository",
		"op":     "Append",
		"log_id": entry.ID,
	}).Info("Prediction log entry appended")

	return nil
}

// ListAll returns the full history ordered by identifier descending
// (newest first). No pagination or filtering.
func (r *PredictionLogRepository) ListAll(
	ctx context.Context,
) ([]model.PredictionLog, error) {

	logger.WithFields(map[string]interface{}{
		"repo": "PredictionLogRepository",
		"op":   "ListAll",
	}).Debug("Fetching prediction log history")

	var entries []model.PredictionLog

	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&entries).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "PredictionLogRepository",
			"op":   "ListAll",
		}).WithError(err).Error("Failed to fetch prediction log history")

		return nil, faults.New(faults.Persistence, "repository.ListAll", err)
	}

	logger.WithFields(map[string]interface{}{
		"repo":        "PredictionLogRepository",
		"op":          "ListAll",
		"rows_return": len(entries),
	}).Info("Prediction log history fetched")

	return entries, nil
}

package model

import "time"

// PredictionLog is the immutable audit record of one scoring request.
// Rows are written once inside a transaction and never updated or
// deleted; the identifier is assigned by the database sequence.
type PredictionLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Raw request snapshot as submitted (not the expanded feature row)
	InputData string `gorm:"type:text;not null" json:"input_data"`

	// Scoring outcome
	Prediction  int     `gorm:"not null" json:"prediction"`
	Probability float64 `gorm:"not null" json:"probability"`
	FraudLikely bool    `gorm:"not null" json:"fraud_likely"`

	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName keeps the table name aligned with the original schema.
func (PredictionLog) TableName() string {
	return "prediction_logs"
}

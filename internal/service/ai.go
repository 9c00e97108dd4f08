package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// PredictedCategory is a classifier suggestion for a transaction description.
type PredictedCategory struct {
	CategoryID uuid.UUID
	Confidence float64
}

// CategoryPredictor is the external classifier collaborator. Predictions are
// advisory only; the engine never applies one without the caller recording
// the transaction itself.
type CategoryPredictor interface {
	Predict(ctx context.Context, description string, contextCategories map[uuid.UUID]string) (PredictedCategory, error)
}

// Insight is one generated observation about spending.
type Insight struct {
	Type string
	Text string
}

// InsightSummarizer is the external text-summarizer collaborator, consumed
// for display only.
type InsightSummarizer interface {
	Summarize(ctx context.Context, spendingSummary string) ([]Insight, error)
}

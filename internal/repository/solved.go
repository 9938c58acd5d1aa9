package repository

import (
	"context"

	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

func CreateSolvedQuestion(ctx context.Context, solved *models.SolvedQuestion) error {
	return database.DB.WithContext(ctx).Create(solved).Error
}

// GetRecentSolved fetches a user's individually answered questions
// newest-first, bounded by the configured cap and the optional time range.
// These rows are the aggregator's fallback when sessions lack topic-level
// breakdowns, so they must honor the same range the session query does or
// the fallback would mix activity from outside the requested window.
func GetRecentSolved(ctx context.Context, userID, cap int, tr TimeRange) ([]models.SolvedQuestion, error) {
	q := database.DB.WithContext(ctx).Where("user_id = ?", userID)
	if !tr.From.IsZero() {
		q = q.Where("solved_at >= ?", tr.From)
	}
	if !tr.To.IsZero() {
		q = q.Where("solved_at < ?", tr.To)
	}
	var solved []models.SolvedQuestion
	err := q.Order("solved_at DESC").Limit(cap).Find(&solved).Error
	return solved, err
}

package repository

import (
	"context"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
)

type TimelineDataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// GetScoreTimeline returns a user's session scores over time for the
// dashboard's line chart.
func GetScoreTimeline(ctx context.Context, userID int) ([]TimelineDataPoint, error) {
	var data []TimelineDataPoint
	err := database.DB.WithContext(ctx).Raw(`
		SELECT started_at AS date, score AS value
		FROM sessions
		WHERE user_id = ?
		ORDER BY started_at;
	`, userID).Scan(&data).Error
	return data, err
}

type AccuracyDataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// GetAccuracyTimeline returns per-session accuracy so the dashboard can
// overlay accuracy against raw score. Sessions with no questions are
// excluded rather than plotted as zero.
func GetAccuracyTimeline(ctx context.Context, userID int) ([]AccuracyDataPoint, error) {
	var data []AccuracyDataPoint
	err := database.DB.WithContext(ctx).Raw(`
		SELECT
			started_at AS date,
			ROUND(correct_count::numeric / total_questions * 100) AS value
		FROM sessions
		WHERE user_id = ? AND total_questions > 0
		ORDER BY started_at;
	`, userID).Scan(&data).Error
	return data, err
}

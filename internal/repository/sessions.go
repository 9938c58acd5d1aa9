package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
	"github.com/InshiyaRavat/question-bank-sub002/internal/report"
)

// TimeRange bounds a session query. A zero From or To leaves that side
// open.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// RangeForFilter translates a report endpoint's timeFilter query into a
// concrete range. "specific" needs month ("YYYY-MM") or year ("YYYY"); an
// unusable combination is a validation error for the caller to surface as
// a 400.
func RangeForFilter(filter, month, year string, now time.Time) (TimeRange, error) {
	switch filter {
	case "", report.TimeFilterAll:
		return TimeRange{}, nil
	case report.TimeFilterWeek:
		return TimeRange{From: now.AddDate(0, 0, -7)}, nil
	case report.TimeFilterMonth:
		return TimeRange{From: now.AddDate(0, -1, 0)}, nil
	case report.TimeFilterYear:
		return TimeRange{From: now.AddDate(-1, 0, 0)}, nil
	case report.TimeFilterSpecific:
		if month != "" {
			start, err := time.Parse("2006-01", month)
			if err != nil {
				return TimeRange{}, fmt.Errorf("invalid month %q, want YYYY-MM", month)
			}
			return TimeRange{From: start, To: start.AddDate(0, 1, 0)}, nil
		}
		if year != "" {
			start, err := time.Parse("2006", year)
			if err != nil {
				return TimeRange{}, fmt.Errorf("invalid year %q, want YYYY", year)
			}
			return TimeRange{From: start, To: start.AddDate(1, 0, 0)}, nil
		}
		return TimeRange{}, fmt.Errorf("timeFilter=specific requires month or year")
	default:
		return TimeRange{}, fmt.Errorf("unknown timeFilter %q", filter)
	}
}

func CreateSession(ctx context.Context, session *models.Session) error {
	return database.DB.WithContext(ctx).Create(session).Error
}

// GetRecentSessions fetches a user's completed sessions newest-first,
// bounded by the configured cap and the optional time range.
func GetRecentSessions(ctx context.Context, userID, cap int, tr TimeRange) ([]models.Session, error) {
	q := database.DB.WithContext(ctx).Where("user_id = ?", userID)
	if !tr.From.IsZero() {
		q = q.Where("started_at >= ?", tr.From)
	}
	if !tr.To.IsZero() {
		q = q.Where("started_at < ?", tr.To)
	}
	var sessions []models.Session
	err := q.Order("started_at DESC").Limit(cap).Find(&sessions).Error
	return sessions, err
}

// HasCompletedSessionToday reports whether a user finished any session on
// the current UTC day. Used by the study-reminder scheduler to skip users
// who already practiced.
func HasCompletedSessionToday(userID int) (bool, error) {
	var count int64
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	err := database.DB.Model(&models.Session{}).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, today, tomorrow).
		Count(&count).Error

	return count > 0, err
}

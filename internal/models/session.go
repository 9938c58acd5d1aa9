package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is one completed test attempt. Immutable once created; the
// test-taking flow writes it and the report pipeline only reads it.
//
// TopicStats holds the per-topic breakdown as a JSON map keyed by the
// stringified topic id: {"12": {"correct": 3, "wrong": 1, "total": 4}}.
// Older rows may carry an empty object; the aggregator falls back to
// solved-question rows in that case.
type Session struct {
	ID             int `gorm:"primaryKey"`
	UserID         int `gorm:"index"`
	User           User `gorm:"foreignKey:UserID"`
	StartedAt      time.Time
	CompletedAt    time.Time
	TotalQuestions int
	CorrectCount   int
	IncorrectCount int
	Score          float64
	TestType       string
	TopicStats     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
}

// SolvedQuestion is one individually answered question instance,
// independent of which session produced it.
type SolvedQuestion struct {
	ID         int `gorm:"primaryKey"`
	UserID     int `gorm:"index"`
	QuestionID int
	Question   Question `gorm:"foreignKey:QuestionID"`
	TopicID    int
	IsCorrect  bool
	SolvedAt   time.Time
}

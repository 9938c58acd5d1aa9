package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Question carries gorm.Model so deletes are soft; trashed questions keep
// their deleted_at until an admin restores or purges them.
type Question struct {
	gorm.Model
	TopicID      int
	Topic        Topic `gorm:"foreignKey:TopicID"`
	Text         string
	Options      pq.StringArray `gorm:"type:text[]"`
	CorrectIndex int
	Explanation  string

	Flagged    bool
	FlagReason string
}

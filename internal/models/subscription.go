package models

import "time"

type Subscription struct {
	ID        int `gorm:"primaryKey"`
	UserID    int `gorm:"index"`
	User      User `gorm:"foreignKey:UserID"`
	Plan      string
	Status    string // active, cancelled, expired
	StartedAt time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}

package models

import "time"

type Subject struct {
	ID        int `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Topic struct {
	ID        int `gorm:"primaryKey"`
	SubjectID int
	Subject   Subject `gorm:"foreignKey:SubjectID"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

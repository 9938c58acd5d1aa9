package repository

import (
	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

// GetUsersForStudyReminder finds users who have study reminders enabled for
// a specific UTC time.
func GetUsersForStudyReminder(reminderTime string) ([]models.User, error) {
	var users []models.User
	err := database.DB.Where("email_notifications_enabled = ? AND reminder_time = ?", true, reminderTime).Find(&users).Error
	return users, err
}

// UpdateNotificationPreferences updates a user's reminder settings.
func UpdateNotificationPreferences(userID int, enabled bool, reminderTime, timezone string) error {
	return database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"email_notifications_enabled": enabled,
		"reminder_time":               reminderTime,
		"time_zone":                   timezone,
	}).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

// CreateSubscription records a plan grant and moves the user onto the plan
// in the same transaction.
func CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", sub.UserID).
			Update("plan", sub.Plan).Error
	})
}

// ListSubscriptionsByUser returns a user's subscription history newest-first
// for the report PDF's subscription section. A user with no rows yields an
// empty slice, which the renderer drops.
func ListSubscriptionsByUser(ctx context.Context, userID int) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&subs).Error
	return subs, err
}

package repository

import (
	"context"

	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

func CreateQuestion(ctx context.Context, q *models.Question) error {
	return database.DB.WithContext(ctx).Create(q).Error
}

func GetQuestionByID(ctx context.Context, id uint) (*models.Question, error) {
	var q models.Question
	result := database.DB.WithContext(ctx).Preload("Topic").First(&q, id)
	return &q, result.Error
}

func ListQuestionsByTopic(ctx context.Context, topicID int) ([]models.Question, error) {
	var questions []models.Question
	err := database.DB.WithContext(ctx).Where("topic_id = ?", topicID).Order("id").Find(&questions).Error
	return questions, err
}

func UpdateQuestion(ctx context.Context, id uint, fields map[string]interface{}) error {
	return database.DB.WithContext(ctx).Model(&models.Question{}).Where("id = ?", id).Updates(fields).Error
}

// TrashQuestion soft-deletes; the row keeps its deleted_at until an admin
// restores or purges it.
func TrashQuestion(ctx context.Context, id uint) error {
	return database.DB.WithContext(ctx).Delete(&models.Question{}, id).Error
}

func ListTrashedQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := database.DB.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&questions).Error
	return questions, err
}

func RestoreQuestion(ctx context.Context, id uint) error {
	return database.DB.WithContext(ctx).Unscoped().Model(&models.Question{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

// PurgeQuestion permanently removes a trashed question.
func PurgeQuestion(ctx context.Context, id uint) error {
	return database.DB.WithContext(ctx).Unscoped().Delete(&models.Question{}, id).Error
}

func FlagQuestion(ctx context.Context, id uint, reason string) error {
	return database.DB.WithContext(ctx).Model(&models.Question{}).Where("id = ?", id).Updates(map[string]interface{}{
		"flagged":     true,
		"flag_reason": reason,
	}).Error
}

func ResolveFlag(ctx context.Context, id uint) error {
	return database.DB.WithContext(ctx).Model(&models.Question{}).Where("id = ?", id).Updates(map[string]interface{}{
		"flagged":     false,
		"flag_reason": "",
	}).Error
}

func ListFlaggedQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := database.DB.WithContext(ctx).Preload("Topic").
		Where("flagged = ?", true).
		Order("updated_at DESC").
		Find(&questions).Error
	return questions, err
}

package repository

import (
	"context"

	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

func ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := database.DB.WithContext(ctx).Order("name").Find(&subjects).Error
	return subjects, err
}

func CreateSubject(ctx context.Context, subject *models.Subject) error {
	return database.DB.WithContext(ctx).Create(subject).Error
}

func DeleteSubject(ctx context.Context, id int) error {
	return database.DB.WithContext(ctx).Delete(&models.Subject{}, id).Error
}

// GetAllTopics returns every topic ordered by id; the aggregator uses this
// as the universe for the topics-left-to-do complement.
func GetAllTopics(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	err := database.DB.WithContext(ctx).Order("id").Find(&topics).Error
	return topics, err
}

func ListTopicsBySubject(ctx context.Context, subjectID int) ([]models.Topic, error) {
	var topics []models.Topic
	err := database.DB.WithContext(ctx).Where("subject_id = ?", subjectID).Order("name").Find(&topics).Error
	return topics, err
}

func CreateTopic(ctx context.Context, topic *models.Topic) error {
	return database.DB.WithContext(ctx).Create(topic).Error
}

func UpdateTopic(ctx context.Context, id int, name string) error {
	return database.DB.WithContext(ctx).Model(&models.Topic{}).Where("id = ?", id).Update("name", name).Error
}

func DeleteTopic(ctx context.Context, id int) error {
	return database.DB.WithContext(ctx).Delete(&models.Topic{}, id).Error
}

package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/InshiyaRavat/question-bank-sub002/internal/config"
	"github.com/InshiyaRavat/question-bank-sub002/internal/database"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetSetting(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	err := database.DB.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func SetSetting(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return database.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// GetAccuracyThreshold reads the configured accuracy threshold from the
// settings table. An absent key is not an error; the configured default
// applies silently. A value that does not parse as an integer is treated
// the same way.
func GetAccuracyThreshold(ctx context.Context) (int, error) {
	fallback := config.Conf.Report.DefaultAccuracyThreshold

	value, err := GetSetting(ctx, models.SettingAccuracyThreshold)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}

	threshold, err := strconv.Atoi(value)
	if err != nil {
		return fallback, nil
	}
	return threshold, nil
}

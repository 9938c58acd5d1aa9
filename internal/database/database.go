package database

import (
	"fmt"

	"github.com/InshiyaRavat/question-bank-sub002/internal/config"
	logging "github.com/InshiyaRavat/question-bank-sub002/internal/logging"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Topic{},
		&models.Question{},
		&models.Session{},
		&models.SolvedQuestion{},
		&models.Subscription{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// The report queries fetch the latest N sessions and solved rows per
	// user; these indexes keep those scans off a seq scan.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_started ON sessions (user_id, started_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_solved_user_solved ON solved_questions (user_id, solved_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_flagged ON questions (flagged) WHERE flagged = true;`,
	}
	for _, stmt := range indexes {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatal("Failed to create custom index", zap.Error(err), zap.String("sql", stmt))
		}
	}
	log.Info("Custom indexes ensured successfully.")
}

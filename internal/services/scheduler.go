package services

import (
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
	"github.com/InshiyaRavat/question-bank-sub002/internal/repository"

	"go.uber.org/zap"
)

type Scheduler struct {
	log          *zap.Logger
	emailService *EmailService
}

func NewScheduler(log *zap.Logger, emailService *EmailService) *Scheduler {
	return &Scheduler{
		log:          log,
		emailService: emailService,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting study reminder scheduler...")
	go func() {
		// Ticker will fire on every minute.
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	// Get current time in UTC, formatted as HH:MM
	currentTime := time.Now().UTC().Format("15:04")
	s.log.Debug("Running study reminder check", zap.String("utc_time", currentTime))

	// Reminder times are stored in UTC, so this matches directly.
	users, err := repository.GetUsersForStudyReminder(currentTime)
	if err != nil {
		s.log.Error("Failed to get users for study reminder", zap.Error(err))
		return
	}

	for _, user := range users {
		completed, err := repository.HasCompletedSessionToday(user.ID)
		if err != nil {
			s.log.Error("Failed to check session completion status", zap.Int("userID", user.ID), zap.Error(err))
			continue
		}

		if !completed {
			go s.sendReminder(user)
		}
	}
}

func (s *Scheduler) sendReminder(user models.User) {
	s.emailService.SendStudyReminderEmail(user)
}

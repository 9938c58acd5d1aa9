package services

import (
	"fmt"

	"github.com/InshiyaRavat/question-bank-sub002/internal/models"

	"go.uber.org/zap"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendStudyReminderEmail simulates sending a study reminder email.
func (s *EmailService) SendStudyReminderEmail(user models.User) {
	s.log.Info("Sending study reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.FirstName),
	)
	// In a real application, you would use an SMTP client like go-mail
	// to send a templated HTML email here.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Keep your study streak going\nHi %s,\nYou haven't completed a practice session today. A short session now keeps your topics fresh.\n\n", user.Email, user.FirstName)
}

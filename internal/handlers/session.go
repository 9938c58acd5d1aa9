package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
	"github.com/InshiyaRavat/question-bank-sub002/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler records completed test attempts and individually solved
// questions, the raw inputs of the report pipeline.
type SessionHandler struct {
	log *zap.Logger
}

func NewSessionHandler(log *zap.Logger) *SessionHandler {
	return &SessionHandler{log: log}
}

type topicStatEntry struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
	Total   int `json:"total"`
}

type sessionRequest struct {
	StartedAt      time.Time                 `json:"startedAt" binding:"required"`
	CompletedAt    time.Time                 `json:"completedAt" binding:"required"`
	TotalQuestions int                       `json:"totalQuestions"`
	CorrectCount   int                       `json:"correctCount"`
	IncorrectCount int                       `json:"incorrectCount"`
	Score          float64                   `json:"score"`
	TestType       string                    `json:"testType"`
	TopicStats     map[string]topicStatEntry `json:"topicStats"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startedAt and completedAt are required"})
		return
	}
	if req.CompletedAt.Before(req.StartedAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "completedAt precedes startedAt"})
		return
	}

	stats, err := json.Marshal(req.TopicStats)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed topicStats"})
		return
	}

	session := &models.Session{
		UserID:         user.ID,
		StartedAt:      req.StartedAt,
		CompletedAt:    req.CompletedAt,
		TotalQuestions: req.TotalQuestions,
		CorrectCount:   req.CorrectCount,
		IncorrectCount: req.IncorrectCount,
		Score:          req.Score,
		TestType:       req.TestType,
		TopicStats:     stats,
	}
	if err := repository.CreateSession(c.Request.Context(), session); err != nil {
		h.log.Error("Failed to create session", zap.Error(err), zap.Int("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": session.ID})
}

type solvedRequest struct {
	QuestionID int       `json:"questionId" binding:"required"`
	TopicID    int       `json:"topicId" binding:"required"`
	IsCorrect  *bool     `json:"isCorrect" binding:"required"`
	SolvedAt   time.Time `json:"solvedAt"`
}

func (h *SessionHandler) CreateSolved(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req solvedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionId, topicId and isCorrect are required"})
		return
	}
	solvedAt := req.SolvedAt
	if solvedAt.IsZero() {
		solvedAt = time.Now().UTC()
	}

	solved := &models.SolvedQuestion{
		UserID:     user.ID,
		QuestionID: req.QuestionID,
		TopicID:    req.TopicID,
		IsCorrect:  *req.IsCorrect,
		SolvedAt:   solvedAt,
	}
	if err := repository.CreateSolvedQuestion(c.Request.Context(), solved); err != nil {
		h.log.Error("Failed to record solved question", zap.Error(err),
			zap.Int("user_id", user.ID), zap.Int("question_id", req.QuestionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record answer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": solved.ID})
}

// currentUser returns the user the session middleware loaded, or nil.
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

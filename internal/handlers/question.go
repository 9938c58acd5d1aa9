package handlers

import (
	"net/http"
	"strconv"

	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
	"github.com/InshiyaRavat/question-bank-sub002/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	log *zap.Logger
}

func NewQuestionHandler(log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{log: log}
}

type questionRequest struct {
	TopicID      int      `json:"topicId" binding:"required"`
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

func (h *QuestionHandler) Create(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topicId, text and options are required"})
		return
	}
	if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correctIndex out of range"})
		return
	}

	question := &models.Question{
		TopicID:      req.TopicID,
		Text:         req.Text,
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
		Explanation:  req.Explanation,
	}
	if err := repository.CreateQuestion(c.Request.Context(), question); err != nil {
		h.log.Error("Failed to create question", zap.Error(err), zap.Int("topic_id", req.TopicID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) ListByTopic(c *gin.Context) {
	topicID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}
	questions, err := repository.ListQuestionsByTopic(c.Request.Context(), topicID)
	if err != nil {
		h.log.Error("Failed to list questions", zap.Error(err), zap.Int("topic_id", topicID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := pathQuestionID(c)
	if !ok {
		return
	}
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topicId, text and options are required"})
		return
	}
	if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correctIndex out of range"})
		return
	}

	fields := map[string]interface{}{
		"topic_id":      req.TopicID,
		"text":          req.Text,
		"options":       pq.StringArray(req.Options),
		"correct_index": req.CorrectIndex,
		"explanation":   req.Explanation,
	}
	if err := repository.UpdateQuestion(c.Request.Context(), id, fields); err != nil {
		h.log.Error("Failed to update question", zap.Error(err), zap.Uint("question_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Trash soft-deletes a question; it stays recoverable until purged.
func (h *QuestionHandler) Trash(c *gin.Context) {
	id, ok := pathQuestionID(c)
	if !ok {
		return
	}
	if err := repository.TrashQuestion(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to trash question", zap.Error(err), zap.Uint("question_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to trash question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "trashed"})
}

func (h *QuestionHandler) ListTrash(c *gin.Context) {
	questions, err := repository.ListTrashedQuestions(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list trashed questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trash"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) Restore(c *gin.Context) {
	id, ok := pathQuestionID(c)
	if !ok {
		return
	}
	if err := repository.RestoreQuestion(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to restore question", zap.Error(err), zap.Uint("question_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to restore question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "restored"})
}

func (h *QuestionHandler) Purge(c *gin.Context) {
	id, ok := pathQuestionID(c)
	if !ok {
		return
	}
	if err := repository.PurgeQuestion(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to purge question", zap.Error(err), zap.Uint("question_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to purge question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "purged"})
}

type flagRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *QuestionHandler) Flag(c *gin.Context) {
	id, ok := pathQuestionID(c)
	if !ok {
		return
	}
	var req flagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}
	if _, err := repository.GetQuestionByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	if err := repository.FlagQuestion(c.Request.Context(), id, req.Reason); err != nil {
		h.log.Error("Failed to flag question", zap.Error(err), zap.Uint("question_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to flag question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "flagged"})
}

func (h *QuestionHandler) ListFlagged(c *gin.Context) {
	questions, err := repository.ListFlaggedQuestions(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list flagged questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list flagged questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) ResolveFlag(c *gin.Context) {
	id, ok := pathQuestionID(c)
	if !ok {
		return
	}
	if err := repository.ResolveFlag(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to resolve flag", zap.Error(err), zap.Uint("question_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve flag"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

func pathQuestionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return 0, false
	}
	return uint(id), true
}

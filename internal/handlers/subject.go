package handlers

import (
	"net/http"
	"strconv"

	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
	"github.com/InshiyaRavat/question-bank-sub002/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubjectHandler struct {
	log *zap.Logger
}

func NewSubjectHandler(log *zap.Logger) *SubjectHandler {
	return &SubjectHandler{log: log}
}

func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := repository.ListSubjects(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list subjects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list subjects"})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *SubjectHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	subject := &models.Subject{Name: req.Name}
	if err := repository.CreateSubject(c.Request.Context(), subject); err != nil {
		h.log.Error("Failed to create subject", zap.Error(err), zap.String("name", req.Name))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subject"})
		return
	}
	c.JSON(http.StatusCreated, subject)
}

func (h *SubjectHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}
	if err := repository.DeleteSubject(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete subject", zap.Error(err), zap.Int("subject_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subject"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *SubjectHandler) ListTopics(c *gin.Context) {
	subjectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}
	topics, err := repository.ListTopicsBySubject(c.Request.Context(), subjectID)
	if err != nil {
		h.log.Error("Failed to list topics", zap.Error(err), zap.Int("subject_id", subjectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list topics"})
		return
	}
	c.JSON(http.StatusOK, topics)
}

type topicRequest struct {
	SubjectID int    `json:"subjectId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

func (h *SubjectHandler) CreateTopic(c *gin.Context) {
	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subjectId and name are required"})
		return
	}
	topic := &models.Topic{SubjectID: req.SubjectID, Name: req.Name}
	if err := repository.CreateTopic(c.Request.Context(), topic); err != nil {
		h.log.Error("Failed to create topic", zap.Error(err), zap.Int("subject_id", req.SubjectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create topic"})
		return
	}
	c.JSON(http.StatusCreated, topic)
}

func (h *SubjectHandler) UpdateTopic(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if err := repository.UpdateTopic(c.Request.Context(), id, req.Name); err != nil {
		h.log.Error("Failed to update topic", zap.Error(err), zap.Int("topic_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *SubjectHandler) DeleteTopic(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}
	if err := repository.DeleteTopic(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete topic", zap.Error(err), zap.Int("topic_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

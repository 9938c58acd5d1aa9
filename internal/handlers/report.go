package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/config"
	"github.com/InshiyaRavat/question-bank-sub002/internal/export"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
	"github.com/InshiyaRavat/question-bank-sub002/internal/report"
	"github.com/InshiyaRavat/question-bank-sub002/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	log *zap.Logger
}

func NewReportHandler(log *zap.Logger) *ReportHandler {
	return &ReportHandler{log: log}
}

// buildReport runs the full pipeline for one user: bounded activity
// queries, threshold lookup, then pure aggregation. The sessions used are
// returned alongside so the PDF endpoint can render its history section
// from the same rows.
func (h *ReportHandler) buildReport(c *gin.Context, userID int, now time.Time) (report.Report, []models.Session, int, bool) {
	tr, err := repository.RangeForFilter(
		c.Query("timeFilter"), c.Query("month"), c.Query("year"), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return report.Report{}, nil, 0, false
	}

	caps := config.Conf.Report

	sessions, err := repository.GetRecentSessions(c.Request.Context(), userID, caps.SessionCap, tr)
	if err != nil {
		h.log.Error("Failed to load sessions for report",
			zap.Error(err), zap.Int("user_id", userID), zap.String("time_filter", c.Query("timeFilter")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
		return report.Report{}, nil, 0, false
	}

	solved, err := repository.GetRecentSolved(c.Request.Context(), userID, caps.SolvedCap, tr)
	if err != nil {
		h.log.Error("Failed to load solved questions for report",
			zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
		return report.Report{}, nil, 0, false
	}

	topics, err := repository.GetAllTopics(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load topics for report", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
		return report.Report{}, nil, 0, false
	}

	threshold, err := repository.GetAccuracyThreshold(c.Request.Context())
	if err != nil {
		// The default still applies; log and continue.
		h.log.Warn("Failed to read accuracy threshold setting, using default",
			zap.Error(err), zap.Int("default", threshold))
	}

	rep := report.Aggregate(sessions, solved, topics, threshold, now)
	return rep, sessions, threshold, true
}

// Show handles GET /users/:id/report and returns the normalized JSON
// report plus the threshold it was computed with.
func (h *ReportHandler) Show(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	rep, _, threshold, ok := h.buildReport(c, userID, time.Now().UTC())
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":            rep,
		"accuracyThreshold": threshold,
	})
}

// ShowPDF handles GET /users/:id/report/pdf. It builds sections directly
// from the aggregated report rather than going through the generic
// dispatcher, since the document needs multi-section layout.
func (h *ReportHandler) ShowPDF(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	user, err := repository.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	now := time.Now().UTC()
	rep, sessions, _, ok := h.buildReport(c, userID, now)
	if !ok {
		return
	}

	subs, err := repository.ListSubscriptionsByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load subscriptions for report PDF",
			zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
		return
	}

	sections := report.Sections(rep, sessions, subs)
	meta := export.DocumentMeta{
		Title:        "Performance Report",
		Subtitle:     "Question bank activity summary",
		SubjectName:  user.FullName(),
		SubjectEmail: user.Email,
		GeneratedAt:  now,
		Brand:        config.Conf.Report.BrandLabel,
		Counters:     report.Counters(rep),
	}

	body, err := export.RenderDocument(sections, meta)
	if err != nil {
		h.log.Error("Failed to render report PDF", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	sendAttachment(c, export.Result{
		Body:        body,
		ContentType: "application/pdf",
		Filename:    export.Filename("performance report", now, "pdf"),
	})
}

// ShowCharts handles GET /users/:id/report/charts and returns echarts
// option JSON for the dashboard's score and accuracy timelines.
func (h *ReportHandler) ShowCharts(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	scores, err := repository.GetScoreTimeline(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get score timeline", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chart data"})
		return
	}
	accuracy, err := repository.GetAccuracyTimeline(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get accuracy timeline", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chart data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":    generateTimelineChart(scores, "Score").JSON(),
		"accuracy": generateAccuracyChart(accuracy).JSON(),
	})
}

// pathUserID parses the :id path segment and enforces that a non-admin can
// only read their own report.
func pathUserID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}

	current, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	u := current.(*models.User)
	if u.ID != id && !u.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot access another user's report"})
		return 0, false
	}
	return id, true
}

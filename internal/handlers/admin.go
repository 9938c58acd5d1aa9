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

// AdminHandler serves moderation and platform-wide reporting endpoints.
// The router mounts all of these behind the admin role check.
type AdminHandler struct {
	log *zap.Logger
}

func NewAdminHandler(log *zap.Logger) *AdminHandler {
	return &AdminHandler{log: log}
}

// UsersReportPDF handles GET /admin/users/report/pdf: aggregates every
// user, applies the search/plan/accuracy filters and sort order, then
// renders one consolidated table plus distribution summaries.
func (a *AdminHandler) UsersReportPDF(c *gin.Context) {
	minAccuracy := 0
	if raw := c.Query("accuracy"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "accuracy must be an integer 0-100"})
			return
		}
		minAccuracy = parsed
	}

	users, err := repository.ListUsers(c.Request.Context())
	if err != nil {
		a.log.Error("Failed to list users for admin report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
		return
	}

	topics, err := repository.GetAllTopics(c.Request.Context())
	if err != nil {
		a.log.Error("Failed to load topics for admin report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
		return
	}

	threshold, err := repository.GetAccuracyThreshold(c.Request.Context())
	if err != nil {
		a.log.Warn("Failed to read accuracy threshold setting, using default", zap.Error(err))
	}

	now := time.Now().UTC()
	caps := config.Conf.Report

	summaries := make([]report.UserSummary, 0, len(users))
	for _, u := range users {
		sessions, err := repository.GetRecentSessions(c.Request.Context(), u.ID, caps.SessionCap, repository.TimeRange{})
		if err != nil {
			a.log.Error("Failed to load sessions for admin report",
				zap.Error(err), zap.Int("user_id", u.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
			return
		}
		solved, err := repository.GetRecentSolved(c.Request.Context(), u.ID, caps.SolvedCap, repository.TimeRange{})
		if err != nil {
			a.log.Error("Failed to load solved rows for admin report",
				zap.Error(err), zap.Int("user_id", u.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report data"})
			return
		}

		rep := report.Aggregate(sessions, solved, topics, threshold, now)
		summaries = append(summaries, report.UserSummary{
			UserID:          u.ID,
			Name:            u.FullName(),
			Email:           u.Email,
			Plan:            u.Plan,
			Attempts:        rep.Totals.TotalAttempts,
			Questions:       rep.Totals.TotalQuestionsAttempted,
			AccuracyPercent: rep.Totals.OverallAccuracyPercent,
		})
	}

	summaries = report.FilterUserSummaries(summaries, c.Query("search"), c.Query("plan"), minAccuracy)
	report.SortUserSummaries(summaries, c.Query("sort"))

	sections := report.AdminSections(summaries)
	meta := export.DocumentMeta{
		Title:       "User Performance Report",
		Subtitle:    "All users, aggregated",
		GeneratedAt: now,
		Brand:       config.Conf.Report.BrandLabel,
		Counters: []export.KV{
			{Key: "Users included", Value: strconv.Itoa(len(summaries))},
		},
	}

	body, err := export.RenderDocument(sections, meta)
	if err != nil {
		a.log.Error("Failed to render admin report PDF", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	sendAttachment(c, export.Result{
		Body:        body,
		ContentType: "application/pdf",
		Filename:    export.Filename("user performance report", now, "pdf"),
	})
}

type subscriptionRequest struct {
	Plan      string    `json:"plan" binding:"required"`
	StartedAt time.Time `json:"startedAt"`
	ExpiresAt time.Time `json:"expiresAt" binding:"required"`
}

// CreateSubscription handles POST /admin/users/:id/subscriptions: records a
// plan grant and moves the user onto it. The row feeds the subscription
// history section of the per-user report PDF.
func (a *AdminHandler) CreateSubscription(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan and expiresAt are required"})
		return
	}
	if _, err := repository.GetUserByID(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	started := req.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}
	sub := &models.Subscription{
		UserID:    userID,
		Plan:      req.Plan,
		Status:    "active",
		StartedAt: started,
		ExpiresAt: req.ExpiresAt,
	}
	if err := repository.CreateSubscription(c.Request.Context(), sub); err != nil {
		a.log.Error("Failed to create subscription", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subscription"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sub.ID})
}

// GetAccuracyThreshold handles GET /admin/settings/accuracy-threshold.
func (a *AdminHandler) GetAccuracyThreshold(c *gin.Context) {
	threshold, err := repository.GetAccuracyThreshold(c.Request.Context())
	if err != nil {
		a.log.Warn("Failed to read accuracy threshold setting, using default", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"accuracyThreshold": threshold})
}

type thresholdRequest struct {
	AccuracyThreshold int `json:"accuracyThreshold"`
}

// SetAccuracyThreshold handles PUT /admin/settings/accuracy-threshold.
func (a *AdminHandler) SetAccuracyThreshold(c *gin.Context) {
	var req thresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accuracyThreshold is required"})
		return
	}
	if req.AccuracyThreshold < 0 || req.AccuracyThreshold > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accuracyThreshold must be 0-100"})
		return
	}

	if err := repository.SetSetting(c.Request.Context(), models.SettingAccuracyThreshold, strconv.Itoa(req.AccuracyThreshold)); err != nil {
		a.log.Error("Failed to save accuracy threshold", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accuracyThreshold": req.AccuracyThreshold})
}

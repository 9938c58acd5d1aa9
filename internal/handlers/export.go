package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/config"
	"github.com/InshiyaRavat/question-bank-sub002/internal/export"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler routes generic tabular export requests to the renderer
// matching the requested format. It performs no authorization itself;
// access is gated by the router before this handler runs.
type ExportHandler struct {
	log *zap.Logger
}

func NewExportHandler(log *zap.Logger) *ExportHandler {
	return &ExportHandler{log: log}
}

// Create handles POST /exports. Empty headers or rows still yield a valid
// header-only document; only an unknown type is rejected.
func (h *ExportHandler) Create(c *gin.Context) {
	var req export.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed export request"})
		return
	}

	result, err := export.Render(req, config.Conf.Report.BrandLabel, time.Now().UTC())
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("type must be one of csv, xlsx, pdf; got %q", req.Type)})
			return
		}
		h.log.Error("Export render failed",
			zap.Error(err),
			zap.String("type", req.Type),
			zap.String("title", req.Title),
			zap.Int("rows", len(req.Rows)),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render export"})
		return
	}

	sendAttachment(c, result)
}

// sendAttachment writes a rendered file as a download response.
func sendAttachment(c *gin.Context, result export.Result) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}

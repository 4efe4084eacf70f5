package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/middleware"
	"github.com/nerdtalks/backend/internal/models"
	"github.com/nerdtalks/backend/internal/store"
)

type ReportHandler struct {
	reports store.Reports
	log     *zap.Logger
}

// FileReport files an abuse report against a comment. The reporter is
// the verified identity and the reported content is snapshotted into
// the report.
func (h *ReportHandler) FileReport(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
		return
	}

	var input models.FileReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	report := models.Report{
		Type:            models.ReportTypeComment,
		CommentID:       input.CommentID,
		PostID:          input.PostID,
		ReportedBy:      claims.UID,
		Reason:          input.Reason,
		ContentSnapshot: input.CommentContent,
	}

	if err := h.reports.File(c.Request.Context(), &report); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "report filed successfully",
		"report":  report,
	})
}

// ListReports is the admin view: paginated, optionally filtered by
// status, with filter-scoped totals.
func (h *ReportHandler) ListReports(c *gin.Context) {
	page := store.ParsePage(c.Query("page"), c.Query("limit"), 10)

	result, err := h.reports.List(c.Request.Context(), page, c.Query("status"))
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports":      result.Reports,
		"totalReports": result.Total,
		"totalPages":   result.TotalPages,
		"currentPage":  result.CurrentPage,
	})
}

// SetReportStatus transitions a report to pending, resolved, or
// dismissed.
func (h *ReportHandler) SetReportStatus(c *gin.Context) {
	var input models.SetReportStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.reports.SetStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report status updated"})
}

// DeleteReport removes a report entirely.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.reports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted successfully"})
}

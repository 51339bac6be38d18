package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/models"
)

// ReportHandler handles lesson-report API endpoints.
type ReportHandler struct {
	reportService core.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs core.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// CreateReport handles POST /lessonReports. A second report from the same
// reporter for the same lesson is a 409.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /lessonReports (admin only).
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// UpdateReportStatus handles PATCH /lessonReports/:id (admin only). Only the
// status field is replaced.
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	var req models.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.reportService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "report status updated"})
}

// DeleteReport handles DELETE /lessonReports/:id (admin only).
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.reportService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "report deleted"})
}

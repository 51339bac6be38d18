package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/models"
)

func reportTestRouter(svc core.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewReportHandler(svc)
	reports := router.Group("/lessonReports")
	{
		reports.POST("", h.CreateReport)
		reports.GET("", h.ListReports)
		reports.PATCH("/:id", h.UpdateReportStatus)
		reports.DELETE("/:id", h.DeleteReport)
	}
	return router
}

func TestCreateReportIs201(t *testing.T) {
	svc := &stubReportService{
		create: func(_ context.Context, req models.CreateReportRequest) (*models.LessonReport, error) {
			return &models.LessonReport{
				ID:       req.LessonID + "_" + req.ReporterUserID,
				LessonID: req.LessonID,
				Status:   models.ReportStatusPending,
			}, nil
		},
	}
	router := reportTestRouter(svc)

	rec := postJSON(router, "/lessonReports", models.CreateReportRequest{
		LessonID:       "lesson-1",
		ReporterUserID: "uid-2",
		Reason:         "spam",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var report models.LessonReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, models.ReportStatusPending, report.Status)
}

func TestCreateReportDuplicateIs409(t *testing.T) {
	svc := &stubReportService{
		create: func(_ context.Context, req models.CreateReportRequest) (*models.LessonReport, error) {
			return nil, fmt.Errorf("%w: lesson '%s', reporter '%s'", core.ErrDuplicateReport, req.LessonID, req.ReporterUserID)
		},
	}
	router := reportTestRouter(svc)

	rec := postJSON(router, "/lessonReports", models.CreateReportRequest{
		LessonID:       "lesson-1",
		ReporterUserID: "uid-2",
		Reason:         "spam",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Duplicate report", resp.Error)
}

func TestCreateReportMissingReasonIs400(t *testing.T) {
	router := reportTestRouter(&stubReportService{})

	rec := postJSON(router, "/lessonReports", map[string]string{
		"lessonId":       "lesson-1",
		"reporterUserId": "uid-2",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateReportStatusInvalidValueIs400(t *testing.T) {
	svc := &stubReportService{
		updateStatus: func(_ context.Context, _, status string) error {
			return fmt.Errorf("%w: '%s'", core.ErrInvalidReportStatus, status)
		},
	}
	router := reportTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/lessonReports/lesson-1_uid-2", strings.NewReader(`{"status":"escalated"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

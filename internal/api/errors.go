package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/core"
)

// respondServiceError translates service-layer errors to HTTP responses:
// validation 400, not-found 404, conflict 409, everything else 500 with the
// underlying message exposed in details.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrInvalidRole),
		errors.Is(err, core.ErrInvalidReportStatus),
		errors.Is(err, core.ErrPaymentNotCompleted):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Details: err.Error()})
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrLessonNotFound),
		errors.Is(err, core.ErrReportNotFound),
		errors.Is(err, core.ErrSavedLessonNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found", Details: err.Error()})
	case errors.Is(err, core.ErrDuplicateReport):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Duplicate report", Details: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
	}
}

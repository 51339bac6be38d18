package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/models"
)

// SavedLessonHandler handles save-toggle API endpoints.
type SavedLessonHandler struct {
	savedService core.SavedLessonService
}

// NewSavedLessonHandler creates a new SavedLessonHandler.
func NewSavedLessonHandler(ss core.SavedLessonService) *SavedLessonHandler {
	return &SavedLessonHandler{savedService: ss}
}

// ToggleSave handles POST /savedLessons/toggle (authenticated). Presence of
// the marker row means "saved"; the same request path removes it if present.
func (h *SavedLessonHandler) ToggleSave(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.ToggleSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	saved, err := h.savedService.Toggle(c.Request.Context(), req.LessonID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleSaveResponse{Saved: saved})
}

// ListSaved handles GET /savedLessons/users (authenticated): the caller's own
// save markers.
func (h *SavedLessonHandler) ListSaved(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	saves, err := h.savedService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saves)
}

// DeleteSaved handles DELETE /savedLessons/:id (authenticated).
func (h *SavedLessonHandler) DeleteSaved(c *gin.Context) {
	if err := h.savedService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "saved lesson removed"})
}

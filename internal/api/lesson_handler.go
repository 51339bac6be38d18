package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/models"
)

// LessonHandler handles lesson API endpoints.
type LessonHandler struct {
	lessonService core.LessonService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(ls core.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: ls}
}

// CreateLesson handles POST /lessons (authenticated). The owning principal ID
// and creation time are stamped server-side.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	lesson, err := h.lessonService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

// ListLessons handles GET /lessons with optional owner-email filter and
// page-based pagination (page, limit — defaults 1/8).
func (h *LessonHandler) ListLessons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	result, err := h.lessonService.List(c.Request.Context(), c.Query("email"), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLesson handles GET /lessons/:id.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lesson, err := h.lessonService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// UpdateLesson handles PATCH /lessons/:id (authenticated), replacing only the
// provided fields.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	var req models.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.lessonService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "lesson updated"})
}

// DeleteLesson handles DELETE /lessons/:id (authenticated).
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	if err := h.lessonService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "lesson deleted"})
}

// ToggleLike handles PATCH /lessons/:id/like (authenticated). The flip and
// counter adjustment are one atomic store operation.
func (h *LessonHandler) ToggleLike(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	liked, err := h.lessonService.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleLikeResponse{Liked: liked})
}

// Banner handles GET /lessons/banner: the images of the 3 most recent
// lessons, identity suppressed.
func (h *LessonHandler) Banner(c *gin.Context) {
	images, err := h.lessonService.BannerImages(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	banner := make([]BannerImage, 0, len(images))
	for _, image := range images {
		banner = append(banner, BannerImage{Image: image})
	}
	c.JSON(http.StatusOK, banner)
}

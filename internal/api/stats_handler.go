package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/core"
)

// StatsHandler handles the dashboard and admin aggregation endpoints. Each is
// read-only with a fixed shape; any store error surfaces as a server error.
type StatsHandler struct {
	statsService core.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(ss core.StatsService) *StatsHandler {
	return &StatsHandler{statsService: ss}
}

// Dashboard handles GET /dashboard (authenticated): the caller's own stats.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	email, ok := contextUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User email not found in context"})
		return
	}
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	stats, err := h.statsService.Dashboard(c.Request.Context(), email, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminStats handles GET /admin/stats (admin only).
func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.statsService.AdminStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UserGrowth handles GET /admin/growth/users (admin only).
func (h *StatsHandler) UserGrowth(c *gin.Context) {
	growth, err := h.statsService.UserGrowth(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, growth)
}

// TopContributors handles GET /admin/top-contributors (admin only).
func (h *StatsHandler) TopContributors(c *gin.Context) {
	contributors, err := h.statsService.TopContributors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributors)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/models"
)

// UserHandler handles account-related API endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// ListUsers handles GET /users. An optional searchText query applies a
// case-insensitive substring filter over display name and email.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.Search(c.Request.Context(), c.Query("searchText"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByEmail handles GET /users/:email.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserRole handles GET /users/:email/role. The role defaults to "user"
// when no account exists.
func (h *UserHandler) GetUserRole(c *gin.Context) {
	role, err := h.userService.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, RoleResponse{Role: role})
}

// CreateUser handles POST /users, called after client-side sign-in to ensure
// a backend profile exists. Creation is idempotent by email.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, SuccessResponse{Message: "user exists", Data: user})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUserRole handles PATCH /users/:email/role (admin only).
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.userService.SetRole(c.Request.Context(), c.Param("email"), req.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "role updated"})
}

// UpdateUserProfile handles PATCH /users/profile (admin only), replacing
// displayName and/or photoURL in place.
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "profile updated"})
}

package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/models"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidRole is returned when a role patch carries a value outside the
// user/admin enumeration.
var ErrInvalidRole = errors.New("invalid role")

// unfilteredUserListLimit caps the user listing when no search text is given.
// Carried over from the original API surface; callers should not rely on
// stable pagination from this endpoint.
const unfilteredUserListLimit = 5

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetOrCreate makes user creation idempotent by email: the conditional create
// either inserts a fresh document with default role and premium flag, or hits
// the existing one, in which case the stored user is returned unchanged.
func (s *userService) GetOrCreate(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error) {
	newUser := &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        models.RoleUser,
		IsPremium:   false,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.userRepo.Create(ctx, newUser)
	if err == nil {
		return newUser, true, nil
	}
	if !errors.Is(err, db.ErrAlreadyExists) {
		return nil, false, fmt.Errorf("failed to create user '%s': %w", req.Email, err)
	}

	existing, getErr := s.userRepo.GetByEmail(ctx, req.Email)
	if getErr != nil {
		return nil, false, fmt.Errorf("failed to load existing user '%s': %w", req.Email, getErr)
	}
	return existing, false, nil
}

// GetByEmail retrieves a user by email.
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: email '%s'", ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("failed to get user by email '%s': %w", email, err)
	}
	return user, nil
}

// GetRole returns the user's role. Missing accounts and accounts without a
// stored role both resolve to "user", never an empty value.
func (s *userService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.RoleUser, nil
		}
		return "", fmt.Errorf("failed to get role for email '%s': %w", email, err)
	}
	if user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}

// Search lists users ordered by creation time descending. Firestore has no
// substring operator, so the searchText filter is applied here over the
// fetched set; the unfiltered path keeps its fixed cap at the query level.
func (s *userService) Search(ctx context.Context, searchText string) ([]*models.User, error) {
	if searchText == "" {
		users, err := s.userRepo.List(ctx, unfilteredUserListLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return users, nil
	}

	users, err := s.userRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for search: %w", err)
	}

	needle := strings.ToLower(searchText)
	matched := make([]*models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.DisplayName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// SetRole replaces the user's role after constraining it to the enumeration.
func (s *userService) SetRole(ctx context.Context, email, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("%w: '%s'", ErrInvalidRole, role)
	}
	if err := s.userRepo.SetRole(ctx, email, role); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: email '%s'", ErrUserNotFound, email)
		}
		return fmt.Errorf("failed to set role for '%s': %w", email, err)
	}
	return nil
}

// UpdateProfile replaces only the profile fields present in the request.
func (s *userService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	fields := map[string]interface{}{}
	if req.DisplayName != nil {
		fields["displayName"] = *req.DisplayName
	}
	if req.PhotoURL != nil {
		fields["photoURL"] = *req.PhotoURL
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.userRepo.UpdateProfile(ctx, req.Email, fields); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: email '%s'", ErrUserNotFound, req.Email)
		}
		return fmt.Errorf("failed to update profile for '%s': %w", req.Email, err)
	}
	return nil
}

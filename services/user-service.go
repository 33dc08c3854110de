package services

import (
	"context"
	"errors"
	"strings"

	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/models"
)

// UserService is the user directory: listings, username resolution and role changes.
type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// ListUsers returns every user with a display username filled in.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		u.Username = u.DisplayName()
		u.Password = ""
		out = append(out, u)
	}
	return out, nil
}

// ListUserSummaries returns the id/username pairs used when picking group members.
func (s *UserService) ListUserSummaries(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, models.UserSummary{ID: u.ID, Username: u.DisplayName()})
	}
	return out, nil
}

// ResolveUsername returns the user's username, or fallback when the id is blank,
// unknown or the user has no username. Only store failures are returned as errors.
func (s *UserService) ResolveUsername(ctx context.Context, userID, fallback string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return fallback, nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, models.ErrUserNotFound) {
		logging.Logger.Warnf("Event ID: USER_NOT_FOUND, Description: User with ID %s not found, using %q", userID, fallback)
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	if user.Username == "" {
		return fallback, nil
	}
	return user.Username, nil
}

// UpdateRole changes a user's role while keeping at most one admin.
func (s *UserService) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Role, error) {
	if !role.Valid() {
		return "", models.NewValidationError("role must be %q or %q", models.RoleMember, models.RoleAdmin)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if role == models.RoleAdmin && user.Role != models.RoleAdmin {
		admins, err := s.users.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return "", err
		}
		if admins >= 1 {
			return "", models.ErrAdminExists
		}
	}

	// The single_admin index rejects a second admin if two promotions pass the count.
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return "", err
	}

	logging.Logger.Infof("Event ID: ROLE_UPDATED, Description: User %s role set to %s", userID, role)
	return role, nil
}

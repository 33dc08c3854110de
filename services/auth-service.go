package services

import (
	"context"
	"errors"
	"strings"

	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/models"
	"github.com/charly15/back-task/utils"
)

// bcrypt only hashes the first 72 bytes and rejects longer input.
const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a member account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewValidationError("username is required")
	}
	if len(password) < minPasswordLength {
		return nil, models.NewValidationError("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return nil, models.NewValidationError("password must be at most %d bytes", maxPasswordLength)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		logging.Logger.Errorf("Event ID: PASSWORD_HASH_FAILED, Description: Failed to hash password for %s: %v", username, err)
		return nil, err
	}

	user := &models.User{Username: username, Role: models.RoleMember, Password: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: User %s registered with ID %s", username, user.ID)

	user.Password = ""
	return user, nil
}

// Login checks the credentials and returns a signed token together with the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, models.NewValidationError("username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, models.ErrUserNotFound) {
		logging.Logger.Warnf("Event ID: LOGIN_FAILED, Description: Unknown username %s", username)
		return "", nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if user.Password == "" || !utils.CheckPassword(user.Password, password) {
		logging.Logger.Warnf("Event ID: LOGIN_FAILED, Description: Wrong password for %s", username)
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	logging.Logger.Infof("Event ID: LOGIN_SUCCESS, Description: User %s logged in", username)

	user.Password = ""
	return token, user, nil
}

package service

import (
	"context"
	"errors"
	"strings"

	"vn-backend/internal/interfaces"
	"vn-backend/internal/models"

	"go.uber.org/zap"
)

// UserService implements account registration, authentication and the
// administrative user CRUD operations.
type UserService struct {
	users    interfaces.UserRepository
	verifier PasswordVerifier
	logger   *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users interfaces.UserRepository, verifier PasswordVerifier, logger *zap.Logger) *UserService {
	return &UserService{
		users:    users,
		verifier: verifier,
		logger:   logger.Named("UserService"),
	}
}

// Register creates a new account and returns it with the assigned id.
func (s *UserService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	user := &models.User{
		Username: username,
		Password: password,
		Email:    email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username and password. Unknown usernames and wrong
// passwords both collapse into ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.verifier.Verify(password, user.Password) {
		s.logger.Debug("Password mismatch on login", zap.String("username", username))
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// List returns every user row.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Update performs a full replace of username, password and email for the
// given id. Values are trimmed of surrounding whitespace before storage.
func (s *UserService) Update(ctx context.Context, id int64, username, password, email string) error {
	user := &models.User{
		ID:       id,
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
		Email:    strings.TrimSpace(email),
	}
	return s.users.Update(ctx, user)
}

// Delete removes the account. Its saves are removed by the database via the
// cascading foreign key.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

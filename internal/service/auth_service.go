package service

import (
	"context"

	"gamerental/cli/internal/models"
	"gamerental/cli/internal/repository"
)

// AuthService handles account creation, authentication and role checks.
// Role checks always re-query the store so a role change takes effect on
// the next menu action.
type AuthService struct {
	users repository.UserRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// CreateUser registers a new customer account. Favorite games start empty
// and the overdue count starts at zero.
func (s *AuthService) CreateUser(ctx context.Context, login, password, phoneNum string) error {
	exists, err := s.users.ExistsByLogin(ctx, login)
	if err != nil {
		return err
	}
	if exists {
		return ErrLoginTaken
	}

	user := &models.User{
		Login:    login,
		Password: password,
		Role:     models.RoleCustomer,
		PhoneNum: phoneNum,
	}
	return s.users.Create(ctx, user)
}

// Login succeeds only when login and password together match exactly one
// row.
func (s *AuthService) Login(ctx context.Context, login, password string) error {
	ok, err := s.users.CredentialsMatch(ctx, login, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}
	return nil
}

// IsManager reports whether login holds the manager role.
func (s *AuthService) IsManager(ctx context.Context, login string) (bool, error) {
	return s.users.HasRole(ctx, login, models.RoleManager)
}

// IsEmployee reports whether login holds the employee role.
func (s *AuthService) IsEmployee(ctx context.Context, login string) (bool, error) {
	return s.users.HasRole(ctx, login, models.RoleEmployee)
}

// IsEmployeeOrManager reports whether login holds either privileged role.
func (s *AuthService) IsEmployeeOrManager(ctx context.Context, login string) (bool, error) {
	manager, err := s.IsManager(ctx, login)
	if err != nil || manager {
		return manager, err
	}
	return s.IsEmployee(ctx, login)
}

// UserExists reports whether a row exists for login.
func (s *AuthService) UserExists(ctx context.Context, login string) (bool, error) {
	return s.users.ExistsByLogin(ctx, login)
}

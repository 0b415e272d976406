package service

import (
	"context"
	"errors"

	"gamerental/cli/internal/models"
	"gamerental/cli/internal/repository"

	"gorm.io/gorm"
)

// UserService handles profile views, self-service profile updates and the
// manager's user-record edits.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns one user row or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, login string) (*models.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateFavGames sets the caller's favorite games text.
func (s *UserService) UpdateFavGames(ctx context.Context, login, favGames string) error {
	return s.users.UpdateFavGames(ctx, login, favGames)
}

// UpdatePassword sets the caller's password.
func (s *UserService) UpdatePassword(ctx context.Context, login, password string) error {
	return s.users.UpdatePassword(ctx, login, password)
}

// UpdatePhoneNum sets the caller's phone number.
func (s *UserService) UpdatePhoneNum(ctx context.Context, login, phoneNum string) error {
	return s.users.UpdatePhoneNum(ctx, login, phoneNum)
}

// UpdateRole sets a user's role. Gated to managers at the menu.
func (s *UserService) UpdateRole(ctx context.Context, login, role string) error {
	return s.users.UpdateRole(ctx, login, role)
}

// UpdateOverdueCount sets a user's overdue-games count. Gated to managers
// at the menu.
func (s *UserService) UpdateOverdueCount(ctx context.Context, login string, count int) error {
	return s.users.UpdateOverdueCount(ctx, login, count)
}

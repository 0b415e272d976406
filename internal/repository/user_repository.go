package repository

import (
	"context"

	"gamerental/cli/internal/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository backed by GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

// CredentialsMatch reports whether login and password together match
// exactly one row.
func (r *userRepository) CredentialsMatch(ctx context.Context, login, password string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("login = ? AND password = ?", login, password).
		Count(&count).Error
	return count == 1, err
}

func (r *userRepository) HasRole(ctx context.Context, login, role string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("login = ? AND role = ?", login, role).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateFavGames(ctx context.Context, login, favGames string) error {
	return r.updateColumn(ctx, login, "favgames", favGames)
}

func (r *userRepository) UpdatePassword(ctx context.Context, login, password string) error {
	return r.updateColumn(ctx, login, "password", password)
}

func (r *userRepository) UpdatePhoneNum(ctx context.Context, login, phoneNum string) error {
	return r.updateColumn(ctx, login, "phonenum", phoneNum)
}

func (r *userRepository) UpdateRole(ctx context.Context, login, role string) error {
	return r.updateColumn(ctx, login, "role", role)
}

func (r *userRepository) UpdateOverdueCount(ctx context.Context, login string, count int) error {
	return r.updateColumn(ctx, login, "numoverduegames", count)
}

func (r *userRepository) updateColumn(ctx context.Context, login, column string, value interface{}) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("login = ?", login).
		Update(column, value).Error
}

package repository

import (
	"context"

	"gamerental/cli/internal/models"

	"gorm.io/gorm"
)

// catalogRepository implements CatalogRepository backed by GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).Find(&games).Error
	return games, err
}

func (r *catalogRepository) ListByGenre(ctx context.Context, genre string) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).Where("genre = ?", genre).Find(&games).Error
	return games, err
}

func (r *catalogRepository) ListMaxPrice(ctx context.Context, maxPrice float64) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).Where("price <= ?", maxPrice).Find(&games).Error
	return games, err
}

func (r *catalogRepository) ListByPrice(ctx context.Context, ascending bool) ([]models.Game, error) {
	order := "price"
	if !ascending {
		order = "price DESC"
	}
	var games []models.Game
	err := r.db.WithContext(ctx).Order(order).Find(&games).Error
	return games, err
}

func (r *catalogRepository) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where("gameid = ?", gameID).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *catalogRepository) UpdateName(ctx context.Context, gameID, name string) error {
	return r.updateColumn(ctx, gameID, "gamename", name)
}

func (r *catalogRepository) UpdateGenre(ctx context.Context, gameID, genre string) error {
	return r.updateColumn(ctx, gameID, "genre", genre)
}

func (r *catalogRepository) UpdatePrice(ctx context.Context, gameID string, price float64) error {
	return r.updateColumn(ctx, gameID, "price", price)
}

func (r *catalogRepository) UpdateDescription(ctx context.Context, gameID, description string) error {
	return r.updateColumn(ctx, gameID, "description", description)
}

func (r *catalogRepository) UpdateImageURL(ctx context.Context, gameID, imageURL string) error {
	return r.updateColumn(ctx, gameID, "imageurl", imageURL)
}

func (r *catalogRepository) updateColumn(ctx context.Context, gameID, column string, value interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Game{}).
		Where("gameid = ?", gameID).
		Update(column, value).Error
}

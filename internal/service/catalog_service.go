package service

import (
	"context"
	"errors"

	"gamerental/cli/internal/models"
	"gamerental/cli/internal/repository"

	"gorm.io/gorm"
)

// CatalogService exposes the catalog listings and the manager's catalog
// edits.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListAll returns every catalog entry.
func (s *CatalogService) ListAll(ctx context.Context) ([]models.Game, error) {
	return s.catalog.List(ctx)
}

// FilterByGenre returns entries whose genre matches exactly.
func (s *CatalogService) FilterByGenre(ctx context.Context, genre string) ([]models.Game, error) {
	return s.catalog.ListByGenre(ctx, genre)
}

// FilterByPrice returns entries priced at or below maxPrice.
func (s *CatalogService) FilterByPrice(ctx context.Context, maxPrice float64) ([]models.Game, error) {
	return s.catalog.ListMaxPrice(ctx, maxPrice)
}

// SortByPrice returns all entries ordered by price.
func (s *CatalogService) SortByPrice(ctx context.Context, ascending bool) ([]models.Game, error) {
	return s.catalog.ListByPrice(ctx, ascending)
}

// Get returns one catalog entry or ErrGameNotFound.
func (s *CatalogService) Get(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.catalog.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// UpdateName sets a catalog entry's name.
func (s *CatalogService) UpdateName(ctx context.Context, gameID, name string) error {
	return s.catalog.UpdateName(ctx, gameID, name)
}

// UpdateGenre sets a catalog entry's genre.
func (s *CatalogService) UpdateGenre(ctx context.Context, gameID, genre string) error {
	return s.catalog.UpdateGenre(ctx, gameID, genre)
}

// UpdatePrice sets a catalog entry's price.
func (s *CatalogService) UpdatePrice(ctx context.Context, gameID string, price float64) error {
	return s.catalog.UpdatePrice(ctx, gameID, price)
}

// UpdateDescription sets a catalog entry's description.
func (s *CatalogService) UpdateDescription(ctx context.Context, gameID, description string) error {
	return s.catalog.UpdateDescription(ctx, gameID, description)
}

// UpdateImageURL sets a catalog entry's image reference.
func (s *CatalogService) UpdateImageURL(ctx context.Context, gameID, imageURL string) error {
	return s.catalog.UpdateImageURL(ctx, gameID, imageURL)
}

package repository

import (
	"context"

	"gamerental/cli/internal/models"
)

// UserRepository handles Users table access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	CredentialsMatch(ctx context.Context, login, password string) (bool, error)
	HasRole(ctx context.Context, login, role string) (bool, error)
	UpdateFavGames(ctx context.Context, login, favGames string) error
	UpdatePassword(ctx context.Context, login, password string) error
	UpdatePhoneNum(ctx context.Context, login, phoneNum string) error
	UpdateRole(ctx context.Context, login, role string) error
	UpdateOverdueCount(ctx context.Context, login string, count int) error
}

// CatalogRepository handles Catalog table access.
type CatalogRepository interface {
	List(ctx context.Context) ([]models.Game, error)
	ListByGenre(ctx context.Context, genre string) ([]models.Game, error)
	ListMaxPrice(ctx context.Context, maxPrice float64) ([]models.Game, error)
	ListByPrice(ctx context.Context, ascending bool) ([]models.Game, error)
	GetByID(ctx context.Context, gameID string) (*models.Game, error)
	UpdateName(ctx context.Context, gameID, name string) error
	UpdateGenre(ctx context.Context, gameID, genre string) error
	UpdatePrice(ctx context.Context, gameID string, price float64) error
	UpdateDescription(ctx context.Context, gameID, description string) error
	UpdateImageURL(ctx context.Context, gameID, imageURL string) error
}

// OrderRepository handles RentalOrder and GamesInOrder table access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.RentalOrder) error
	ExistsByID(ctx context.Context, orderID string) (bool, error)
	GetByID(ctx context.Context, orderID string) (*models.RentalOrder, error)
	FinalizeTotals(ctx context.Context, orderID string, noOfGames int, totalPrice float64) error
	ListByLogin(ctx context.Context, login string) ([]models.OrderHistoryRow, error)
	ListRecentByLogin(ctx context.Context, login string, limit int) ([]models.OrderHistoryRow, error)
	AddItem(ctx context.Context, item *models.OrderItem) error
	ListItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	GetDetail(ctx context.Context, orderID string) (*models.OrderDetail, error)
}

// TrackingRepository handles TrackingInfo table access.
type TrackingRepository interface {
	Create(ctx context.Context, info *models.TrackingInfo) error
	ExistsByID(ctx context.Context, trackingID string) (bool, error)
	GetByID(ctx context.Context, trackingID string) (*models.TrackingInfo, error)
	GetForOrder(ctx context.Context, trackingID, orderID string) (*models.TrackingInfo, error)
	Update(ctx context.Context, info *models.TrackingInfo) error
}

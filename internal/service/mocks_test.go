package service_test

import (
	"context"

	"gamerental/cli/internal/models"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func gormNotFound() error { return gorm.ErrRecordNotFound }

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CredentialsMatch(ctx context.Context, login, password string) (bool, error) {
	args := m.Called(ctx, login, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) HasRole(ctx context.Context, login, role string) (bool, error) {
	args := m.Called(ctx, login, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateFavGames(ctx context.Context, login, favGames string) error {
	args := m.Called(ctx, login, favGames)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, login, password string) error {
	args := m.Called(ctx, login, password)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePhoneNum(ctx context.Context, login, phoneNum string) error {
	args := m.Called(ctx, login, phoneNum)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, login, role string) error {
	args := m.Called(ctx, login, role)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateOverdueCount(ctx context.Context, login string, count int) error {
	args := m.Called(ctx, login, count)
	return args.Error(0)
}

// MockCatalogRepository is a testify mock of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]models.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockCatalogRepository) ListByGenre(ctx context.Context, genre string) ([]models.Game, error) {
	args := m.Called(ctx, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockCatalogRepository) ListMaxPrice(ctx context.Context, maxPrice float64) ([]models.Game, error) {
	args := m.Called(ctx, maxPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockCatalogRepository) ListByPrice(ctx context.Context, ascending bool) ([]models.Game, error) {
	args := m.Called(ctx, ascending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, gameID string) (*models.Game, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockCatalogRepository) UpdateName(ctx context.Context, gameID, name string) error {
	args := m.Called(ctx, gameID, name)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateGenre(ctx context.Context, gameID, genre string) error {
	args := m.Called(ctx, gameID, genre)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdatePrice(ctx context.Context, gameID string, price float64) error {
	args := m.Called(ctx, gameID, price)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateDescription(ctx context.Context, gameID, description string) error {
	args := m.Called(ctx, gameID, description)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateImageURL(ctx context.Context, gameID, imageURL string) error {
	args := m.Called(ctx, gameID, imageURL)
	return args.Error(0)
}

// MockOrderRepository is a testify mock of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.RentalOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ExistsByID(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID string) (*models.RentalOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RentalOrder), args.Error(1)
}

func (m *MockOrderRepository) FinalizeTotals(ctx context.Context, orderID string, noOfGames int, totalPrice float64) error {
	args := m.Called(ctx, orderID, noOfGames, totalPrice)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByLogin(ctx context.Context, login string) ([]models.OrderHistoryRow, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderHistoryRow), args.Error(1)
}

func (m *MockOrderRepository) ListRecentByLogin(ctx context.Context, login string, limit int) ([]models.OrderHistoryRow, error) {
	args := m.Called(ctx, login, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderHistoryRow), args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, item *models.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) ListItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) GetDetail(ctx context.Context, orderID string) (*models.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

// MockTrackingRepository is a testify mock of repository.TrackingRepository.
type MockTrackingRepository struct {
	mock.Mock
}

func (m *MockTrackingRepository) Create(ctx context.Context, info *models.TrackingInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockTrackingRepository) ExistsByID(ctx context.Context, trackingID string) (bool, error) {
	args := m.Called(ctx, trackingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingRepository) GetByID(ctx context.Context, trackingID string) (*models.TrackingInfo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrackingInfo), args.Error(1)
}

func (m *MockTrackingRepository) GetForOrder(ctx context.Context, trackingID, orderID string) (*models.TrackingInfo, error) {
	args := m.Called(ctx, trackingID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrackingInfo), args.Error(1)
}

func (m *MockTrackingRepository) Update(ctx context.Context, info *models.TrackingInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

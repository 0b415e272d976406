package repository

import (
	"context"

	"gamerental/cli/internal/models"

	"gorm.io/gorm"
)

// orderRepository implements OrderRepository backed by GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.RentalOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ExistsByID(ctx context.Context, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RentalOrder{}).
		Where("rentalorderid = ?", orderID).
		Count(&count).Error
	return count > 0, err
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*models.RentalOrder, error) {
	var order models.RentalOrder
	err := r.db.WithContext(ctx).Where("rentalorderid = ?", orderID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FinalizeTotals patches the header's game count and total price once all
// line items have been collected.
func (r *orderRepository) FinalizeTotals(ctx context.Context, orderID string, noOfGames int, totalPrice float64) error {
	return r.db.WithContext(ctx).Model(&models.RentalOrder{}).
		Where("rentalorderid = ?", orderID).
		Updates(map[string]interface{}{"noofgames": noOfGames, "totalprice": totalPrice}).Error
}

func (r *orderRepository) ListByLogin(ctx context.Context, login string) ([]models.OrderHistoryRow, error) {
	var rows []models.OrderHistoryRow
	err := r.historyQuery(ctx, login).
		Order("rentalorder.ordertimestamp").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) ListRecentByLogin(ctx context.Context, login string, limit int) ([]models.OrderHistoryRow, error) {
	var rows []models.OrderHistoryRow
	err := r.historyQuery(ctx, login).
		Order("rentalorder.ordertimestamp DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// historyQuery joins order headers with their line items' catalog entries,
// one row per ordered game.
func (r *orderRepository) historyQuery(ctx context.Context, login string) *gorm.DB {
	return r.db.WithContext(ctx).Table("rentalorder").
		Select("rentalorder.rentalorderid, catalog.gamename, rentalorder.ordertimestamp, rentalorder.duedate").
		Joins("JOIN gamesinorder ON gamesinorder.rentalorderid = rentalorder.rentalorderid").
		Joins("JOIN catalog ON catalog.gameid = gamesinorder.gameid").
		Where("rentalorder.login = ?", login)
}

func (r *orderRepository) AddItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderRepository) ListItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).Where("rentalorderid = ?", orderID).Find(&items).Error
	return items, err
}

// GetDetail returns an order header together with its tracking record.
func (r *orderRepository) GetDetail(ctx context.Context, orderID string) (*models.OrderDetail, error) {
	var order models.RentalOrder
	if err := r.db.WithContext(ctx).Where("rentalorderid = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}

	var tracking models.TrackingInfo
	if err := r.db.WithContext(ctx).Where("rentalorderid = ?", orderID).First(&tracking).Error; err != nil {
		return nil, err
	}

	return &models.OrderDetail{Order: order, Tracking: tracking}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gamerental/cli/internal/models"
	"gamerental/cli/internal/repository"

	"gorm.io/gorm"
)

// Order and tracking ids are human-readable: a fixed prefix plus four
// random digits, re-rolled on collision. The retry loop is bounded so an
// exhausted id space fails loudly instead of spinning.
const (
	orderIDPrefix    = "gamerentalorder"
	trackingIDPrefix = "trackingid"
	maxIDAttempts    = 100

	minDueDays = 5
	maxDueDays = 26
)

// ShippingDefaults are the initial values stamped onto a new tracking
// record.
type ShippingDefaults struct {
	Origin  string
	Courier string
}

// OrderDraft is an in-flight order: the header exists with zero totals and
// line items accumulate until Finalize patches the totals in.
type OrderDraft struct {
	OrderID        string
	TrackingID     string
	Login          string
	OrderTimestamp time.Time
	DueDate        time.Time

	totalGames int
	totalPrice float64
}

// TotalPrice returns the running total over the items added so far.
func (d *OrderDraft) TotalPrice() float64 { return d.totalPrice }

// OrderService runs the rental order workflow and the order visibility
// queries.
type OrderService struct {
	orders   repository.OrderRepository
	tracking repository.TrackingRepository
	catalog  repository.CatalogRepository
	users    repository.UserRepository
	shipping ShippingDefaults
}

// NewOrderService creates a new order service.
func NewOrderService(
	orders repository.OrderRepository,
	tracking repository.TrackingRepository,
	catalog repository.CatalogRepository,
	users repository.UserRepository,
	shipping ShippingDefaults,
) *OrderService {
	return &OrderService{
		orders:   orders,
		tracking: tracking,
		catalog:  catalog,
		users:    users,
		shipping: shipping,
	}
}

// Begin allocates fresh order and tracking ids, stamps the timestamps and
// inserts the header row with zero totals.
func (s *OrderService) Begin(ctx context.Context, login string) (*OrderDraft, error) {
	orderID, err := s.allocateID(ctx, orderIDPrefix, s.orders.ExistsByID)
	if err != nil {
		return nil, fmt.Errorf("allocating order id: %w", err)
	}

	trackingID, err := s.allocateID(ctx, trackingIDPrefix, s.tracking.ExistsByID)
	if err != nil {
		return nil, fmt.Errorf("allocating tracking id: %w", err)
	}

	now := time.Now()
	draft := &OrderDraft{
		OrderID:        orderID,
		TrackingID:     trackingID,
		Login:          login,
		OrderTimestamp: now,
		DueDate:        now.AddDate(0, 0, minDueDays+rand.Intn(maxDueDays-minDueDays+1)),
	}

	header := &models.RentalOrder{
		RentalOrderID:  draft.OrderID,
		Login:          login,
		NoOfGames:      0,
		TotalPrice:     0,
		OrderTimestamp: draft.OrderTimestamp,
		DueDate:        draft.DueDate,
	}
	if err := s.orders.Create(ctx, header); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddGame records one line item and returns the running total price. An
// unknown game id yields ErrGameNotFound and leaves the draft untouched.
func (s *OrderService) AddGame(ctx context.Context, draft *OrderDraft, gameID string, units int) (float64, error) {
	game, err := s.catalog.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return draft.totalPrice, ErrGameNotFound
		}
		return draft.totalPrice, err
	}

	item := &models.OrderItem{
		RentalOrderID: draft.OrderID,
		GameID:        gameID,
		UnitsOrdered:  units,
	}
	if err := s.orders.AddItem(ctx, item); err != nil {
		return draft.totalPrice, err
	}

	draft.totalGames += units
	draft.totalPrice += float64(units) * game.Price
	return draft.totalPrice, nil
}

// Finalize patches the header totals and inserts the initial tracking
// record with status Processing.
func (s *OrderService) Finalize(ctx context.Context, draft *OrderDraft) error {
	if err := s.orders.FinalizeTotals(ctx, draft.OrderID, draft.totalGames, draft.totalPrice); err != nil {
		return err
	}

	info := &models.TrackingInfo{
		TrackingID:      draft.TrackingID,
		RentalOrderID:   draft.OrderID,
		Status:          models.TrackingStatusProcessing,
		CurrentLocation: s.shipping.Origin,
		CourierName:     s.shipping.Courier,
		LastUpdateDate:  draft.OrderTimestamp,
	}
	return s.tracking.Create(ctx, info)
}

// History returns the full order history for login, oldest first.
func (s *OrderService) History(ctx context.Context, login string) ([]models.OrderHistoryRow, error) {
	return s.orders.ListByLogin(ctx, login)
}

// RecentHistory returns login's five most recent orders.
func (s *OrderService) RecentHistory(ctx context.Context, login string) ([]models.OrderHistoryRow, error) {
	return s.orders.ListRecentByLogin(ctx, login, 5)
}

// Detail returns one order joined with its tracking record. A customer may
// only view their own orders; employees and managers may view any.
func (s *OrderService) Detail(ctx context.Context, viewer, orderID string) (*models.OrderDetail, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.Login != viewer {
		privileged, err := s.viewerIsStaff(ctx, viewer)
		if err != nil {
			return nil, err
		}
		if !privileged {
			return nil, ErrPermissionDenied
		}
	}

	detail, err := s.orders.GetDetail(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *OrderService) viewerIsStaff(ctx context.Context, login string) (bool, error) {
	manager, err := s.users.HasRole(ctx, login, models.RoleManager)
	if err != nil || manager {
		return manager, err
	}
	return s.users.HasRole(ctx, login, models.RoleEmployee)
}

// allocateID rolls prefix + 4 random digits until exists reports the id
// unused, giving up after maxIDAttempts.
func (s *OrderService) allocateID(ctx context.Context, prefix string, exists func(context.Context, string) (bool, error)) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		candidate := fmt.Sprintf("%s%d", prefix, 1000+rand.Intn(9000))
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrIDSpaceExhausted
}

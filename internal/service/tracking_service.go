package service

import (
	"context"
	"errors"
	"time"

	"gamerental/cli/internal/models"
	"gamerental/cli/internal/repository"

	"gorm.io/gorm"
)

// TrackingField names one mutable column of a tracking record.
type TrackingField int

const (
	TrackingFieldStatus TrackingField = iota + 1
	TrackingFieldLocation
	TrackingFieldCourier
	TrackingFieldComments
)

// TrackingService handles shipment-status views and updates.
type TrackingService struct {
	tracking repository.TrackingRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(
	tracking repository.TrackingRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
) *TrackingService {
	return &TrackingService{tracking: tracking, orders: orders, users: users}
}

// View returns the tracking record for the given tracking id and order id
// pair. Customers may only view records for their own orders.
func (s *TrackingService) View(ctx context.Context, viewer, trackingID, orderID string) (*models.TrackingInfo, error) {
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

	info, err := s.tracking.GetForOrder(ctx, trackingID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, err
	}
	return info, nil
}

// Get returns one tracking record or ErrTrackingNotFound.
func (s *TrackingService) Get(ctx context.Context, trackingID string) (*models.TrackingInfo, error) {
	info, err := s.tracking.GetByID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, err
	}
	return info, nil
}

// UpdateField writes one field of a tracking record and refreshes the
// last-update timestamp. Only employees and managers may update tracking.
func (s *TrackingService) UpdateField(ctx context.Context, editor, trackingID string, field TrackingField, value string) error {
	privileged, err := s.viewerIsStaff(ctx, editor)
	if err != nil {
		return err
	}
	if !privileged {
		return ErrPermissionDenied
	}

	info, err := s.Get(ctx, trackingID)
	if err != nil {
		return err
	}

	switch field {
	case TrackingFieldStatus:
		info.Status = value
	case TrackingFieldLocation:
		info.CurrentLocation = value
	case TrackingFieldCourier:
		info.CourierName = value
	case TrackingFieldComments:
		info.AdditionalComments = value
	default:
		return errors.New("unknown tracking field")
	}
	info.LastUpdateDate = time.Now()

	return s.tracking.Update(ctx, info)
}

func (s *TrackingService) viewerIsStaff(ctx context.Context, login string) (bool, error) {
	manager, err := s.users.HasRole(ctx, login, models.RoleManager)
	if err != nil || manager {
		return manager, err
	}
	return s.users.HasRole(ctx, login, models.RoleEmployee)
}

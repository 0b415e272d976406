package repository

import (
	"context"

	"gamerental/cli/internal/models"

	"gorm.io/gorm"
)

// trackingRepository implements TrackingRepository backed by GORM.
type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new tracking repository.
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) Create(ctx context.Context, info *models.TrackingInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *trackingRepository) ExistsByID(ctx context.Context, trackingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TrackingInfo{}).
		Where("trackingid = ?", trackingID).
		Count(&count).Error
	return count > 0, err
}

func (r *trackingRepository) GetByID(ctx context.Context, trackingID string) (*models.TrackingInfo, error) {
	var info models.TrackingInfo
	err := r.db.WithContext(ctx).Where("trackingid = ?", trackingID).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetForOrder looks a record up by the tracking id and order id pair, the
// way the tracking view asks for both.
func (r *trackingRepository) GetForOrder(ctx context.Context, trackingID, orderID string) (*models.TrackingInfo, error) {
	var info models.TrackingInfo
	err := r.db.WithContext(ctx).
		Where("trackingid = ? AND rentalorderid = ?", trackingID, orderID).
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *trackingRepository) Update(ctx context.Context, info *models.TrackingInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}
